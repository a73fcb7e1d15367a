package schedstore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Haston00/DABO/internal/cpm"
	"github.com/Haston00/DABO/internal/plan"
)

func storedSchedule(name string) *Stored {
	return &Stored{
		Name: name,
		Plan: &plan.Plan{
			Project: plan.Project{Name: name},
			Entries: []plan.Entry{{ID: "A", Duration: 5}},
		},
		Result: &cpm.Result{
			ByID:          map[string]cpm.Times{"A": {EarlyFinish: 5, LateFinish: 5, Critical: true}},
			Order:         []string{"A"},
			ProjectFinish: 5,
			CriticalPath:  []string{"A"},
		},
		Summary: cpm.Summary{Activities: 1, Critical: 1, ProjectDays: 5},
	}
}

func TestMemStore_SaveAssignsIdentity(t *testing.T) {
	t.Parallel()
	m := NewMemStore()

	s, err := m.SaveSchedule(context.Background(), storedSchedule("p"))
	if err != nil {
		t.Fatalf("SaveSchedule: %v", err)
	}
	if s.ID == "" {
		t.Error("id not assigned")
	}
	if s.CreatedAt.IsZero() {
		t.Error("created_at not assigned")
	}
}

func TestMemStore_GetRoundTrip(t *testing.T) {
	t.Parallel()
	m := NewMemStore()
	ctx := context.Background()

	saved, err := m.SaveSchedule(ctx, storedSchedule("roundtrip"))
	if err != nil {
		t.Fatalf("SaveSchedule: %v", err)
	}

	got, err := m.GetSchedule(ctx, saved.ID)
	if err != nil {
		t.Fatalf("GetSchedule: %v", err)
	}
	if got.Name != "roundtrip" {
		t.Errorf("name = %q", got.Name)
	}
	if got.Result.ProjectFinish != 5 {
		t.Errorf("project finish = %d, want 5", got.Result.ProjectFinish)
	}
	if got.Plan.Entries[0].ID != "A" {
		t.Errorf("plan entry = %+v", got.Plan.Entries[0])
	}
}

func TestMemStore_GetMissing(t *testing.T) {
	t.Parallel()
	m := NewMemStore()

	_, err := m.GetSchedule(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestMemStore_ListNewestFirst(t *testing.T) {
	t.Parallel()
	m := NewMemStore()
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		s := storedSchedule(fmt.Sprintf("p%d", i))
		s.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		if _, err := m.SaveSchedule(ctx, s); err != nil {
			t.Fatalf("SaveSchedule %d: %v", i, err)
		}
	}

	metas, err := m.ListSchedules(ctx)
	if err != nil {
		t.Fatalf("ListSchedules: %v", err)
	}
	if len(metas) != 3 {
		t.Fatalf("got %d schedules, want 3", len(metas))
	}
	for i, want := range []string{"p2", "p1", "p0"} {
		if metas[i].Name != want {
			t.Errorf("metas[%d].Name = %q, want %q", i, metas[i].Name, want)
		}
	}
	if metas[0].Summary.ProjectDays != 5 {
		t.Errorf("summary not carried into listing: %+v", metas[0])
	}
}

func TestMemStore_Delete(t *testing.T) {
	t.Parallel()
	m := NewMemStore()
	ctx := context.Background()

	saved, err := m.SaveSchedule(ctx, storedSchedule("doomed"))
	if err != nil {
		t.Fatalf("SaveSchedule: %v", err)
	}
	if err := m.DeleteSchedule(ctx, saved.ID); err != nil {
		t.Fatalf("DeleteSchedule: %v", err)
	}
	if _, err := m.GetSchedule(ctx, saved.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("after delete err = %v, want ErrNotFound", err)
	}
	if err := m.DeleteSchedule(ctx, saved.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("double delete err = %v, want ErrNotFound", err)
	}
}

func TestMemStore_ConcurrentSaves(t *testing.T) {
	t.Parallel()
	m := NewMemStore()
	ctx := context.Background()

	done := make(chan error, 20)
	for i := 0; i < 20; i++ {
		go func(i int) {
			_, err := m.SaveSchedule(ctx, storedSchedule(fmt.Sprintf("c%d", i)))
			done <- err
		}(i)
	}
	for i := 0; i < 20; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent save: %v", err)
		}
	}

	metas, err := m.ListSchedules(ctx)
	if err != nil {
		t.Fatalf("ListSchedules: %v", err)
	}
	if len(metas) != 20 {
		t.Errorf("got %d schedules, want 20", len(metas))
	}
}
