package plan

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/Haston00/DABO/internal/activity"
	"github.com/Haston00/DABO/internal/template"
)

const samplePlan = `
[project]
name = "Elm Street Office"
start = "2026-03-02"
weekends = "skip"

[[activities]]
id = "A0010"
name = "Notice to Proceed"
duration = 0
milestone = true

[[activities]]
id = "A0100"
name = "Mobilization"
wbs = "02"
duration = 10

[[activities.predecessors]]
id = "A0010"

[[activities]]
id = "A0110"
name = "Earthwork"
wbs = "02"
duration = 12

[[activities.predecessors]]
id = "A0100"
relation = "ss"
lag = 3
`

func writePlanFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing plan file: %v", err)
	}
	return path
}

func TestLoad_ParsesDocument(t *testing.T) {
	t.Parallel()
	p, err := Load(writePlanFile(t, samplePlan))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if p.Project.Name != "Elm Street Office" {
		t.Errorf("project name = %q", p.Project.Name)
	}
	if len(p.Entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(p.Entries))
	}
	if !p.Entries[0].Milestone {
		t.Error("first entry should be a milestone")
	}
	if got := p.Entries[2].Predecessors; len(got) != 1 || got[0].ID != "A0100" || got[0].Lag != 3 {
		t.Errorf("third entry predecessors = %+v", got)
	}
}

func TestLoad_Missing(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, ErrNoPlan) {
		t.Fatalf("err = %v, want ErrNoPlan", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	t.Parallel()
	_, err := Load(writePlanFile(t, "[project\nname = broken"))
	if err == nil {
		t.Fatal("expected parse error")
	}
}

func TestActivities_Conversion(t *testing.T) {
	t.Parallel()
	p, err := Load(writePlanFile(t, samplePlan))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	acts := p.Activities()
	byID := activity.Index(acts)

	// Omitted relations default to finish-to-start.
	mob := byID["A0100"]
	if len(mob.Predecessors) != 1 {
		t.Fatalf("A0100 has %d predecessors, want 1", len(mob.Predecessors))
	}
	if rel := mob.Predecessors[0].Relation; rel != activity.FinishToStart {
		t.Errorf("default relation = %q, want FS", rel)
	}

	// Lowercase relations are normalized.
	if rel := byID["A0110"].Predecessors[0].Relation; rel != activity.StartToStart {
		t.Errorf("relation = %q, want SS", rel)
	}

	// Zero-duration entries become milestones even without the flag.
	if !byID["A0010"].IsMilestone {
		t.Error("A0010 should be a milestone")
	}

	if errs := activity.Validate(acts); len(errs) != 0 {
		t.Errorf("converted activities fail validation: %v", activity.Messages(errs))
	}
}

func TestWriteLoad_RoundTrip(t *testing.T) {
	t.Parallel()
	acts := template.Build(template.Params{
		BuildingType: "office",
		SquareFeet:   50000,
		Stories:      2,
		Scope:        template.ScopeNewConstruction,
	})
	want := FromActivities(Project{Name: "roundtrip", Start: "2026-03-02"}, acts)

	path := filepath.Join(t.TempDir(), "plan.toml")
	if err := Write(path, want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Error("plan changed across write/load round trip")
	}
	if !reflect.DeepEqual(got.Activities(), acts) {
		t.Error("activities changed across write/load round trip")
	}
}

func TestWrite_LeavesNoTempFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, "plan.toml")
	if err := Write(path, &Plan{Project: Project{Name: "x"}}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "plan.toml" {
		t.Errorf("directory contents = %v, want only plan.toml", entries)
	}
}

func TestStartDate(t *testing.T) {
	t.Parallel()
	fallback := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	p := &Plan{Project: Project{Start: "2026-03-02"}}
	got, err := p.StartDate(fallback)
	if err != nil {
		t.Fatalf("StartDate: %v", err)
	}
	if want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("start = %v, want %v", got, want)
	}

	p = &Plan{}
	got, err = p.StartDate(fallback)
	if err != nil {
		t.Fatalf("StartDate fallback: %v", err)
	}
	if !got.Equal(fallback) {
		t.Errorf("start = %v, want fallback %v", got, fallback)
	}

	p = &Plan{Project: Project{Start: "03/02/2026"}}
	if _, err := p.StartDate(fallback); err == nil {
		t.Error("expected error for non-ISO start date")
	}
}

func TestSkipWeekends(t *testing.T) {
	t.Parallel()
	tests := []struct {
		weekends string
		want     bool
	}{
		{"", true},
		{"skip", true},
		{"work", false},
	}
	for _, tt := range tests {
		p := &Plan{Project: Project{Weekends: tt.weekends}}
		if got := p.SkipWeekends(); got != tt.want {
			t.Errorf("weekends=%q: SkipWeekends() = %v, want %v", tt.weekends, got, tt.want)
		}
	}
}

func TestCalendar(t *testing.T) {
	t.Parallel()
	p := &Plan{Project: Project{Start: "2026-03-02", Weekends: "work"}}
	cal, err := p.Calendar(time.Now())
	if err != nil {
		t.Fatalf("Calendar: %v", err)
	}
	if cal.SkipWeekends {
		t.Error("calendar should work weekends")
	}
	if want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC); !cal.Start.Equal(want) {
		t.Errorf("calendar start = %v, want %v", cal.Start, want)
	}
}
