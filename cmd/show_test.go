package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/Haston00/DABO/internal/config"
	"github.com/Haston00/DABO/internal/export"
	"github.com/Haston00/DABO/internal/plan"
)

func TestShowFlags_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		flag string
		want string
	}{
		{"gantt", "false"},
		{"waves", "false"},
		{"wbs", "false"},
		{"dates", "false"},
		{"width", "100"},
		{"no-color", "false"},
	}

	for _, tc := range tests {
		t.Run(tc.flag, func(t *testing.T) {
			f := showCmd.Flags().Lookup(tc.flag)
			if f == nil {
				t.Fatalf("%s flag not registered", tc.flag)
			}
			if f.DefValue != tc.want {
				t.Errorf("%s default = %q, want %q", tc.flag, f.DefValue, tc.want)
			}
		})
	}
}

// newCalendarFlagCmd builds a throwaway command carrying the calendar
// override flags used by calendarFor.
func newCalendarFlagCmd(t *testing.T, start, weekends string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("start", "", "")
	cmd.Flags().String("weekends", "", "")
	if start != "" {
		if err := cmd.Flags().Set("start", start); err != nil {
			t.Fatal(err)
		}
	}
	if weekends != "" {
		if err := cmd.Flags().Set("weekends", weekends); err != nil {
			t.Fatal(err)
		}
	}
	return cmd
}

func TestCalendarFor_PlanStartWins(t *testing.T) {
	t.Parallel()

	p := &plan.Plan{Project: plan.Project{Start: "2026-03-02"}}
	cfg := config.Config{StartDate: "2026-01-05"}

	cal, err := calendarFor(newCalendarFlagCmd(t, "", ""), p, cfg)
	if err != nil {
		t.Fatalf("calendarFor: %v", err)
	}
	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !cal.Start.Equal(want) {
		t.Errorf("Start = %v, want plan start %v", cal.Start, want)
	}
	if !cal.SkipWeekends {
		t.Error("SkipWeekends = false, want weekend skipping by default")
	}
}

func TestCalendarFor_ConfigFallback(t *testing.T) {
	t.Parallel()

	p := &plan.Plan{}
	cfg := config.Config{StartDate: "2026-01-05"}

	cal, err := calendarFor(newCalendarFlagCmd(t, "", ""), p, cfg)
	if err != nil {
		t.Fatalf("calendarFor: %v", err)
	}
	want := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	if !cal.Start.Equal(want) {
		t.Errorf("Start = %v, want configured fallback %v", cal.Start, want)
	}
}

func TestCalendarFor_ConfigWeekends(t *testing.T) {
	t.Parallel()

	// Config supplies the weekend mode when the plan says nothing.
	cal, err := calendarFor(newCalendarFlagCmd(t, "", ""), &plan.Plan{}, config.Config{Weekends: "work"})
	if err != nil {
		t.Fatalf("calendarFor: %v", err)
	}
	if cal.SkipWeekends {
		t.Error("SkipWeekends = true, want configured work mode")
	}

	// A plan that sets weekends wins over config.
	p := &plan.Plan{Project: plan.Project{Weekends: "skip"}}
	cal, err = calendarFor(newCalendarFlagCmd(t, "", ""), p, config.Config{Weekends: "work"})
	if err != nil {
		t.Fatalf("calendarFor: %v", err)
	}
	if !cal.SkipWeekends {
		t.Error("SkipWeekends = false, want plan skip mode to win")
	}
}

func TestCalendarFor_FlagOverrides(t *testing.T) {
	t.Parallel()

	p := &plan.Plan{Project: plan.Project{Start: "2026-03-02"}}

	cal, err := calendarFor(newCalendarFlagCmd(t, "2026-04-06", "work"), p, config.Config{})
	if err != nil {
		t.Fatalf("calendarFor: %v", err)
	}
	want := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	if !cal.Start.Equal(want) {
		t.Errorf("Start = %v, want flag override %v", cal.Start, want)
	}
	if cal.SkipWeekends {
		t.Error("SkipWeekends = true, want weekends worked after --weekends work")
	}
}

func TestCalendarFor_BadInputs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		start    string
		weekends string
		cfg      config.Config
		substr   string
	}{
		{"bad weekends flag", "", "sometimes", config.Config{}, "invalid --weekends"},
		{"bad start flag", "not-a-date", "", config.Config{}, "invalid --start"},
		{"bad config start", "", "", config.Config{StartDate: "03/02/2026"}, "invalid start_date in config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calendarFor(newCalendarFlagCmd(t, tc.start, tc.weekends), &plan.Plan{}, tc.cfg)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("error %q does not mention %q", err, tc.substr)
			}
		})
	}
}

func TestDatesTable(t *testing.T) {
	t.Parallel()

	rows := []export.Row{
		{
			ID: "A", Name: "Mobilize", Duration: 5,
			Start: "2026-03-02", Finish: "2026-03-06",
			LateStart: "2026-03-02", LateFinish: "2026-03-06",
			TotalFloat: 0, Critical: true,
		},
		{
			ID: "B", Name: strings.Repeat("structural steel erection ", 3), Duration: 3,
			Start: "2026-03-09", Finish: "2026-03-11",
			LateStart: "2026-03-12", LateFinish: "2026-03-16",
			TotalFloat: 3, Critical: false,
		},
	}

	out := datesTable(rows)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), out)
	}

	for _, col := range []string{"ID", "ACTIVITY", "START", "FINISH", "LATE-START", "LATE-FIN", "FLOAT", "CRIT"} {
		if !strings.Contains(lines[0], col) {
			t.Errorf("header missing %q: %q", col, lines[0])
		}
	}

	if !strings.HasSuffix(lines[1], "*") {
		t.Errorf("critical row not marked: %q", lines[1])
	}
	if !strings.Contains(lines[1], "2026-03-02") {
		t.Errorf("critical row missing start date: %q", lines[1])
	}
	if strings.HasSuffix(lines[2], "*") {
		t.Errorf("non-critical row marked critical: %q", lines[2])
	}
	if !strings.Contains(lines[2], "...") {
		t.Errorf("long name not truncated: %q", lines[2])
	}
}
