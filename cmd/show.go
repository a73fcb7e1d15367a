package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Haston00/DABO/internal/calendar"
	"github.com/Haston00/DABO/internal/config"
	"github.com/Haston00/DABO/internal/cpm"
	"github.com/Haston00/DABO/internal/export"
	"github.com/Haston00/DABO/internal/plan"
	"github.com/Haston00/DABO/internal/ui"
	"github.com/Haston00/DABO/internal/wbs"
)

var showCmd = &cobra.Command{
	Use:   "show [plan]",
	Short: "Display the computed schedule as a table, Gantt chart, or breakdown",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Bool("gantt", false, "render an ASCII Gantt chart instead of the table")
	showCmd.Flags().Bool("waves", false, "group activities that can run in parallel")
	showCmd.Flags().Bool("wbs", false, "show the work breakdown by CSI division")
	showCmd.Flags().Bool("dates", false, "show calendar dates instead of day offsets")
	showCmd.Flags().Int("width", 100, "output width for the Gantt chart")
	showCmd.Flags().Bool("no-color", false, "disable ANSI colors")
	showCmd.Flags().String("start", "", "override the project start date (YYYY-MM-DD)")
	showCmd.Flags().String("weekends", "", "override weekend handling: skip or work")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	printer := ui.New()

	cfg, path, p, err := loadPlan(cmd, args)
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	acts := p.Activities()
	res, err := cpm.Compute(acts)
	if err != nil {
		return reportComputeError(printer, path, acts, err)
	}

	project := projectName(p, cfg)
	names := make(map[string]string, len(acts))
	for _, a := range acts {
		names[a.ID] = a.Name
	}
	critical := make(map[string]bool, len(res.CriticalPath))
	for _, id := range res.CriticalPath {
		critical[id] = true
	}

	width, _ := cmd.Flags().GetInt("width")
	noColor, _ := cmd.Flags().GetBool("no-color")
	renderer := &ui.GanttRenderer{Width: width, UseColor: !noColor, Critical: critical}

	switch {
	case flagBool(cmd, "wbs"):
		fmt.Fprintln(cmd.OutOrStdout(), wbs.Text(wbs.Build(acts, project)))
	case flagBool(cmd, "waves"):
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderWaves(res, names))
	case flagBool(cmd, "gantt"):
		fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(acts, res))
	case flagBool(cmd, "dates"):
		cal, err := calendarFor(cmd, p, cfg)
		if err != nil {
			printer.Error(err.Error())
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), datesTable(export.Rows(acts, res, cal)))
	default:
		fmt.Fprintln(cmd.OutOrStdout(), ui.Table(acts, res))
	}

	printer.Summary(project, cpm.Summarize(acts, res))
	return nil
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

// calendarFor builds the date calendar for a plan, letting flags
// override the plan file and the plan file override config.
func calendarFor(cmd *cobra.Command, p *plan.Plan, cfg config.Config) (calendar.Calendar, error) {
	fallback := time.Now()
	if cfg.StartDate != "" {
		t, err := time.Parse("2006-01-02", cfg.StartDate)
		if err != nil {
			return calendar.Calendar{}, fmt.Errorf("invalid start_date in config: %w", err)
		}
		fallback = t
	}

	cal, err := p.Calendar(fallback)
	if err != nil {
		return calendar.Calendar{}, err
	}
	// Plans that say nothing about weekends inherit the configured mode.
	if p.Project.Weekends == "" && cfg.Weekends == "work" {
		cal.SkipWeekends = false
	}

	if s, _ := cmd.Flags().GetString("start"); s != "" {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			return calendar.Calendar{}, fmt.Errorf("invalid --start %q: %w", s, err)
		}
		cal.Start = t
	}
	if w, _ := cmd.Flags().GetString("weekends"); w != "" {
		switch w {
		case "skip":
			cal.SkipWeekends = true
		case "work":
			cal.SkipWeekends = false
		default:
			return calendar.Calendar{}, fmt.Errorf("invalid --weekends %q (use skip or work)", w)
		}
	}
	return cal, nil
}

// datesTable renders export rows as a fixed-width table with calendar
// dates in place of day offsets.
func datesTable(rows []export.Row) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-32s %4s %-10s %-10s %-10s %-10s %6s  %s\n",
		"ID", "ACTIVITY", "DUR", "START", "FINISH", "LATE-START", "LATE-FIN", "FLOAT", "CRIT")
	for _, r := range rows {
		name := r.Name
		if runes := []rune(name); len(runes) > 32 {
			name = string(runes[:29]) + "..."
		}
		crit := ""
		if r.Critical {
			crit = "*"
		}
		fmt.Fprintf(&b, "%-8s %-32s %4d %-10s %-10s %-10s %-10s %6d  %s\n",
			r.ID, name, r.Duration, r.Start, r.Finish, r.LateStart, r.LateFinish, r.TotalFloat, crit)
	}
	return strings.TrimRight(b.String(), "\n")
}
