// Package ui renders scheduler output for the terminal: a stderr
// Printer for status chrome and string renderers (schedule table,
// Gantt chart, wave view) for the deliverable views.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/Haston00/DABO/internal/activity"
	"github.com/Haston00/DABO/internal/ansi"
	"github.com/Haston00/DABO/internal/cpm"
)

// Local aliases keep format strings readable.
const (
	reset  = ansi.Reset
	bold   = ansi.Bold
	dim    = ansi.Dim
	blue   = ansi.Blue
	yellow = ansi.Yellow
	green  = ansi.Green
	red    = ansi.Red
	cyan   = ansi.Cyan
)

// Printer writes human-facing status output to stderr, keeping stdout
// clean for machine-readable output (JSON, CSV, rendered views).
type Printer struct{}

func New() *Printer {
	return &Printer{}
}

func (p *Printer) Banner() {
	fmt.Fprintln(os.Stderr, bold+cyan+"  ╔════════════════════════════════════╗"+reset)
	fmt.Fprintln(os.Stderr, bold+cyan+"  ║"+reset+bold+"   DABO  "+dim+"construction CPM scheduler"+reset+bold+cyan+" ║"+reset)
	fmt.Fprintln(os.Stderr, bold+cyan+"  ╚════════════════════════════════════╝"+reset)
	fmt.Fprintln(os.Stderr)
}

func (p *Printer) Error(msg string) {
	fmt.Fprintf(os.Stderr, red+bold+"error: "+reset+"%s\n", msg)
}

func (p *Printer) Info(msg string) {
	fmt.Fprintf(os.Stderr, dim+"%s"+reset+"\n", msg)
}

// ValidateResult prints the validation outcome for a plan.
func (p *Printer) ValidateResult(name string, activityCount int, problems []string) {
	if len(problems) == 0 {
		fmt.Fprintf(os.Stderr, green+bold+"✓ plan %q"+reset+" — %d activities, no errors\n", name, activityCount)
		return
	}
	fmt.Fprintf(os.Stderr, red+bold+"✗ plan %q"+reset+" — %d error(s):\n", name, len(problems))
	for _, msg := range problems {
		fmt.Fprintf(os.Stderr, "  "+red+"• "+reset+"%s\n", msg)
	}
}

// Summary prints a structured block after a compute run.
func (p *Printer) Summary(project string, s cpm.Summary) {
	fmt.Fprintf(os.Stderr, "\n"+dim+"┌─ "+reset+bold+"%s"+reset+dim+" ─────────────────"+reset+"\n", project)
	fmt.Fprintf(os.Stderr, dim+"│"+reset+"  activities: %d (%d milestones)\n", s.Activities, s.Milestones)
	fmt.Fprintf(os.Stderr, dim+"│"+reset+"  critical:   %d\n", s.Critical)
	fmt.Fprintf(os.Stderr, dim+"│"+reset+"  duration:   "+bold+"%d working days"+reset+"\n", s.ProjectDays)
	fmt.Fprintln(os.Stderr, dim+"└──────────────────────────────────────────"+reset)
}

// CriticalPath prints the zero-float chain, one activity per line.
func (p *Printer) CriticalPath(ids []string, names map[string]string) {
	if len(ids) == 0 {
		fmt.Fprintln(os.Stderr, dim+"  (no critical path)"+reset)
		return
	}
	fmt.Fprintf(os.Stderr, "\n"+bold+red+"critical path"+reset+dim+" (%d activities):"+reset+"\n", len(ids))
	for _, id := range ids {
		name := names[id]
		if name == "" {
			name = id
		}
		fmt.Fprintf(os.Stderr, "  "+red+"▪ %-8s"+reset+" %s\n", id, name)
	}
}

func (p *Printer) Exported(path string, rows int) {
	fmt.Fprintf(os.Stderr, green+"◆ exported"+reset+" %s "+dim+"(%d rows)"+reset+"\n", path, rows)
}

func (p *Printer) RunLogged(id string) {
	fmt.Fprintf(os.Stderr, dim+"run logged: %s"+reset+"\n", id)
}

func (p *Printer) WatchStarted(path string) {
	fmt.Fprintf(os.Stderr, cyan+"◆ watching"+reset+" %s "+dim+"(ctrl-c to stop)"+reset+"\n", path)
}

// Reloaded prints a one-line recompute notice during watch mode.
func (p *Printer) Reloaded(name string, s cpm.Summary) {
	fmt.Fprintf(os.Stderr, green+"↻ %s"+reset+" — %d activities, %d critical, "+bold+"%d days"+reset+"\n",
		name, s.Activities, s.Critical, s.ProjectDays)
}

func (p *Printer) ReloadFailed(err error) {
	fmt.Fprintf(os.Stderr, yellow+"⚠ reload failed"+reset+" — %v\n", err)
}

// Table renders the per-activity schedule as a fixed-width text table,
// rows in dependency order. Exported as a plain string builder so it
// can go to stdout or into tests unchanged.
func Table(acts []activity.Activity, res *cpm.Result) string {
	byID := activity.Index(acts)

	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %-32s %4s %5s %5s %5s %5s %6s  %s\n",
		"ID", "ACTIVITY", "DUR", "ES", "EF", "LS", "LF", "FLOAT", "CRIT")
	for _, id := range res.Order {
		a, ok := byID[id]
		if !ok {
			continue
		}
		t := res.ByID[id]
		name := a.Name
		if runes := []rune(name); len(runes) > 32 {
			name = string(runes[:29]) + "..."
		}
		crit := ""
		if t.Critical {
			crit = "*"
		}
		fmt.Fprintf(&b, "%-8s %-32s %4d %5d %5d %5d %5d %6d  %s\n",
			a.ID, name, a.Duration, t.EarlyStart, t.EarlyFinish, t.LateStart, t.LateFinish, t.TotalFloat, crit)
	}
	return strings.TrimRight(b.String(), "\n")
}
