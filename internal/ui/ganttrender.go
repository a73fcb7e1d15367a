package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Haston00/DABO/internal/activity"
	"github.com/Haston00/DABO/internal/ansi"
	"github.com/Haston00/DABO/internal/cpm"
)

// GanttRenderer draws a computed schedule as an ASCII Gantt chart,
// one row per activity in dependency order, bars positioned by early
// start and finish. It also renders the compact wave view used when
// row-level detail is too much.
type GanttRenderer struct {
	// Width is the total output width in columns. 0 defaults to 80.
	Width int

	// UseColor enables ANSI colors: critical bars red, others blue.
	UseColor bool

	// Critical marks activity IDs on the critical path. In no-color
	// mode these rows get a trailing "*" instead.
	Critical map[string]bool
}

const (
	defaultWidth = 80
	maxLabelLen  = 28
	axisTickCols = 10
)

// Render returns the Gantt chart for a computed result. Empty input
// renders to an empty string.
func (r *GanttRenderer) Render(acts []activity.Activity, res *cpm.Result) string {
	if res == nil || len(res.Order) == 0 {
		return ""
	}

	width := r.Width
	if width <= 0 {
		width = defaultWidth
	}

	byID := activity.Index(acts)

	// Label column: "ID name", truncated so the chart keeps room.
	labels := make(map[string]string, len(res.Order))
	labelW := 0
	for _, id := range res.Order {
		label := id
		if a, ok := byID[id]; ok && a.Name != "" {
			label = id + " " + a.Name
		}
		if runes := []rune(label); len(runes) > maxLabelLen {
			label = string(runes[:maxLabelLen-1]) + "…"
		}
		labels[id] = label
		if n := len([]rune(label)); n > labelW {
			labelW = n
		}
	}

	chartW := width - labelW - 2
	if chartW < 10 {
		chartW = 10
	}

	// Scale: whole days per column, at least one.
	daysPerCol := 1
	if res.ProjectFinish > chartW {
		daysPerCol = (res.ProjectFinish + chartW - 1) / chartW
	}

	var sb strings.Builder
	sb.WriteString(r.axisLine(labelW, chartW, daysPerCol))
	sb.WriteByte('\n')

	for _, id := range res.Order {
		a, ok := byID[id]
		if !ok {
			continue
		}
		t := res.ByID[id]

		startCol := t.EarlyStart / daysPerCol
		if startCol < 0 {
			startCol = 0
		}
		if startCol > chartW-1 {
			startCol = chartW - 1
		}
		endCol := t.EarlyFinish / daysPerCol

		var bar string
		if a.Milestone() {
			bar = "◆"
		} else {
			n := endCol - startCol
			if n < 1 {
				n = 1
			}
			if startCol+n > chartW {
				n = chartW - startCol
			}
			bar = strings.Repeat("█", n)
		}

		label := labels[id]
		pad := strings.Repeat(" ", labelW-len([]rune(label)))
		sb.WriteString(label + pad + " │" + strings.Repeat(" ", startCol))
		sb.WriteString(r.colorizeBar(bar, id))
		if !r.UseColor && r.Critical[id] {
			sb.WriteString(" *")
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(r.legend(daysPerCol))
	return sb.String()
}

// axisLine writes day numbers above the chart, one tick every ten
// columns.
func (r *GanttRenderer) axisLine(labelW, chartW, daysPerCol int) string {
	row := make([]byte, chartW)
	for i := range row {
		row[i] = ' '
	}
	for col := 0; col < chartW; col += axisTickCols {
		num := strconv.Itoa(col * daysPerCol)
		if col+len(num) > chartW {
			break
		}
		copy(row[col:], num)
	}
	line := strings.Repeat(" ", labelW) + "  " + strings.TrimRight(string(row), " ")
	return r.applyColor(line, ansi.Dim)
}

func (r *GanttRenderer) legend(daysPerCol int) string {
	crit := "* critical"
	if r.UseColor {
		crit = ansi.Bold + ansi.Red + "█" + ansi.Reset + " critical"
	}
	line := fmt.Sprintf("█ activity   ◆ milestone   %s   1 col = %d day(s)", crit, daysPerCol)
	return r.applyColor(line, ansi.Dim)
}

// colorizeBar wraps a bar in ANSI codes: bold red on the critical
// path, blue otherwise.
func (r *GanttRenderer) colorizeBar(bar, id string) string {
	if !r.UseColor {
		return bar
	}
	prefix := ansi.Blue
	if r.Critical[id] {
		prefix = ansi.Bold + ansi.Red
	}
	return prefix + bar + ansi.Reset
}

// RenderWaves returns the compact view: activities grouped by shared
// early start, everything in one wave able to run in parallel.
func (r *GanttRenderer) RenderWaves(res *cpm.Result, names map[string]string) string {
	if res == nil || len(res.Waves) == 0 {
		return ""
	}

	var sb strings.Builder
	for wi, w := range res.Waves {
		if wi > 0 {
			sb.WriteByte('\n')
		}
		label := r.applyColor(fmt.Sprintf("Wave %d (day %d): ", wi+1, w.Start), ansi.Dim)
		sb.WriteString(label)

		// Continuation lines align under the label in either color mode.
		indent := strings.Repeat(" ", ansi.VisibleLen(label))
		for ni, id := range w.ActivityIDs {
			if ni > 0 {
				sb.WriteString(indent)
			}
			title := names[id]
			if title == "" {
				title = id
			}
			sb.WriteString(r.compactNode(title, id))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// compactNode renders a single activity in compact form: [title].
func (r *GanttRenderer) compactNode(title, id string) string {
	text := "[" + title + "]"
	if !r.UseColor {
		if r.Critical[id] {
			return text + "*"
		}
		return text
	}
	prefix := ansi.Blue
	if r.Critical[id] {
		prefix = ansi.Bold + ansi.Red
	}
	return prefix + text + ansi.Reset
}

// applyColor wraps text with the given ANSI code if UseColor is true.
func (r *GanttRenderer) applyColor(text, code string) string {
	if !r.UseColor {
		return text
	}
	return code + text + ansi.Reset
}
