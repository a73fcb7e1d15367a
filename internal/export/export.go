// Package export flattens computed schedules into dated rows for
// downstream tools.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Haston00/DABO/internal/activity"
	"github.com/Haston00/DABO/internal/calendar"
	"github.com/Haston00/DABO/internal/cpm"
)

// dateFormat is the ISO day layout used in exported rows.
const dateFormat = "2006-01-02"

// Row is one scheduled activity with its day offsets mapped onto
// calendar dates.
type Row struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	WBS        string `json:"wbs,omitempty"`
	Duration   int    `json:"duration"`
	Start      string `json:"start"`
	Finish     string `json:"finish"`
	LateStart  string `json:"late_start"`
	LateFinish string `json:"late_finish"`
	TotalFloat int    `json:"total_float"`
	Critical   bool   `json:"critical"`
	Milestone  bool   `json:"milestone"`
}

// Rows converts a computed schedule into dated rows, in schedule order.
func Rows(acts []activity.Activity, res *cpm.Result, cal calendar.Calendar) []Row {
	byID := activity.Index(acts)
	rows := make([]Row, 0, len(res.Order))
	for _, id := range res.Order {
		a := byID[id]
		t := res.ByID[id]
		rows = append(rows, Row{
			ID:         a.ID,
			Name:       a.Name,
			WBS:        a.WBS,
			Duration:   a.Duration,
			Start:      cal.DayToDate(t.EarlyStart).Format(dateFormat),
			Finish:     cal.DayToDate(t.EarlyFinish).Format(dateFormat),
			LateStart:  cal.DayToDate(t.LateStart).Format(dateFormat),
			LateFinish: cal.DayToDate(t.LateFinish).Format(dateFormat),
			TotalFloat: t.TotalFloat,
			Critical:   t.Critical,
			Milestone:  a.Milestone(),
		})
	}
	return rows
}

var csvHeader = []string{
	"id", "name", "wbs", "duration",
	"start", "finish", "late_start", "late_finish",
	"total_float", "critical", "milestone",
}

// WriteCSV writes rows as CSV with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("export: writing csv header: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.ID, r.Name, r.WBS,
			strconv.Itoa(r.Duration),
			r.Start, r.Finish, r.LateStart, r.LateFinish,
			strconv.Itoa(r.TotalFloat),
			strconv.FormatBool(r.Critical),
			strconv.FormatBool(r.Milestone),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: writing csv row %s: %w", r.ID, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("export: flushing csv: %w", err)
	}
	return nil
}

// WriteJSON writes rows as an indented JSON array.
func WriteJSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("export: encoding json: %w", err)
	}
	return nil
}
