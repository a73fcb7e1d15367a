// Package plan reads and writes schedule plan files.
//
// A plan is a single TOML document declaring project settings and the
// activity list:
//
//	[project]
//	name = "Elm Street Office"
//	start = "2026-03-02"
//	weekends = "skip"
//
//	[[activities]]
//	id = "A0100"
//	name = "Mobilization"
//	wbs = "02"
//	duration = 10
//
//	[[activities.predecessors]]
//	id = "A0010"
//	relation = "FS"
//	lag = 0
package plan

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/Haston00/DABO/internal/activity"
	"github.com/Haston00/DABO/internal/calendar"
)

// ErrNoPlan indicates the plan file does not exist.
var ErrNoPlan = errors.New("plan file not found")

// Project holds plan-level settings.
type Project struct {
	Name     string `toml:"name" json:"name"`
	Start    string `toml:"start,omitempty" json:"start,omitempty"`       // first workday, YYYY-MM-DD
	Weekends string `toml:"weekends,omitempty" json:"weekends,omitempty"` // "skip" (default) or "work"
}

// Dependency names one predecessor of an activity.
type Dependency struct {
	ID       string `toml:"id" json:"id"`
	Relation string `toml:"relation,omitempty" json:"relation,omitempty"` // FS when empty
	Lag      int    `toml:"lag,omitempty" json:"lag,omitempty"`           // workdays, negative = lead
}

// Entry is one activity row in a plan file.
type Entry struct {
	ID           string       `toml:"id" json:"id"`
	Name         string       `toml:"name,omitempty" json:"name,omitempty"`
	WBS          string       `toml:"wbs,omitempty" json:"wbs,omitempty"`
	Duration     int          `toml:"duration" json:"duration"`
	Milestone    bool         `toml:"milestone,omitempty" json:"milestone,omitempty"`
	Predecessors []Dependency `toml:"predecessors,omitempty" json:"predecessors,omitempty"`
}

// Plan is a parsed plan document. The same shape serves as the TOML file
// format and the JSON request body accepted by the HTTP API.
type Plan struct {
	Project Project `toml:"project" json:"project"`
	Entries []Entry `toml:"activities" json:"activities"`
}

// Load reads and parses a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoPlan, path)
		}
		return nil, fmt.Errorf("reading plan: %w", err)
	}

	var p Plan
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing plan: %w", err)
	}
	return &p, nil
}

// Write saves the plan atomically (write temp + rename).
func Write(path string, p *Plan) error {
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling plan: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing temp plan file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming plan file: %w", err)
	}
	return nil
}

// Activities converts the plan's entries into schedulable activities.
// Relations default to finish-to-start and are upper-cased so hand-authored
// plans may write "fs". Unrecognized relations are left for Validate to
// report.
func (p *Plan) Activities() []activity.Activity {
	acts := make([]activity.Activity, 0, len(p.Entries))
	for _, e := range p.Entries {
		a := activity.Activity{
			ID:          e.ID,
			Name:        e.Name,
			WBS:         e.WBS,
			Duration:    e.Duration,
			IsMilestone: e.Milestone || e.Duration == 0,
		}
		for _, d := range e.Predecessors {
			rel := activity.Relation(strings.ToUpper(d.Relation))
			if d.Relation == "" {
				rel = activity.FinishToStart
			}
			a.Predecessors = append(a.Predecessors, activity.Predecessor{
				ActivityID: d.ID,
				Relation:   rel,
				Lag:        d.Lag,
			})
		}
		acts = append(acts, a)
	}
	return acts
}

// FromActivities builds a plan document from an activity list, for writing
// generated templates to disk.
func FromActivities(project Project, acts []activity.Activity) *Plan {
	p := &Plan{Project: project}
	for _, a := range acts {
		e := Entry{
			ID:        a.ID,
			Name:      a.Name,
			WBS:       a.WBS,
			Duration:  a.Duration,
			Milestone: a.IsMilestone,
		}
		for _, pr := range a.Predecessors {
			e.Predecessors = append(e.Predecessors, Dependency{
				ID:       pr.ActivityID,
				Relation: string(pr.Relation),
				Lag:      pr.Lag,
			})
		}
		p.Entries = append(p.Entries, e)
	}
	return p
}

// StartDate parses the project start date, or returns fallback when the
// plan does not set one.
func (p *Plan) StartDate(fallback time.Time) (time.Time, error) {
	if p.Project.Start == "" {
		return fallback, nil
	}
	t, err := time.Parse("2006-01-02", p.Project.Start)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing project start: %w", err)
	}
	return t, nil
}

// SkipWeekends reports whether dates should land on workdays only. Any
// value other than "work" keeps the default weekend-skipping calendar.
func (p *Plan) SkipWeekends() bool {
	return p.Project.Weekends != "work"
}

// Calendar builds the date-mapping calendar for this plan.
func (p *Plan) Calendar(fallback time.Time) (calendar.Calendar, error) {
	start, err := p.StartDate(fallback)
	if err != nil {
		return calendar.Calendar{}, err
	}
	return calendar.Calendar{Start: start, SkipWeekends: p.SkipWeekends()}, nil
}
