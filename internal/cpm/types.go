package cpm

import "github.com/Haston00/DABO/internal/activity"

// Times holds the computed schedule values for one activity, in
// working days from project start. Start values are day offsets
// (day 0 = project start); finishes are exclusive, so
// EarlyFinish = EarlyStart + duration and a zero-duration milestone
// starts and finishes on the same offset.
type Times struct {
	EarlyStart  int  `json:"early_start"`
	EarlyFinish int  `json:"early_finish"`
	LateStart   int  `json:"late_start"`
	LateFinish  int  `json:"late_finish"`
	TotalFloat  int  `json:"total_float"`
	Critical    bool `json:"critical"`
}

// Wave groups activities that share an early start: everything in one
// wave can be in progress at the same time.
type Wave struct {
	Start       int      `json:"start"`
	ActivityIDs []string `json:"activity_ids"`
}

// Result is the complete outcome of a compute run. Input activities
// are never mutated; every derived value lives here, keyed by
// activity ID, so the same input slice can be recomputed freely.
type Result struct {
	ByID          map[string]Times `json:"by_id"`
	Order         []string         `json:"order"`
	ProjectFinish int              `json:"project_finish"`
	CriticalPath  []string         `json:"critical_path"`
	Waves         []Wave           `json:"waves,omitempty"`
}

// CriticalActivities resolves the critical path IDs back to their
// activities, preserving path order.
func (r *Result) CriticalActivities(acts []activity.Activity) []activity.Activity {
	byID := activity.Index(acts)
	out := make([]activity.Activity, 0, len(r.CriticalPath))
	for _, id := range r.CriticalPath {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out
}

// Summary condenses a run for display and history.
type Summary struct {
	Activities  int `json:"activities"`
	Critical    int `json:"critical"`
	Milestones  int `json:"milestones"`
	ProjectDays int `json:"project_days"`
}

// Summarize builds the run summary for an activity set and its result.
func Summarize(acts []activity.Activity, res *Result) Summary {
	s := Summary{
		Activities:  len(acts),
		Critical:    len(res.CriticalPath),
		ProjectDays: res.ProjectFinish,
	}
	for _, a := range acts {
		if a.Milestone() {
			s.Milestones++
		}
	}
	return s
}
