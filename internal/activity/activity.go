// Package activity defines the schedule activity model: the input
// records the CPM engine computes over, their dependency relations,
// and structural validation of a full activity set.
package activity

// Relation classifies how a predecessor constrains its successor.
type Relation string

const (
	// FinishToStart: successor may start once the predecessor finishes.
	FinishToStart Relation = "FS"
	// StartToStart: successor may start once the predecessor starts.
	StartToStart Relation = "SS"
	// FinishToFinish: successor may finish once the predecessor finishes.
	FinishToFinish Relation = "FF"
	// StartToFinish: successor may finish once the predecessor starts.
	StartToFinish Relation = "SF"
)

// ValidRelations is the closed set of recognized relation codes.
// Anything outside it is rejected at validation, never defaulted.
var ValidRelations = map[Relation]bool{
	FinishToStart:  true,
	StartToStart:   true,
	FinishToFinish: true,
	StartToFinish:  true,
}

// Predecessor is one dependency edge. The owning activity is
// constrained relative to the activity named by ActivityID, according
// to Relation, offset by Lag working days. Lag may be negative (a
// lead).
type Predecessor struct {
	ActivityID string   `json:"activity_id"`
	Relation   Relation `json:"relation"`
	Lag        int      `json:"lag"`
}

// Activity is one schedulable unit of work. It is a pure input
// record: computed times live in a separate result keyed by ID, so
// the same slice can be recomputed any number of times without
// mutation.
type Activity struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	WBS          string        `json:"wbs,omitempty"`
	Duration     int           `json:"duration"`
	Predecessors []Predecessor `json:"predecessors,omitempty"`
	IsMilestone  bool          `json:"milestone,omitempty"`
}

// Milestone reports whether a is a zero-duration marker, either
// declared or implied by a zero duration.
func (a Activity) Milestone() bool {
	return a.IsMilestone || a.Duration == 0
}

// IDs returns the activity IDs in input order.
func IDs(acts []Activity) []string {
	ids := make([]string, len(acts))
	for i, a := range acts {
		ids[i] = a.ID
	}
	return ids
}

// Index builds an ID → activity lookup. Later duplicates win; Validate
// reports duplicates, so a validated set is unambiguous.
func Index(acts []Activity) map[string]Activity {
	byID := make(map[string]Activity, len(acts))
	for _, a := range acts {
		byID[a.ID] = a
	}
	return byID
}
