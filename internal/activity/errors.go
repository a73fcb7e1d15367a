package activity

import "errors"

// Sentinel errors for activity validation.
var (
	// ErrMissingID indicates an activity has an empty ID.
	ErrMissingID = errors.New("activity ID missing")
	// ErrDuplicateID indicates two or more activities share the same ID.
	ErrDuplicateID = errors.New("duplicate activity ID")
	// ErrUnknownPredecessor indicates a predecessor entry names an activity that does not exist.
	ErrUnknownPredecessor = errors.New("references nonexistent predecessor")
	// ErrSelfReference indicates an activity lists itself as a predecessor.
	ErrSelfReference = errors.New("references itself")
	// ErrInvalidRelation indicates a predecessor entry carries an unrecognized relationship type.
	ErrInvalidRelation = errors.New("invalid relationship type")
	// ErrNegativeDuration indicates an activity duration is below zero.
	ErrNegativeDuration = errors.New("negative duration")
)

// ValidationCategory classifies a validation error for programmatic handling.
type ValidationCategory string

const (
	// ValCatMissingID indicates a required activity ID is empty.
	ValCatMissingID ValidationCategory = "missing_id"
	// ValCatDuplicateID indicates two or more activities share the same ID.
	ValCatDuplicateID ValidationCategory = "duplicate_id"
	// ValCatUnknownPredecessor indicates a dependency references a non-existent activity.
	ValCatUnknownPredecessor ValidationCategory = "unknown_predecessor"
	// ValCatSelfReference indicates an activity depends on itself.
	ValCatSelfReference ValidationCategory = "self_reference"
	// ValCatInvalidRelation indicates an unrecognized relationship type.
	ValCatInvalidRelation ValidationCategory = "invalid_relation"
	// ValCatNegativeDuration indicates a duration below zero.
	ValCatNegativeDuration ValidationCategory = "negative_duration"
)

// ValidationError records a validation problem with activity context.
type ValidationError struct {
	Category   ValidationCategory // Machine-readable category for programmatic handling
	ActivityID string
	Field      string
	Err        error
}

// Error returns a human-readable string including the activity context.
func (e *ValidationError) Error() string {
	if e.ActivityID != "" {
		return "activity " + e.ActivityID + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error for use with errors.Is/As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Messages flattens validation errors into user-facing strings.
func Messages(errs []ValidationError) []string {
	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, len(errs))
	for i := range errs {
		msgs[i] = errs[i].Error()
	}
	return msgs
}
