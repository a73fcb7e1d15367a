package cpm

import (
	"errors"
	"fmt"

	"github.com/Haston00/DABO/internal/activity"
)

// Sentinel errors returned by Compute.
var (
	// ErrValidation indicates the activity set failed structural validation.
	ErrValidation = errors.New("activity validation failed")
	// ErrCycle indicates a circular dependency among activities.
	ErrCycle = errors.New("cyclic dependency detected")
	// ErrNegativeFloat indicates the passes produced a negative total float.
	// Validated acyclic input cannot do that, so it means an engine defect
	// and is surfaced rather than clamped.
	ErrNegativeFloat = errors.New("negative total float")
)

// ValidationFailure carries every structural finding from a rejected
// compute, so callers can surface the full list at once instead of
// fixing one problem per run.
type ValidationFailure struct {
	Errs []activity.ValidationError
}

// Error summarizes the failure; individual findings are in Errs.
func (e *ValidationFailure) Error() string {
	if len(e.Errs) == 1 {
		return ErrValidation.Error() + ": " + e.Errs[0].Error()
	}
	return fmt.Sprintf("%s: %d problems", ErrValidation, len(e.Errs))
}

// Unwrap lets errors.Is(err, ErrValidation) match.
func (e *ValidationFailure) Unwrap() error {
	return ErrValidation
}
