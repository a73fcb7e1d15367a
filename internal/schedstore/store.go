// Package schedstore persists computed schedules.
package schedstore

import (
	"context"
	"errors"
	"time"

	"github.com/Haston00/DABO/internal/cpm"
	"github.com/Haston00/DABO/internal/plan"
)

// ErrNotFound is returned when no schedule exists for the requested id.
var ErrNotFound = errors.New("schedstore: schedule not found")

// Stored is a persisted schedule: the plan it was computed from plus the
// computed result and summary.
type Stored struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	CreatedAt time.Time   `json:"created_at"`
	Plan      *plan.Plan  `json:"plan"`
	Result    *cpm.Result `json:"result"`
	Summary   cpm.Summary `json:"summary"`
}

// Meta is the listing view of a stored schedule.
type Meta struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	CreatedAt time.Time   `json:"created_at"`
	Summary   cpm.Summary `json:"summary"`
}

// Store defines the contract for persisting and retrieving schedules.
type Store interface {
	CreateSchema(ctx context.Context) error
	SaveSchedule(ctx context.Context, s *Stored) (*Stored, error)
	GetSchedule(ctx context.Context, id string) (*Stored, error)
	ListSchedules(ctx context.Context) ([]Meta, error)
	DeleteSchedule(ctx context.Context, id string) error
}
