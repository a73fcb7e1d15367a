// Package cpm implements critical path method scheduling over an
// activity set: forward pass for earliest times, backward pass for
// latest times, total float, and the critical path. All arithmetic is
// in whole working days; calendar dates are applied downstream.
package cpm

import (
	"fmt"

	"github.com/Haston00/DABO/internal/activity"
)

// Compute runs the full method over the activity set: structural
// validation, cycle detection, forward pass, backward pass, float and
// critical classification. It either returns a complete result or an
// error; there is no partial output. The input slice is not mutated.
func Compute(acts []activity.Activity) (*Result, error) {
	if errs := activity.Validate(acts); len(errs) > 0 {
		return nil, &ValidationFailure{Errs: errs}
	}
	if activity.DetectCycles(acts) {
		return nil, fmt.Errorf("%w: activities cannot be ordered", ErrCycle)
	}

	byID := activity.Index(acts)
	successors := buildSuccessors(acts)
	order := sequence(acts, successors)

	times := make(map[string]Times, len(acts))

	// Forward pass, in dependency order. The early start is the max
	// over all predecessor constraints with no floor at zero: a
	// negative lead that pulls an activity before day 0 stays visible
	// instead of being silently clipped.
	for _, id := range order {
		a := byID[id]
		es := 0
		for i, p := range a.Predecessors {
			pt := times[p.ActivityID]
			var c int
			switch p.Relation {
			case activity.FinishToStart:
				c = pt.EarlyFinish + p.Lag
			case activity.StartToStart:
				c = pt.EarlyStart + p.Lag
			case activity.FinishToFinish:
				c = pt.EarlyFinish + p.Lag - a.Duration
			case activity.StartToFinish:
				c = pt.EarlyStart + p.Lag - a.Duration
			}
			if i == 0 || c > es {
				es = c
			}
		}
		times[id] = Times{EarlyStart: es, EarlyFinish: es + a.Duration}
	}

	// The single anchor for the backward pass: the project finishes
	// when the last activity finishes.
	projectFinish := 0
	for i, id := range order {
		if t := times[id]; i == 0 || t.EarlyFinish > projectFinish {
			projectFinish = t.EarlyFinish
		}
	}

	// Backward pass, in reverse dependency order. Each successor
	// constrains this activity through the successor's own predecessor
	// entry naming it; one edge per activity pair is assumed, so the
	// first matching entry wins.
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		a := byID[id]
		lf := projectFinish
		for _, sid := range successors[id] {
			s := byID[sid]
			st := times[sid]
			for _, p := range s.Predecessors {
				if p.ActivityID != id {
					continue
				}
				var c int
				switch p.Relation {
				case activity.FinishToStart:
					c = st.LateStart - p.Lag
				case activity.StartToStart:
					c = st.LateStart - p.Lag + a.Duration
				case activity.FinishToFinish:
					c = st.LateFinish - p.Lag
				case activity.StartToFinish:
					c = st.LateFinish - p.Lag + a.Duration
				}
				if c < lf {
					lf = c
				}
				break
			}
		}
		t := times[id]
		t.LateFinish = lf
		t.LateStart = lf - a.Duration
		times[id] = t
	}

	var critical []string
	for _, id := range order {
		t := times[id]
		t.TotalFloat = t.LateStart - t.EarlyStart
		t.Critical = t.TotalFloat == 0
		if t.TotalFloat < 0 {
			return nil, fmt.Errorf("%w: activity %s has float %d", ErrNegativeFloat, id, t.TotalFloat)
		}
		times[id] = t
		if t.Critical {
			critical = append(critical, id)
		}
	}

	return &Result{
		ByID:          times,
		Order:         order,
		ProjectFinish: projectFinish,
		CriticalPath:  critical,
		Waves:         computeWaves(order, times),
	}, nil
}
