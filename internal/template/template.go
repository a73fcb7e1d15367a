// Package template generates standard commercial construction
// activity lists from project parameters. Durations come from
// production rates per 1000 SF by building type, with fixed durations
// for work that does not scale, story scaling for structure and MEP,
// and scope-specific adjustments for renovation and tenant fit-out.
package template

import (
	"math"

	"github.com/Haston00/DABO/internal/activity"
)

// Project scopes.
const (
	ScopeNewConstruction   = "new_construction"
	ScopeRenovation        = "renovation"
	ScopeTenantImprovement = "tenant_improvement"
)

// Scopes lists the recognized scope values.
var Scopes = []string{ScopeNewConstruction, ScopeRenovation, ScopeTenantImprovement}

// BuildingTypes lists the building types with calibrated production
// rates. Anything else prices at office rates.
var BuildingTypes = []string{"office", "retail", "warehouse", "medical", "education", "mixed_use"}

// Params describes the project the activity list is generated for.
type Params struct {
	BuildingType string
	SquareFeet   int
	Stories      int
	Scope        string
}

// Build generates a complete activity list with durations and
// predecessor logic for the given parameters. Unknown scopes fall
// back to new construction.
func Build(p Params) []activity.Activity {
	scope := p.Scope
	switch scope {
	case ScopeNewConstruction, ScopeRenovation, ScopeTenantImprovement:
	default:
		scope = ScopeNewConstruction
	}

	rows := templateFor(scope)
	acts := make([]activity.Activity, 0, len(rows))
	for _, r := range rows {
		d := calcDuration(r.id, p.BuildingType, p.SquareFeet, scope)
		if p.Stories > 1 && storyScale[r.id] {
			d = int(float64(d) * (1 + 0.4*float64(p.Stories-1)))
		}

		var preds []activity.Predecessor
		if len(r.preds) > 0 {
			preds = make([]activity.Predecessor, len(r.preds))
			copy(preds, r.preds)
		}

		acts = append(acts, activity.Activity{
			ID:           r.id,
			Name:         r.name,
			WBS:          r.wbs,
			Duration:     d,
			Predecessors: preds,
			IsMilestone:  milestones[r.id] || (r.milestone && d == 0),
		})
	}
	return acts
}

func templateFor(scope string) []row {
	switch scope {
	case ScopeRenovation:
		return renovation
	case ScopeTenantImprovement:
		return tenantImprovement
	default:
		return newConstruction
	}
}

// calcDuration resolves one activity's duration in working days.
func calcDuration(id, buildingType string, squareFeet int, scope string) int {
	rateCode := rateMap[id]

	// Milestones are zero days unless a fixed duration backs them
	// (inspections and the CO process take real time).
	if milestones[id] {
		if d, ok := fixedDurations[rateCode]; ok {
			return d
		}
		return 0
	}

	if d, ok := renoFixed[rateCode]; ok {
		return d
	}
	if rate, ok := renoRates[rateCode]; ok {
		return scaledDays(rate, squareFeet)
	}
	if id == "R0050" {
		return 5
	}

	if rateCode != "" {
		d := rateDuration(rateCode, buildingType, squareFeet)
		// Fit-out inside a finished shell runs faster.
		if scope == ScopeTenantImprovement && d > 2 {
			if d = int(math.Round(float64(d) * 0.80)); d < 2 {
				d = 2
			}
		}
		// Existing conditions slow MEP and finishes down.
		if scope == ScopeRenovation && renoPenalty[id] {
			d = int(math.Round(float64(d) * 1.15))
		}
		return d
	}

	return 5
}
