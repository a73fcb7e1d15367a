package activity

import "fmt"

// Validate checks a set of activities for structural correctness:
// non-empty unique IDs, non-negative durations, predecessor
// references that resolve, recognized relationship types, no
// self-references. Every failure is reported; callers always get the
// full list, never just the first.
//
// Validate does not check for cycles. DetectCycles owns that, so a
// caller can distinguish structural problems from circularity.
func Validate(acts []Activity) []ValidationError {
	var errs []ValidationError

	ids := make(map[string]bool, len(acts))
	for _, a := range acts {
		if a.ID == "" {
			errs = append(errs, ValidationError{
				Category: ValCatMissingID,
				Field:    "id",
				Err:      fmt.Errorf("%w (name %q)", ErrMissingID, a.Name),
			})
			continue
		}
		if ids[a.ID] {
			errs = append(errs, ValidationError{
				Category:   ValCatDuplicateID,
				ActivityID: a.ID,
				Field:      "id",
				Err:        fmt.Errorf("%w: %q", ErrDuplicateID, a.ID),
			})
		}
		ids[a.ID] = true
	}

	for _, a := range acts {
		if a.ID == "" {
			continue
		}
		if a.Duration < 0 {
			errs = append(errs, ValidationError{
				Category:   ValCatNegativeDuration,
				ActivityID: a.ID,
				Field:      "duration",
				Err:        fmt.Errorf("%w: %d", ErrNegativeDuration, a.Duration),
			})
		}
		// The three reference checks are independent: one bad entry
		// can report more than one problem.
		for _, p := range a.Predecessors {
			if !ids[p.ActivityID] {
				errs = append(errs, ValidationError{
					Category:   ValCatUnknownPredecessor,
					ActivityID: a.ID,
					Field:      "predecessors",
					Err:        fmt.Errorf("%w %q", ErrUnknownPredecessor, p.ActivityID),
				})
			}
			if p.ActivityID == a.ID {
				errs = append(errs, ValidationError{
					Category:   ValCatSelfReference,
					ActivityID: a.ID,
					Field:      "predecessors",
					Err:        ErrSelfReference,
				})
			}
			if !ValidRelations[p.Relation] {
				errs = append(errs, ValidationError{
					Category:   ValCatInvalidRelation,
					ActivityID: a.ID,
					Field:      "predecessors",
					Err:        fmt.Errorf("%w %q on predecessor %q", ErrInvalidRelation, p.Relation, p.ActivityID),
				})
			}
		}
	}

	return errs
}

// DetectCycles reports whether the predecessor graph contains a
// directed cycle. A self-referencing activity counts as a cycle.
// Edges are walked from activity to predecessor; a cycle reads the
// same in either direction.
func DetectCycles(acts []Activity) bool {
	adj := make(map[string][]string, len(acts))
	for _, a := range acts {
		for _, p := range a.Predecessors {
			adj[a.ID] = append(adj[a.ID], p.ActivityID)
		}
	}

	const (
		unvisited = 0
		visiting  = 1
		visited   = 2
	)
	state := make(map[string]int, len(acts))

	var dfs func(id string) bool
	dfs = func(id string) bool {
		state[id] = visiting
		for _, next := range adj[id] {
			switch state[next] {
			case visiting:
				return true
			case unvisited:
				if dfs(next) {
					return true
				}
			}
		}
		state[id] = visited
		return false
	}

	for _, a := range acts {
		if state[a.ID] == unvisited {
			if dfs(a.ID) {
				return true
			}
		}
	}
	return false
}
