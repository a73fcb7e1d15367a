package cpm

import (
	"sort"

	"github.com/Haston00/DABO/internal/activity"
)

// buildSuccessors derives the forward adjacency from predecessor
// declarations: for every predecessor entry of a naming p, a's ID
// appears in p's successor list exactly once. Activities are scanned
// in input order, so rebuilding from the same slice yields identical
// lists. Predecessor IDs that do not resolve are skipped here;
// validation owns reporting them.
func buildSuccessors(acts []activity.Activity) map[string][]string {
	ids := make(map[string]bool, len(acts))
	for _, a := range acts {
		ids[a.ID] = true
	}

	succ := make(map[string][]string, len(acts))
	seen := make(map[[2]string]bool)
	for _, a := range acts {
		for _, p := range a.Predecessors {
			if !ids[p.ActivityID] {
				continue
			}
			key := [2]string{p.ActivityID, a.ID}
			if seen[key] {
				continue
			}
			seen[key] = true
			succ[p.ActivityID] = append(succ[p.ActivityID], a.ID)
		}
	}
	return succ
}

// sequence orders activities so every predecessor comes before its
// successors, using Kahn's algorithm with a FIFO queue seeded in
// input order. Ties resolve to input order, never to map iteration,
// so identical input always yields the identical sequence. In-degree
// is derived from the deduplicated successor adjacency so it stays
// consistent with the decrements below. If a cycle leaves part of the
// graph unreached, the leftovers are appended at the end in input
// order so no activity is dropped.
func sequence(acts []activity.Activity, successors map[string][]string) []string {
	indegree := make(map[string]int, len(acts))
	for _, a := range acts {
		indegree[a.ID] = 0
	}
	for _, next := range successors {
		for _, id := range next {
			indegree[id]++
		}
	}

	queue := make([]string, 0, len(acts))
	for _, a := range acts {
		if indegree[a.ID] == 0 {
			queue = append(queue, a.ID)
		}
	}

	order := make([]string, 0, len(acts))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		order = append(order, id)
		for _, next := range successors[id] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) < len(acts) {
		placed := make(map[string]bool, len(order))
		for _, id := range order {
			placed[id] = true
		}
		for _, a := range acts {
			if !placed[a.ID] {
				order = append(order, a.ID)
			}
		}
	}
	return order
}

// computeWaves buckets activities by early start, ascending. Within a
// wave, activities keep their sequence order.
func computeWaves(order []string, times map[string]Times) []Wave {
	if len(order) == 0 {
		return nil
	}
	buckets := make(map[int][]string)
	starts := make([]int, 0)
	for _, id := range order {
		es := times[id].EarlyStart
		if _, ok := buckets[es]; !ok {
			starts = append(starts, es)
		}
		buckets[es] = append(buckets[es], id)
	}
	sort.Ints(starts)

	waves := make([]Wave, 0, len(starts))
	for _, es := range starts {
		waves = append(waves, Wave{Start: es, ActivityIDs: buckets[es]})
	}
	return waves
}
