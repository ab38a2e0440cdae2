// Package path — the contraction reducer shared by both search strategies
// and the materializer.
//
// The reducer encodes the core semantic rule of Einstein summation: a
// label is summed away by a step exactly when nothing outside the
// contracted group — neither another live operand nor the requested
// output — still needs it.
package path

import "sort"

// Reduce computes the outcome of contracting the descriptors at the given
// positions of the live sequence.
//
// Semantics:
//   - Contracted = union of the selected descriptors.
//   - Surviving  = Contracted ∩ (output ∪ union of non-selected descriptors).
//   - Removed    = Contracted − Surviving.
//   - Remaining  = non-selected descriptors in original relative order,
//     with Surviving appended as a new descriptor.
//
// Deterministic, pure and total: identical arguments always yield an
// identical StepResult, Surviving ∪ Removed == Contracted with empty
// intersection, and no failure mode exists. Label slices in the result are
// sorted ascending; the appended descriptor uses that same order.
//
// Complexity: O(total labels) time and space.
func Reduce(group Group, remaining []Operand, output []Label) StepResult {
	selected := make(map[int]struct{}, len(group))
	for _, p := range group {
		selected[p] = struct{}{}
	}

	var (
		contracted = make(map[Label]struct{})
		needed     = make(map[Label]struct{}, len(output))
		rest       = make([]Operand, 0, len(remaining)-len(selected)+1)
	)
	for _, l := range output {
		needed[l] = struct{}{}
	}
	for pos, op := range remaining {
		if _, ok := selected[pos]; ok {
			for _, l := range op {
				contracted[l] = struct{}{}
			}
			continue
		}
		rest = append(rest, op)
		for _, l := range op {
			needed[l] = struct{}{}
		}
	}

	res := StepResult{
		Surviving:  make([]Label, 0, len(contracted)),
		Removed:    make([]Label, 0, len(contracted)),
		Contracted: make([]Label, 0, len(contracted)),
	}
	for l := range contracted {
		res.Contracted = append(res.Contracted, l)
		if _, ok := needed[l]; ok {
			res.Surviving = append(res.Surviving, l)
		} else {
			res.Removed = append(res.Removed, l)
		}
	}
	sortLabels(res.Surviving)
	sortLabels(res.Removed)
	sortLabels(res.Contracted)

	res.Remaining = append(rest, Operand(res.Surviving))

	return res
}

// sortLabels orders a label slice ascending, in place.
func sortLabels(ls []Label) {
	sort.Slice(ls, func(i, j int) bool { return ls[i] < ls[j] })
}

// contractionPair is the bitset hot-path variant of Reduce for a pair
// (i, j), i < j. It computes only the three label sets; the updated live
// sequence is built separately (applyPair) once the step is known to be
// memory-feasible, so pruned branches allocate nothing.
//
// Complexity: O(len(remaining)), no allocations.
func contractionPair(i, j int, remaining []labelSet, output labelSet) (surviving, removed, contracted labelSet) {
	contracted = remaining[i].union(remaining[j])
	needed := output
	for pos, s := range remaining {
		if pos == i || pos == j {
			continue
		}
		needed = needed.union(s)
	}
	surviving = needed.intersect(contracted)
	removed = contracted.minus(surviving)

	return surviving, removed, contracted
}

// contractionGroup generalizes contractionPair to an arbitrary position
// set, used by the materializer and the full-group fallback step.
// Positions must be distinct and in range (validated by the caller).
func contractionGroup(group Group, remaining []labelSet, output labelSet) (surviving, removed, contracted labelSet) {
	sel := make([]bool, len(remaining))
	for _, p := range group {
		sel[p] = true
	}

	needed := output
	for pos, s := range remaining {
		if sel[pos] {
			contracted = contracted.union(s)
			continue
		}
		needed = needed.union(s)
	}
	surviving = needed.intersect(contracted)
	removed = contracted.minus(surviving)

	return surviving, removed, contracted
}

// applyPair produces the next live sequence after contracting (i, j):
// the non-selected sets in original order with surviving appended. The
// input slice is never mutated; each step owns a fresh snapshot.
func applyPair(i, j int, remaining []labelSet, surviving labelSet) []labelSet {
	next := make([]labelSet, 0, len(remaining)-1)
	for pos, s := range remaining {
		if pos == i || pos == j {
			continue
		}
		next = append(next, s)
	}

	return append(next, surviving)
}

// applyGroup is the group-wise twin of applyPair.
func applyGroup(group Group, remaining []labelSet, surviving labelSet) []labelSet {
	sel := make([]bool, len(remaining))
	for _, p := range group {
		sel[p] = true
	}

	next := make([]labelSet, 0, len(remaining)-len(group)+1)
	for pos, s := range remaining {
		if sel[pos] {
			continue
		}
		next = append(next, s)
	}

	return append(next, surviving)
}
