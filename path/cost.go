// Package path — cost utilities shared by both search strategies.
//
// The cost model is deliberately simple: the element count of a tensor
// indexed by a label set is the product of the label sizes, and a step's
// compute cost is the element count of its full contracted label set,
// scaled by a removal factor when the step sums labels away. The same
// estimator bounds memory (applied to a prospective result's surviving
// labels) and ranks candidates (applied to contracted/removed sets).
package path

// EstimateSize returns the element count of a tensor indexed by exactly
// the given labels: the product of sizes[l] over every label, 1 for an
// empty set.
//
// Contract: sizes must cover every label in labels; an uncovered label is
// a precondition violation of the caller's own validation and yields an
// undefined (not errored) estimate. Pure, never fails.
//
// Complexity: O(len(labels)).
func EstimateSize(labels []Label, sizes SizeMap) int64 {
	prod := int64(1)
	for _, l := range labels {
		if sz, ok := sizes[l]; ok {
			prod *= sz
		}
	}

	return prod
}

// sizeOf is the bitset twin of EstimateSize, used on the search hot path.
//
// Complexity: O(universe size), no allocations.
func (u *universe) sizeOf(s labelSet) int64 {
	prod := int64(1)
	for b := uint(0); b < uint(len(u.size)); b++ {
		if s.has(b) {
			prod *= u.size[b]
		}
	}

	return prod
}

// stepCost estimates the compute cost of one contraction step: the element
// count of the full contracted label set, multiplied by factor when any
// label is summed away (one pass to combine, one to reduce).
func (u *universe) stepCost(contracted, removed labelSet, factor int64) int64 {
	cost := u.sizeOf(contracted)
	if !removed.empty() {
		cost *= factor
	}

	return cost
}

// removalFactor normalizes the configured factor: zero or negative means
// the package default.
func removalFactor(opts Options) int64 {
	if opts.RemovalCostFactor <= 0 {
		return DefaultRemovalCostFactor
	}

	return opts.RemovalCostFactor
}
