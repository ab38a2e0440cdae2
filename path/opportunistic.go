package path

// SearchOpportunistic finds a contraction path greedily: one committed
// decision per step, no backtracking.
//
// Algorithm, per step over the current live sequence:
//  1. Enumerate every unordered pair of positions; discard pairs whose
//     surviving-label element count exceeds memoryLimit.
//  2. Rank the feasible pairs by the key
//     (−EstimateSize(removed), EstimateSize(contracted)):
//     prefer the pair eliminating the most total element volume of
//     summed-away labels, break ties by lowest raw contraction cost,
//     then by lexicographically smallest pair for determinism.
//  3. Commit the top pair and hand its snapshot to the next step.
//
// If no pair is feasible at some step, a single fallback step contracting
// the entire live sequence at once is appended and the search stops.
//
// Contracts: as SearchOptimal (ErrNoOperands, ErrUnknownLabel, ErrBadSize,
// ErrLabelOverflow). The ranking never applies the removal cost factor;
// the raw contracted element count is the secondary key.
//
// Complexity: O(n³) — pairs per step × steps. This is the default
// strategy; it is polynomial and far cheaper than SearchOptimal.
func SearchOpportunistic(operands []Operand, output []Label, sizes SizeMap, memoryLimit int64) (Path, error) {
	if len(operands) == 0 {
		return nil, ErrNoOperands
	}
	u, err := newUniverse(operands, output, sizes)
	if err != nil {
		return nil, err
	}

	var (
		n         = len(operands)
		out       = u.set(output)
		remaining = setsOf(u, operands)
		p         = make(Path, 0, n-1)
	)
	for step := 0; step < n-1; step++ {
		best, ok := bestPair(remaining, out, u, memoryLimit)
		if !ok {
			// No feasible pair: contract everything that is left at once.
			return append(p, fullGroup(len(remaining))), nil
		}

		surviving, _, _ := contractionPair(best.i, best.j, remaining, out)
		remaining = applyPair(best.i, best.j, remaining, surviving)
		p = append(p, Group{best.i, best.j})
	}

	return p, nil
}

// pairRank is the greedy ranking key of one feasible pair. Lower is better
// once removed is negated, hence the explicit comparison in betterRank.
type pairRank struct {
	removed    int64 // element volume summed away (maximize)
	contracted int64 // raw step cost (minimize)
}

// bestPair scans every unordered pair of the live sequence and returns the
// top-ranked memory-feasible one. ok is false when every pair was pruned.
//
// Complexity: O(m² · m) for m live operands, no allocations.
func bestPair(remaining []labelSet, output labelSet, u *universe, memoryLimit int64) (pairStep, bool) {
	var (
		best     pairStep
		bestRank pairRank
		found    bool
		m        = len(remaining)
	)
	for i := 0; i < m-1; i++ {
		for j := i + 1; j < m; j++ {
			surviving, removed, contracted := contractionPair(i, j, remaining, output)
			if u.sizeOf(surviving) > memoryLimit {
				continue
			}

			rank := pairRank{
				removed:    u.sizeOf(removed),
				contracted: u.sizeOf(contracted),
			}
			// Pairs are generated in ascending (i, j) order, so "strictly
			// better" comparison doubles as the lexicographic tie-break.
			if !found || betterRank(rank, bestRank) {
				best, bestRank, found = pairStep{i: i, j: j}, rank, true
			}
		}
	}

	return best, found
}

// betterRank reports whether a outranks b: larger removed volume first,
// then smaller contracted cost.
func betterRank(a, b pairRank) bool {
	if a.removed != b.removed {
		return a.removed > b.removed
	}

	return a.contracted < b.contracted
}
