package path

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// pairStep is one pairwise choice (i < j) into the live sequence as it
// stood at that step's level.
type pairStep struct{ i, j int }

// candidate is one partial contraction order under exhaustive search: the
// cumulative cost so far, the chosen pair per level, and the live label
// sets after applying those pairs. Candidates own their snapshots; levels
// hand snapshots forward instead of renumbering a shared sequence.
type candidate struct {
	cost      int64
	steps     []pairStep
	remaining []labelSet
}

// SearchOptimal enumerates every pairwise contraction order of the
// operands, level by level, and returns the complete path with minimal
// cumulative cost.
//
// Algorithm:
//  1. Level 0 holds a single empty-path candidate with the full operand
//     sequence and zero cost.
//  2. At each of the (n−1) levels, every candidate is expanded by every
//     unordered pair of positions in its live sequence. A pair whose
//     surviving-label element count exceeds memoryLimit is pruned
//     silently. Feasible pairs extend the candidate with
//     stepCost = EstimateSize(contracted), multiplied by the removal
//     factor when any label is summed away.
//  3. All surviving final candidates are collected first, then the winner
//     is selected by (cumulative cost, lexicographic pair sequence) — a
//     total order, so the result is identical regardless of evaluation
//     order and of opts.Workers.
//  4. If every branch was pruned, the search degrades to a single
//     fallback step contracting all operands at once.
//
// The context is checked between levels only; a deadline or cancellation
// aborts the search with the context's error so the caller can fall back
// to the opportunistic strategy.
//
// Contracts:
//   - operands non-empty (ErrNoOperands);
//   - sizes covers every label with positive sizes (ErrUnknownLabel,
//     ErrBadSize); at most 64 distinct labels (ErrLabelOverflow).
//
// Complexity: exponential in len(operands) — usable for small N, tens of
// operands at most. No pruning beyond the memory ceiling is attempted.
func SearchOptimal(ctx context.Context, operands []Operand, output []Label, sizes SizeMap, memoryLimit int64, opts Options) (Path, error) {
	if len(operands) == 0 {
		return nil, ErrNoOperands
	}
	u, err := newUniverse(operands, output, sizes)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		n       = len(operands)
		out     = u.set(output)
		factor  = removalFactor(opts)
		current = []candidate{{remaining: setsOf(u, operands)}}
	)
	for level := 0; level < n-1; level++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		if opts.Workers > 1 {
			current, err = expandLevelParallel(ctx, current, out, u, memoryLimit, factor, opts.Workers)
			if err != nil {
				return nil, err
			}
		} else {
			current = expandLevel(current, out, u, memoryLimit, factor)
		}
	}

	// Every branch pruned: contract everything in one step.
	if len(current) == 0 {
		return Path{fullGroup(n)}, nil
	}

	// Global minimum over the collected candidates (cost, then path).
	best := &current[0]
	for k := 1; k < len(current); k++ {
		if lessCandidate(&current[k], best) {
			best = &current[k]
		}
	}

	p := make(Path, len(best.steps))
	for k, st := range best.steps {
		p[k] = Group{st.i, st.j}
	}

	return p, nil
}

// expandLevel expands every candidate of one level sequentially.
func expandLevel(current []candidate, output labelSet, u *universe, memoryLimit, factor int64) []candidate {
	var next []candidate
	for ci := range current {
		next = appendExpansions(next, &current[ci], output, u, memoryLimit, factor)
	}

	return next
}

// expandLevelParallel splits a level's candidates across a bounded worker
// pool. Each worker writes into its own slot, and slots are concatenated
// in candidate order; combined with the total-order final selection this
// keeps the result independent of scheduling.
func expandLevelParallel(ctx context.Context, current []candidate, output labelSet, u *universe, memoryLimit, factor int64, workers int) ([]candidate, error) {
	// Too few candidates to be worth the fan-out.
	if len(current) < 2*workers {
		return expandLevel(current, output, u, memoryLimit, factor), nil
	}

	var (
		per   = (len(current) + workers - 1) / workers
		parts = make([][]candidate, workers)
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for k := 0; k < workers; k++ {
		lo, hi := k*per, min((k+1)*per, len(current))
		if lo >= hi {
			break
		}
		slot := k
		g.Go(func() error {
			var local []candidate
			for ci := lo; ci < hi; ci++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				local = appendExpansions(local, &current[ci], output, u, memoryLimit, factor)
			}
			parts[slot] = local

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	next := make([]candidate, 0, total)
	for _, p := range parts {
		next = append(next, p...)
	}

	return next, nil
}

// appendExpansions emits every memory-feasible pairwise extension of c.
// Pruned pairs allocate nothing: label sets are computed first and the
// extended snapshot is built only for feasible steps.
func appendExpansions(dst []candidate, c *candidate, output labelSet, u *universe, memoryLimit, factor int64) []candidate {
	m := len(c.remaining)
	for i := 0; i < m-1; i++ {
		for j := i + 1; j < m; j++ {
			surviving, removed, contracted := contractionPair(i, j, c.remaining, output)
			if u.sizeOf(surviving) > memoryLimit {
				continue
			}

			steps := make([]pairStep, len(c.steps)+1)
			copy(steps, c.steps)
			steps[len(c.steps)] = pairStep{i: i, j: j}

			dst = append(dst, candidate{
				cost:      c.cost + u.stepCost(contracted, removed, factor),
				steps:     steps,
				remaining: applyPair(i, j, c.remaining, surviving),
			})
		}
	}

	return dst
}

// lessCandidate is the total order used for final selection: cumulative
// cost first, then the lexicographically smallest pair sequence. Complete
// candidates always carry equally long step slices.
func lessCandidate(a, b *candidate) bool {
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	for k := range a.steps {
		if a.steps[k].i != b.steps[k].i {
			return a.steps[k].i < b.steps[k].i
		}
		if a.steps[k].j != b.steps[k].j {
			return a.steps[k].j < b.steps[k].j
		}
	}

	return false
}

// fullGroup returns the fallback group {0, 1, …, n−1}.
func fullGroup(n int) Group {
	g := make(Group, n)
	for k := range g {
		g[k] = k
	}

	return g
}
