// Package path - unified dispatcher for contraction-path planning.
//
// Plan is the canonical entry point: it derives the default memory
// ceiling, applies the original shortcuts for one and two operands, routes
// to the requested search strategy (or a caller-supplied explicit path),
// and materializes the winning path into executable instructions.
//
// Design principles:
//   - Deterministic: identical inputs yield identical plans.
//   - Strict sentinels: only errors from types.go.
//   - No state survives the call; each invocation owns its own candidates.
package path

import (
	"context"
	"errors"
)

// Plan computes and materializes a contraction plan for the operands.
//
// Dispatch rules:
//   - opts.FixedPath bypasses search entirely; it is validated during
//     materialization and rejected with the ErrPath* sentinels if malformed.
//   - One operand: an empty path when the operand's axis order already
//     equals the output (identity — zero instructions), otherwise a single
//     {0} reduction step.
//   - Two operands: the single step {0, 1}; no search needed.
//   - Otherwise the strategy selector routes to SearchOpportunistic
//     (default) or SearchOptimal; any other value fails fast with
//     ErrUnknownStrategy.
//
// The memory ceiling defaults to the maximum element count among the
// operands and the output; the opportunistic search additionally clamps a
// caller-supplied ceiling down to that default. When SearchOptimal is
// aborted by ctx between levels (deadline or cancellation), Plan falls
// back to the opportunistic result instead of failing.
//
// Complexity: per chosen strategy (see optimal.go / opportunistic.go),
// plus O(steps · operands) materialization.
func Plan(ctx context.Context, operands []Operand, output []Label, sizes SizeMap, opts Options) (PlanResult, error) {
	if len(operands) == 0 {
		return PlanResult{}, ErrNoOperands
	}
	u, err := newUniverse(operands, output, sizes)
	if err != nil {
		return PlanResult{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// Default ceiling: the largest element count among operands and output.
	defaultMem := u.sizeOf(u.set(output))
	for _, op := range operands {
		if s := u.sizeOf(u.set(op)); s > defaultMem {
			defaultMem = s
		}
	}
	mem := opts.MemoryLimit
	if mem <= 0 {
		mem = defaultMem
	}

	var p Path
	switch {
	case opts.FixedPath != nil:
		p = opts.FixedPath

	case len(operands) == 1:
		if labelsEqual(operands[0], output) {
			p = Path{}
		} else {
			p = Path{Group{0}}
		}

	case len(operands) == 2:
		p = Path{Group{0, 1}}

	default:
		switch opts.Strategy {
		case Opportunistic:
			p, err = SearchOpportunistic(operands, output, sizes, min(mem, defaultMem))

		case Optimal:
			p, err = SearchOptimal(ctx, operands, output, sizes, mem, opts)
			if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
				// Aborted between levels: degrade to the greedy result.
				p, err = SearchOpportunistic(operands, output, sizes, min(mem, defaultMem))
			}

		default:
			return PlanResult{}, ErrUnknownStrategy
		}
		if err != nil {
			return PlanResult{}, err
		}
	}

	instrs, err := Materialize(p, operands, output, sizes)
	if err != nil {
		return PlanResult{}, err
	}

	return PlanResult{Path: p, Instructions: instrs}, nil
}

// labelsEqual reports elementwise equality of an operand's axis order and
// the declared output order.
func labelsEqual(a Operand, b []Label) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if a[k] != b[k] {
			return false
		}
	}

	return true
}
