package path_test

import (
	"github.com/katalvlaran/einplan/path"
)

// pathCost replays a path with the public Reduce/EstimateSize primitives
// and returns its cumulative cost under the default removal factor, plus
// whether every step respected the memory ceiling.
func pathCost(p path.Path, operands []path.Operand, output []path.Label, sizes path.SizeMap, memory int64) (int64, bool) {
	var (
		remaining = operands
		total     int64
	)
	for _, g := range p {
		res := path.Reduce(g, remaining, output)
		if path.EstimateSize(res.Surviving, sizes) > memory {
			return 0, false
		}
		cost := path.EstimateSize(res.Contracted, sizes)
		if len(res.Removed) > 0 {
			cost *= path.DefaultRemovalCostFactor
		}
		total += cost
		remaining = res.Remaining
	}

	return total, true
}

// bruteMinCost exhaustively enumerates every complete pairwise contraction
// order and returns the minimal cumulative cost among the memory-feasible
// ones. ok is false when no complete pairwise path is feasible.
func bruteMinCost(operands []path.Operand, output []path.Label, sizes path.SizeMap, memory int64) (int64, bool) {
	var (
		best  int64
		found bool
	)
	var walk func(remaining []path.Operand, cost int64)
	walk = func(remaining []path.Operand, cost int64) {
		if len(remaining) == 1 {
			if !found || cost < best {
				best, found = cost, true
			}

			return
		}
		for i := 0; i < len(remaining)-1; i++ {
			for j := i + 1; j < len(remaining); j++ {
				res := path.Reduce(path.Group{i, j}, remaining, output)
				if path.EstimateSize(res.Surviving, sizes) > memory {
					continue
				}
				step := path.EstimateSize(res.Contracted, sizes)
				if len(res.Removed) > 0 {
					step *= path.DefaultRemovalCostFactor
				}
				walk(res.Remaining, cost+step)
			}
		}
	}
	walk(operands, 0)

	return best, found
}

// fourCycle is the symmetric full-reduction instance used across tests:
// operands {a,c},{a,b},{b,d},{c,d}, empty output, every size equal.
func fourCycle(size int64) ([]path.Operand, []path.Label, path.SizeMap) {
	operands := []path.Operand{{'a', 'c'}, {'a', 'b'}, {'b', 'd'}, {'c', 'd'}}
	sizes := path.SizeMap{'a': size, 'b': size, 'c': size, 'd': size}

	return operands, nil, sizes
}
