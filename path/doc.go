// Package path provides contraction-path planners for multi-operand
// Einstein-summation expressions.
//
// Given N labeled operands and a set of output labels, the package decides
// which operands to combine first so that total work and peak intermediate
// memory stay small: naive left-to-right evaluation of a multi-tensor
// contraction can be asymptotically far more expensive than a well-ordered
// sequence of pairwise contractions.
//
// It includes two search strategies over a shared cost model:
//
//   - SearchOptimal — exhaustive level-by-level enumeration of every
//     pairwise contraction order, pruned only by a memory ceiling.
//
//   - Complexity: exponential in operand count (usable for small N,
//     tens of operands at most)
//
//   - Guarantee: minimal cumulative cost among all feasible paths
//
//   - SearchOpportunistic — greedy, one decision per step, preferring the
//     pair that eliminates the most summed-away element volume.
//
//   - Complexity: O(steps · pairs) — polynomial, the default strategy
//
//   - Guarantee: feasible, not necessarily optimal
//
// Both strategies share three pure primitives:
//   - EstimateSize — element count of a tensor indexed by a label set.
//   - Reduce — which labels survive a contraction step and which are
//     summed away (a label is summed away exactly when nothing outside
//     the contracted group still needs it).
//   - Materialize — turns an abstract path into an ordered sequence of
//     executable contraction instructions.
//
// Plan is the unified dispatcher: it derives the default memory ceiling,
// routes to the requested strategy (or an explicit caller-supplied path),
// and materializes the winning path. When the exhaustive search is aborted
// by a context deadline between levels, Plan falls back to the
// opportunistic result.
//
// A step that would exceed the memory ceiling is pruned silently; when no
// feasible complete path exists, both strategies degrade to a single
// fallback step contracting every remaining operand at once. Unknown
// strategies and malformed explicit paths fail fast with strict sentinels.
//
// Use this package when you need a deterministic, allocation-conscious
// contraction planner with no I/O and no persistent state across calls.
package path
