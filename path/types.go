// Package path - core types, options and sentinel errors for contraction
// planning.
//
// Design principles (shared by every file in this package):
//   - Deterministic: stable tie-breaking, no time-based randomness.
//   - Strict sentinels: only errors declared here; no fmt.Errorf where a
//     sentinel suffices.
//   - Hot-path discipline: label sets are single-word bitsets; candidate
//     snapshots are transferred forward, never mutated in place.
package path

import "errors"

// Sentinel errors returned by the planners.
var (
	// ErrNoOperands indicates that an empty operand sequence was supplied.
	ErrNoOperands = errors.New("path: operand list is empty")

	// ErrLabelOverflow indicates that the combined label universe of the
	// operands and output exceeds the bitset capacity (64 symbols).
	ErrLabelOverflow = errors.New("path: label universe exceeds 64 symbols")

	// ErrBadSize indicates a non-positive dimension size in the size map.
	ErrBadSize = errors.New("path: dimension sizes must be positive")

	// ErrUnknownLabel indicates an operand or output label that the size
	// map does not cover.
	ErrUnknownLabel = errors.New("path: label missing from size map")

	// ErrUnknownStrategy indicates a strategy selector this engine does
	// not implement. Fatal for the call; nothing is searched.
	ErrUnknownStrategy = errors.New("path: unknown search strategy")

	// ErrPathLength indicates an explicit path whose steps do not reduce
	// the operand sequence to exactly one result.
	ErrPathLength = errors.New("path: explicit path does not reduce operands to a single result")

	// ErrPathPosition indicates an explicit path step with repeated or
	// out-of-range operand positions.
	ErrPathPosition = errors.New("path: explicit path references an invalid operand position")

	// ErrPathResult indicates an explicit path whose final surviving label
	// set differs from the requested output.
	ErrPathResult = errors.New("path: explicit path result does not match the requested output")
)

// Label identifies one tensor axis, shared across every operand that uses it.
type Label rune

// SizeMap maps each axis label to its positive dimension size.
//
// The planner treats the map as already validated by the caller: one size
// per label, consistent across the operands that use it. Violations yield
// undefined cost estimates, not errors.
type SizeMap map[Label]int64

// Operand lists the axis labels of one live tensor in axis order.
// The planner works with the underlying label set; the order is kept only
// so materialized instructions can address concrete axes.
type Operand []Label

// Group is a set of positions into the current live operand sequence,
// chosen to be contracted together in one step. Positions must be distinct
// and valid for the sequence state at that step.
type Group []int

// Path is an ordered sequence of Groups. Applying every step in order,
// each referencing the live sequence as it stands after prior steps, must
// reduce the sequence to a single descriptor matching the output labels.
type Path []Group

// StepResult reports the outcome of contracting one Group: which labels
// survive the step, which are summed away, the full contracted label set,
// and the updated live sequence (non-selected descriptors in original
// relative order with the surviving descriptor appended).
type StepResult struct {
	Surviving  []Label
	Removed    []Label
	Contracted []Label
	Remaining  []Operand
}

// Instruction describes one executable contraction step.
type Instruction struct {
	// Positions are the consumed positions into the live sequence at the
	// time of the step, sorted descending so removal never invalidates an
	// earlier index.
	Positions []int

	// Inputs holds the ordered axis labels of each consumed operand, in
	// Positions order.
	Inputs [][]Label

	// Result is the axis ordering of the step's surviving descriptor:
	// ascending dimension size (ties by label) for intermediate steps,
	// the declared output order for the final step.
	Result []Label

	// Remaining snapshots the live descriptor sequence after the step.
	Remaining [][]Label
}

// PlanResult bundles the chosen path with its materialized instructions.
type PlanResult struct {
	Path         Path
	Instructions []Instruction
}

// Strategy selects the path-search algorithm.
type Strategy int

const (
	// Opportunistic is the greedy polynomial search; the default.
	Opportunistic Strategy = iota

	// Optimal is the exhaustive search with memory-ceiling pruning.
	// Exponential in operand count; intended for small N.
	Optimal
)

// DefaultRemovalCostFactor is the weight applied to a step's cost when the
// step sums labels away, accounting for both the elementwise combination
// and the subsequent reduction pass. It is a tunable heuristic, not a law;
// override via Options.RemovalCostFactor.
const DefaultRemovalCostFactor = 2

// Options configures Plan and the individual searches.
//
// MemoryLimit        – maximum element count for any intermediate result.
//
//	0 (or negative) means the default: the maximum
//	element count among the operands and the output.
//
// RemovalCostFactor  – step-cost multiplier when labels are summed away.
//
//	0 (or negative) means DefaultRemovalCostFactor.
//
// Workers            – >1 enables bounded parallel candidate expansion in
//
//	SearchOptimal; selection stays deterministic.
//
// FixedPath          – explicit caller-supplied path; bypasses search
//
//	entirely and is validated during materialization.
type Options struct {
	Strategy          Strategy
	MemoryLimit       int64
	RemovalCostFactor int64
	Workers           int
	FixedPath         Path
}

// DefaultOptions returns Options initialized with planner defaults:
// opportunistic strategy, derived memory ceiling, removal factor 2,
// single-threaded search, no fixed path.
func DefaultOptions() Options {
	return Options{
		Strategy:          Opportunistic,
		MemoryLimit:       0,
		RemovalCostFactor: DefaultRemovalCostFactor,
		Workers:           1,
	}
}
