// Package einsum - sentinel errors and evaluation options.
//
// Design principles (shared by every file in this package):
//   - Strict sentinels: parsing, shape and tensor errors are declared here
//     and wrapped with context where useful; callers match with errors.Is.
//   - Planning is delegated: the path package owns strategy, memory and
//     cost semantics; Options here only forwards the relevant knobs.
//   - Dense row-major float64 tensors; no views, every operation allocates
//     its result.
package einsum

import (
	"errors"

	"github.com/katalvlaran/einplan/path"
)

// Sentinel errors returned by parsing, validation and execution.
var (
	// ErrNoOperands indicates that an empty operand sequence was supplied.
	ErrNoOperands = errors.New("einsum: at least one operand is required")

	// ErrNilOperand indicates a nil tensor among the operands.
	ErrNilOperand = errors.New("einsum: operand tensor is nil")

	// ErrOperandCount indicates that the number of comma-separated terms in
	// the subscript string differs from the number of operands.
	ErrOperandCount = errors.New("einsum: subscript term count does not match operand count")

	// ErrBadSubscript indicates a structurally invalid subscript string:
	// malformed "->" separator, empty term, repeated output label, or an
	// output label absent from every input term.
	ErrBadSubscript = errors.New("einsum: invalid subscript string")

	// ErrBadSymbol indicates a character outside [A-Za-z], ',', '.' and the
	// "->" separator.
	ErrBadSymbol = errors.New("einsum: invalid symbol in subscripts")

	// ErrRepeatedLabel indicates a label occurring twice within one input
	// term; diagonal and trace extraction are not supported.
	ErrRepeatedLabel = errors.New("einsum: repeated label within one term is not supported")

	// ErrEllipsis indicates invalid ellipsis usage: a stray '.', an
	// ellipsis with an implicit output, an explicit output without one, or
	// broadcast blocks of differing shape.
	ErrEllipsis = errors.New("einsum: invalid ellipsis usage")

	// ErrRankMismatch indicates a term whose label count differs from the
	// rank of its operand.
	ErrRankMismatch = errors.New("einsum: term length does not match operand rank")

	// ErrSizeConflict indicates a label bound to two different dimension
	// sizes across the operands.
	ErrSizeConflict = errors.New("einsum: conflicting dimension sizes for a label")

	// ErrBadShape indicates a tensor shape with a non-positive dimension.
	ErrBadShape = errors.New("einsum: tensor dimensions must be positive")

	// ErrBadIndex indicates an element access outside the tensor's shape.
	ErrBadIndex = errors.New("einsum: index out of range")

	// ErrDataLength indicates backing data whose length differs from the
	// shape's element count.
	ErrDataLength = errors.New("einsum: data length does not match shape")
)

// Options configures Contract and ContractPath.
//
// Strategy   – forwarded to path.Plan (greedy by default).
//
// Memory     – maximum element count for any intermediate tensor;
//
//	0 means the planner default (largest operand or output).
//
// CustomPath – explicit contraction order; bypasses search entirely and
//
//	is validated before anything executes.
//
// Workers    – >1 enables bounded parallel candidate expansion in the
//
//	exhaustive search.
//
// UseGEMM    – lower eligible two-operand steps onto a gonum matrix
//
//	multiply instead of the general summation loop.
type Options struct {
	Strategy   path.Strategy
	Memory     int64
	CustomPath path.Path
	Workers    int
	UseGEMM    bool
}

// DefaultOptions returns Options initialized with evaluation defaults:
// opportunistic planning, derived memory ceiling, GEMM lowering enabled.
func DefaultOptions() Options {
	return Options{
		Strategy: path.Opportunistic,
		Memory:   0,
		Workers:  1,
		UseGEMM:  true,
	}
}
