// Package einsum evaluates Einstein-summation expressions over dense
// tensors, planning an efficient pairwise contraction order first.
//
// It is the outer surface around the path package:
//
//   - Subscript parsing — "ea,fb,abcd,gc,hd->efgh" style notation with
//     ellipsis expansion ("...ab,ab->...") and implicit outputs (labels
//     occurring exactly once survive, in sorted order).
//
//   - Shape inference — label sizes are read off the operand shapes and
//     checked for consistency across operands; this is the validated
//     SizeMap the planner relies on.
//
//   - Planning — delegated to path.Plan: greedy by default, exhaustive on
//     request, or a caller-supplied explicit path.
//
//   - Execution — each planned instruction contracts two (or, for a
//     fallback step, several) operands: a tensordot fast path lowers
//     eligible two-operand steps onto a gonum matrix multiply (GEMM), and
//     a general indexed-summation loop covers everything else, including
//     single-operand reductions and transposes.
//
//   - Reporting — ContractPath renders the classic per-step scaling table
//     without executing anything.
//
// Evaluating a chained expression through intermediate arrays can reduce
// the computational scaling dramatically compared with a single naive
// summation: the package exists to make that reduction automatic.
//
// Repeated labels within one operand term (diagonals, traces) are not
// supported and are rejected at parse time.
package einsum
