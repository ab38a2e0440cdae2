// Package einsum - per-step plan report.
package einsum

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/einplan/path"
)

// renderReport formats a planned contraction as the classic table: the
// full expression, its naive scaling (distinct label count), then one row
// per step with the step's scaling, whether it lowers to GEMM, the step
// expression and the remaining expression.
func renderReport(expr expression, res path.PlanResult, sizes path.SizeMap, useGEMM bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Complete contraction:  %s->%s\n", strings.Join(expr.inputs, ","), expr.output)
	fmt.Fprintf(&b, "       Naive scaling:  %d\n", len(sizes))
	b.WriteString(strings.Repeat("-", 80) + "\n")
	fmt.Fprintf(&b, "%7s %6s %26s %38s\n", "scaling", "GEMM", "current", "remaining")
	b.WriteString(strings.Repeat("-", 80))

	for _, in := range res.Instructions {
		current := stepExpression(in.Inputs, in.Result)
		remaining := stepExpression(in.Remaining, termLabels(expr.output))
		fmt.Fprintf(&b, "\n%7d %6v %26s %38s",
			distinctLabels(in.Inputs), useGEMM && gemmEligible(in.Inputs, in.Result), current, remaining)
	}

	return b.String()
}

// stepExpression renders terms->result in subscript notation.
func stepExpression(terms [][]path.Label, result []path.Label) string {
	parts := make([]string, len(terms))
	for k, term := range terms {
		parts[k] = termString(term)
	}

	return strings.Join(parts, ",") + "->" + termString(result)
}

// distinctLabels counts the unique labels across the step's inputs, the
// step's scaling exponent.
func distinctLabels(terms [][]path.Label) int {
	seen := make(map[path.Label]bool)
	for _, term := range terms {
		for _, l := range term {
			seen[l] = true
		}
	}

	return len(seen)
}
