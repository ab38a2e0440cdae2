// Package einsum - public evaluation entry points.
//
// Contract is the canonical call: parse, infer sizes, plan through the
// path package, then execute the plan instruction by instruction.
// ContractPath stops after planning and renders the per-step report
// instead, so callers can inspect an order before paying for it.
package einsum

import (
	"context"
	"fmt"

	"github.com/katalvlaran/einplan/path"
)

// Contract evaluates an Einstein-summation expression over the operands
// and returns the result tensor.
//
// A nil opts means DefaultOptions. The zero-instruction identity plan
// (one operand whose axes already match the output) returns a copy, never
// an alias of the input.
//
// Complexity: planning per the chosen strategy, execution O(∏ sizes of
// each step's contracted labels) summed over the steps.
func Contract(subscripts string, operands []*Tensor, opts *Options) (*Tensor, error) {
	_, sizes, res, o, err := planFor(subscripts, operands, opts)
	if err != nil {
		return nil, err
	}

	return executePlan(res.Instructions, operands, sizes, o.UseGEMM)
}

// ContractPath plans the expression without executing it, returning the
// chosen contraction order and a human-readable per-step report.
//
// Complexity: planning per the chosen strategy; the report is O(steps).
func ContractPath(subscripts string, operands []*Tensor, opts *Options) (path.Path, string, error) {
	expr, sizes, res, o, err := planFor(subscripts, operands, opts)
	if err != nil {
		return nil, "", err
	}

	return res.Path, renderReport(expr, res, sizes, o.UseGEMM), nil
}

// planFor runs the shared front half: validation, parsing, size inference
// and path planning.
func planFor(subscripts string, operands []*Tensor, opts *Options) (expression, path.SizeMap, path.PlanResult, Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	if len(operands) == 0 {
		return expression{}, nil, path.PlanResult{}, o, ErrNoOperands
	}
	shapes := make([][]int, len(operands))
	for k, t := range operands {
		if t == nil {
			return expression{}, nil, path.PlanResult{}, o, fmt.Errorf("%w: operand %d", ErrNilOperand, k)
		}
		shapes[k] = t.shape
	}

	expr, err := parse(subscripts, shapes)
	if err != nil {
		return expression{}, nil, path.PlanResult{}, o, err
	}
	sizes, err := dimensions(expr.inputs, operands)
	if err != nil {
		return expression{}, nil, path.PlanResult{}, o, err
	}

	popts := path.DefaultOptions()
	popts.Strategy = o.Strategy
	popts.MemoryLimit = o.Memory
	popts.Workers = o.Workers
	popts.FixedPath = o.CustomPath

	res, err := path.Plan(context.Background(), termOperands(expr.inputs), termLabels(expr.output), sizes, popts)
	if err != nil {
		return expression{}, nil, path.PlanResult{}, o, err
	}

	return expr, sizes, res, o, nil
}

// termOperands converts expanded input terms to planner operands.
func termOperands(inputs []string) []path.Operand {
	ops := make([]path.Operand, len(inputs))
	for k, term := range inputs {
		ops[k] = path.Operand(termLabels(term))
	}

	return ops
}

// termLabels converts one term to a label slice.
func termLabels(term string) []path.Label {
	labels := make([]path.Label, 0, len(term))
	for _, r := range term {
		labels = append(labels, path.Label(r))
	}

	return labels
}

// termString renders a label slice back to subscript notation.
func termString(labels []path.Label) string {
	rs := make([]rune, len(labels))
	for k, l := range labels {
		rs[k] = rune(l)
	}

	return string(rs)
}
