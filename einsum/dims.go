// Package einsum - label-size inference.
package einsum

import (
	"fmt"

	"github.com/katalvlaran/einplan/path"
)

// dimensions binds every label of the expanded expression to a dimension
// size taken from the operand shapes, rejecting rank mismatches and
// conflicting bindings. The resulting map is the validated SizeMap the
// planner consumes.
//
// Complexity: O(rank sum).
func dimensions(inputs []string, operands []*Tensor) (path.SizeMap, error) {
	sizes := make(path.SizeMap)
	for tnum, term := range inputs {
		labels := []rune(term)
		shape := operands[tnum].shape
		if len(labels) != len(shape) {
			return nil, fmt.Errorf("%w: term %q vs rank %d (operand %d)", ErrRankMismatch, term, len(shape), tnum)
		}
		for ax, r := range labels {
			l := path.Label(r)
			d := int64(shape[ax])
			if prev, ok := sizes[l]; ok && prev != d {
				return nil, fmt.Errorf("%w: %q is %d and %d", ErrSizeConflict, r, prev, d)
			}
			sizes[l] = d
		}
	}

	return sizes, nil
}

// equalDims reports elementwise equality of two dimension slices.
func equalDims(a, b []int) bool {
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
