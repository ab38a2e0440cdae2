package einsum_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/einplan/einsum"
	"github.com/stretchr/testify/require"
)

// naiveContract evaluates an already-expanded expression by brute force
// through the public tensor API: one loop over the full joint index space,
// no planning, no pairwise steps. It is the independent oracle the
// Contract tests compare against.
func naiveContract(t *testing.T, inputs []string, output string, ops []*einsum.Tensor) *einsum.Tensor {
	t.Helper()

	// Bind every label to its dimension from the operand shapes.
	dims := make(map[rune]int)
	for k, term := range inputs {
		shape := ops[k].Shape()
		require.Len(t, shape, len(term))
		for ax, r := range term {
			dims[r] = shape[ax]
		}
	}

	// Joint loop order: output labels first, then the rest sorted.
	order := []rune(output)
	inOut := make(map[rune]bool)
	for _, r := range order {
		inOut[r] = true
	}
	var rest []rune
	for r := range dims {
		if !inOut[r] {
			rest = append(rest, r)
		}
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i] < rest[j] })
	order = append(order, rest...)

	outShape := make([]int, len(output))
	for k, r := range output {
		outShape[k] = dims[r]
	}
	out, err := einsum.New(outShape...)
	require.NoError(t, err)

	value := make(map[rune]int, len(order))
	var walk func(depth int)
	walk = func(depth int) {
		if depth == len(order) {
			v := 1.0
			for k, term := range inputs {
				idx := make([]int, len(term))
				for ax, r := range term {
					idx[ax] = value[r]
				}
				e, err := ops[k].At(idx...)
				require.NoError(t, err)
				v *= e
			}
			outIdx := make([]int, len(output))
			for k, r := range output {
				outIdx[k] = value[r]
			}
			cur, err := out.At(outIdx...)
			require.NoError(t, err)
			require.NoError(t, out.Set(cur+v, outIdx...))

			return
		}
		r := order[depth]
		for i := 0; i < dims[r]; i++ {
			value[r] = i
			walk(depth + 1)
		}
	}
	walk(0)

	return out
}

// sequentialTensor builds a tensor filled with 1, 2, 3, … in row-major
// order, deterministic and free of accidental symmetry.
func sequentialTensor(t *testing.T, shape ...int) *einsum.Tensor {
	t.Helper()

	n := 1
	for _, d := range shape {
		n *= d
	}
	data := make([]float64, n)
	for i := range data {
		data[i] = float64(i + 1)
	}
	tt, err := einsum.FromData(data, shape...)
	require.NoError(t, err)

	return tt
}
