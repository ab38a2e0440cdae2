// Package einsum - plan execution.
//
// Two backends cover every instruction:
//
//   - tensordot lowers an eligible two-operand step onto a single gonum
//     GEMM: permute each side so kept axes precede (or follow) the summed
//     block, view the flat data as matrices, multiply, permute back.
//     Eligible means the summed labels are exactly the shared ones.
//
//   - sumProduct is the general indexed loop: one odometer over the
//     result labels plus the summed labels, with per-operand flat offsets
//     tracked incrementally. It handles any group size, single-operand
//     reductions, transposes and steps GEMM cannot express.
package einsum

import (
	"sort"

	"github.com/katalvlaran/einplan/path"
	"gonum.org/v1/gonum/mat"
)

// executePlan applies the instructions to the operands and returns the
// final tensor. An empty instruction list is the identity plan: the single
// operand is returned as a copy.
func executePlan(instrs []path.Instruction, operands []*Tensor, sizes path.SizeMap, useGEMM bool) (*Tensor, error) {
	if len(instrs) == 0 {
		return operands[0].clone(), nil
	}

	live := append([]*Tensor(nil), operands...)
	for _, in := range instrs {
		picked := make([]*Tensor, len(in.Positions))
		for k, pos := range in.Positions { // descending, removal stays valid
			picked[k] = live[pos]
			live = append(live[:pos], live[pos+1:]...)
		}

		var (
			out *Tensor
			err error
		)
		if useGEMM && gemmEligible(in.Inputs, in.Result) {
			out, err = tensordot(picked[0], picked[1], in.Inputs[0], in.Inputs[1], in.Result)
		} else {
			out, err = sumProduct(picked, in.Inputs, in.Result, sizes)
		}
		if err != nil {
			return nil, err
		}
		live = append(live, out)
	}

	return live[0], nil
}

// gemmEligible reports whether a step is a pure tensordot: exactly two
// inputs, and a label is summed if and only if both inputs carry it.
// Batched labels (shared and surviving) or one-sided reductions fall back
// to the general loop.
func gemmEligible(terms [][]path.Label, result []path.Label) bool {
	if len(terms) != 2 {
		return false
	}
	inA := labelPresence(terms[0])
	inB := labelPresence(terms[1])
	inR := labelPresence(result)

	for l := range inA {
		if inA[l] && inB[l] == inR[l] {
			return false
		}
	}
	for l := range inB {
		if inB[l] && inA[l] == inR[l] {
			return false
		}
	}

	return true
}

// tensordot contracts two tensors over their shared labels with one GEMM,
// then permutes the product into the requested result order.
//
// Complexity: O(m·k·n) for m = kept-A block, k = shared block, n = kept-B
// block, plus the permutation copies.
func tensordot(a, b *Tensor, ta, tb, result []path.Label) (*Tensor, error) {
	inB := labelPresence(tb)

	keepA := make([]path.Label, 0, len(ta))
	shared := make([]path.Label, 0, len(ta))
	for _, l := range ta {
		if inB[l] {
			shared = append(shared, l)
		} else {
			keepA = append(keepA, l)
		}
	}
	inA := labelPresence(ta)
	keepB := make([]path.Label, 0, len(tb))
	for _, l := range tb {
		if !inA[l] {
			keepB = append(keepB, l)
		}
	}

	// Kept axes first on the left, summed block last; mirrored on the
	// right so the flat data reads as (m×k)·(k×n).
	a2 := a.transpose(axisPerm(ta, keepA, shared))
	b2 := b.transpose(axisPerm(tb, shared, keepB))

	m := prodDims(a2.shape[:len(keepA)])
	k := prodDims(a2.shape[len(keepA):])
	n := prodDims(b2.shape[len(shared):])

	var c mat.Dense
	c.Mul(mat.NewDense(m, k, a2.data), mat.NewDense(k, n, b2.data))

	kept := append(append([]path.Label(nil), keepA...), keepB...)
	shape := make([]int, 0, len(kept))
	shape = append(shape, a2.shape[:len(keepA)]...)
	shape = append(shape, b2.shape[len(shared):]...)

	out, err := FromData(c.RawMatrix().Data, shape...)
	if err != nil {
		return nil, err
	}

	// Product axes are keepA ++ keepB; reorder to the declared result.
	perm := make([]int, len(result))
	for r, l := range result {
		for ax, kl := range kept {
			if kl == l {
				perm[r] = ax
				break
			}
		}
	}

	return out.transpose(perm), nil
}

// sumProduct is the general contraction loop: for every combination of
// result and summed indices, multiply one element from each input and
// accumulate into the result cell.
//
// Complexity: O(∏ dims of result and summed labels · inputs).
func sumProduct(ins []*Tensor, terms [][]path.Label, result []path.Label, sizes path.SizeMap) (*Tensor, error) {
	counterLabels := append([]path.Label(nil), result...)
	counterLabels = append(counterLabels, summedLabels(terms, result)...)

	total := len(counterLabels)
	pos := make(map[path.Label]int, total)
	dims := make([]int, total)
	for c, l := range counterLabels {
		pos[l] = c
		dims[c] = int(sizes[l])
	}

	out, err := New(dims[:len(result)]...)
	if err != nil {
		return nil, err
	}

	// Per-counter flat-offset contribution for every input and the output.
	contrib := make([][]int, len(ins))
	for q, t := range ins {
		row := make([]int, total)
		for ax, l := range terms[q] {
			row[pos[l]] += t.stride[ax]
		}
		contrib[q] = row
	}
	outRow := make([]int, total)
	for ax := range result {
		outRow[ax] = out.stride[ax]
	}

	counters := make([]int, total)
	offs := make([]int, len(ins))
	outOff := 0
	for {
		v := 1.0
		for q, t := range ins {
			v *= t.data[offs[q]]
		}
		out.data[outOff] += v

		// Odometer step, tracking every flat offset incrementally.
		k := total - 1
		for ; k >= 0; k-- {
			counters[k]++
			for q := range offs {
				offs[q] += contrib[q][k]
			}
			outOff += outRow[k]
			if counters[k] < dims[k] {
				break
			}
			counters[k] = 0
			for q := range offs {
				offs[q] -= dims[k] * contrib[q][k]
			}
			outOff -= dims[k] * outRow[k]
		}
		if k < 0 {
			break
		}
	}

	return out, nil
}

// summedLabels returns the labels present in the terms but absent from the
// result, deduplicated and sorted.
func summedLabels(terms [][]path.Label, result []path.Label) []path.Label {
	inR := labelPresence(result)
	seen := make(map[path.Label]bool)
	var summed []path.Label
	for _, term := range terms {
		for _, l := range term {
			if !inR[l] && !seen[l] {
				seen[l] = true
				summed = append(summed, l)
			}
		}
	}
	sort.Slice(summed, func(i, j int) bool { return summed[i] < summed[j] })

	return summed
}

// axisPerm maps the concatenation of two label blocks back to their axis
// positions within term.
func axisPerm(term []path.Label, first, second []path.Label) []int {
	index := make(map[path.Label]int, len(term))
	for ax, l := range term {
		index[l] = ax
	}
	perm := make([]int, 0, len(term))
	for _, l := range first {
		perm = append(perm, index[l])
	}
	for _, l := range second {
		perm = append(perm, index[l])
	}

	return perm
}

// labelPresence builds a membership map for one term.
func labelPresence(term []path.Label) map[path.Label]bool {
	m := make(map[path.Label]bool, len(term))
	for _, l := range term {
		m[l] = true
	}

	return m
}

// prodDims multiplies a dimension block; 1 for an empty block.
func prodDims(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}

	return p
}
