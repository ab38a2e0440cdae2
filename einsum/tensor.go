// Package einsum - dense row-major tensor.
//
// Tensor is the minimal value type the evaluator needs: a shape, derived
// strides and a flat float64 backing slice. There are no views; transpose
// copies. Rank-0 tensors are scalars with exactly one element.
package einsum

import "fmt"

// Tensor is a dense, row-major multi-dimensional array of float64.
type Tensor struct {
	shape  []int
	stride []int
	data   []float64
}

// New returns a zero-filled tensor of the given shape. An empty shape
// produces a scalar. Any non-positive dimension yields ErrBadShape.
//
// Complexity: O(∏ shape).
func New(shape ...int) (*Tensor, error) {
	n, err := elementCount(shape)
	if err != nil {
		return nil, err
	}

	return &Tensor{
		shape:  append([]int(nil), shape...),
		stride: strides(shape),
		data:   make([]float64, n),
	}, nil
}

// FromData wraps an existing flat slice as a tensor of the given shape.
// The slice is used directly, not copied; its length must equal the
// shape's element count.
//
// Complexity: O(rank).
func FromData(data []float64, shape ...int) (*Tensor, error) {
	n, err := elementCount(shape)
	if err != nil {
		return nil, err
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w: have %d elements, shape wants %d", ErrDataLength, len(data), n)
	}

	return &Tensor{
		shape:  append([]int(nil), shape...),
		stride: strides(shape),
		data:   data,
	}, nil
}

// Rank returns the number of axes; 0 for a scalar.
func (t *Tensor) Rank() int { return len(t.shape) }

// Shape returns a copy of the tensor's dimensions.
func (t *Tensor) Shape() []int { return append([]int(nil), t.shape...) }

// Size returns the total element count.
func (t *Tensor) Size() int { return len(t.data) }

// Data returns the flat row-major backing slice. The slice is live:
// mutating it mutates the tensor.
func (t *Tensor) Data() []float64 { return t.data }

// At returns the element at the given multi-index. The index length must
// equal the rank and every coordinate must lie inside the shape.
//
// Complexity: O(rank).
func (t *Tensor) At(idx ...int) (float64, error) {
	off, err := t.offsetChecked(idx)
	if err != nil {
		return 0, err
	}

	return t.data[off], nil
}

// Set stores v at the given multi-index, with the same bounds rules as At.
//
// Complexity: O(rank).
func (t *Tensor) Set(v float64, idx ...int) error {
	off, err := t.offsetChecked(idx)
	if err != nil {
		return err
	}
	t.data[off] = v

	return nil
}

// Transpose returns a fresh tensor with axes reordered so that output
// axis k is input axis perm[k]. perm must be a permutation of the rank.
//
// Complexity: O(size · rank).
func (t *Tensor) Transpose(perm ...int) (*Tensor, error) {
	if len(perm) != len(t.shape) {
		return nil, fmt.Errorf("%w: got %d axes for rank %d", ErrBadIndex, len(perm), len(t.shape))
	}
	seen := make([]bool, len(perm))
	for _, ax := range perm {
		if ax < 0 || ax >= len(perm) || seen[ax] {
			return nil, fmt.Errorf("%w: %v is not a permutation", ErrBadIndex, perm)
		}
		seen[ax] = true
	}

	return t.transpose(perm), nil
}

// Reshape returns a tensor of the given shape sharing this tensor's
// backing data; the element counts must match. Both tensors see writes
// through either.
//
// Complexity: O(rank).
func (t *Tensor) Reshape(shape ...int) (*Tensor, error) {
	return FromData(t.data, shape...)
}

// clone returns a deep copy.
func (t *Tensor) clone() *Tensor {
	return &Tensor{
		shape:  append([]int(nil), t.shape...),
		stride: append([]int(nil), t.stride...),
		data:   append([]float64(nil), t.data...),
	}
}

// transpose returns a fresh row-major tensor with axes reordered so that
// output axis k is input axis perm[k]. perm must be a permutation of the
// rank; the caller guarantees this on the hot path.
//
// Complexity: O(size · rank).
func (t *Tensor) transpose(perm []int) *Tensor {
	rank := len(t.shape)
	outShape := make([]int, rank)
	srcStride := make([]int, rank)
	for k, ax := range perm {
		outShape[k] = t.shape[ax]
		srcStride[k] = t.stride[ax]
	}

	out := &Tensor{
		shape:  outShape,
		stride: strides(outShape),
		data:   make([]float64, len(t.data)),
	}

	idx := make([]int, rank)
	src := 0
	for dst := range out.data {
		out.data[dst] = t.data[src]

		// Odometer step over the output index, tracking the source offset.
		for k := rank - 1; k >= 0; k-- {
			idx[k]++
			src += srcStride[k]
			if idx[k] < outShape[k] {
				break
			}
			idx[k] = 0
			src -= outShape[k] * srcStride[k]
		}
	}

	return out
}

// offsetChecked converts a multi-index to a flat offset, validating rank
// and bounds.
func (t *Tensor) offsetChecked(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("%w: got %d indices for rank %d", ErrBadIndex, len(idx), len(t.shape))
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			return 0, fmt.Errorf("%w: axis %d index %d, size %d", ErrBadIndex, k, i, t.shape[k])
		}
		off += i * t.stride[k]
	}

	return off, nil
}

// strides computes row-major strides for a shape.
func strides(shape []int) []int {
	s := make([]int, len(shape))
	acc := 1
	for k := len(shape) - 1; k >= 0; k-- {
		s[k] = acc
		acc *= shape[k]
	}

	return s
}

// elementCount validates a shape and returns its total element count.
func elementCount(shape []int) (int, error) {
	n := 1
	for k, d := range shape {
		if d <= 0 {
			return 0, fmt.Errorf("%w: axis %d has size %d", ErrBadShape, k, d)
		}
		n *= d
	}

	return n, nil
}
