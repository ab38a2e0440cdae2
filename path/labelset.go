package path

import (
	"math/bits"
	"sort"
)

// labelSet is a fixed-capacity bitset over one invocation's label universe.
// Bit i corresponds to universe.labels[i]. Label universes are tens of
// symbols, so a single machine word turns every union/intersection of the
// search's inner loops into one instruction and removes hashing entirely.
type labelSet uint64

// has reports whether bit b is set.
func (s labelSet) has(b uint) bool { return s&(1<<b) != 0 }

// union returns s ∪ o.
func (s labelSet) union(o labelSet) labelSet { return s | o }

// intersect returns s ∩ o.
func (s labelSet) intersect(o labelSet) labelSet { return s & o }

// minus returns s − o.
func (s labelSet) minus(o labelSet) labelSet { return s &^ o }

// empty reports whether no bit is set.
func (s labelSet) empty() bool { return s == 0 }

// count returns the number of set bits.
func (s labelSet) count() int { return bits.OnesCount64(uint64(s)) }

// universe assigns a stable bit index to every label of one invocation and
// caches the per-label dimension sizes. Bits are assigned in ascending
// label order, so identical inputs always produce identical bit layouts.
//
// A universe lives for exactly one planning call; there is no state shared
// across calls.
type universe struct {
	labels []Label        // bit -> label, ascending
	index  map[Label]uint // label -> bit
	size   []int64        // bit -> dimension size (1 when sizes == nil)
}

// newUniverse collects every label used by the operands and the output,
// assigns bit indices, and resolves sizes.
//
// Contracts:
//   - at most 64 distinct labels (ErrLabelOverflow otherwise);
//   - when sizes != nil it must cover every label (ErrUnknownLabel) with a
//     positive size (ErrBadSize); sizes == nil yields unit sizes and is
//     used where only set algebra matters.
//
// Complexity: O(L log L) for L distinct labels.
func newUniverse(operands []Operand, output []Label, sizes SizeMap) (*universe, error) {
	seen := make(map[Label]struct{})
	for _, op := range operands {
		for _, l := range op {
			seen[l] = struct{}{}
		}
	}
	for _, l := range output {
		seen[l] = struct{}{}
	}
	if len(seen) > 64 {
		return nil, ErrLabelOverflow
	}

	u := &universe{
		labels: make([]Label, 0, len(seen)),
		index:  make(map[Label]uint, len(seen)),
		size:   make([]int64, len(seen)),
	}
	for l := range seen {
		u.labels = append(u.labels, l)
	}
	sort.Slice(u.labels, func(i, j int) bool { return u.labels[i] < u.labels[j] })

	var (
		b  uint
		l  Label
		sz int64
		ok bool
	)
	for b = 0; b < uint(len(u.labels)); b++ {
		l = u.labels[b]
		u.index[l] = b
		if sizes == nil {
			u.size[b] = 1
			continue
		}
		if sz, ok = sizes[l]; !ok {
			return nil, ErrUnknownLabel
		}
		if sz <= 0 {
			return nil, ErrBadSize
		}
		u.size[b] = sz
	}

	return u, nil
}

// set converts an ordered label slice into its bitset.
func (u *universe) set(labels []Label) labelSet {
	var s labelSet
	for _, l := range labels {
		s |= 1 << u.index[l]
	}

	return s
}

// setsOf converts the operand sequence into its bitset form.
func setsOf(u *universe, operands []Operand) []labelSet {
	sets := make([]labelSet, len(operands))
	for k, op := range operands {
		sets[k] = u.set(op)
	}

	return sets
}

// labelsOf expands a bitset back into ascending label order.
func (u *universe) labelsOf(s labelSet) []Label {
	out := make([]Label, 0, s.count())
	for b := uint(0); b < uint(len(u.labels)); b++ {
		if s.has(b) {
			out = append(out, u.labels[b])
		}
	}

	return out
}
