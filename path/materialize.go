package path

import "sort"

// Materialize turns an abstract path into an ordered sequence of concrete
// contraction instructions plus the evolving list of live operand
// descriptors, ready for execution or reporting.
//
// For each step, in order:
//   - positions are sorted descending so removal never invalidates an
//     earlier index;
//   - the surviving label set is recomputed via the reducer (idempotent:
//     it matches the value recorded during search);
//   - the result's axis ordering is ascending dimension size, ties broken
//     by label, for every step but the last; the final step is forced to
//     exactly the declared output order;
//   - the new descriptor is appended to the live sequence and the sequence
//     snapshot recorded on the instruction.
//
// The whole path is validated before any instruction is built, so a
// malformed path (wrong step count, repeated or out-of-range positions, a
// final surviving set differing from the output) is reported as
// ErrPathLength / ErrPathPosition / ErrPathResult and never partially
// materialized.
//
// Materialization is idempotent: the same path over the same operand
// sequence always produces identical instructions.
//
// Complexity: O(steps · operands + total labels).
func Materialize(p Path, operands []Operand, output []Label, sizes SizeMap) ([]Instruction, error) {
	if len(operands) == 0 {
		return nil, ErrNoOperands
	}
	u, err := newUniverse(operands, output, sizes)
	if err != nil {
		return nil, err
	}

	out := u.set(output)
	if err = validatePath(p, setsOf(u, operands), out); err != nil {
		return nil, err
	}

	// Ordered axis labels per live operand; the planner's sets forget axis
	// order, the executor must not.
	live := make([][]Label, len(operands))
	for k, op := range operands {
		live[k] = append([]Label(nil), op...)
	}
	liveSets := setsOf(u, operands)

	var (
		instrs    = make([]Instruction, 0, len(p))
		surviving labelSet
		result    []Label
	)
	for cnum, group := range p {
		// Remove from right to left.
		positions := append([]int(nil), group...)
		sort.Sort(sort.Reverse(sort.IntSlice(positions)))

		surviving, _, _ = contractionGroup(group, liveSets, out)

		inputs := make([][]Label, len(positions))
		for k, pos := range positions {
			inputs[k] = append([]Label(nil), live[pos]...)
			live = append(live[:pos], live[pos+1:]...)
		}

		if cnum == len(p)-1 {
			result = append([]Label(nil), output...)
		} else {
			result = u.orderBySize(surviving)
		}

		live = append(live, result)
		liveSets = applyGroup(group, liveSets, surviving)

		snapshot := make([][]Label, len(live))
		for k := range live {
			snapshot[k] = append([]Label(nil), live[k]...)
		}

		instrs = append(instrs, Instruction{
			Positions: positions,
			Inputs:    inputs,
			Result:    result,
			Remaining: snapshot,
		})
	}

	return instrs, nil
}

// orderBySize expands a label set ordered by ascending dimension size,
// ties broken by label identity. Deterministic intermediate axis layout.
func (u *universe) orderBySize(s labelSet) []Label {
	ls := u.labelsOf(s) // ascending label order
	sort.SliceStable(ls, func(i, j int) bool {
		return u.size[u.index[ls[i]]] < u.size[u.index[ls[j]]]
	})

	return ls
}
