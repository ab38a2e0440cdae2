// Package path - validation of explicit contraction paths.
//
// Only caller-supplied paths need validating: paths produced by the
// searches satisfy these invariants by construction, but the materializer
// validates unconditionally because it cannot tell the two apart. Size
// consistency and label validity of the inputs themselves are the
// upstream collaborator's responsibility and are not re-validated here.
package path

// validatePath simulates the path over the operand label sets and checks
// the three malformation classes before anything is materialized:
//   - repeated or out-of-range positions in any step (ErrPathPosition);
//   - a step count that does not reduce the live sequence to exactly one
//     descriptor (ErrPathLength);
//   - a final surviving label set differing from the output (ErrPathResult).
//
// Complexity: O(steps · operands).
func validatePath(p Path, remaining []labelSet, output labelSet) error {
	for _, group := range p {
		if len(group) == 0 || len(group) > len(remaining) {
			return ErrPathPosition
		}
		seen := make([]bool, len(remaining))
		for _, pos := range group {
			if pos < 0 || pos >= len(remaining) || seen[pos] {
				return ErrPathPosition
			}
			seen[pos] = true
		}

		surviving, _, _ := contractionGroup(group, remaining, output)
		remaining = applyGroup(group, remaining, surviving)
	}

	if len(remaining) != 1 {
		return ErrPathLength
	}
	if remaining[0] != output {
		return ErrPathResult
	}

	return nil
}
