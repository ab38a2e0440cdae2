package path_test

import (
	"testing"

	"github.com/katalvlaran/einplan/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReduce_TwoOperandScenario checks the canonical matrix-chain step:
// {a,b} and {b,c} contracted toward output {a,c} must keep a and c and
// sum b away.
func TestReduce_TwoOperandScenario(t *testing.T) {
	remaining := []path.Operand{{'a', 'b'}, {'b', 'c'}}
	res := path.Reduce(path.Group{0, 1}, remaining, []path.Label{'a', 'c'})

	assert.Equal(t, []path.Label{'a', 'c'}, res.Surviving)
	assert.Equal(t, []path.Label{'b'}, res.Removed)
	assert.Equal(t, []path.Label{'a', 'b', 'c'}, res.Contracted)
	require.Len(t, res.Remaining, 1)
	assert.Equal(t, path.Operand{'a', 'c'}, res.Remaining[0])
}

// TestReduce_KeepsLabelNeededByBystander verifies that a label absent from
// the output still survives when a non-selected operand uses it.
func TestReduce_KeepsLabelNeededByBystander(t *testing.T) {
	remaining := []path.Operand{{'a', 'b'}, {'b', 'c'}, {'c', 'd'}}

	// Contract {0,1} with empty output: c is needed by operand 2, b by nobody.
	res := path.Reduce(path.Group{0, 1}, remaining, nil)

	assert.Equal(t, []path.Label{'c'}, res.Surviving)
	assert.Equal(t, []path.Label{'a', 'b'}, res.Removed)
	require.Len(t, res.Remaining, 2)
	assert.Equal(t, path.Operand{'c', 'd'}, res.Remaining[0], "non-selected operands keep their relative order")
	assert.Equal(t, path.Operand{'c'}, res.Remaining[1], "surviving descriptor is appended last")
}

// TestReduce_Pure verifies that identical arguments always yield identical
// StepResults and that the inputs are never mutated.
func TestReduce_Pure(t *testing.T) {
	remaining := []path.Operand{{'a', 'c'}, {'a', 'b'}, {'b', 'd'}, {'c', 'd'}}
	output := []path.Label{'d'}
	group := path.Group{1, 3}

	first := path.Reduce(group, remaining, output)
	second := path.Reduce(group, remaining, output)

	assert.Equal(t, first, second, "reduce must be a pure function")
	assert.Equal(t, []path.Operand{{'a', 'c'}, {'a', 'b'}, {'b', 'd'}, {'c', 'd'}}, remaining, "inputs must stay untouched")
}

// TestReduce_PartitionInvariant verifies Surviving ∪ Removed == Contracted
// with empty intersection, across several group shapes.
func TestReduce_PartitionInvariant(t *testing.T) {
	remaining := []path.Operand{{'a', 'b'}, {'b', 'c'}, {'c', 'd'}, {'d', 'e'}}
	cases := []struct {
		name   string
		group  path.Group
		output []path.Label
	}{
		{name: "adjacent pair", group: path.Group{0, 1}, output: []path.Label{'a', 'e'}},
		{name: "distant pair", group: path.Group{0, 3}, output: []path.Label{'b'}},
		{name: "full group", group: path.Group{0, 1, 2, 3}, output: nil},
		{name: "single position", group: path.Group{2}, output: []path.Label{'c'}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := path.Reduce(tc.group, remaining, tc.output)

			union := make(map[path.Label]int)
			for _, l := range res.Surviving {
				union[l]++
			}
			for _, l := range res.Removed {
				union[l]++
			}
			require.Len(t, union, len(res.Contracted), "surviving ∪ removed must cover contracted exactly")
			for _, l := range res.Contracted {
				assert.Equal(t, 1, union[l], "label %c must appear in exactly one side", l)
			}
		})
	}
}
