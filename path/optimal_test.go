package path_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/einplan/path"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainNetwork is the five-operand expression ea,fb,abcd,gc,hd->efgh with
// uneven sizes, small enough for brute-force cross-checking.
func chainNetwork() ([]path.Operand, []path.Label, path.SizeMap) {
	operands := []path.Operand{
		{'e', 'a'}, {'f', 'b'}, {'a', 'b', 'c', 'd'}, {'g', 'c'}, {'h', 'd'},
	}
	output := []path.Label{'e', 'f', 'g', 'h'}
	sizes := path.SizeMap{'a': 2, 'b': 3, 'c': 2, 'd': 3, 'e': 4, 'f': 2, 'g': 4, 'h': 2}

	return operands, output, sizes
}

// TestSearchOptimal_MatchesBruteForce verifies the core optimality
// property: the returned path's cumulative cost equals the minimum over
// every feasible complete pairwise path.
func TestSearchOptimal_MatchesBruteForce(t *testing.T) {
	operands, output, sizes := chainNetwork()
	const memory = int64(1 << 20)

	p, err := path.SearchOptimal(context.Background(), operands, output, sizes, memory, path.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, p, len(operands)-1)

	got, feasible := pathCost(p, operands, output, sizes, memory)
	require.True(t, feasible, "optimal path must respect the memory ceiling")

	want, ok := bruteMinCost(operands, output, sizes, memory)
	require.True(t, ok)
	assert.Equal(t, want, got, "optimal search must return the globally minimal cost")
}

// TestSearchOptimal_FourCycleTieBreak verifies deterministic selection on
// a fully symmetric instance: all complete paths cost the same, so the
// lexicographically smallest pair sequence must win.
func TestSearchOptimal_FourCycleTieBreak(t *testing.T) {
	operands, output, sizes := fourCycle(4)
	const memory = int64(16) // largest operand

	p, err := path.SearchOptimal(context.Background(), operands, output, sizes, memory, path.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, path.Path{{0, 1}, {0, 1}, {0, 1}}, p)

	cost, feasible := pathCost(p, operands, output, sizes, memory)
	require.True(t, feasible)
	assert.Equal(t, int64(288), cost)
}

// TestSearchOptimal_NeverWorseThanOpportunistic pits the two strategies
// against each other on the symmetric four-cycle.
func TestSearchOptimal_NeverWorseThanOpportunistic(t *testing.T) {
	operands, output, sizes := fourCycle(4)
	const memory = int64(16)

	opt, err := path.SearchOptimal(context.Background(), operands, output, sizes, memory, path.DefaultOptions())
	require.NoError(t, err)
	grd, err := path.SearchOpportunistic(operands, output, sizes, memory)
	require.NoError(t, err)

	optCost, ok := pathCost(opt, operands, output, sizes, memory)
	require.True(t, ok)
	grdCost, ok := pathCost(grd, operands, output, sizes, memory)
	require.True(t, ok)

	assert.LessOrEqual(t, optCost, grdCost)
}

// TestSearchOptimal_FallbackWhenInfeasible verifies the degenerate case:
// a ceiling below every pairwise intermediate forces the single full-group
// fallback step.
func TestSearchOptimal_FallbackWhenInfeasible(t *testing.T) {
	operands := []path.Operand{{'a', 'b'}, {'b', 'c'}, {'c', 'd'}}
	output := []path.Label{'a', 'd'}
	sizes := path.SizeMap{'a': 2, 'b': 2, 'c': 2, 'd': 2}

	p, err := path.SearchOptimal(context.Background(), operands, output, sizes, 1, path.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, path.Path{{0, 1, 2}}, p)
}

// TestSearchOptimal_ParallelMatchesSequential verifies that the bounded
// worker pool changes nothing about the selected path.
func TestSearchOptimal_ParallelMatchesSequential(t *testing.T) {
	operands, output, sizes := chainNetwork()
	const memory = int64(1 << 20)

	seq, err := path.SearchOptimal(context.Background(), operands, output, sizes, memory, path.DefaultOptions())
	require.NoError(t, err)

	opts := path.DefaultOptions()
	opts.Workers = 4
	par, err := path.SearchOptimal(context.Background(), operands, output, sizes, memory, opts)
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

// TestSearchOptimal_ContextAborts verifies the search stops between levels
// once the context is done.
func TestSearchOptimal_ContextAborts(t *testing.T) {
	operands, output, sizes := chainNetwork()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := path.SearchOptimal(ctx, operands, output, sizes, 1<<20, path.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestSearchOptimal_InputSentinels covers the boundary validation errors.
func TestSearchOptimal_InputSentinels(t *testing.T) {
	_, err := path.SearchOptimal(context.Background(), nil, nil, path.SizeMap{}, 8, path.DefaultOptions())
	assert.ErrorIs(t, err, path.ErrNoOperands)

	_, err = path.SearchOptimal(context.Background(),
		[]path.Operand{{'a'}}, nil, path.SizeMap{}, 8, path.DefaultOptions())
	assert.ErrorIs(t, err, path.ErrUnknownLabel)

	_, err = path.SearchOptimal(context.Background(),
		[]path.Operand{{'a'}}, nil, path.SizeMap{'a': 0}, 8, path.DefaultOptions())
	assert.ErrorIs(t, err, path.ErrBadSize)
}
