package euler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eulerpath/internal/cnf"
	"eulerpath/internal/graph"
)

func newSearchFinder() PathFinder {
	return NewPathFinder(NewCNFSolver(cnf.NewGophersatSolver()))
}

func TestFindSingleVertex(t *testing.T) {
	outcome, err := newSearchFinder().Find(context.Background(), graph.Matrix{{0}})

	require.Nil(t, err)
	assert.Equal(t, Satisfiable, outcome.Verdict)
	assert.Equal(t, []int{0}, outcome.Path)
}

func TestFindEdgelessGraph(t *testing.T) {
	matrix := graph.Matrix{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	}

	outcome, err := newSearchFinder().Find(context.Background(), matrix)

	require.Nil(t, err)
	assert.Equal(t, Satisfiable, outcome.Verdict)
	// Isolated vertices are absent from the path.
	assert.Equal(t, []int{0}, outcome.Path)
}

func TestFindTriangle(t *testing.T) {
	matrix := graph.Matrix{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}

	outcome, err := newSearchFinder().Find(context.Background(), matrix)

	require.Nil(t, err)
	require.Equal(t, Satisfiable, outcome.Verdict)
	assert.Len(t, outcome.Path, 4)
	// All degrees are even, so the path is a circuit.
	assert.Equal(t, outcome.Path[0], outcome.Path[3])
	assert.True(t, Verify(matrix, outcome.Path))
}

func TestFindSampleGraph(t *testing.T) {
	matrix := graph.Matrix{
		{0, 1, 0, 0, 0, 1},
		{1, 0, 1, 1, 2, 0},
		{0, 1, 0, 0, 0, 1},
		{0, 1, 0, 2, 1, 0},
		{0, 2, 0, 1, 0, 0},
		{1, 0, 1, 0, 0, 0},
	}

	outcome, err := newSearchFinder().Find(context.Background(), matrix)

	require.Nil(t, err)
	require.Equal(t, Satisfiable, outcome.Verdict)
	require.Len(t, outcome.Path, 11)

	// The endpoints are the two odd-degree vertices, in either order.
	endpoints := []int{outcome.Path[0], outcome.Path[10]}
	assert.ElementsMatch(t, []int{1, 4}, endpoints)

	// The self-loops at vertex 3 appear as consecutive repeated pairs.
	loopPairs := 0
	for i := 0; i+1 < len(outcome.Path); i++ {
		if outcome.Path[i] == 3 && outcome.Path[i+1] == 3 {
			loopPairs++
		}
	}
	assert.Equal(t, 2, loopPairs)

	assert.True(t, Verify(matrix, outcome.Path))
}

func TestFindDisconnectedGraph(t *testing.T) {
	// Two disjoint unit edges: {0,1} and {2,3}.
	matrix := graph.Matrix{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}

	outcome, err := newSearchFinder().Find(context.Background(), matrix)

	require.Nil(t, err)
	assert.Equal(t, Unsatisfiable, outcome.Verdict)
	assert.Nil(t, outcome.Path)
}

func TestFindFourOddVertices(t *testing.T) {
	// Connected, but four vertices of odd degree.
	matrix := graph.Matrix{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 0},
		{1, 1, 0, 0},
	}

	outcome, err := newSearchFinder().Find(context.Background(), matrix)

	require.Nil(t, err)
	assert.Equal(t, Unsatisfiable, outcome.Verdict)
}

func TestFindParallelEdges(t *testing.T) {
	// Two parallel edges between two vertices form a circuit.
	matrix := graph.Matrix{
		{0, 2},
		{2, 0},
	}

	outcome, err := newSearchFinder().Find(context.Background(), matrix)

	require.Nil(t, err)
	require.Equal(t, Satisfiable, outcome.Verdict)
	assert.Len(t, outcome.Path, 3)
	assert.Equal(t, outcome.Path[0], outcome.Path[2])
	assert.NotEqual(t, outcome.Path[0], outcome.Path[1])
	assert.True(t, Verify(matrix, outcome.Path))
}

func TestFindPropagatesInvalidGraph(t *testing.T) {
	_, err := newSearchFinder().Find(context.Background(), graph.Matrix{{0, 1}})

	assert.ErrorIs(t, err, graph.ErrNotSquare)
}

func TestFindCancelledContext(t *testing.T) {
	matrix := graph.Matrix{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := newSearchFinder().Find(ctx, matrix)

	require.Nil(t, err)
	assert.Equal(t, Unknown, outcome.Verdict)
	assert.Nil(t, outcome.Path)
}

type stubModel struct{ values []int }

func (m stubModel) P(position int) int { return m.values[position] }
func (m stubModel) T(edge int) int     { return edge }

func TestDecodePath(t *testing.T) {
	model := stubModel{values: []int{1, 0, 5, 2, 1, 4, 3, 3, 3, 1, 4}}

	assert.Equal(t, []int{1, 0, 5, 2, 1, 4, 3, 3, 3, 1, 4}, DecodePath(model, 10))
}

func TestVerify(t *testing.T) {
	matrix := graph.Matrix{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	}

	t.Run("accepts a valid circuit", func(t *testing.T) {
		assert.True(t, Verify(matrix, []int{0, 1, 2, 0}))
	})

	t.Run("rejects a wrong length", func(t *testing.T) {
		assert.False(t, Verify(matrix, []int{0, 1, 2}))
	})

	t.Run("rejects a duplicated edge", func(t *testing.T) {
		assert.False(t, Verify(matrix, []int{0, 1, 0, 1}))
	})

	t.Run("rejects a non-edge step", func(t *testing.T) {
		loopless := graph.Matrix{
			{0, 1, 1},
			{1, 0, 0},
			{1, 0, 0},
		}
		assert.False(t, Verify(loopless, []int{1, 1, 0}))
	})

	t.Run("rejects out-of-range vertices", func(t *testing.T) {
		assert.False(t, Verify(matrix, []int{0, 1, 2, 5}))
	})
}
