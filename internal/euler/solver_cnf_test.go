package euler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eulerpath/internal/cnf"
	"eulerpath/internal/graph"
)

func TestOneHotLayout(t *testing.T) {
	vars := oneHot{n: 3, k: 2}

	// Position variables come first, slot variables after them.
	assert.Equal(t, int64(1), vars.position(0, 0))
	assert.Equal(t, int64(3), vars.position(0, 2))
	assert.Equal(t, int64(4), vars.position(1, 0))
	assert.Equal(t, int64(9), vars.position(2, 2))
	assert.Equal(t, int64(10), vars.slot(0, 0))
	assert.Equal(t, int64(13), vars.slot(1, 1))
	assert.Equal(t, uint64(13), vars.count())
}

func TestCompiledConstraintCounts(t *testing.T) {
	enc, err := NewEncoding(graph.Matrix{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	require.Nil(t, err)

	vars := oneHot{n: enc.N(), k: enc.K()}

	// 4 positions x (1 at-least-one + 3 at-most-one pairs).
	assert.Len(t, positionConstraints(enc, vars), 16)
	// 3 edges x (1 at-least-one + 3 at-most-one pairs).
	assert.Len(t, slotRangeConstraints(enc, vars), 12)
	// 3 slots x 3 edge pairs.
	assert.Len(t, slotDistinctnessConstraints(enc, vars), 9)
	// 3 non-loop edges x 3 slots x 4 linking clauses.
	assert.Len(t, edgePlacementConstraints(enc, vars), 36)
}

func TestSelfLoopPlacementCollapses(t *testing.T) {
	enc, err := NewEncoding(graph.Matrix{{1}})
	require.Nil(t, err)

	vars := oneHot{n: enc.N(), k: enc.K()}

	// A loop pins both adjacent positions with two unit clauses per
	// slot instead of the four directional ones.
	assert.Equal(t, [][]int64{
		{-vars.slot(0, 0), vars.position(0, 0)},
		{-vars.slot(0, 0), vars.position(1, 0)},
	}, edgePlacementConstraints(enc, vars))
}

func TestCNFSolverRoundTrip(t *testing.T) {
	enc, err := NewEncoding(graph.Matrix{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	require.Nil(t, err)

	result, err := NewCNFSolver(cnf.NewGophersatSolver()).Solve(context.Background(), enc)

	require.Nil(t, err)
	require.Equal(t, Satisfiable, result.Verdict)

	// t is a bijection onto the slots.
	slots := map[int]bool{}
	for edge := range enc.K() {
		slot := result.Model.T(edge)
		assert.GreaterOrEqual(t, slot, 0)
		assert.Less(t, slot, enc.K())
		assert.False(t, slots[slot])
		slots[slot] = true
	}

	// Every edge occurrence occupies its assigned adjacent pair in one
	// of the two directions.
	for _, edge := range enc.Edges() {
		slot := result.Model.T(edge.Index)
		u, v := result.Model.P(slot), result.Model.P(slot+1)
		forward := u == edge.U && v == edge.V
		backward := u == edge.V && v == edge.U
		assert.True(t, forward || backward)
	}
}
