package euler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eulerpath/internal/graph"
)

func TestNewEncoding(t *testing.T) {
	t.Run("extracts dimensions from the matrix", func(t *testing.T) {
		enc, err := NewEncoding(graph.Matrix{
			{0, 1, 1},
			{1, 0, 1},
			{1, 1, 0},
		})

		require.Nil(t, err)
		assert.Equal(t, 3, enc.N())
		assert.Equal(t, 3, enc.K())
		assert.Len(t, enc.Edges(), 3)
	})

	t.Run("propagates loader errors", func(t *testing.T) {
		_, err := NewEncoding(graph.Matrix{{0, 2}, {1, 0}})

		assert.ErrorIs(t, err, graph.ErrAsymmetric)
	})
}

func TestScript(t *testing.T) {
	enc, err := NewEncoding(graph.Matrix{
		{1, 1},
		{1, 0},
	})
	require.Nil(t, err)

	script := enc.Script()

	// Function declarations and the final check.
	assert.Contains(t, script, "(declare-fun P (Int) Int)")
	assert.Contains(t, script, "(declare-fun t (Int) Int)")
	assert.True(t, strings.HasSuffix(script, "(check-sat)\n"))

	// The self-loop at vertex 0 degenerates into a single repeated
	// assignment; the (0,1) edge keeps both directions.
	assert.Contains(t, script, "(assert (or (and (= (P (t 0)) 0) (= (P (+ (t 0) 1)) 0)) (and (= (P (t 0)) 0) (= (P (+ (t 0) 1)) 0))))")
	assert.Contains(t, script, "(assert (or (and (= (P (t 1)) 0) (= (P (+ (t 1) 1)) 1)) (and (= (P (t 1)) 1) (= (P (+ (t 1) 1)) 0))))")

	// Range plus pairwise distinctness force t to be a bijection.
	assert.Contains(t, script, "(assert (<= (t 0) 1))")
	assert.Contains(t, script, "(assert (>= (t 0) 0))")
	assert.Contains(t, script, "(assert (<= (t 1) 1))")
	assert.Contains(t, script, "(assert (not (= (t 0) (t 1))))")
}

func TestScriptDistinctnessPairs(t *testing.T) {
	// k = 3 edges yield 3 pairwise distinctness constraints.
	enc, err := NewEncoding(graph.Matrix{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	require.Nil(t, err)

	script := enc.Script()

	assert.Equal(t, 3, strings.Count(script, "(assert (not (="))
}
