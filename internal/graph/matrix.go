package graph

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
)

// MaxEdges bounds the total edge count of an accepted matrix. The
// constraint set grows quadratically with the edge count, so anything
// past this limit is rejected up front instead of exhausting memory.
const MaxEdges = 512

var (
	ErrNotSquare     = errors.New("graph: matrix is not square")
	ErrNegativeEntry = errors.New("graph: matrix entry is negative")
	ErrAsymmetric    = errors.New("graph: matrix is not symmetric")
	ErrTooLarge      = errors.New("graph: edge count exceeds limit")
)

// Matrix is an adjacency matrix of an undirected multigraph. Entry
// (i, j) with i != j holds the multiplicity of edges between vertices
// i and j; the diagonal entry (i, i) holds the self-loop multiplicity
// at vertex i.
type Matrix [][]int

// Edge is one unit of multiplicity between vertices U and V, with
// U <= V. A self-loop has U == V. Index is the position of the
// occurrence in upper-triangle scan order.
type Edge struct {
	Index int
	U     int
	V     int
}

// Order returns the number of vertices.
func (m Matrix) Order() int {
	return len(m)
}

// Validate rejects malformed matrices: non-square shapes, negative
// entries and asymmetric off-diagonal pairs. It also enforces the
// MaxEdges resource guard.
func (m Matrix) Validate() error {
	n := len(m)
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d entries, expected %d", ErrNotSquare, i, len(row), n)
		}
	}

	edges := 0
	for i := range m {
		for j := range m[i] {
			if m[i][j] < 0 {
				return fmt.Errorf("%w: entry (%d,%d) = %d", ErrNegativeEntry, i, j, m[i][j])
			}
			if j > i && m[i][j] != m[j][i] {
				return fmt.Errorf("%w: entries (%d,%d) = %d and (%d,%d) = %d differ", ErrAsymmetric, i, j, m[i][j], j, i, m[j][i])
			}
			if j >= i {
				edges += m[i][j]
			}
		}
	}

	if edges > MaxEdges {
		return fmt.Errorf("%w: %d edges, limit is %d", ErrTooLarge, edges, MaxEdges)
	}

	return nil
}

// Edges validates the matrix and extracts its ordered edge-occurrence
// list by scanning the upper triangle (i <= j) and emitting one
// occurrence per unit of multiplicity. Scanning the full matrix would
// double-count every non-loop edge, since the matrix is symmetric.
func (m Matrix) Edges() ([]Edge, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	edges := make([]Edge, 0)
	for i := range m {
		for j := i; j < len(m); j++ {
			for range m[i][j] {
				edges = append(edges, Edge{Index: len(edges), U: i, V: j})
			}
		}
	}

	return edges, nil
}

// Degrees returns the degree of every vertex. A self-loop contributes
// two to the degree of its vertex.
func (m Matrix) Degrees() []int {
	degrees := make([]int, len(m))
	for i := range m {
		for j := range m[i] {
			if i == j {
				degrees[i] += 2 * m[i][j]
			} else {
				degrees[i] += m[i][j]
			}
		}
	}
	return degrees
}

// OddVertices returns the vertices of odd degree in increasing order.
func (m Matrix) OddVertices() []int {
	odd := make([]int, 0)
	for v, degree := range m.Degrees() {
		if degree%2 == 1 {
			odd = append(odd, v)
		}
	}
	return odd
}

type matrixInput struct {
	Matrix [][]int
}

// FromJSON reads a matrix from a JSON file of the form
// {"matrix": [[...], ...]}. The matrix is validated before being
// returned.
func FromJSON(file string) (Matrix, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("graph: cannot read input file: %w", err)
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, fmt.Errorf("graph: cannot parse input file: %w", err)
	}

	var input matrixInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return nil, fmt.Errorf("graph: cannot decode input file: %w", err)
	}

	matrix := Matrix(input.Matrix)
	if err := matrix.Validate(); err != nil {
		return nil, err
	}

	return matrix, nil
}
