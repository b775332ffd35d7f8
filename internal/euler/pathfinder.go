package euler

import (
	"context"

	"eulerpath/internal/graph"
)

// Outcome is the final answer for one matrix: the verdict and, on
// Satisfiable, the decoded path of k+1 vertices. Model is retained for
// diagnostic dumps and is nil for backends that never build one.
type Outcome struct {
	Verdict Verdict
	Path    []int
	Model   Model
}

// PathFinder runs the whole pipeline for one matrix: load, encode,
// solve, decode. Each call is a single deterministic attempt.
type PathFinder interface {
	Find(ctx context.Context, matrix graph.Matrix) (Outcome, error)
}

type searchPathFinder struct {
	solver Solver
}

// NewPathFinder returns the search-based path finder, the reference
// behavior: all ordering and direction choices are delegated to the
// solver, so no parity or connectivity analysis happens here.
func NewPathFinder(solver Solver) PathFinder {
	return &searchPathFinder{solver: solver}
}

func (finder *searchPathFinder) Find(ctx context.Context, matrix graph.Matrix) (Outcome, error) {
	enc, err := NewEncoding(matrix)
	if err != nil {
		return Outcome{}, err
	}

	// An edgeless graph trivially admits the empty walk. The path is a
	// single vertex, vertex 0 by convention; isolated vertices never
	// appear in any path.
	if enc.K() == 0 {
		if enc.N() == 0 {
			return Outcome{Verdict: Satisfiable, Path: []int{}}, nil
		}
		return Outcome{Verdict: Satisfiable, Path: []int{0}}, nil
	}

	result, err := finder.solver.Solve(ctx, enc)
	if err != nil {
		return Outcome{}, err
	}

	if result.Verdict != Satisfiable {
		return Outcome{Verdict: result.Verdict}, nil
	}

	return Outcome{
		Verdict: Satisfiable,
		Path:    DecodePath(result.Model, enc.K()),
		Model:   result.Model,
	}, nil
}

// Verify checks a decoded path against the matrix it came from: the
// path must have k+1 vertices and its adjacent pairs must reproduce
// every edge occurrence exactly once, no omissions and no duplicates.
func Verify(matrix graph.Matrix, path []int) bool {
	edges, err := matrix.Edges()
	if err != nil {
		return false
	}

	if matrix.Order() == 0 {
		return len(path) == 0
	}
	if len(path) != len(edges)+1 {
		return false
	}

	// Count the remaining multiplicity of every endpoint pair and burn
	// it down along the path.
	remaining := make(map[[2]int]int, len(edges))
	for _, edge := range edges {
		remaining[[2]int{edge.U, edge.V}]++
	}

	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		if u < 0 || u >= matrix.Order() || v < 0 || v >= matrix.Order() {
			return false
		}
		if u > v {
			u, v = v, u
		}

		pair := [2]int{u, v}
		if remaining[pair] == 0 {
			return false
		}
		remaining[pair]--
	}

	if len(edges) == 0 {
		return len(path) == 1 && path[0] >= 0 && path[0] < matrix.Order()
	}

	return true
}
