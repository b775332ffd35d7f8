package euler

import (
	"context"

	"eulerpath/internal/graph"
)

// linearPathFinder is the opt-in direct-traversal backend: an
// iterative Hierholzer walk guarded by explicit parity and
// connectivity checks. It trades the encoding's generality for linear
// edge-traversal time and therefore, unlike the search backends, has
// to reason about those cases itself. It never answers Unknown.
type linearPathFinder struct{}

// NewLinearPathFinder returns the Hierholzer-based path finder.
func NewLinearPathFinder() PathFinder {
	return &linearPathFinder{}
}

func (finder *linearPathFinder) Find(ctx context.Context, matrix graph.Matrix) (Outcome, error) {
	edges, err := matrix.Edges()
	if err != nil {
		return Outcome{}, err
	}

	n := matrix.Order()
	k := len(edges)

	if k == 0 {
		if n == 0 {
			return Outcome{Verdict: Satisfiable, Path: []int{}}, nil
		}
		return Outcome{Verdict: Satisfiable, Path: []int{0}}, nil
	}

	odd := matrix.OddVertices()
	if len(odd) != 0 && len(odd) != 2 {
		return Outcome{Verdict: Unsatisfiable}, nil
	}

	if !edgesConnected(matrix) {
		return Outcome{Verdict: Unsatisfiable}, nil
	}

	start := 0
	if len(odd) == 2 {
		start = odd[0]
	} else {
		for v, degree := range matrix.Degrees() {
			if degree > 0 {
				start = v
				break
			}
		}
	}

	// Remaining multiplicities, burned down as edges are traversed.
	remaining := make([][]int, n)
	for i := range remaining {
		remaining[i] = make([]int, n)
		copy(remaining[i], matrix[i])
	}

	path := make([]int, 0, k+1)
	stack := []int{start}
	for len(stack) > 0 {
		v := stack[len(stack)-1]

		next := -1
		for w := range n {
			if remaining[v][w] > 0 {
				next = w
				break
			}
		}

		if next == -1 {
			path = append(path, v)
			stack = stack[:len(stack)-1]
			continue
		}

		remaining[v][next]--
		if next != v {
			remaining[next][v]--
		}
		stack = append(stack, next)
	}

	// Reverse into traversal order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return Outcome{Verdict: Satisfiable, Path: path}, nil
}

// edgesConnected reports whether all vertices with at least one
// incident edge lie in a single connected component.
func edgesConnected(matrix graph.Matrix) bool {
	n := matrix.Order()
	degrees := matrix.Degrees()

	start := -1
	for v, degree := range degrees {
		if degree > 0 {
			start = v
			break
		}
	}
	if start == -1 {
		return true
	}

	visited := make([]bool, n)
	visited[start] = true
	queue := []int{start}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for w := range n {
			if matrix[v][w] > 0 && !visited[w] {
				visited[w] = true
				queue = append(queue, w)
			}
		}
	}

	for v, degree := range degrees {
		if degree > 0 && !visited[v] {
			return false
		}
	}
	return true
}
