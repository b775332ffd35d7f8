package cnf

import (
	"context"

	"github.com/crillab/gophersat/solver"
)

type gophersatSolver struct{}

// NewGophersatSolver returns an in-process solver backed by the
// gophersat library. It needs no external binary, which makes it the
// default backend.
func NewGophersatSolver() Solver {
	return &gophersatSolver{}
}

func (s *gophersatSolver) Solve(ctx context.Context, instance CNF) (Status, Solution, error) {
	clauses := make([][]int, len(instance.Clauses))
	for i, clause := range instance.Clauses {
		clauses[i] = make([]int, len(clause))
		for j, literal := range clause {
			clauses[i][j] = int(literal)
		}
	}

	if ctx.Err() != nil {
		return Indet, nil, nil
	}

	engine := solver.New(solver.ParseSlice(clauses))

	statuses := make(chan solver.Status, 1)
	go func() {
		statuses <- engine.Solve()
	}()

	var status solver.Status
	select {
	case <-ctx.Done():
		// The search keeps running in its goroutine; the result is
		// abandoned and the run reported as undecided.
		return Indet, nil, nil
	case status = <-statuses:
	}

	switch status {
	case solver.Unsat:
		return Unsat, nil, nil
	case solver.Sat:
		model := engine.Model()
		solution := make(Solution, 0, len(model))
		for i, value := range model {
			literal := int64(i + 1)
			if !value {
				literal = -literal
			}
			solution = append(solution, literal)
		}
		return Sat, solution, nil
	default:
		return Indet, nil, nil
	}
}
