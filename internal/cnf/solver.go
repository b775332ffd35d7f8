package cnf

import "context"

// Status is the three-way outcome of a solver run: Sat with a
// solution, Unsat, or Indet when the solver could not decide within
// its limits.
type Status int

const (
	Indet Status = iota
	Sat
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "sat"
	case Unsat:
		return "unsat"
	default:
		return "indet"
	}
}

// Solver decides a CNF instance. On Sat the returned solution holds
// one signed literal per variable; on Unsat and Indet it is nil.
type Solver interface {
	Solve(ctx context.Context, instance CNF) (Status, Solution, error)
}
