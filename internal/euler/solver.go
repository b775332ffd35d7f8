package euler

import "context"

// Verdict is the three-way outcome of a solver run. Unknown means the
// solver could not decide within its limits; it is deliberately kept
// distinct from Unsatisfiable, which is a proof that no Eulerian path
// exists.
type Verdict int

const (
	Unknown Verdict = iota
	Satisfiable
	Unsatisfiable
)

func (v Verdict) String() string {
	switch v {
	case Satisfiable:
		return "satisfiable"
	case Unsatisfiable:
		return "unsatisfiable"
	default:
		return "unknown"
	}
}

// Model is a satisfying assignment of the two unknown functions. Both
// evaluations are only defined for in-range arguments: 0..k for P and
// 0..k-1 for T.
type Model interface {
	// P returns the vertex placed at the given path position.
	P(position int) int
	// T returns the path slot assigned to the given edge occurrence.
	T(edge int) int
}

// Result is a solver verdict plus, on Satisfiable, an evaluable model.
type Result struct {
	Verdict Verdict
	Model   Model
}

// Solver decides an encoding. Implementations perform a single
// deterministic attempt: no internal retries, no mutation of the
// encoding. Cancellation of ctx yields an Unknown verdict.
type Solver interface {
	Solve(ctx context.Context, enc *Encoding) (Result, error)
}

// valueModel is a finite value table backing the Model interface; the
// adapters fill it from whatever representation their backend returns.
type valueModel struct {
	p map[int]int
	t map[int]int
}

func (m *valueModel) P(position int) int { return m.p[position] }

func (m *valueModel) T(edge int) int { return m.t[edge] }
