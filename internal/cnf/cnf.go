package cnf

import (
	"fmt"
	"strings"
)

// Solution is the literal assignment returned by a solver: one signed
// literal per variable, positive when the variable is true.
type Solution []int64

// CNF is a propositional formula in conjunctive normal form, with
// variables numbered 1..Variables and DIMACS-style signed literals.
type CNF struct {
	Variables uint64
	Clauses   [][]int64
}

func (c CNF) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", c.Variables, len(c.Clauses))
	for _, clause := range c.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}

// Assignment converts the solution into a truth table indexed by
// variable number (entry 0 is unused).
func (s Solution) Assignment(variables uint64) []bool {
	values := make([]bool, variables+1)
	for _, literal := range s {
		if literal > 0 && uint64(literal) <= variables {
			values[literal] = true
		}
	}
	return values
}
