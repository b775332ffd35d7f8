package euler

import (
	"context"
	"fmt"

	"eulerpath/internal/cnf"
)

// cnfSolver compiles the encoding into propositional CNF and hands it
// to a DIMACS-level backend. P and t are modeled as one-hot arrays of
// bounded-domain variables instead of unbounded functions; the
// position->vertex and edge->slot contracts are unchanged, so a model
// decodes exactly like an SMT one.
type cnfSolver struct {
	backend cnf.Solver
}

// NewCNFSolver wraps a CNF backend (gophersat, kissat, ...) into the
// encoding-level Solver contract.
func NewCNFSolver(backend cnf.Solver) Solver {
	return &cnfSolver{backend: backend}
}

// oneHot lays out the propositional variables: first (k+1)*n position
// variables, then k*k slot variables, numbered from 1 as DIMACS wants.
type oneHot struct {
	n int
	k int
}

// position is true when path position pos holds the given vertex.
func (v oneHot) position(pos, vertex int) int64 {
	return int64(pos*v.n+vertex) + 1
}

// slot is true when edge occurrence edge is assigned the given slot,
// i.e. t(edge) = slot.
func (v oneHot) slot(edge, slot int) int64 {
	return int64((v.k+1)*v.n + edge*v.k + slot) + 1
}

func (v oneHot) count() uint64 {
	return uint64((v.k+1)*v.n + v.k*v.k)
}

func (s *cnfSolver) Solve(ctx context.Context, enc *Encoding) (Result, error) {
	vars := oneHot{n: enc.N(), k: enc.K()}

	instance := cnf.CNF{Variables: vars.count()}
	instance.Clauses = append(instance.Clauses, positionConstraints(enc, vars)...)
	instance.Clauses = append(instance.Clauses, slotRangeConstraints(enc, vars)...)
	instance.Clauses = append(instance.Clauses, slotDistinctnessConstraints(enc, vars)...)
	instance.Clauses = append(instance.Clauses, edgePlacementConstraints(enc, vars)...)

	status, solution, err := s.backend.Solve(ctx, instance)
	if err != nil {
		return Result{}, err
	}

	switch status {
	case cnf.Unsat:
		return Result{Verdict: Unsatisfiable}, nil
	case cnf.Indet:
		return Result{Verdict: Unknown}, nil
	}

	model, err := decodeOneHot(solution, vars)
	if err != nil {
		return Result{}, err
	}

	return Result{Verdict: Satisfiable, Model: model}, nil
}

// positionConstraints force every path position to hold exactly one
// vertex.
func positionConstraints(enc *Encoding, vars oneHot) [][]int64 {
	clauses := make([][]int64, 0)

	for pos := range enc.K() + 1 {
		atLeastOne := make([]int64, 0, enc.N())
		for vertex := range enc.N() {
			atLeastOne = append(atLeastOne, vars.position(pos, vertex))
		}
		clauses = append(clauses, atLeastOne)

		for vertex := range enc.N() - 1 {
			for other := vertex + 1; other < enc.N(); other++ {
				clauses = append(clauses, []int64{-vars.position(pos, vertex), -vars.position(pos, other)})
			}
		}
	}

	return clauses
}

// slotRangeConstraints force t(e) to take exactly one value in
// 0..k-1, the propositional counterpart of 0 <= t(e) <= k-1.
func slotRangeConstraints(enc *Encoding, vars oneHot) [][]int64 {
	clauses := make([][]int64, 0)

	for edge := range enc.K() {
		atLeastOne := make([]int64, 0, enc.K())
		for slot := range enc.K() {
			atLeastOne = append(atLeastOne, vars.slot(edge, slot))
		}
		clauses = append(clauses, atLeastOne)

		for slot := range enc.K() - 1 {
			for other := slot + 1; other < enc.K(); other++ {
				clauses = append(clauses, []int64{-vars.slot(edge, slot), -vars.slot(edge, other)})
			}
		}
	}

	return clauses
}

// slotDistinctnessConstraints forbid two edge occurrences from sharing
// a slot: t(e) != t(e') for every distinct pair. Together with the
// range constraints this forces t to be a bijection, since domain and
// codomain have equal size.
func slotDistinctnessConstraints(enc *Encoding, vars oneHot) [][]int64 {
	clauses := make([][]int64, 0)

	for slot := range enc.K() {
		for edge := range enc.K() - 1 {
			for other := edge + 1; other < enc.K(); other++ {
				clauses = append(clauses, []int64{-vars.slot(edge, slot), -vars.slot(other, slot)})
			}
		}
	}

	return clauses
}

// edgePlacementConstraints tie a chosen slot to its endpoints: when
// t(e) = s, positions s and s+1 hold u and v in either direction. For
// a self-loop both directions collapse into P(s) = P(s+1) = u.
func edgePlacementConstraints(enc *Encoding, vars oneHot) [][]int64 {
	clauses := make([][]int64, 0)

	for _, edge := range enc.Edges() {
		for slot := range enc.K() {
			chosen := vars.slot(edge.Index, slot)

			if edge.U == edge.V {
				clauses = append(clauses,
					[]int64{-chosen, vars.position(slot, edge.U)},
					[]int64{-chosen, vars.position(slot+1, edge.U)},
				)
				continue
			}

			clauses = append(clauses,
				[]int64{-chosen, vars.position(slot, edge.U), vars.position(slot, edge.V)},
				[]int64{-chosen, vars.position(slot+1, edge.U), vars.position(slot+1, edge.V)},
				[]int64{-chosen, -vars.position(slot, edge.U), vars.position(slot+1, edge.V)},
				[]int64{-chosen, -vars.position(slot, edge.V), vars.position(slot+1, edge.U)},
			)
		}
	}

	return clauses
}

// decodeOneHot reads the one-hot assignment back into a P/t value
// table.
func decodeOneHot(solution cnf.Solution, vars oneHot) (*valueModel, error) {
	assignment := solution.Assignment(vars.count())

	model := &valueModel{
		p: make(map[int]int, vars.k+1),
		t: make(map[int]int, vars.k),
	}

	for pos := range vars.k + 1 {
		for vertex := range vars.n {
			if assignment[vars.position(pos, vertex)] {
				model.p[pos] = vertex
				break
			}
		}
		if _, ok := model.p[pos]; !ok {
			return nil, fmt.Errorf("no vertex assigned to path position %d", pos)
		}
	}

	for edge := range vars.k {
		for slot := range vars.k {
			if assignment[vars.slot(edge, slot)] {
				model.t[edge] = slot
				break
			}
		}
		if _, ok := model.t[edge]; !ok {
			return nil, fmt.Errorf("no slot assigned to edge occurrence %d", edge)
		}
	}

	return model, nil
}
