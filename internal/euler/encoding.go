package euler

import (
	"fmt"
	"strings"

	"eulerpath/internal/graph"
)

// Encoding is the caller-owned constraint context for one matrix: the
// edge-occurrence list plus the constraint set over the two unknown
// functions P (path position -> vertex) and t (edge occurrence -> path
// slot). It is built once and never mutated afterwards, so repeated
// runs share no state.
//
// The asserted constraints are, for every edge occurrence e with
// endpoints (u, v):
//
//	(P(t(e)) = u and P(t(e)+1) = v) or (P(t(e)) = v and P(t(e)+1) = u)
//
// together with 0 <= t(e) <= k-1 for every e and t(e) != t(e') for
// every distinct pair, which force t to be a bijection onto the k path
// slots. For a self-loop both disjuncts collapse into the same
// assignment, pinning two consecutive equal vertices at that slot.
type Encoding struct {
	n     int
	k     int
	edges []graph.Edge
}

// NewEncoding validates the matrix and builds its encoding context.
func NewEncoding(matrix graph.Matrix) (*Encoding, error) {
	edges, err := matrix.Edges()
	if err != nil {
		return nil, err
	}

	return &Encoding{
		n:     matrix.Order(),
		k:     len(edges),
		edges: edges,
	}, nil
}

// N returns the vertex count.
func (enc *Encoding) N() int { return enc.n }

// K returns the edge-occurrence count, i.e. the number of path slots.
func (enc *Encoding) K() int { return enc.k }

// Edges returns the ordered edge-occurrence list.
func (enc *Encoding) Edges() []graph.Edge { return enc.edges }

// Script renders the full constraint set as an SMT-LIB2 script ending
// in (check-sat). This is both the wire format consumed by the SMT
// adapters and the canonical human-readable dump of the encoding.
func (enc *Encoding) Script() string {
	var builder strings.Builder

	builder.WriteString("(set-option :produce-models true)\n")
	builder.WriteString("(set-logic UFLIA)\n")
	builder.WriteString("(declare-fun P (Int) Int)\n")
	builder.WriteString("(declare-fun t (Int) Int)\n")

	for _, edge := range enc.edges {
		fmt.Fprintf(&builder,
			"(assert (or (and (= (P (t %d)) %d) (= (P (+ (t %d) 1)) %d)) (and (= (P (t %d)) %d) (= (P (+ (t %d) 1)) %d))))\n",
			edge.Index, edge.U, edge.Index, edge.V,
			edge.Index, edge.V, edge.Index, edge.U,
		)
	}

	for i := range enc.k {
		fmt.Fprintf(&builder, "(assert (<= (t %d) %d))\n", i, enc.k-1)
		fmt.Fprintf(&builder, "(assert (>= (t %d) 0))\n", i)
	}
	for i := range enc.k {
		for j := i + 1; j < enc.k; j++ {
			fmt.Fprintf(&builder, "(assert (not (= (t %d) (t %d))))\n", i, j)
		}
	}

	builder.WriteString("(check-sat)\n")

	return builder.String()
}
