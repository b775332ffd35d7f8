package main

import (
	"context"
	"fmt"
	"log"

	"eulerpath/internal/cnf"
	"eulerpath/internal/euler"
	"eulerpath/internal/graph"
)

// Demo run on a graph with a self-loop, parallel edges and two
// odd-degree vertices: an Eulerian path exists but no circuit.
var sample = graph.Matrix{
	{0, 1, 0, 0, 0, 1},
	{1, 0, 1, 1, 2, 0},
	{0, 1, 0, 0, 0, 1},
	{0, 1, 0, 2, 1, 0},
	{0, 2, 0, 1, 0, 0},
	{1, 0, 1, 0, 0, 0},
}

func main() {
	solver := euler.NewCNFSolver(cnf.NewGophersatSolver())
	// solver := euler.NewZ3Solver()
	// solver := euler.NewCVC5Solver()
	finder := euler.NewPathFinder(solver)

	outcome, err := finder.Find(context.Background(), sample)
	if err != nil {
		log.Fatal(err)
	} else if outcome.Verdict != euler.Satisfiable {
		fmt.Printf("Not satisfiable: %v\n", outcome.Verdict)
		return
	}

	fmt.Printf("An Euler path is given by: %v\n", outcome.Path)

	if !euler.Verify(sample, outcome.Path) {
		log.Fatal("Verification failed")
	}

	fmt.Println("Well done!")
}
