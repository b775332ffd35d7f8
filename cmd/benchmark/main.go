package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/exec"
	"time"

	"eulerpath/internal/cnf"
	"eulerpath/internal/euler"
	"eulerpath/internal/graph"
)

// Sweeps every available solver backend over a set of generated
// multigraphs and reports per-run durations as CSV.

type instance struct {
	name   string
	matrix graph.Matrix
}

type backend struct {
	name   string
	binary string // empty when in-process
	finder euler.PathFinder
}

func main() {
	outPtr := flag.String("out", "", "Path to the CSV output file; if empty, it'll be written into the Standard Output")
	timeoutPtr := flag.Duration("timeout", 30*time.Second, "Per-run time budget")
	flag.Parse()

	backends := []backend{
		{name: "gophersat", finder: euler.NewPathFinder(euler.NewCNFSolver(cnf.NewGophersatSolver()))},
		{name: "kissat", binary: "kissat", finder: euler.NewPathFinder(euler.NewCNFSolver(cnf.NewKissatSolver()))},
		{name: "cryptominisat", binary: "cryptominisat", finder: euler.NewPathFinder(euler.NewCNFSolver(cnf.NewCryptominisatSolver()))},
		{name: "z3", binary: "z3", finder: euler.NewPathFinder(euler.NewZ3Solver())},
		{name: "cvc5", binary: "cvc5", finder: euler.NewPathFinder(euler.NewCVC5Solver())},
		{name: "hierholzer", finder: euler.NewLinearPathFinder()},
	}

	instances := []instance{
		{name: "konigsberg-variant", matrix: graph.Matrix{
			{0, 1, 0, 0, 0, 1},
			{1, 0, 1, 1, 2, 0},
			{0, 1, 0, 0, 0, 1},
			{0, 1, 0, 2, 1, 0},
			{0, 2, 0, 1, 0, 0},
			{1, 0, 1, 0, 0, 0},
		}},
	}
	for _, shape := range [][2]int{{4, 6}, {5, 8}, {6, 10}, {8, 12}} {
		n, k := shape[0], shape[1]
		instances = append(instances, instance{
			name:   fmt.Sprintf("walk-n%d-k%d", n, k),
			matrix: walkGraph(n, k),
		})
	}

	records := [][]string{{"instance", "solver", "verdict", "milliseconds"}}
	for _, b := range backends {
		if b.binary != "" {
			if _, err := exec.LookPath(cnf.ExecutablePath(b.binary)); err != nil {
				log.Printf("skipping %v: %v is not installed", b.name, b.binary)
				continue
			}
		}

		for _, inst := range instances {
			ctx, cancel := context.WithTimeout(context.Background(), *timeoutPtr)
			started := time.Now()
			outcome, err := b.finder.Find(ctx, inst.matrix)
			elapsed := time.Since(started)
			cancel()

			verdict := "error"
			if err == nil {
				verdict = outcome.Verdict.String()
				if outcome.Verdict == euler.Satisfiable && !euler.Verify(inst.matrix, outcome.Path) {
					verdict = "invalid-path"
				}
			}

			records = append(records, []string{
				inst.name,
				b.name,
				verdict,
				fmt.Sprintf("%d", elapsed.Milliseconds()),
			})
		}
	}

	out := os.Stdout
	if *outPtr != "" {
		file, err := os.Create(*outPtr)
		if err != nil {
			log.Fatalf("cannot create output file: %v", err)
		}
		defer file.Close()
		out = file
	}

	writer := csv.NewWriter(out)
	if err := writer.WriteAll(records); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
}

// walkGraph builds a multigraph by laying down a random walk of k
// edges over n vertices, so every instance admits an Eulerian path by
// construction.
func walkGraph(n, k int) graph.Matrix {
	matrix := make(graph.Matrix, n)
	for i := range matrix {
		matrix[i] = make([]int, n)
	}

	v := rand.IntN(n)
	for range k {
		w := rand.IntN(n)
		matrix[v][w]++
		if v != w {
			matrix[w][v]++
		}
		v = w
	}

	return matrix
}
