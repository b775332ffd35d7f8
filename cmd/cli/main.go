package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"slices"
	"strings"

	"eulerpath/internal/cnf"
	"eulerpath/internal/euler"
	"eulerpath/internal/graph"
)

// Exit codes follow the SAT-solver convention: 10 when a path was
// found, 20 when no path exists, 30 when the solver could not decide,
// 15 when a decoded path failed verification, 1 on invalid input or an
// operational error.
const (
	exitSatisfiable   = 10
	exitVerifyFailure = 15
	exitUnsatisfiable = 20
	exitUnknown       = 30
)

var (
	validSolvers = []string{"z3", "cvc5", "gophersat", "kissat", "cryptominisat"}
	solvers      = map[string]func() euler.Solver{
		"z3":   euler.NewZ3Solver,
		"cvc5": euler.NewCVC5Solver,
		"gophersat": func() euler.Solver {
			return euler.NewCNFSolver(cnf.NewGophersatSolver())
		},
		"kissat": func() euler.Solver {
			return euler.NewCNFSolver(cnf.NewKissatSolver())
		},
		"cryptominisat": func() euler.Solver {
			return euler.NewCNFSolver(cnf.NewCryptominisatSolver())
		},
	}
)

type output struct {
	Verdict string `json:"verdict"`
	Path    []int  `json:"path,omitempty"`
}

func main() {
	// Define arguments
	solverPtr := flag.String("solver", "z3", "Solver backend to use. Allowed values are: \"z3\", \"cvc5\", \"gophersat\", \"kissat\", \"cryptominisat\", where \"z3\" is the default")
	linearPtr := flag.Bool("linear", false, "Use the linear-time Hierholzer traversal instead of the constraint search")
	timeoutPtr := flag.Duration("timeout", 0, "Time budget for the solver run; 0 means no limit. Expired budgets are reported as the unknown verdict")
	dumpPtr := flag.Bool("dump", false, "Print the asserted constraint set and, when satisfiable, the raw model values")
	filePathPtr := flag.String("file", "", "Path to the input file, a JSON object of the form {\"matrix\": [[...], ...]}")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	flag.Parse()
	solverStr := strings.ToLower(*solverPtr)
	filePath := *filePathPtr
	outFile := *outFilePathPtr

	// Validate arguments
	if !slices.Contains(validSolvers, solverStr) {
		log.Fatalf("%v is not a valid solver", solverStr)
	} else if filePath == "" {
		log.Fatal("an input file must be specified")
	}

	// Extract input
	matrix, err := graph.FromJSON(filePath)
	if err != nil {
		log.Fatalf("cannot load input matrix: %v", err)
	}

	// Initialize engines
	var finder euler.PathFinder
	if *linearPtr {
		finder = euler.NewLinearPathFinder()
	} else {
		finder = euler.NewPathFinder(solvers[solverStr]())
	}

	ctx := context.Background()
	if *timeoutPtr > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeoutPtr)
		defer cancel()
	}

	if *dumpPtr {
		if enc, err := euler.NewEncoding(matrix); err == nil {
			fmt.Print(enc.Script())
		}
	}

	// Find the path
	outcome, err := finder.Find(ctx, matrix)
	if err != nil {
		log.Fatalf("an error occurred during path search: %v", err)
	}

	if *dumpPtr && outcome.Model != nil {
		dumpModel(outcome.Model, matrix)
	}

	switch outcome.Verdict {
	case euler.Unsatisfiable:
		writeOutput(output{Verdict: outcome.Verdict.String()}, outFile)
		os.Exit(exitUnsatisfiable)
	case euler.Unknown:
		writeOutput(output{Verdict: outcome.Verdict.String()}, outFile)
		os.Exit(exitUnknown)
	}

	// Verify path correctness
	if !euler.Verify(matrix, outcome.Path) {
		fmt.Printf("Path: %v\n", outcome.Path)
		os.Exit(exitVerifyFailure)
	}

	writeOutput(output{Verdict: outcome.Verdict.String(), Path: outcome.Path}, outFile)
	os.Exit(exitSatisfiable)
}

func dumpModel(model euler.Model, matrix graph.Matrix) {
	edges, err := matrix.Edges()
	if err != nil {
		return
	}

	for position := range len(edges) + 1 {
		fmt.Printf("P(%d) = %d\n", position, model.P(position))
	}
	for _, edge := range edges {
		fmt.Printf("t(%d) = %d\n", edge.Index, model.T(edge.Index))
	}
}

func writeOutput(result output, outFile string) {
	resultJson, err := json.Marshal(result)
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(resultJson))
	} else {
		if err := os.WriteFile(outFile, resultJson, 0666); err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}
}
