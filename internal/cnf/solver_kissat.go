package cnf

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type kissatSolver struct{}

func NewKissatSolver() Solver {
	return &kissatSolver{}
}

func (solver *kissatSolver) Solve(ctx context.Context, instance CNF) (Status, Solution, error) {
	dimacs := instance.ToDIMACS() // Transform the instance into DIMACS-CNF string format

	cmd := exec.CommandContext(ctx, ExecutablePath("kissat"), "-q", "--relaxed")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into kissat's standard input

	var stdOut bytes.Buffer
	cmd.Stdout = &stdOut
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctx.Err() != nil {
		return Indet, nil, nil
	}
	// Exit-code of 10 stands for satisfiable and exit-code 20 stands for unsatisfiable
	if err != nil && cmd.ProcessState.ExitCode() != 10 && cmd.ProcessState.ExitCode() != 20 {
		return Indet, nil, fmt.Errorf("an error occurred during kissat execution: %v : %v", err.Error(), stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return Unsat, nil, nil
	}

	return Sat, parseSolution(stdOut.String()), nil
}
