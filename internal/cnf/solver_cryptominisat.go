package cnf

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

type cryptominisatSolver struct{}

func NewCryptominisatSolver() Solver {
	return &cryptominisatSolver{}
}

func (solver *cryptominisatSolver) Solve(ctx context.Context, instance CNF) (Status, Solution, error) {
	dimacs := instance.ToDIMACS() // Transform the instance into DIMACS-CNF string format

	cmd := exec.CommandContext(ctx, ExecutablePath("cryptominisat"), "--verb", "0")
	cmd.Stdin = strings.NewReader(dimacs) // Feed dimacs into cryptominisat's standard input

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
		return Indet, nil, fmt.Errorf("an error occurred during cryptominisat execution: %v : %v", err.Error(), stderr.String())
	} else if cmd.ProcessState.ExitCode() == 20 {
		return Unsat, nil, nil
	}

	return Sat, parseSolution(stdOut.String()), nil
}
