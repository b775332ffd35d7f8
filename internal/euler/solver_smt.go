package euler

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"eulerpath/internal/cnf"
)

// smtSolver drives an external SMT-LIB2 solver process over its
// standard streams: it feeds the encoding script, reads the sat /
// unsat / unknown verdict, and on sat queries the model values of P
// and t. The executable is resolved through the same config.json
// mechanism used by the DIMACS adapters.
type smtSolver struct {
	name string
	args func(softLimit time.Duration) []string
}

// NewZ3Solver returns an adapter around the z3 binary. This is the
// reference backend: the unknown functions are submitted as-is, with
// no bounded-domain reformulation.
func NewZ3Solver() Solver {
	return &smtSolver{
		name: "z3",
		args: func(softLimit time.Duration) []string {
			args := []string{"-in", "-smt2"}
			if softLimit > 0 {
				args = append(args, fmt.Sprintf("-t:%d", softLimit.Milliseconds()))
			}
			return args
		},
	}
}

// NewCVC5Solver returns an adapter around the cvc5 binary.
func NewCVC5Solver() Solver {
	return &smtSolver{
		name: "cvc5",
		args: func(softLimit time.Duration) []string {
			args := []string{"--incremental"}
			if softLimit > 0 {
				args = append(args, fmt.Sprintf("--tlimit-per=%d", softLimit.Milliseconds()))
			}
			return args
		},
	}
}

func (s *smtSolver) Solve(ctx context.Context, enc *Encoding) (Result, error) {
	var softLimit time.Duration
	if deadline, ok := ctx.Deadline(); ok {
		// Pass the remaining budget to the solver as a soft limit so it
		// answers unknown instead of being killed mid-search.
		softLimit = time.Until(deadline)
	}

	cmd := exec.CommandContext(ctx, cnf.ExecutablePath(s.name), s.args(softLimit)...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return Result{}, fmt.Errorf("cannot open %v stdin: %w", s.name, err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return Result{}, fmt.Errorf("cannot open %v stdout: %w", s.name, err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return Result{}, fmt.Errorf("cannot start %v: %w", s.name, err)
	}

	if _, err := io.WriteString(stdin, enc.Script()); err != nil {
		stdin.Close()
		cmd.Wait()
		return Result{}, fmt.Errorf("cannot feed %v: %w : %v", s.name, err, stderr.String())
	}

	scanner := bufio.NewScanner(stdout)
	verdict, ok := readVerdict(scanner)
	if !ok {
		stdin.Close()
		cmd.Wait()
		if ctx.Err() != nil {
			return Result{Verdict: Unknown}, nil
		}
		return Result{}, fmt.Errorf("no verdict from %v: %v", s.name, stderr.String())
	}

	if verdict != Satisfiable {
		stdin.Close()
		cmd.Wait()
		return Result{Verdict: verdict}, nil
	}

	io.WriteString(stdin, valueQuery(enc.K()))
	stdin.Close()

	var response strings.Builder
	for scanner.Scan() {
		response.WriteString(scanner.Text())
		response.WriteString("\n")
	}
	cmd.Wait()

	model, err := parseValues(response.String(), enc.K())
	if err != nil {
		return Result{}, fmt.Errorf("cannot read %v model: %w", s.name, err)
	}

	return Result{Verdict: Satisfiable, Model: model}, nil
}

// readVerdict scans stdout until the check-sat answer appears.
func readVerdict(scanner *bufio.Scanner) (Verdict, bool) {
	for scanner.Scan() {
		switch strings.TrimSpace(scanner.Text()) {
		case "sat":
			return Satisfiable, true
		case "unsat":
			return Unsatisfiable, true
		case "unknown":
			return Unknown, true
		}
	}
	return Unknown, false
}

// valueQuery asks for P over every path position and t over every edge
// occurrence in a single get-value command.
func valueQuery(k int) string {
	var builder strings.Builder
	builder.WriteString("(get-value (")
	for i := 0; i <= k; i++ {
		fmt.Fprintf(&builder, "(P %d) ", i)
	}
	for i := 0; i < k; i++ {
		fmt.Fprintf(&builder, "(t %d) ", i)
	}
	builder.WriteString("))\n")
	return builder.String()
}

var valuePattern = regexp.MustCompile(`\(\((P|t) (\d+)\) (\(- )?(\d+)`)

// parseValues reads the get-value response into a value table.
// Negative numerals arrive in the (- n) form.
func parseValues(response string, k int) (*valueModel, error) {
	model := &valueModel{
		p: make(map[int]int, k+1),
		t: make(map[int]int, k),
	}

	for _, match := range valuePattern.FindAllStringSubmatch(response, -1) {
		argument, err := strconv.Atoi(match[2])
		if err != nil {
			return nil, err
		}
		value, err := strconv.Atoi(match[4])
		if err != nil {
			return nil, err
		}
		if match[3] != "" {
			value = -value
		}

		if match[1] == "P" {
			model.p[argument] = value
		} else {
			model.t[argument] = value
		}
	}

	if len(model.p) != k+1 || len(model.t) != k {
		return nil, fmt.Errorf("incomplete model: %d of %d P values, %d of %d t values", len(model.p), k+1, len(model.t), k)
	}

	return model, nil
}
