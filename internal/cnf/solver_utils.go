package cnf

import (
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// ConfigPath points at an optional JSON file mapping solver names to
// executable paths. Solvers missing from the file (or the file itself
// missing) are resolved through PATH instead.
var ConfigPath = "config.json"

// ExecutablePath resolves the executable to run for the given solver
// name.
func ExecutablePath(solver string) string {
	bytes, err := os.ReadFile(ConfigPath)
	if err != nil {
		return solver
	}

	var configJson map[string]any
	if err := json.Unmarshal(bytes, &configJson); err != nil {
		log.Printf("cannot parse %v, falling back to PATH lookup: %v", ConfigPath, err)
		return solver
	}

	var config map[string]string
	mapstructure.Decode(configJson, &config)

	path, ok := config[solver]
	if !ok {
		return solver
	}
	return path
}

// parseSolution extracts the literal assignment from the "v" lines of
// a DIMACS solver's output. The assignment may span several lines and
// is terminated by a 0 literal.
func parseSolution(solverOutput string) Solution {
	values := lo.Map(
		lo.Reduce(
			lo.Filter(strings.Split(solverOutput, "\n"), func(line string, _ int) bool {
				return len(line) > 0 && line[0] == 'v'
			}),
			func(values []string, line string, _ int) []string {
				return append(values, strings.Fields(line[1:])...)
			},
			[]string{},
		),
		func(valueStr string, _ int) int64 {
			value, err := strconv.ParseInt(valueStr, 10, 64)
			if err != nil {
				log.Panicf("invalid literal in solver output: %v", err)
			}
			return value
		},
	)

	if len(values) > 0 && values[len(values)-1] == 0 {
		values = values[:len(values)-1]
	}
	return values
}
