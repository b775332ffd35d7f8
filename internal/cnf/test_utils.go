package cnf

import "math/rand/v2"

func GenerateCNFInstance(variables uint64, clauses int) CNF {
	instance := CNF{
		Variables: variables,
		Clauses:   make([][]int64, clauses),
	}

	for i := range clauses {
		instance.Clauses[i] = make([]int64, 0, variables)
		for j := range variables {
			if rand.Float32() < 0.5 {
				var sign int64 = 1
				if rand.Float32() < 0.5 {
					sign = -1
				}
				instance.Clauses[i] = append(instance.Clauses[i], sign*(1+int64(j)))
			}
		}

		if len(instance.Clauses[i]) == 0 {
			var sign int64 = 1
			if rand.Float32() < 0.5 {
				sign = -1
			}
			instance.Clauses[i] = append(instance.Clauses[i], sign*(1+rand.Int64N(int64(variables))))
		}
	}

	return instance
}

func AssertCNFSolution(instance CNF, solution Solution) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[int64]bool)
	for _, literal := range solution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range instance.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
