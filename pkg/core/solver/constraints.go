package solver

import (
	sat "github.com/crillab/gophersat/solver"
)

// PBConstraints encodes the model as pseudo-boolean constraints for the SAT
// strategy. Four families, all hard:
//
//  1. Exclusion: every unavailability-forced variable is pinned false.
//  2. Coverage equality: per cell, the sum over ALL workers' variables equals
//     the required headcount exactly (overstaffing is rejected too).
//  3. Per-day exclusivity: per worker and day, at most one slot variable true.
//  4. Workload cap: per worker, at most cap variables true across the period.
//
// Everything is expressed through at-least constraints (sat.GtEq); an
// at-most bound is an at-least over the negated literals.
func (m *Model) PBConstraints() []sat.PBConstr {
	var constrs []sat.PBConstr

	// 1. Exclusion
	for v, excluded := range m.Excluded {
		if excluded {
			constrs = append(constrs, atLeast([]int{-(v + 1)}, 1))
		}
	}

	// 2. Coverage equality, over the uniform per-cell summation domain
	for c, cell := range m.Cells {
		lits := make([]int, len(m.Problem.Workers))
		for w := range m.Problem.Workers {
			lits[w] = m.Variable(w, c)
		}
		if cell.Required > 0 {
			constrs = append(constrs, atLeast(lits, cell.Required))
		}
		if cell.Required < len(lits) {
			constrs = append(constrs, atMost(lits, cell.Required))
		}
	}

	// 3. Per-day exclusivity
	if len(m.Problem.Slots) > 1 {
		for w := range m.Problem.Workers {
			for d := range m.Problem.Days {
				lits := make([]int, len(m.Problem.Slots))
				for s := range m.Problem.Slots {
					lits[s] = m.Variable(w, d*len(m.Problem.Slots)+s)
				}
				constrs = append(constrs, atMost(lits, 1))
			}
		}
	}

	// 4. Workload cap; exclusivity already bounds a worker at one shift per
	// day, so caps at or above the day count cannot bind
	for w, worker := range m.Problem.Workers {
		workloadCap := m.Problem.Caps[worker]
		if workloadCap >= len(m.Problem.Days) {
			continue
		}
		lits := make([]int, len(m.Cells))
		for c := range m.Cells {
			lits[c] = m.Variable(w, c)
		}
		constrs = append(constrs, atMost(lits, workloadCap))
	}

	return constrs
}

// atLeast constrains at least n of the given literals to be true
func atLeast(lits []int, n int) sat.PBConstr {
	return sat.GtEq(lits, unitWeights(len(lits)), n)
}

// atMost constrains at most n of the given literals to be true,
// rewritten as an at-least over the negated literals
func atMost(lits []int, n int) sat.PBConstr {
	negated := make([]int, len(lits))
	for i, lit := range lits {
		negated[i] = -lit
	}
	return sat.GtEq(negated, unitWeights(len(lits)), len(lits)-n)
}

func unitWeights(n int) []int {
	weights := make([]int, n)
	for i := range weights {
		weights[i] = 1
	}
	return weights
}
