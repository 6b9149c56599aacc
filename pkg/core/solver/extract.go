package solver

import (
	"github.com/slotworks/shift-solver/pkg/core/roster"
)

// ExtractAssignment reads a satisfying truth assignment back into the flat
// list of (worker, day, slot) triples downstream consumers expect.
//
// bindings is indexed by variable-1, as returned by the strategies.
//
// Ordering is stable and reproducible: cells in day order then slot order,
// workers in roster order within a cell, so identical bindings always
// produce byte-identical output.
func ExtractAssignment(m *Model, bindings []bool) roster.Assignment {
	assignment := make(roster.Assignment, 0, len(bindings))

	for c, cell := range m.Cells {
		for w, worker := range m.Problem.Workers {
			v := m.Variable(w, c)
			if v <= len(bindings) && bindings[v-1] {
				assignment = append(assignment, roster.ShiftAssignment{
					Worker: worker,
					Day:    cell.Day,
					Slot:   cell.Slot,
				})
			}
		}
	}

	return assignment
}
