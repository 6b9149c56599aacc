package solver

import (
	"github.com/slotworks/shift-solver/pkg/core/roster"
)

// Cell is one day × slot position in the calendar grid
type Cell struct {
	Day  roster.Day
	Slot roster.Slot

	// Index of the cell in day-major order (day order, then slot order)
	Index int

	// DayIndex is the position of the cell's day in the problem's day order
	DayIndex int

	// Required is the exact headcount for this cell
	Required int

	// Eligible holds the roster indices of workers not excluded from this
	// cell, in roster order
	Eligible []int
}

// Model is the constraint-satisfaction formulation of a roster problem:
// one boolean decision variable per (worker, day, slot) triple, plus the
// lookup tables the solve strategies share.
//
// Variables are numbered 1..VarCount so they double as SAT literals.
// No variable is ever omitted - excluded triples keep their variable and a
// constraint forces it false - so every cell sums over the same worker set.
type Model struct {
	Problem *roster.Problem

	// Cells in day-major order; Cells[c].Index == c
	Cells []Cell

	// Excluded is indexed by variable-1 and marks unavailability-forced variables
	Excluded []bool

	workerIndex map[roster.WorkerID]int
}

// BuildModel converts a validated problem into its variable space.
// It fails only on malformed input, returning the *roster.InvalidInputError
// from Problem.Validate; feasibility is the strategies' concern.
func BuildModel(p *roster.Problem) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m := &Model{
		Problem:     p,
		Cells:       make([]Cell, 0, p.CellCount()),
		Excluded:    make([]bool, p.VariableCount()),
		workerIndex: make(map[roster.WorkerID]int, len(p.Workers)),
	}

	for i, w := range p.Workers {
		m.workerIndex[w] = i
	}

	for di, d := range p.Days {
		for _, s := range p.Slots {
			m.Cells = append(m.Cells, Cell{
				Day:      d,
				Slot:     s,
				Index:    len(m.Cells),
				DayIndex: di,
				Required: p.Coverage[roster.SlotKey{Day: d, Slot: s}],
			})
		}
	}

	for _, u := range p.Unavailable {
		cellIdx := m.cellIndex(u.Day, u.Slot)
		workerIdx := m.workerIndex[u.Worker]
		m.Excluded[m.Variable(workerIdx, cellIdx)-1] = true
	}

	// Eligible worker lists per cell, in roster order
	for c := range m.Cells {
		cell := &m.Cells[c]
		cell.Eligible = make([]int, 0, len(p.Workers))
		for w := range p.Workers {
			if !m.Excluded[m.Variable(w, c)-1] {
				cell.Eligible = append(cell.Eligible, w)
			}
		}
	}

	return m, nil
}

// VarCount returns the number of boolean decision variables
func (m *Model) VarCount() int {
	return m.Problem.VariableCount()
}

// Variable returns the 1-based variable identifier for a (worker, cell) pair
func (m *Model) Variable(workerIdx, cellIdx int) int {
	return workerIdx*len(m.Cells) + cellIdx + 1
}

// DeficientCell returns the first cell whose eligible-worker count is already
// below its requirement. Such a cell proves infeasibility before any search:
// the same eligible-versus-need propagation rule the search strategy applies,
// evaluated at depth zero.
func (m *Model) DeficientCell() (Cell, bool) {
	for _, cell := range m.Cells {
		if len(cell.Eligible) < cell.Required {
			return cell, true
		}
	}
	return Cell{}, false
}

func (m *Model) cellIndex(d roster.Day, s roster.Slot) int {
	di := 0
	for i, day := range m.Problem.Days {
		if day == d {
			di = i
			break
		}
	}
	si := 0
	for i, slot := range m.Problem.Slots {
		if slot == s {
			si = i
			break
		}
	}
	return di*len(m.Problem.Slots) + si
}
