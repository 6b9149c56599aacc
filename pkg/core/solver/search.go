package solver

import (
	"context"
)

// cancelCheckInterval is how many search nodes are expanded between
// cooperative context checks
const cancelCheckInterval = 256

// SearchStrategy decides feasibility with a systematic backtracking search
// tailored to the four constraint families.
//
// The search fills one day × slot cell at a time, always attacking the cell
// with the least slack (fewest eligible workers beyond its requirement), and
// enumerates worker combinations in roster order, which makes the search
// order - and therefore the found assignment - deterministic. Propagation is
// the eligible-versus-need rule: the moment any unfilled cell has fewer
// still-eligible workers than it still needs, the branch is abandoned.
//
// Exponential in the worst case, as the problem family demands, but the
// propagation keeps it practical at the expected scale of dozens of workers
// over a week of slots.
type SearchStrategy struct{}

func (SearchStrategy) Name() string {
	return StrategySearch
}

// Solve runs the backtracking search to completion or until ctx ends
func (SearchStrategy) Solve(ctx context.Context, m *Model) (Result, error) {
	if ctx.Err() != nil {
		return Result{Status: StatusUndetermined, Strategy: StrategySearch}, nil
	}

	st := newSearchState(m)
	found, err := st.expand(ctx)
	if err != nil {
		// Context ended mid-search: feasibility is undecided
		return Result{Status: StatusUndetermined, Strategy: StrategySearch}, nil
	}
	if !found {
		return Result{Status: StatusInfeasible, Strategy: StrategySearch}, nil
	}

	return Result{
		Status:     StatusSolved,
		Assignment: ExtractAssignment(m, st.bindings),
		Strategy:   StrategySearch,
	}, nil
}

// searchState is the mutable state of one backtracking run.
// It lives for a single Solve call and is never shared.
type searchState struct {
	m *Model

	// bindings is the truth assignment under construction, variable-1 indexed
	bindings []bool

	// filled marks cells whose requirement has been met
	filled []bool

	// remainingCap is each worker's remaining workload budget
	remainingCap []int

	// dayTaken marks (worker, day) pairs already holding a shift,
	// indexed workerIdx*|days|+dayIdx
	dayTaken []bool

	nodes int
}

func newSearchState(m *Model) *searchState {
	st := &searchState{
		m:            m,
		bindings:     make([]bool, m.VarCount()),
		filled:       make([]bool, len(m.Cells)),
		remainingCap: make([]int, len(m.Problem.Workers)),
		dayTaken:     make([]bool, len(m.Problem.Workers)*len(m.Problem.Days)),
	}
	for w, worker := range m.Problem.Workers {
		st.remainingCap[w] = m.Problem.Caps[worker]
	}
	return st
}

// expand fills the next cell, backtracking over worker combinations.
// Returns true once every cell is filled, false when this subtree is
// exhausted, or the context error when cancelled.
func (st *searchState) expand(ctx context.Context) (bool, error) {
	st.nodes++
	if st.nodes%cancelCheckInterval == 0 {
		if err := ctx.Err(); err != nil {
			return false, err
		}
	}

	cellIdx, ok := st.nextCell()
	if !ok {
		return true, nil
	}

	cell := &st.m.Cells[cellIdx]
	candidates := st.availableWorkers(cell)
	if len(candidates) < cell.Required {
		return false, nil
	}

	st.filled[cellIdx] = true
	found, err := st.chooseWorkers(ctx, cell, candidates, 0, cell.Required)
	if found || err != nil {
		return found, err
	}
	st.filled[cellIdx] = false
	return false, nil
}

// chooseWorkers assigns `needed` workers to the cell from candidates[start:],
// in roster order, recursing into expand once the cell is complete
func (st *searchState) chooseWorkers(ctx context.Context, cell *Cell, candidates []int, start, needed int) (bool, error) {
	if needed == 0 {
		return st.expand(ctx)
	}

	for i := start; i+needed <= len(candidates); i++ {
		w := candidates[i]
		st.assign(w, cell)
		found, err := st.chooseWorkers(ctx, cell, candidates, i+1, needed-1)
		if found || err != nil {
			// Keep the satisfying bindings intact on the way out;
			// only dead ends are undone
			return found, err
		}
		st.unassign(w, cell)
	}
	return false, nil
}

// nextCell picks the unfilled cell with the least slack between its
// still-eligible workers and its requirement. Attacking the tightest cell
// first both fails fast on deficits and shrinks the branching factor.
func (st *searchState) nextCell() (int, bool) {
	bestIdx := -1
	bestSlack := 0
	for c := range st.m.Cells {
		if st.filled[c] {
			continue
		}
		cell := &st.m.Cells[c]
		slack := len(st.availableWorkers(cell)) - cell.Required
		if bestIdx == -1 || slack < bestSlack {
			bestIdx = c
			bestSlack = slack
		}
	}
	return bestIdx, bestIdx != -1
}

// availableWorkers returns the cell's eligible workers that still have
// workload budget and no shift on the cell's day, in roster order
func (st *searchState) availableWorkers(cell *Cell) []int {
	available := make([]int, 0, len(cell.Eligible))
	for _, w := range cell.Eligible {
		if st.remainingCap[w] == 0 {
			continue
		}
		if st.dayTaken[w*len(st.m.Problem.Days)+cell.DayIndex] {
			continue
		}
		available = append(available, w)
	}
	return available
}

func (st *searchState) assign(w int, cell *Cell) {
	st.bindings[st.m.Variable(w, cell.Index)-1] = true
	st.remainingCap[w]--
	st.dayTaken[w*len(st.m.Problem.Days)+cell.DayIndex] = true
}

func (st *searchState) unassign(w int, cell *Cell) {
	st.bindings[st.m.Variable(w, cell.Index)-1] = false
	st.remainingCap[w]++
	st.dayTaken[w*len(st.m.Problem.Days)+cell.DayIndex] = false
}
