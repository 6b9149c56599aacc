package solver

import (
	"context"
	"fmt"

	"github.com/slotworks/shift-solver/pkg/core/roster"
)

// Status is the outcome category of one solving run
type Status int

const (
	// StatusSolved means a satisfying assignment was found
	StatusSolved Status = iota

	// StatusInfeasible means the search space was exhausted with no
	// satisfying assignment; a legitimate outcome, not a fault
	StatusInfeasible

	// StatusUndetermined means the run was cancelled or timed out before
	// feasibility could be decided either way
	StatusUndetermined
)

func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusInfeasible:
		return "infeasible"
	case StatusUndetermined:
		return "undetermined"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the outcome of one solving run.
// Assignment is non-nil only when Status is StatusSolved.
type Result struct {
	Status     Status
	Assignment roster.Assignment

	// Strategy names the strategy that produced the decision
	Strategy string
}

// Strategy is a procedure that decides feasibility of a built model.
// Implementations must be sound (returned assignments satisfy every
// constraint) and must report StatusUndetermined rather than guessing
// when the context ends first.
type Strategy interface {
	Name() string
	Solve(ctx context.Context, m *Model) (Result, error)
}

// Strategy names accepted by Options.Strategy
const (
	StrategyAuto   = "auto"
	StrategySAT    = "sat"
	StrategySearch = "search"
)

// Options configures one solving run
type Options struct {
	// Strategy selects the solve procedure: StrategySAT, StrategySearch,
	// or StrategyAuto (default) which races both and takes the first
	// definitive answer
	Strategy string
}

// Solve builds the model for the given problem and runs the selected
// strategy. It returns an error only for malformed input or an unknown
// strategy name; infeasibility and timeout are normal result values.
//
// The solver is a pure function of its inputs: no state survives the call,
// so identical inputs always yield a feasible assignment when one exists,
// though not necessarily the same one.
func Solve(ctx context.Context, p *roster.Problem, opts Options) (Result, error) {
	m, err := BuildModel(p)
	if err != nil {
		return Result{}, err
	}

	// A cell that already lacks eligible workers proves infeasibility
	// without any search
	if _, deficient := m.DeficientCell(); deficient {
		return Result{Status: StatusInfeasible, Strategy: "precheck"}, nil
	}

	switch opts.Strategy {
	case StrategySAT:
		return SATStrategy{}.Solve(ctx, m)
	case StrategySearch:
		return SearchStrategy{}.Solve(ctx, m)
	case StrategyAuto, "":
		return solvePortfolio(ctx, m, SATStrategy{}, SearchStrategy{})
	default:
		return Result{}, fmt.Errorf("unknown solve strategy %q", opts.Strategy)
	}
}

// solvePortfolio races the given strategies against each other. Each works
// from the shared read-only model with its own private state; the only
// coordination point is the result channel. The first definitive answer
// (solved or infeasible) wins and cancels the rest; any feasible assignment
// is acceptable, so first-found-wins needs no further arbitration.
func solvePortfolio(ctx context.Context, m *Model, strategies ...Strategy) (Result, error) {
	raceCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan Result, len(strategies))
	for _, strategy := range strategies {
		go func(s Strategy) {
			res, err := s.Solve(raceCtx, m)
			if err != nil {
				// Strategy failures degrade to undetermined so the
				// race can still be decided by the others
				res = Result{Status: StatusUndetermined, Strategy: s.Name()}
			}
			results <- res
		}(strategy)
	}

	undetermined := 0
	for {
		select {
		case <-ctx.Done():
			return Result{Status: StatusUndetermined}, nil
		case res := <-results:
			if res.Status != StatusUndetermined {
				return res, nil
			}
			undetermined++
			if undetermined == len(strategies) {
				return res, nil
			}
		}
	}
}
