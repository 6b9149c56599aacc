package solver

import (
	"context"

	sat "github.com/crillab/gophersat/solver"
)

// SATStrategy decides feasibility by encoding the model as pseudo-boolean
// constraints and delegating the search to the gophersat engine.
//
// The engine is optimization-capable but no objective is ever attached:
// this is a pure feasibility problem and the first satisfying model is
// accepted as-is.
type SATStrategy struct{}

func (SATStrategy) Name() string {
	return StrategySAT
}

// Solve runs the SAT search to completion or until ctx ends.
//
// The engine's search is not interruptible mid-flight, so on cancellation
// the run is abandoned: the goroutine finishes on its own and is collected,
// and since all solver state is local to this call nothing process-wide is
// left corrupted.
func (SATStrategy) Solve(ctx context.Context, m *Model) (Result, error) {
	if ctx.Err() != nil {
		return Result{Status: StatusUndetermined, Strategy: StrategySAT}, nil
	}

	type outcome struct {
		status   sat.Status
		bindings []bool
	}

	done := make(chan outcome, 1)
	go func() {
		pb := sat.ParsePBConstrs(m.PBConstraints())
		engine := sat.New(pb)
		status := engine.Solve()
		var bindings []bool
		if status == sat.Sat {
			bindings = engine.Model()
		}
		done <- outcome{status: status, bindings: bindings}
	}()

	select {
	case <-ctx.Done():
		return Result{Status: StatusUndetermined, Strategy: StrategySAT}, nil
	case out := <-done:
		switch out.status {
		case sat.Sat:
			return Result{
				Status:     StatusSolved,
				Assignment: ExtractAssignment(m, out.bindings),
				Strategy:   StrategySAT,
			}, nil
		case sat.Unsat:
			return Result{Status: StatusInfeasible, Strategy: StrategySAT}, nil
		default:
			return Result{Status: StatusUndetermined, Strategy: StrategySAT}, nil
		}
	}
}
