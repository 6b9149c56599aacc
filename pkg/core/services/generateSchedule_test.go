package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/slotworks/shift-solver/pkg/core/roster"
	"github.com/slotworks/shift-solver/pkg/core/solver"
)

func weekProblem() *roster.Problem {
	p := &roster.Problem{
		Workers:  []roster.WorkerID{"alice", "bob", "carol", "dave"},
		Days:     []roster.Day{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Slots:    []roster.Slot{"Morning", "Afternoon", "Evening", "Night"},
		Coverage: make(map[roster.SlotKey]int),
		Caps: map[roster.WorkerID]int{
			"alice": 5, "bob": 5, "carol": 5, "dave": 5,
		},
	}
	for _, d := range p.Days {
		for _, s := range p.Slots {
			p.Coverage[roster.SlotKey{Day: d, Slot: s}] = 0
		}
	}
	// One worker each weekday morning and evening
	for _, d := range []roster.Day{"Mon", "Tue", "Wed", "Thu", "Fri"} {
		p.Coverage[roster.SlotKey{Day: d, Slot: "Morning"}] = 1
		p.Coverage[roster.SlotKey{Day: d, Slot: "Evening"}] = 1
	}
	return p
}

func TestGenerateSchedule_Solved(t *testing.T) {
	p := weekProblem()

	result, err := GenerateSchedule(context.Background(), zap.NewNop(), p, solver.Options{})
	require.NoError(t, err)

	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, solver.StatusSolved, result.Status)
	assert.Len(t, result.Assignment, 10)
	assert.Empty(t, result.Violations)
	assert.Greater(t, result.Elapsed, time.Duration(0))
}

func TestGenerateSchedule_InfeasibleIsNotAnError(t *testing.T) {
	p := weekProblem()
	p.Coverage[roster.SlotKey{Day: "Mon", Slot: "Morning"}] = 5 // only 4 workers exist

	result, err := GenerateSchedule(context.Background(), zap.NewNop(), p, solver.Options{})
	require.NoError(t, err, "Infeasibility is a result value, not a fault")
	assert.Equal(t, solver.StatusInfeasible, result.Status)
	assert.Nil(t, result.Assignment)
}

func TestGenerateSchedule_MalformedInputIsAnError(t *testing.T) {
	p := weekProblem()
	delete(p.Coverage, roster.SlotKey{Day: "Sun", Slot: "Night"})

	_, err := GenerateSchedule(context.Background(), zap.NewNop(), p, solver.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing coverage entry")
}

func TestGenerateSchedule_TimeoutReportsUndetermined(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := GenerateSchedule(ctx, zap.NewNop(), weekProblem(), solver.Options{})
	require.NoError(t, err)
	assert.Equal(t, solver.StatusUndetermined, result.Status)
}

func TestGenerateSchedule_FreshRunIDPerInvocation(t *testing.T) {
	p := weekProblem()

	first, err := GenerateSchedule(context.Background(), zap.NewNop(), p, solver.Options{})
	require.NoError(t, err)
	second, err := GenerateSchedule(context.Background(), zap.NewNop(), p, solver.Options{})
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
}
