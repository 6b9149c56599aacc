package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/slotworks/shift-solver/pkg/core/roster"
	"github.com/slotworks/shift-solver/pkg/core/solver"
)

func TestCheckSchedule_SolverOutputIsValid(t *testing.T) {
	p := weekProblem()

	generated, err := GenerateSchedule(context.Background(), zap.NewNop(), p, solver.Options{})
	require.NoError(t, err)
	require.Equal(t, solver.StatusSolved, generated.Status)

	checked, err := CheckSchedule(zap.NewNop(), p, generated.Assignment)
	require.NoError(t, err)
	assert.True(t, checked.Valid)
	assert.Empty(t, checked.Violations)
}

func TestCheckSchedule_ReportsViolations(t *testing.T) {
	p := weekProblem()

	// Empty assignment misses every positive coverage requirement
	checked, err := CheckSchedule(zap.NewNop(), p, roster.Assignment{})
	require.NoError(t, err)

	assert.False(t, checked.Valid)
	assert.Len(t, checked.Violations, 10)
	for _, v := range checked.Violations {
		assert.Equal(t, solver.RuleCoverageEquality, v.Rule)
	}
}

func TestCheckSchedule_MalformedProblem(t *testing.T) {
	p := weekProblem()
	p.Workers = nil

	_, err := CheckSchedule(zap.NewNop(), p, roster.Assignment{})
	require.Error(t, err)
}
