package services

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/slotworks/shift-solver/pkg/core/roster"
	"github.com/slotworks/shift-solver/pkg/core/solver"
)

// CheckScheduleResult contains the outcome of verifying a stored schedule
type CheckScheduleResult struct {
	Valid      bool
	Violations []solver.RuleViolation
}

// CheckSchedule verifies an existing assignment against a problem's
// constraints without running the solver. Used to audit schedules edited or
// stored outside the solver.
func CheckSchedule(
	logger *zap.Logger,
	problem *roster.Problem,
	assignment roster.Assignment,
) (*CheckScheduleResult, error) {
	if err := problem.Validate(); err != nil {
		return nil, fmt.Errorf("failed to validate problem: %w", err)
	}

	logger.Debug("Checking schedule",
		zap.Int("assignments", len(assignment)),
		zap.Int("cells", problem.CellCount()))

	violations := solver.VerifySchedule(problem, assignment)

	if len(violations) > 0 {
		logger.Warn("Schedule has constraint violations",
			zap.Int("violations", len(violations)))
	} else {
		logger.Info("Schedule is valid")
	}

	return &CheckScheduleResult{
		Valid:      len(violations) == 0,
		Violations: violations,
	}, nil
}
