package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/slotworks/shift-solver/pkg/core/roster"
	"github.com/slotworks/shift-solver/pkg/core/solver"
)

// GenerateScheduleResult contains the outcome of one schedule generation run
type GenerateScheduleResult struct {
	RunID      string
	Status     solver.Status
	Strategy   string
	Assignment roster.Assignment
	Violations []solver.RuleViolation
	Elapsed    time.Duration
}

// GenerateSchedule runs the constraint solver for one scheduling period.
//
// The caller assembles the problem (roster, calendar grid, exclusions,
// coverage targets, workload caps) and owns the returned assignment;
// persisting or displaying it is the caller's responsibility.
//
// Infeasibility and timeout are reported through Result.Status, never as
// errors. An error means malformed input or a misconfigured run.
func GenerateSchedule(
	ctx context.Context,
	logger *zap.Logger,
	problem *roster.Problem,
	opts solver.Options,
) (*GenerateScheduleResult, error) {
	runID := uuid.NewString()
	log := logger.With(zap.String("run_id", runID))

	log.Info("Starting schedule generation",
		zap.Int("workers", len(problem.Workers)),
		zap.Int("days", len(problem.Days)),
		zap.Int("slots", len(problem.Slots)),
		zap.Int("variables", problem.VariableCount()),
		zap.String("strategy", opts.Strategy))

	start := time.Now()
	result, err := solver.Solve(ctx, problem, opts)
	elapsed := time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("failed to solve schedule: %w", err)
	}

	log.Info("Solver finished",
		zap.String("status", result.Status.String()),
		zap.String("strategy", result.Strategy),
		zap.Duration("elapsed", elapsed))

	outcome := &GenerateScheduleResult{
		RunID:      runID,
		Status:     result.Status,
		Strategy:   result.Strategy,
		Assignment: result.Assignment,
		Violations: []solver.RuleViolation{},
		Elapsed:    elapsed,
	}

	if result.Status != solver.StatusSolved {
		return outcome, nil
	}

	// Verification belt: a sound strategy never produces violations, so any
	// finding here is a solver defect worth surfacing loudly
	outcome.Violations = solver.VerifySchedule(problem, result.Assignment)
	if len(outcome.Violations) > 0 {
		log.Error("Solver returned an unsound assignment",
			zap.Int("violations", len(outcome.Violations)))
		return outcome, fmt.Errorf("solver returned an assignment with %d constraint violations", len(outcome.Violations))
	}

	log.Info("Schedule generated",
		zap.Int("assignments", len(outcome.Assignment)))

	return outcome, nil
}
