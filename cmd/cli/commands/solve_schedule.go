package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/slotworks/shift-solver/pkg/core/services"
	"github.com/slotworks/shift-solver/pkg/core/solver"
	"github.com/slotworks/shift-solver/pkg/problemfile"
)

// SolveCmd creates the solve command
func SolveCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a shift-assignment problem and print the schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			problemPath, _ := cmd.Flags().GetString("problem")
			outPath, _ := cmd.Flags().GetString("out")
			strategy, _ := cmd.Flags().GetString("strategy")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			problem, err := problemfile.Load(problemPath)
			if err != nil {
				return err
			}

			if strategy == "" {
				strategy = app.Cfg.Strategy
			}
			if timeout == 0 && app.Cfg.TimeoutSeconds > 0 {
				timeout = time.Duration(app.Cfg.TimeoutSeconds) * time.Second
			}

			ctx := app.Ctx
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			result, err := services.GenerateSchedule(ctx, app.Logger, problem, solver.Options{Strategy: strategy})
			if err != nil {
				return err
			}

			switch result.Status {
			case solver.StatusInfeasible:
				fmt.Println("\n✗ No feasible schedule exists for this problem.")
				return nil
			case solver.StatusUndetermined:
				fmt.Printf("\n? %s\n", undeterminedMessage(timeout))
				return nil
			}

			fmt.Printf("\n✓ Schedule generated (%d assignments, %s strategy, %s)\n\n",
				len(result.Assignment), result.Strategy, result.Elapsed.Round(time.Millisecond))

			currentDay := ""
			for _, sa := range result.Assignment {
				if string(sa.Day) != currentDay {
					currentDay = string(sa.Day)
					fmt.Printf("%s:\n", currentDay)
				}
				fmt.Printf("  %-12s %s\n", sa.Slot, sa.Worker)
			}
			fmt.Println()

			if outPath != "" {
				if err := problemfile.SaveSchedule(outPath, result.Assignment); err != nil {
					return err
				}
				fmt.Printf("Schedule written to %s\n", outPath)
			}

			return nil
		},
	}

	cmd.Flags().String("problem", "", "Path to the problem YAML file")
	cmd.Flags().String("out", "", "Write the schedule to this YAML file")
	cmd.Flags().String("strategy", "", "Solve strategy: auto, sat or search")
	cmd.Flags().Duration("timeout", 0, "Solve budget (e.g. 30s); 0 uses the config default")
	cmd.MarkFlagRequired("problem")

	return cmd
}

// undeterminedMessage describes an undetermined outcome. Runs without a
// budget can still end undetermined when the surrounding context is
// cancelled, so the message only names a deadline when one was set.
func undeterminedMessage(timeout time.Duration) string {
	if timeout > 0 {
		return fmt.Sprintf("Solve did not finish within %s - feasibility undetermined.", timeout)
	}
	return "Solve was interrupted - feasibility undetermined."
}
