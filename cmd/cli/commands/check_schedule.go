package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slotworks/shift-solver/pkg/core/services"
	"github.com/slotworks/shift-solver/pkg/problemfile"
)

// CheckCmd creates the check command
func CheckCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify a stored schedule against its problem's constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			problemPath, _ := cmd.Flags().GetString("problem")
			schedulePath, _ := cmd.Flags().GetString("schedule")

			problem, err := problemfile.Load(problemPath)
			if err != nil {
				return err
			}

			assignment, err := problemfile.LoadSchedule(schedulePath)
			if err != nil {
				return err
			}

			result, err := services.CheckSchedule(app.Logger, problem, assignment)
			if err != nil {
				return err
			}

			if result.Valid {
				fmt.Printf("\n✓ Schedule is valid (%d assignments)\n", len(assignment))
				return nil
			}

			fmt.Printf("\n✗ Schedule has %d constraint violations:\n\n", len(result.Violations))
			for _, v := range result.Violations {
				fmt.Printf("  [%s] %s\n", v.Rule, v.Description)
			}
			fmt.Println()
			return fmt.Errorf("schedule failed verification")
		},
	}

	cmd.Flags().String("problem", "", "Path to the problem YAML file")
	cmd.Flags().String("schedule", "", "Path to the schedule YAML file")
	cmd.MarkFlagRequired("problem")
	cmd.MarkFlagRequired("schedule")

	return cmd
}
