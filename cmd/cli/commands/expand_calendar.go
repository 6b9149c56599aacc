package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/slotworks/shift-solver/pkg/problemfile"
)

// CalendarCmd creates the calendar command
func CalendarCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Expand a recurrence rule into the day labels a problem would use",
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, _ := cmd.Flags().GetString("rrule")
			start, _ := cmd.Flags().GetString("start")
			count, _ := cmd.Flags().GetInt("count")

			days, err := problemfile.ExpandCalendar(&problemfile.CalendarSpec{
				RRule: rule,
				Start: start,
				Count: count,
			})
			if err != nil {
				return err
			}

			for i, day := range days {
				fmt.Printf("  %2d. %s\n", i+1, day)
			}
			return nil
		},
	}

	cmd.Flags().String("rrule", "FREQ=DAILY", "RFC 5545 recurrence rule")
	cmd.Flags().String("start", "", "First candidate date (2006-01-02)")
	cmd.Flags().Int("count", 7, "Number of days to generate")
	cmd.MarkFlagRequired("start")

	return cmd
}
