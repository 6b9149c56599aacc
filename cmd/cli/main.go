package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/slotworks/shift-solver/cmd/cli/commands"
	"github.com/slotworks/shift-solver/internal/config"
	"github.com/slotworks/shift-solver/pkg/utils/logging"
)

var app = &commands.AppContext{Ctx: context.Background()}

func main() {
	rootCmd := &cobra.Command{
		Use:   "shift-solver",
		Short: "Shift Solver CLI - Assign workers to shift slots",
		Long:  `A CLI tool for solving shift-assignment problems: exact coverage per day and slot, worker unavailability, per-day exclusivity and workload caps.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.AddCommand(commands.SolveCmd(app))
	rootCmd.AddCommand(commands.CheckCmd(app))
	rootCmd.AddCommand(commands.CalendarCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up environment, config and logger
func initApp() error {
	// Optional .env for local overrides such as SHIFT_SOLVER_LOG_DIR
	godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.InitLogger(cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Cfg = cfg
	app.Logger = logger

	logger.Debug("Application initialized")
	return nil
}
