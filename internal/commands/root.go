package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/flowly-app/budgeting_backend/internal/platform/config"
)

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "flowly",
	Short: "Flowly budgeting engine",
	Long:  "Flowly runs the household budgeting core: the allocation journal, cycle close orchestration, savings planning, and scheduled budget alert checks.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		slog.SetDefault(newLogger(cfg))
		return nil
	},
	SilenceUsage: true,
}

// newLogger builds the process logger: JSON in production, text for local
// runs, level taken from configuration.
func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsProduction {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// Execute runs the root command. It is the single entry point for the
// command layer.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
