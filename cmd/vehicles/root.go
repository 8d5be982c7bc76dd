package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/patterns/internal/fleet"
	"github.com/aretw0/patterns/pkg/vehicle"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vehicles",
	Short: "Build region-specific vehicles and start their engines",
	Long: `Vehicles asks the US and EU factories for a car and a motorcycle
and starts each engine. Every start is reported as one log line.`,
	Args: cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest, err := fleet.Default()
		if err != nil {
			return fmt.Errorf("failed to load fleet: %w", err)
		}
		slog.Debug("fleet loaded", "vehicles", len(manifest.Vehicles))

		if _, err := manifest.Start(vehicle.WithLogger(slog.Default())); err != nil {
			return fmt.Errorf("failed to start fleet: %w", err)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
