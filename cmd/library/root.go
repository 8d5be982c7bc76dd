package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/patterns"
	"github.com/aretw0/patterns/internal/shell"
)

var (
	verbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "library",
	Short: "An interactive in-memory book catalog",
	Long: `Library reads commands (add, remove, show, exit) from standard input.
Books live in memory only and are gone when the program exits.`,
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
		logger := slog.Default()

		manager, err := patterns.New(
			patterns.WithLogger(logger),
			patterns.WithOutput(cmd.OutOrStdout()),
		)
		if err != nil {
			return fmt.Errorf("failed to initialize library: %w", err)
		}

		session := shell.NewSession(manager, cmd.InOrStdin(), cmd.OutOrStdout(), shell.WithLogger(logger))
		err = session.Run(cmd.Context())
		logger.Debug("library state", "session", session.ID(), "state", manager.State())
		return err
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
