package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/runbook/internal/adapters/logging"
	"github.com/felixgeelhaar/runbook/internal/app"
	"github.com/felixgeelhaar/runbook/internal/domain/settings"
	"github.com/felixgeelhaar/runbook/internal/domain/state"
	"github.com/felixgeelhaar/runbook/internal/ports"
)

var (
	// Global flags
	verbose      bool
	settingsPath string
)

var rootCmd = &cobra.Command{
	Use:   "runbook",
	Short: "Execute half-automated plans",
	Long: `Runbook executes plans: YAML documents describing steps, their
dependencies, and the variables they share.

A plan mixes prompts for a human, external commands, and variable
assignments. Steps that do not depend on each other run in a random
order on purpose, to tease out undeclared dependencies before a
procedure is automated for good. A failed run leaves a checkpoint that
'runbook resume' picks up.`,
	SilenceErrors: true, // We handle error formatting ourselves
	SilenceUsage:  true, // Don't show usage on error
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", settings.DefaultFile, "settings file")
}

// newApp builds the application from settings and global flags.
func newApp(out io.Writer) (*app.Runbook, error) {
	cfg, err := settings.Load(settingsPath)
	if err != nil {
		return nil, err
	}

	level := ports.ParseLevel(cfg.LogLevel)
	if verbose {
		level = ports.LevelDebug
	}
	logger := logging.NewConsoleLogger(logging.WithLevel(level))

	rb := app.New(out).
		WithLogger(logger).
		WithStore(state.NewStore(cfg.CheckpointDir)).
		WithDryRun(cfg.DryRun)

	return rb, nil
}

// printError prints an error message to stderr.
func printError(err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
}
