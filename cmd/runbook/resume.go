package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume FILE",
	Short: "Continue a plan from a checkpoint",
	Long: `Resume reloads the plan referenced by a checkpoint file, reapplies
the saved step states and variable values, and continues execution.
Steps that had failed are retried; completed steps are not re-run.`,
	Args: cobra.ExactArgs(1),
	RunE: runResume,
}

func init() {
	rootCmd.AddCommand(resumeCmd)
}

func runResume(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rb, err := newApp(os.Stdout)
	if err != nil {
		return err
	}

	return rb.Resume(ctx, args[0])
}
