package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var runDryRun bool

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Load a plan and execute it",
	Long: `Run loads a plan definition and executes its steps until nothing
further is eligible.

On failure the current state is checkpointed to a new file and the
command reports how to resume from it. An interrupt stops the run
cleanly without writing a checkpoint.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "report commands without invoking them")
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rb, err := newApp(os.Stdout)
	if err != nil {
		return err
	}
	if runDryRun {
		rb = rb.WithDryRun(true)
	}

	return rb.Run(ctx, args[0])
}
