package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

var graphOutput string

var graphCmd = &cobra.Command{
	Use:   "graph FILE",
	Short: "Render a plan's dependency graph as GraphViz DOT",
	Long: `Graph renders the dependency graph of a plan definition or a
checkpoint file. Node shapes encode the step kind and fill colors the
step state, so graphing a checkpoint shows where a run got stuck.`,
	Args: cobra.ExactArgs(1),
	RunE: runGraph,
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().StringVarP(&graphOutput, "output", "o", "", "write DOT to file instead of stdout")
}

func runGraph(_ *cobra.Command, args []string) error {
	rb, err := newApp(os.Stdout)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if graphOutput != "" {
		f, err := os.Create(graphOutput)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	return rb.Graph(args[0], w)
}
