package cli

import (
	"context"
	"io"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute builds the sppbench root command and runs it under ctx,
// logging to stderr at info level by default or debug level under
// --verbose.
func Execute(ctx context.Context, stderr io.Writer) error {
	return newRootCmd(stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree without executing it, so tests can
// drive it with SetArgs/SetOut instead of process-global os.Args.
func newRootCmd(stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "sppbench",
		Short:        "sppbench solves and benchmarks the two-dimensional strip-packing problem",
		Long: `sppbench is an exact branch-and-bound solver for the two-dimensional
strip-packing problem (corner-point placement, Martello-Vigo lower
bounds), plus a harness for comparing ordering heuristics across
randomly generated instances.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSolveCmd())
	root.AddCommand(newBenchCmd())
	root.AddCommand(newBoundsCmd())

	return root
}
