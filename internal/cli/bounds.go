package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvstrip/spp/bound"
)

// newBoundsCmd reports the two admissible lower bounds for a set of
// items against a strip width, without running the search at all —
// useful for sanity-checking an instance before committing to a full
// solve.
func newBoundsCmd() *cobra.Command {
	var (
		width int
		items []string
	)

	cmd := &cobra.Command{
		Use:   "bounds",
		Short: "print the continuous and first lower bounds for an instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			parsed, err := parseItems(items)
			if err != nil {
				return err
			}

			con := bound.Continuous(parsed, width)
			first := bound.First(parsed, width)

			logger.Info("bounds", "n", len(parsed), "width", width, "con_bound", con, "first_bound", first)
			fmt.Fprintf(cmd.OutOrStdout(), "con_bound=%d first_bound=%d\n", con, first)

			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "strip width (required)")
	cmd.Flags().StringSliceVar(&items, "items", nil, "comma-separated WxH items, e.g. 4x3,2x2")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("items")

	return cmd
}
