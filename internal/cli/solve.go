package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mvstrip/spp/item"
	"github.com/mvstrip/spp/order"
	"github.com/mvstrip/spp/spp"
)

// ErrMalformedItem indicates an --items entry isn't in WxH form.
var ErrMalformedItem = errors.New("cli: item must be given as WxH, e.g. 4x3")

func newSolveCmd() *cobra.Command {
	var (
		width    int
		rotation bool
		strategy string
		items    []string
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "solve one strip-packing instance and print the result",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			strat, err := order.ParseStrategy(strategy)
			if err != nil {
				return err
			}

			parsed, err := parseItems(items)
			if err != nil {
				return err
			}

			inst, err := item.NewInstance(width, parsed, rotation)
			if err != nil {
				return err
			}

			opts := spp.DefaultOptions()
			opts.Strategy = strat

			logger.Info("solving", "n", len(parsed), "width", width, "rotation", rotation, "strategy", strat)

			res, err := spp.Solve(inst, opts)
			if err != nil {
				return err
			}

			logger.Info("solved", "height", res.Height, "outcome", res.Outcome, "nodes", res.Nodes, "elapsed", res.Elapsed)
			fmt.Fprintf(cmd.OutOrStdout(), "height=%d outcome=%s elapsed=%s\n", res.Height, res.Outcome, res.Elapsed)

			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "strip width (required)")
	cmd.Flags().BoolVar(&rotation, "rotation", false, "allow 90-degree rotation")
	cmd.Flags().StringVar(&strategy, "strategy", order.HeightWidth.String(), "ordering strategy")
	cmd.Flags().StringSliceVar(&items, "items", nil, "comma-separated WxH items, e.g. 4x3,2x2")
	cmd.MarkFlagRequired("width")
	cmd.MarkFlagRequired("items")

	return cmd
}

// parseItems turns "4x3" style tokens into validated Items.
//
// Complexity: O(len(tokens)).
func parseItems(tokens []string) ([]item.Item, error) {
	out := make([]item.Item, 0, len(tokens))
	for _, tok := range tokens {
		w, h, ok := strings.Cut(tok, "x")
		if !ok {
			return nil, ErrMalformedItem
		}

		wi, err := strconv.Atoi(strings.TrimSpace(w))
		if err != nil {
			return nil, ErrMalformedItem
		}
		hi, err := strconv.Atoi(strings.TrimSpace(h))
		if err != nil {
			return nil, ErrMalformedItem
		}

		it, err := item.New(wi, hi)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}

	return out, nil
}
