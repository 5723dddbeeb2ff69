package cli

import (
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mvstrip/spp/internal/bench"
	"github.com/mvstrip/spp/internal/config"
	"github.com/mvstrip/spp/internal/resultsfile"
)

func newBenchCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "run the ordering-strategy compare harness and write a results file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			runID := uuid.New()

			var (
				cfg *config.Config
				err error
			)
			if configPath != "" {
				cfg, err = config.LoadFromFile(configPath)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}

			strategies, err := cfg.StrategySet()
			if err != nil {
				return err
			}

			logger.Info("bench starting", "run_id", runID, "n_from", cfg.Bench.NFrom, "n_to", cfg.Bench.NTo, "iterations", cfg.Bench.Iterations)

			rows, err := bench.Compare(cfg.Bench, strategies)
			if err != nil {
				return err
			}

			f, err := os.Create(cfg.OutputPath)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := resultsfile.Write(f, rows); err != nil {
				return err
			}

			logger.Info("bench complete", "run_id", runID, "rows", len(rows), "output", cfg.OutputPath)

			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file (default: search $XDG_CONFIG_HOME/sppbench, ~/.config/sppbench)")

	return cmd
}
