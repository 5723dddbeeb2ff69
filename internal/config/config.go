// Package config loads the TOML-driven harness configuration: the strip
// width and instance-size ranges, iteration count, which ordering
// strategies to run besides the always-run exact search, and where to
// write the results file.
//
// Grounded on Jesssullivan-pp/pkg/config/load.go's search-path lookup
// (XDG config dir, then a user config dir fallback, then in-code
// defaults) and toml.NewDecoder(r).Decode pattern, and
// matzehuels-stacktower/pkg/deps/*/poetry.go's straight toml.Decode call
// for the simpler single-file case this package also exposes via
// LoadFromFile.
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mvstrip/spp/internal/bench"
	"github.com/mvstrip/spp/order"
)

// Config is the complete harness configuration.
type Config struct {
	Bench      bench.Params `toml:"bench"`
	Strategies []string     `toml:"strategies"`
	OutputPath string       `toml:"output_path"`
}

// DefaultConfig returns the configuration used when no config file is
// found: a small instance-size sweep with the original driver's default
// active arm (WIDTH_HEIGHT), results written to results.txt.
func DefaultConfig() *Config {
	return &Config{
		Bench: bench.Params{
			W: 10, ResLow: 1, ResHigh: 5, TimeLow: 1, TimeHigh: 5,
			NFrom: 2, NTo: 8, NStep: 1, Iterations: 5, Seed: 1,
		},
		Strategies: []string{"WIDTH_HEIGHT"},
		OutputPath: "results.txt",
	}
}

// StrategySet resolves cfg.Strategies into the map bench.Compare expects,
// rejecting any tag that isn't a known order.Strategy.
//
// Complexity: O(len(cfg.Strategies)).
func (cfg *Config) StrategySet() (map[order.Strategy]bool, error) {
	set := make(map[order.Strategy]bool, len(cfg.Strategies))
	for _, tag := range cfg.Strategies {
		s, err := order.ParseStrategy(tag)
		if err != nil {
			return nil, err
		}
		set[s] = true
	}

	return set, nil
}

// Load searches, in order, $XDG_CONFIG_HOME/sppbench/config.toml and
// ~/.config/sppbench/config.toml, loading the first one found. If
// neither exists, DefaultConfig is returned.
//
// Complexity: O(1) stats plus O(file size) decode.
func Load() (*Config, error) {
	for _, p := range searchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}

	return DefaultConfig(), nil
}

// LoadFromFile reads configuration from a specific path. A missing file
// is not an error: DefaultConfig is returned, matching Load's fallback.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}

		return nil, err
	}
	defer f.Close()

	return LoadFromReader(f)
}

// LoadFromReader decodes TOML from r on top of DefaultConfig, so a
// config file only needs to override the fields it cares about.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// searchPaths returns the config lookup order: $XDG_CONFIG_HOME first,
// then ~/.config, both under a "sppbench" subdirectory.
func searchPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "sppbench", "config.toml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "sppbench", "config.toml"))
	}

	return paths
}
