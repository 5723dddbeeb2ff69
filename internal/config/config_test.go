package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvstrip/spp/internal/config"
	"github.com/mvstrip/spp/order"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	assert.Equal(t, "results.txt", cfg.OutputPath)
	assert.Equal(t, []string{"WIDTH_HEIGHT"}, cfg.Strategies)
	assert.Positive(t, cfg.Bench.W)
}

func TestLoadFromReaderOverridesOnTopOfDefaults(t *testing.T) {
	src := `
output_path = "custom.txt"
strategies = ["RANDOM", "AREA_HEIGHT"]

[bench]
w = 20
res_low = 1
res_high = 6
time_low = 1
time_high = 6
n_from = 1
n_to = 3
n_step = 1
iterations = 2
seed = 5
`
	cfg, err := config.LoadFromReader(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "custom.txt", cfg.OutputPath)
	assert.Equal(t, []string{"RANDOM", "AREA_HEIGHT"}, cfg.Strategies)
	assert.Equal(t, 20, cfg.Bench.W)
	assert.Equal(t, 2, cfg.Bench.Iterations)
	assert.EqualValues(t, 5, cfg.Bench.Seed)
}

func TestStrategySet(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Strategies = []string{"RANDOM", "AREA_HEIGHT"}
	set, err := cfg.StrategySet()
	require.NoError(t, err)
	assert.True(t, set[order.Random])
	assert.True(t, set[order.AreaHeight])
	assert.False(t, set[order.Height])
}

func TestStrategySetRejectsUnknownTag(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Strategies = []string{"NOT_REAL"}
	_, err := cfg.StrategySet()
	assert.Error(t, err)
}

func TestLoadFromFileMissingReturnsDefault(t *testing.T) {
	cfg, err := config.LoadFromFile("/nonexistent/path/config.toml")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}
