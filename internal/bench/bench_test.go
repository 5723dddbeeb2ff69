package bench_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvstrip/spp/internal/bench"
	"github.com/mvstrip/spp/order"
)

func TestCompareProducesOneRowPerN(t *testing.T) {
	p := bench.Params{
		W: 6, ResLow: 1, ResHigh: 3, TimeLow: 1, TimeHigh: 3,
		NFrom: 2, NTo: 4, NStep: 1, Iterations: 2, Seed: 9,
	}
	rows, err := bench.Compare(p, bench.DefaultStrategies())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 2, rows[0].N)
	assert.Equal(t, 3, rows[1].N)
	assert.Equal(t, 4, rows[2].N)
}

func TestCompareOnlyRunsSelectedStrategies(t *testing.T) {
	p := bench.Params{
		W: 6, ResLow: 1, ResHigh: 3, TimeLow: 1, TimeHigh: 3,
		NFrom: 2, NTo: 2, NStep: 1, Iterations: 2, Seed: 9,
	}
	rows, err := bench.Compare(p, map[order.Strategy]bool{order.HeightWidth: true})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].RandomHeight)
	assert.Zero(t, rows[0].Syn1Height)
	assert.Positive(t, rows[0].HWHeight)
}

func TestCompareExactNeverBelowContinuousBound(t *testing.T) {
	p := bench.Params{
		W: 5, ResLow: 1, ResHigh: 4, TimeLow: 1, TimeHigh: 4,
		NFrom: 3, NTo: 3, NStep: 1, Iterations: 3, Seed: 123,
	}
	rows, err := bench.Compare(p, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.LessOrEqual(t, rows[0].ConBound, rows[0].ExactHeight)
	assert.LessOrEqual(t, rows[0].FirstBound, rows[0].ExactHeight)
}

func TestCompareIsDeterministicForASeed(t *testing.T) {
	p := bench.Params{
		W: 6, ResLow: 1, ResHigh: 3, TimeLow: 1, TimeHigh: 3,
		NFrom: 2, NTo: 3, NStep: 1, Iterations: 2, Seed: 77,
	}
	a, err := bench.Compare(p, bench.DefaultStrategies())
	require.NoError(t, err)
	b, err := bench.Compare(p, bench.DefaultStrategies())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCompareRejectsInvalidParams(t *testing.T) {
	_, err := bench.Compare(bench.Params{}, nil)
	assert.ErrorIs(t, err, bench.ErrInvalidParams)
}
