package spp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvstrip/spp/item"
	"github.com/mvstrip/spp/order"
	"github.com/mvstrip/spp/spp"
)

func TestNodeBudgetStopsSearchAndReportsBudgetExhausted(t *testing.T) {
	dims := make([][2]int, 8)
	for i := range dims {
		dims[i] = [2]int{2, 2}
	}
	inst := mkInstance(t, 6, dims, false)

	opts := spp.DefaultOptions()
	opts.Strategy = order.AllPermutations
	opts.NodeBudget = 1
	res, err := spp.Solve(inst, opts)
	require.NoError(t, err)
	assert.Equal(t, spp.BudgetExhausted, res.Outcome)
}

func TestTimeBudgetIsHonoredEventually(t *testing.T) {
	dims := make([][2]int, 7)
	for i := range dims {
		dims[i] = [2]int{2, 3}
	}
	inst := mkInstance(t, 5, dims, false)

	opts := spp.DefaultOptions()
	opts.Strategy = order.AllPermutations
	opts.TimeBudget = time.Microsecond
	res, err := spp.Solve(inst, opts)
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Elapsed, 5*time.Second)
}

func TestDebugOptionValidatesEveryImprovement(t *testing.T) {
	inst := mkInstance(t, 8, [][2]int{{2, 2}, {1, 1}, {4, 3}, {4, 1}}, false)
	opts := spp.DefaultOptions()
	opts.Debug = true
	assert.NotPanics(t, func() {
		_, err := spp.Solve(inst, opts)
		require.NoError(t, err)
	})
}

func TestRotationSolveLeavesInstanceUnchanged(t *testing.T) {
	items := []item.Item{}
	for _, d := range [][2]int{{1, 3}, {3, 1}} {
		it, err := item.New(d[0], d[1])
		require.NoError(t, err)
		items = append(items, it)
	}
	inst, err := item.NewInstance(3, items, true)
	require.NoError(t, err)

	before := make([]item.Item, len(inst.Items))
	copy(before, inst.Items)

	_, err = spp.Solve(inst, spp.DefaultOptions())
	require.NoError(t, err)

	// Solve must never mutate the caller's Instance.
	assert.Equal(t, before, inst.Items)
}
