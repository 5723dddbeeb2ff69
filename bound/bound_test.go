package bound_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvstrip/spp/bound"
	"github.com/mvstrip/spp/item"
)

func mk(t *testing.T, pairs [][2]int) []item.Item {
	t.Helper()
	out := make([]item.Item, len(pairs))
	for i, p := range pairs {
		it, err := item.New(p[0], p[1])
		require.NoError(t, err)
		out[i] = it
	}

	return out
}

func TestContinuous(t *testing.T) {
	items := mk(t, [][2]int{{2, 2}, {1, 1}, {4, 3}, {4, 1}})
	// areas: 4+1+12+4 = 21, W=8 -> ceil(21/8)=3
	assert.Equal(t, 3, bound.Continuous(items, 8))
}

func TestContinuousEmpty(t *testing.T) {
	assert.Equal(t, 0, bound.Continuous(nil, 8))
}

func TestFirstNonNegativeAndBoundedByOptimum(t *testing.T) {
	// Scenario 2 from SPEC_FULL.md: W=4, three (4,1) items, optimum=3.
	items := mk(t, [][2]int{{4, 1}, {4, 1}, {4, 1}})
	fb := bound.First(items, 4)
	assert.GreaterOrEqual(t, fb, 0)
	assert.LessOrEqual(t, fb, 3)
}

func TestFirstMatchesContinuousLowerBoundIntuition(t *testing.T) {
	// Three items exactly filling a level each: W=3, items width 3.
	items := mk(t, [][2]int{{3, 2}, {3, 2}, {3, 2}})
	fb := bound.First(items, 3)
	assert.Equal(t, 6, fb) // each item alone occupies a full-width level
}
