package item_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvstrip/spp/item"
)

func TestNew(t *testing.T) {
	it, err := item.New(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, it.W)
	assert.Equal(t, 3, it.H)

	_, err = item.New(0, 3)
	assert.ErrorIs(t, err, item.ErrInvalidDimension)

	_, err = item.New(2, 0)
	assert.ErrorIs(t, err, item.ErrInvalidDimension)
}

func TestFits(t *testing.T) {
	it, err := item.New(5, 2)
	require.NoError(t, err)

	assert.True(t, it.Fits(5, false))
	assert.False(t, it.Fits(4, false))
	assert.True(t, it.Fits(3, true)) // rotated: H=2 <= 3
}

func TestAreaAndMinSide(t *testing.T) {
	it, err := item.New(4, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, it.Area())
	assert.Equal(t, 3, it.MinSide())
}

func TestNewInstance(t *testing.T) {
	a, _ := item.New(2, 2)
	b, _ := item.New(4, 3)
	inst, err := item.NewInstance(8, []item.Item{a, b}, false)
	require.NoError(t, err)
	assert.Equal(t, 8, inst.W)
	assert.Len(t, inst.Items, 2)
	assert.False(t, inst.Rotation)

	_, err = item.NewInstance(0, []item.Item{a}, false)
	assert.ErrorIs(t, err, item.ErrInvalidStripWidth)

	tooWide, _ := item.New(9, 1)
	_, err = item.NewInstance(8, []item.Item{tooWide}, false)
	assert.ErrorIs(t, err, item.ErrItemTooWide)

	// Rotation rescues an item whose height (not width) fits.
	rotatable, _ := item.New(9, 3)
	inst, err = item.NewInstance(8, []item.Item{rotatable}, true)
	require.NoError(t, err)
	assert.Len(t, inst.Items, 1)
}

func TestInstanceCloneIsIndependent(t *testing.T) {
	a, _ := item.New(2, 2)
	inst, err := item.NewInstance(8, []item.Item{a}, false)
	require.NoError(t, err)

	seq := inst.Clone()
	seq[0].X = 5
	assert.Equal(t, 0, inst.Items[0].X, "mutating the clone must not affect the instance")
}
