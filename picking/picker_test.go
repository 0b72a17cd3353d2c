package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPickChoosesNearestOverlappingDisc(t *testing.T) {
	p := NewPicker(800, 600)
	p.Sync([]Target{
		{Index: 0, X: 100, Y: 100, R: 40, Depth: 20},
		{Index: 1, X: 120, Y: 100, R: 40, Depth: 10},
		{Index: 2, X: 500, Y: 300, R: 30, Depth: 5},
	})

	idx, ok := p.Pick(110, 100)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = p.Pick(70, 100)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = p.Pick(505, 295)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestPickMissesBoxCorners(t *testing.T) {
	p := NewPicker(800, 600)
	p.Sync([]Target{{Index: 0, X: 200, Y: 200, R: 50, Depth: 10}})

	// Inside the bounding box but outside the disc.
	_, ok := p.Pick(155, 155)
	assert.False(t, ok)

	_, ok = p.Pick(700, 500)
	assert.False(t, ok)
}

func TestSyncRemovesVanishedTargets(t *testing.T) {
	p := NewPicker(800, 600)
	p.Sync([]Target{{Index: 0, X: 100, Y: 100, R: 20}, {Index: 1, X: 300, Y: 300, R: 20}})
	p.Sync([]Target{{Index: 1, X: 300, Y: 300, R: 20}})

	_, ok := p.Pick(100, 100)
	assert.False(t, ok)
	idx, ok := p.Pick(300, 300)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestSyncMovesTargets(t *testing.T) {
	p := NewPicker(800, 600)
	p.Sync([]Target{{Index: 3, X: 100, Y: 100, R: 20}})
	p.Sync([]Target{{Index: 3, X: 600, Y: 400, R: 20}})

	_, ok := p.Pick(100, 100)
	assert.False(t, ok)
	idx, ok := p.Pick(600, 400)
	assert.True(t, ok)
	assert.Equal(t, 3, idx)
}
