package scenes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimedIntro(t *testing.T) {
	intro := NewTimedIntro(1)
	assert.False(t, intro.Done())
	assert.Zero(t, intro.Progress())

	intro.Update(0.5)
	assert.False(t, intro.Done())
	assert.InDelta(t, 0.5, intro.Progress(), 1e-12)

	intro.Update(0.6)
	assert.True(t, intro.Done())
	assert.Equal(t, 1.0, intro.Progress())
}

func TestZeroDurationIntroIsDone(t *testing.T) {
	intro := NewTimedIntro(0)
	assert.True(t, intro.Done())
	assert.Equal(t, 1.0, intro.Progress())
}
