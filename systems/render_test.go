package systems

import (
	"testing"

	"github.com/SythFlux/Donny-Portfolio/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rendererRecorder struct{ frames []Snapshot }

func (r *rendererRecorder) Submit(s Snapshot) { r.frames = append(r.frames, s) }

func TestSnapshotCopiesState(t *testing.T) {
	e, rng := newTestScene(t, 3)
	require.True(t, OpenProject(e, 1, nil))
	BeginFrame(e, 1, frameDt, nil, nil, nil)
	UpdateOrbs(e, rng, nil)

	renderer := &rendererRecorder{}
	ForwardRender(e, renderer)
	require.Len(t, renderer.frames, 1)
	s := renderer.frames[0]

	assert.True(t, s.PanelOpen)
	assert.Equal(t, 1, s.FocusedIdx)
	require.Len(t, s.Orbs, 3)
	for i, o := range s.Orbs {
		assert.Equal(t, i, o.Index)
	}

	// Later frames must not leak into an earlier snapshot.
	components.Transform.Get(orb(t, e, 0)).Scale = 42
	assert.NotEqual(t, 42.0, s.Orbs[0].Transform.Scale)
}

func TestForwardRenderWithoutRenderer(t *testing.T) {
	e, _ := newTestScene(t, 1)
	assert.NotPanics(t, func() { ForwardRender(e, nil) })
}
