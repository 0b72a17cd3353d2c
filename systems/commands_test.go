package systems

import (
	"testing"

	"github.com/SythFlux/Donny-Portfolio/components"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidIndicesAreDropped(t *testing.T) {
	e, _ := newTestScene(t, 2)

	assert.NotPanics(t, func() {
		Hover(e, -1, true)
		Hover(e, 2, true)
		SetHitPoint(e, 5, mgl64.Vec3{1, 0, 0})
	})
	assert.False(t, OpenProject(e, 9, nil))
	assert.False(t, GetSceneState(e).PanelOpen)
	_, ok := OrbAt(e, 2)
	assert.False(t, ok)
}

func TestCloseWhenClosedIsNoop(t *testing.T) {
	e, _ := newTestScene(t, 2)
	controls := &controlsRecorder{}

	assert.False(t, CloseProject(e, controls))
	assert.Empty(t, controls.enabled)
	assert.False(t, components.FlyTo.Get(camera(t, e)).Active)
}

func TestOpenSameProjectTwiceIsNoop(t *testing.T) {
	e, _ := newTestScene(t, 2)
	require.True(t, OpenProject(e, 1, nil))
	assert.False(t, OpenProject(e, 1, nil))
}

func TestOpenHoversFocusedAndUnhoversPrevious(t *testing.T) {
	e, _ := newTestScene(t, 3)

	require.True(t, OpenProject(e, 0, nil))
	assert.True(t, components.Hover.Get(orb(t, e, 0)).Hovered)

	require.True(t, OpenProject(e, 2, nil))
	assert.False(t, components.Hover.Get(orb(t, e, 0)).Hovered)
	assert.True(t, components.Hover.Get(orb(t, e, 2)).Hovered)
	assert.Equal(t, 2, GetSceneState(e).FocusedIdx)
}

func TestFocusedOrbIgnoresHoverOff(t *testing.T) {
	e, _ := newTestScene(t, 2)
	require.True(t, OpenProject(e, 1, nil))

	Hover(e, 1, false)
	assert.True(t, components.Hover.Get(orb(t, e, 1)).Hovered)

	Hover(e, 0, true)
	Hover(e, 0, false)
	assert.False(t, components.Hover.Get(orb(t, e, 0)).Hovered)
}

func TestSavedPoseSurvivesProjectSwitch(t *testing.T) {
	e, _ := newTestScene(t, 3)
	cam := components.Camera.Get(camera(t, e))
	startPos := cam.Position

	require.True(t, OpenProject(e, 0, nil))
	runTransition(e, nil, 120)
	require.True(t, OpenProject(e, 1, nil))

	state := GetSceneState(e)
	assert.True(t, state.HasSaved)
	assert.Equal(t, startPos, state.SavedPos)
	assert.NotEqual(t, startPos, cam.Position)
}

func TestNavigateWraps(t *testing.T) {
	e, _ := newTestScene(t, 4)

	assert.False(t, Navigate(e, 1, nil), "navigate needs an open panel")

	require.True(t, OpenProject(e, 0, nil))
	require.True(t, Navigate(e, -1, nil))
	assert.Equal(t, 3, GetSceneState(e).FocusedIdx)

	require.True(t, Navigate(e, 1, nil))
	assert.Equal(t, 0, GetSceneState(e).FocusedIdx)
}

func TestProcessCommandsAppliesInOrder(t *testing.T) {
	e, _ := newTestScene(t, 3)
	entry, ok := components.CommandQueue.First(e.World)
	require.True(t, ok)
	queue := components.CommandQueue.Get(entry)

	queue.Post(components.Command{Kind: components.CommandOpen, Index: 0})
	queue.Post(components.Command{Kind: components.CommandNavigate, Dir: 1})
	queue.Post(components.Command{Kind: components.CommandHitPoint, Index: 1, Point: mgl64.Vec3{0, 1, 0}})
	queue.Post(components.Command{Kind: components.CommandKind(99)})

	ProcessCommands(e, nil)

	state := GetSceneState(e)
	assert.Equal(t, 1, state.FocusedIdx)
	wave := components.Wave.Get(orb(t, e, 1))
	assert.True(t, wave.HasHit)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, wave.HitPoint)
	assert.Empty(t, queue.Drain())
}

func TestCommandKindString(t *testing.T) {
	assert.Equal(t, "open", components.CommandOpen.String())
	assert.Equal(t, "unknown", components.CommandKind(42).String())
}
