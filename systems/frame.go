package systems

import (
	"github.com/SythFlux/Donny-Portfolio/components"
	"github.com/SythFlux/Donny-Portfolio/theme"
	"github.com/yohamta/donburi/ecs"
)

// BeginFrame stores the clock sample, runs the intro and parallax
// collaborators and snapshots the theme for this frame. Without an intro the
// scene counts as already introduced.
func BeginFrame(e *ecs.ECS, t, dt float64, intro Intro, parallax Parallax, themes ThemeSource) {
	frame := GetFrame(e)
	state := GetSceneState(e)
	if frame == nil || state == nil {
		return
	}
	frame.T = t
	frame.Dt = dt
	frame.Count++

	if intro != nil {
		intro.Update(dt)
		state.IntroDone = intro.Done()
	} else {
		state.IntroDone = true
	}

	if parallax != nil {
		if camEntry, ok := GetCamera(e); ok {
			parallax.Update(components.Camera.Get(camEntry), dt)
		}
	}

	th := theme.Dark
	if themes != nil {
		th = themes.Current()
	}
	state.Dark = th.Dark
	state.Wire = th.Wire
	state.WireHover = th.WireHover
}

// UpdateEffects runs the secondary decorations after the orbs.
func UpdateEffects(e *ecs.ECS, effects Effects) {
	if effects == nil {
		return
	}
	frame := GetFrame(e)
	if frame == nil {
		return
	}
	effects.Update(frame.T, frame.Dt)
}

// UpdateControls lets the host's manual camera control move the camera. It
// runs after the transition and depth of field so idle sway composes on top.
func UpdateControls(e *ecs.ECS, controls Controls) {
	if controls == nil {
		return
	}
	camEntry, ok := GetCamera(e)
	if !ok {
		return
	}
	cam := components.Camera.Get(camEntry)
	controls.Update(cam)
	refreshCameraQuat(cam)
}
