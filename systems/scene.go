package systems

import (
	"github.com/SythFlux/Donny-Portfolio/components"
	"github.com/SythFlux/Donny-Portfolio/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetSceneState returns the shared animation context, or nil before the scene exists.
func GetSceneState(e *ecs.ECS) *components.SceneStateData {
	entry, ok := components.SceneState.First(e.World)
	if !ok {
		return nil
	}
	return components.SceneState.Get(entry)
}

// GetFrame returns this frame's clock sample, or nil before the scene exists.
func GetFrame(e *ecs.ECS) *components.FrameData {
	entry, ok := components.Frame.First(e.World)
	if !ok {
		return nil
	}
	return components.Frame.Get(entry)
}

// GetCamera returns the camera entity.
func GetCamera(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Camera.First(e.World)
}

// OrbAt resolves an orb index through the arena table. Out-of-range or stale
// indices report false so callers can treat them as "no orb".
func OrbAt(e *ecs.ECS, idx int) (*donburi.Entry, bool) {
	state := GetSceneState(e)
	if state == nil || idx < 0 || idx >= len(state.Orbs) {
		return nil, false
	}
	entity := state.Orbs[idx]
	if !e.World.Valid(entity) {
		return nil, false
	}
	return e.World.Entry(entity), true
}

// eachOrb visits orbs in index order.
func eachOrb(e *ecs.ECS, fn func(entry *donburi.Entry)) {
	state := GetSceneState(e)
	if state == nil {
		return
	}
	for _, entity := range state.Orbs {
		if !e.World.Valid(entity) {
			continue
		}
		fn(e.World.Entry(entity))
	}
}

// refreshCameraQuat re-derives the camera orientation from its pose.
// A degenerate pose (eye on the target) keeps the previous orientation.
func refreshCameraQuat(cam *components.CameraData) {
	if cam.Target.Sub(cam.Position).Len() < 1e-9 {
		return
	}
	up := cam.Up
	if up.Len() < 1e-9 {
		up = mgl64.Vec3{0, 1, 0}
	}
	cam.Quat = mgl64.QuatLookAtV(cam.Position, cam.Target, up)
}

// setManualControl records and forwards the manual camera control state.
func setManualControl(cam *components.CameraData, controls Controls, enabled bool) {
	cam.ManualControl = enabled
	if controls != nil {
		controls.SetEnabled(enabled)
	}
}
