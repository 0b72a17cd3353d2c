package systems

import (
	"log/slog"

	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/SythFlux/Donny-Portfolio/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const epsilon = 1e-9

// restingPosition is the camera position without this frame's idle sway.
// Transitions work in this space and add the sway back when they write.
func restingPosition(cam *components.CameraData, sway *components.IdleSwayData) mgl64.Vec3 {
	return cam.Position.Sub(sway.Prev)
}

// FlyInPose places the camera FocusDistance away from the orb along the
// current viewing direction, shifted sideways and lifted so a side panel does
// not cover the orb. The camera looks at the orb.
func FlyInPose(camPos, up, orbPos mgl64.Vec3) (pos, look mgl64.Vec3) {
	dir := camPos.Sub(orbPos)
	if dir.Len() < epsilon {
		dir = mgl64.Vec3{0, 0, 1}
	}
	dir = dir.Normalize()

	right := dir.Cross(up)
	if right.Len() < epsilon {
		right = mgl64.Vec3{1, 0, 0}
	}
	right = right.Normalize()

	pos = orbPos.
		Add(dir.Mul(cfg.Camera.FocusDistance)).
		Add(right.Mul(cfg.Camera.SideOffset)).
		Add(mgl64.Vec3{0, cfg.Camera.Lift, 0})
	return pos, orbPos
}

// StartFlyIn begins a transition from the current pose toward orbPos and
// hands the camera over from manual control.
func StartFlyIn(camEntry *donburi.Entry, orbPos mgl64.Vec3, controls Controls) {
	cam := components.Camera.Get(camEntry)
	sway := components.IdleSway.Get(camEntry)
	from := restingPosition(cam, sway)
	to, lookTo := FlyInPose(from, cam.Up, orbPos)
	startTransition(camEntry, to, lookTo, false)
	setManualControl(cam, controls, false)
}

// StartFlyOut begins a transition back to a saved pose. Manual control comes
// back once it completes.
func StartFlyOut(camEntry *donburi.Entry, to, lookTo mgl64.Vec3, controls Controls) {
	cam := components.Camera.Get(camEntry)
	startTransition(camEntry, to, lookTo, true)
	setManualControl(cam, controls, false)
}

func startTransition(camEntry *donburi.Entry, to, lookTo mgl64.Vec3, returning bool) {
	cam := components.Camera.Get(camEntry)
	sway := components.IdleSway.Get(camEntry)
	fly := components.FlyTo.Get(camEntry)

	fly.From = restingPosition(cam, sway)
	fly.LookFrom = cam.Target
	fly.To = to
	fly.LookTo = lookTo
	fly.T = 0
	fly.Active = true
	fly.Returning = returning
}

// UpdateCameraTransition advances the active transition and writes the eased
// pose. At T >= 1 the transition stops; a returning flight re-enables manual
// control.
func UpdateCameraTransition(e *ecs.ECS, controls Controls) {
	camEntry, ok := GetCamera(e)
	if !ok {
		return
	}
	fly := components.FlyTo.Get(camEntry)
	if !fly.Active {
		return
	}
	frame := GetFrame(e)
	if frame == nil {
		return
	}
	cam := components.Camera.Get(camEntry)
	sway := components.IdleSway.Get(camEntry)

	fly.T += frame.Dt * cfg.Camera.FlyRate
	if fly.T >= 1 {
		fly.T = 1
		fly.Active = false
		if fly.Returning {
			setManualControl(cam, controls, true)
		}
		slog.Debug("camera transition finished", "returning", fly.Returning)
	}

	eased := gamemath.EaseInOutCubic(fly.T)
	// Idle sway subtracts Prev later this frame; add it here so the pose lands exactly.
	cam.Position = gamemath.LerpVec3(fly.From, fly.To, eased).Add(sway.Prev)
	cam.Target = gamemath.LerpVec3(fly.LookFrom, fly.LookTo, eased)
	refreshCameraQuat(cam)
}
