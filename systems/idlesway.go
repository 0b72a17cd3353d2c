package systems

import (
	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/SythFlux/Donny-Portfolio/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateIdleSway wobbles the camera while nothing else is happening. The
// previous offset is removed before the new one is applied, so the camera
// never drifts however long it runs.
func UpdateIdleSway(e *ecs.ECS) {
	state := GetSceneState(e)
	frame := GetFrame(e)
	camEntry, ok := GetCamera(e)
	if state == nil || frame == nil || !ok {
		return
	}
	cam := components.Camera.Get(camEntry)
	sway := components.IdleSway.Get(camEntry)
	fly := components.FlyTo.Get(camEntry)

	idle := state.IntroDone && !state.PanelOpen && !fly.Active
	if idle {
		sway.Weight = gamemath.Approach(sway.Weight, 1, cfg.Sway.Rise)
	} else {
		sway.Weight = gamemath.Approach(sway.Weight, 0, cfg.Sway.Fall)
	}

	cam.Position = cam.Position.Sub(sway.Prev)
	sway.Prev = gamemath.SineOffset(frame.T, sway.Amp, sway.Freq, sway.Phase, sway.Weight)
	cam.Position = cam.Position.Add(sway.Prev)
	refreshCameraQuat(cam)
}
