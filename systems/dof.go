package systems

import (
	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/SythFlux/Donny-Portfolio/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDepthOfField smooths focus distance and aperture toward the focused
// orb, or toward a sharp far focus when nothing is focused, and forwards them.
func UpdateDepthOfField(e *ecs.ECS, postfx PostFX) {
	state := GetSceneState(e)
	camEntry, ok := GetCamera(e)
	if state == nil || !ok {
		return
	}
	cam := components.Camera.Get(camEntry)
	dof := components.DepthOfField.Get(camEntry)

	targetAperture := 0.0
	targetFocus := cfg.DOF.FarFocus
	if state.PanelOpen {
		if orb, ok := OrbAt(e, state.FocusedIdx); ok {
			targetFocus = cam.Position.Sub(components.Transform.Get(orb).Position).Len()
			targetAperture = cfg.DOF.Aperture
		}
	}

	dof.Focus = gamemath.Approach(dof.Focus, targetFocus, cfg.DOF.FocusRate)
	dof.Aperture = gamemath.Approach(dof.Aperture, targetAperture, cfg.DOF.ApertureRate)

	if postfx != nil {
		postfx.SetDOFFocus(dof.Focus, dof.Aperture)
	}
}
