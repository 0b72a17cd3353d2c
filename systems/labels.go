package systems

import (
	"math"

	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/SythFlux/Donny-Portfolio/gamemath"
	"github.com/SythFlux/Donny-Portfolio/theme"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLabels billboards each orb's label toward the camera and advances its
// typewriter reveal. Runs after UpdateOrbs so it sees this frame's orb state.
func UpdateLabels(e *ecs.ECS) {
	state := GetSceneState(e)
	frame := GetFrame(e)
	if state == nil || frame == nil {
		return
	}
	camQuat := mgl64.QuatIdent()
	if camEntry, ok := GetCamera(e); ok {
		camQuat = components.Camera.Get(camEntry).Quat
	}
	blend := theme.BlendNormal
	if state.Dark {
		blend = theme.BlendAdditive
	}

	eachOrb(e, func(entry *donburi.Entry) {
		orb := components.Orb.Get(entry)
		hover := components.Hover.Get(entry)
		lbl := components.Label.Get(entry)
		focused := state.Focused(orb.Index)

		// Undo the orb's own rotation, then take on the camera's.
		lbl.Orientation = components.Transform.Get(entry).Quat.Inverse().Mul(camQuat)

		advanceReveal(lbl, orb.Index, frame.T, frame.Dt)

		if hover.Hovered || focused {
			lbl.Color = lbl.Color.BlendRgb(state.WireHover, cfg.Label.ColorRise)
		} else {
			lbl.Color = lbl.Color.BlendRgb(state.Wire, cfg.Label.ColorFall)
		}

		target := cfg.Label.BaseOpacity + hover.T*cfg.Label.HoverOpacity
		if state.PanelOpen && !focused {
			target = 0
		}
		lbl.Opacity = gamemath.Approach(lbl.Opacity, target, cfg.Label.OpacityRate)

		lbl.NeedsUpdate = lbl.Blend != blend
		lbl.Blend = blend
	})
}

// advanceReveal uncovers DotsPerSec dots per second once the orb's staggered
// delay has passed. Revealed never decreases and stops at Total.
func advanceReveal(lbl *components.LabelData, index int, t, dt float64) {
	if lbl.Done {
		return
	}
	delay := float64(index)*cfg.Label.Stagger + cfg.Label.Delay
	if t <= delay {
		return
	}
	lbl.Revealed = math.Min(lbl.Revealed+dt*cfg.Label.DotsPerSec, float64(lbl.Total))
	lbl.DrawCount = int(math.Floor(lbl.Revealed))
	if lbl.Revealed >= float64(lbl.Total) {
		lbl.Done = true
	}
}
