package systems

import (
	"github.com/SythFlux/Donny-Portfolio/components"
	"github.com/SythFlux/Donny-Portfolio/harmonics"
	"github.com/SythFlux/Donny-Portfolio/label"
	"github.com/SythFlux/Donny-Portfolio/theme"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// LabelSnapshot is what a renderer needs to draw one label. Dots is shared
// with the scene and must not be modified.
type LabelSnapshot struct {
	Dots        []label.Dot
	DrawCount   int
	Orientation mgl64.Quat
	Color       colorful.Color
	Opacity     float64
	Blend       theme.BlendMode
	NeedsUpdate bool
}

// OrbSnapshot is the render-facing state of one orb.
type OrbSnapshot struct {
	Index     int
	Transform components.TransformData
	Uniforms  components.UniformsData
	Core      components.CoreData
	Shape     harmonics.Coeffs
	BaseR     float64
	Label     LabelSnapshot
}

// Snapshot is the final state of a frame, handed to the renderer.
type Snapshot struct {
	Frame      components.FrameData
	Camera     components.CameraData
	DOF        components.DepthOfFieldData
	PanelOpen  bool
	FocusedIdx int
	Dark       bool
	Orbs       []OrbSnapshot
}

// TakeSnapshot copies the current scene state.
func TakeSnapshot(e *ecs.ECS) Snapshot {
	var s Snapshot
	state := GetSceneState(e)
	if state == nil {
		return s
	}
	s.PanelOpen = state.PanelOpen
	s.FocusedIdx = state.FocusedIdx
	s.Dark = state.Dark
	if frame := GetFrame(e); frame != nil {
		s.Frame = *frame
	}
	if camEntry, ok := GetCamera(e); ok {
		s.Camera = *components.Camera.Get(camEntry)
		s.DOF = *components.DepthOfField.Get(camEntry)
	}

	s.Orbs = make([]OrbSnapshot, 0, len(state.Orbs))
	eachOrb(e, func(entry *donburi.Entry) {
		orb := components.Orb.Get(entry)
		lbl := components.Label.Get(entry)
		s.Orbs = append(s.Orbs, OrbSnapshot{
			Index:     orb.Index,
			Transform: *components.Transform.Get(entry),
			Uniforms:  *components.Uniforms.Get(entry),
			Core:      *components.Core.Get(entry),
			Shape:     components.Morph.Get(entry).Mixed,
			BaseR:     orb.BaseR,
			Label: LabelSnapshot{
				Dots:        lbl.Dots,
				DrawCount:   lbl.DrawCount,
				Orientation: lbl.Orientation,
				Color:       lbl.Color,
				Opacity:     lbl.Opacity,
				Blend:       lbl.Blend,
				NeedsUpdate: lbl.NeedsUpdate,
			},
		})
	})
	return s
}

// ForwardRender hands this frame's snapshot to the renderer.
func ForwardRender(e *ecs.ECS, renderer Renderer) {
	if renderer == nil {
		return
	}
	renderer.Submit(TakeSnapshot(e))
}
