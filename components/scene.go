package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
)

// SceneStateData is the shared animation context: panel and focus state plus
// the index table of the orb arena.
type SceneStateData struct {
	PanelOpen  bool
	FocusedIdx int // -1 when nothing is focused
	IntroDone  bool

	SavedPos    mgl64.Vec3
	SavedTarget mgl64.Vec3
	HasSaved    bool

	Orbs []donburi.Entity // orb index -> entity

	Dark      bool
	Wire      colorful.Color
	WireHover colorful.Color
}

var SceneState = donburi.NewComponentType[SceneStateData]()

// Focused reports whether orb idx is the one shown in the open panel.
func (s *SceneStateData) Focused(idx int) bool {
	return s.PanelOpen && s.FocusedIdx == idx
}

// FrameData is this frame's clock sample
type FrameData struct {
	T     float64 // elapsed seconds
	Dt    float64 // clamped delta
	Count int
}

var Frame = donburi.NewComponentType[FrameData]()
