package components

import (
	"github.com/SythFlux/Donny-Portfolio/label"
	"github.com/SythFlux/Donny-Portfolio/theme"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
)

// LabelData is the dotted name above an orb and its typewriter reveal
type LabelData struct {
	Dots      []label.Dot
	Total     int
	Revealed  float64 // non-decreasing, <= Total
	Done      bool
	DrawCount int

	Orientation mgl64.Quat // relative to the orb, so orb·label = camera
	Color       colorful.Color
	Opacity     float64
	Blend       theme.BlendMode
	NeedsUpdate bool // set when Blend changed this frame
}

var Label = donburi.NewComponentType[LabelData]()
