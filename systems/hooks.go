package systems

import (
	"github.com/SythFlux/Donny-Portfolio/components"
	"github.com/SythFlux/Donny-Portfolio/harmonics"
	"github.com/SythFlux/Donny-Portfolio/theme"
)

// ShapeSink rebuilds an orb's geometry from its blended coefficients.
type ShapeSink interface {
	Morph(index int, coeffs harmonics.Coeffs, baseR float64)
}

// Intro drives the opening animation and reports when it has finished.
type Intro interface {
	Update(dt float64)
	Done() bool
}

// Parallax nudges the camera from pointer input before the orbs update.
type Parallax interface {
	Update(cam *components.CameraData, dt float64)
}

// Effects runs secondary scene decorations (particles, constellation lines).
type Effects interface {
	Update(t, dt float64)
}

// PostFX receives the smoothed depth of field parameters.
type PostFX interface {
	SetDOFFocus(focus, aperture float64)
}

// Controls is the manual camera control (orbit/drag) owned by the host.
type Controls interface {
	SetEnabled(enabled bool)
	Update(cam *components.CameraData)
}

// ThemeSource exposes the active palette.
type ThemeSource interface {
	Current() theme.Theme
}

// Renderer receives the final state of every frame.
type Renderer interface {
	Submit(s Snapshot)
}

// Hooks bundles the external collaborators. Every field is optional.
type Hooks struct {
	Shape    ShapeSink
	Intro    Intro
	Parallax Parallax
	Effects  Effects
	PostFX   PostFX
	Controls Controls
	Theme    ThemeSource
	Renderer Renderer
}
