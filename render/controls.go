package render

import (
	"math"

	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	minDistance = 8.0
	maxDistance = 40.0
	maxPitch    = 1.3 // radians above or below the horizon
	zoomStep    = 1.08
	clickSlop   = 4.0 // pixels a press may move and still count as a click
)

// OrbitControls rotates the camera around its target while the left mouse
// button is held and zooms with the wheel.
type OrbitControls struct {
	enabled bool

	dragging       bool
	lastX, lastY   int
	pressX, pressY int
	travelled      float64
}

func NewOrbitControls() *OrbitControls {
	return &OrbitControls{enabled: true}
}

// SetEnabled implements systems.Controls. Disabling cancels a drag in progress.
func (c *OrbitControls) SetEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled {
		c.dragging = false
	}
}

func (c *OrbitControls) Enabled() bool {
	return c.enabled
}

// Dragged reports whether the current or last press moved far enough to be
// an orbit rather than a click.
func (c *OrbitControls) Dragged() bool {
	return c.travelled > clickSlop
}

// Update implements systems.Controls.
func (c *OrbitControls) Update(cam *components.CameraData) {
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if pressed && !c.dragging {
		c.dragging = true
		c.lastX, c.lastY = x, y
		c.pressX, c.pressY = x, y
		c.travelled = 0
	}
	if !pressed {
		c.dragging = false
	}
	if !c.enabled {
		return
	}

	offset := cam.Position.Sub(cam.Target)
	if c.dragging {
		dx, dy := float64(x-c.lastX), float64(y-c.lastY)
		c.lastX, c.lastY = x, y
		c.travelled = math.Max(c.travelled, math.Hypot(float64(x-c.pressX), float64(y-c.pressY)))
		offset = orbit(offset, -dx*cfg.Camera.OrbitSpeed, -dy*cfg.Camera.OrbitSpeed)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		dist := offset.Len()
		if wy > 0 {
			dist /= zoomStep
		} else {
			dist *= zoomStep
		}
		offset = offset.Normalize().Mul(mgl64.Clamp(dist, minDistance, maxDistance))
	}

	cam.Position = cam.Target.Add(offset)
}

// orbit turns offset by yaw around world up and by pitch toward the poles,
// keeping it away from straight up or down.
func orbit(offset mgl64.Vec3, yaw, pitch float64) mgl64.Vec3 {
	r := offset.Len()
	if r == 0 {
		return offset
	}
	theta := math.Atan2(offset.X(), offset.Z()) + yaw
	phi := math.Asin(mgl64.Clamp(offset.Y()/r, -1, 1)) - pitch
	phi = mgl64.Clamp(phi, -maxPitch, maxPitch)
	return mgl64.Vec3{
		r * math.Cos(phi) * math.Sin(theta),
		r * math.Sin(phi),
		r * math.Cos(phi) * math.Cos(theta),
	}
}
