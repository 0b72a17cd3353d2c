// Package picking projects orbs to the screen and finds the one under the pointer.
package picking

import (
	"math"

	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/go-gl/mathgl/mgl64"
)

// View is a camera's view and projection for a screen of W x H pixels.
// Screen coordinates have the origin top-left with y down.
type View struct {
	ViewM mgl64.Mat4
	Proj  mgl64.Mat4
	W, H  int
	Eye   mgl64.Vec3
}

// NewView builds the view of cam using the configured lens.
func NewView(cam components.CameraData, w, h int) View {
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / float64(h)
	}
	up := cam.Up
	if up.Len() == 0 {
		up = mgl64.Vec3{0, 1, 0}
	}
	return View{
		ViewM: mgl64.LookAtV(cam.Position, cam.Target, up),
		Proj:  mgl64.Perspective(mgl64.DegToRad(cfg.Camera.FOV), aspect, cfg.Camera.Near, cfg.Camera.Far),
		W:     w,
		H:     h,
		Eye:   cam.Position,
	}
}

// Project maps a world point to screen pixels. depth is the distance along
// the view axis; ok is false for points behind the camera.
func (v View) Project(p mgl64.Vec3) (x, y, depth float64, ok bool) {
	eye := v.ViewM.Mul4x1(p.Vec4(1))
	depth = -eye.Z()
	if depth <= 0 {
		return 0, 0, depth, false
	}
	win := mgl64.Project(p, v.ViewM, v.Proj, 0, 0, v.W, v.H)
	return win.X(), float64(v.H) - win.Y(), depth, true
}

// ProjectRadius is the on-screen radius of a sphere of radius r at p.
func (v View) ProjectRadius(p mgl64.Vec3, r float64) float64 {
	cx, cy, _, ok := v.Project(p)
	if !ok {
		return 0
	}
	camUp := v.ViewM.Row(1).Vec3()
	ex, ey, _, ok := v.Project(p.Add(camUp.Mul(r)))
	if !ok {
		return 0
	}
	return math.Hypot(ex-cx, ey-cy)
}

// Ray returns the world-space ray through screen pixel (x, y).
func (v View) Ray(x, y float64) (origin, dir mgl64.Vec3, err error) {
	wy := float64(v.H) - y
	near, err := mgl64.UnProject(mgl64.Vec3{x, wy, 0}, v.ViewM, v.Proj, 0, 0, v.W, v.H)
	if err != nil {
		return origin, dir, err
	}
	far, err := mgl64.UnProject(mgl64.Vec3{x, wy, 1}, v.ViewM, v.Proj, 0, 0, v.W, v.H)
	if err != nil {
		return origin, dir, err
	}
	return near, far.Sub(near).Normalize(), nil
}

// HitPoint intersects the ray with a sphere and returns the entry point in the
// sphere's local space (rotation and scale removed).
func HitPoint(origin, dir, center mgl64.Vec3, radius float64, rot mgl64.Quat, scale float64) (mgl64.Vec3, bool) {
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return mgl64.Vec3{}, false
	}
	t := -b - math.Sqrt(disc)
	if t < 0 {
		t = -b + math.Sqrt(disc)
	}
	if t < 0 {
		return mgl64.Vec3{}, false
	}
	world := origin.Add(dir.Mul(t))
	local := rot.Inverse().Rotate(world.Sub(center))
	if scale != 0 {
		local = local.Mul(1 / scale)
	}
	return local, true
}
