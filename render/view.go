// Package render draws the orb field with ebiten and hosts the desktop-side
// collaborators: depth of field, orbit controls and the starfield.
package render

import (
	"image/color"
	"math"
	"sort"
	"sync"

	"github.com/SythFlux/Donny-Portfolio/assets"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/SythFlux/Donny-Portfolio/picking"
	"github.com/SythFlux/Donny-Portfolio/systems"
	"github.com/SythFlux/Donny-Portfolio/theme"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	outlineSegments = 96
	dotSize         = 1.5
	waveBands       = 10
	noiseBands      = 7
)

var worldUp = mgl64.Vec3{0, 1, 0}

// View receives frame snapshots from the orb field and draws the latest one.
type View struct {
	mu       sync.Mutex
	snap     systems.Snapshot
	has      bool
	focus    float64
	aperture float64

	themes systems.ThemeSource
	stars  *Stars
	labels *ebiten.Image
}

func NewView(themes systems.ThemeSource, stars *Stars) *View {
	return &View{themes: themes, stars: stars, focus: cfg.DOF.FarFocus}
}

// Submit implements systems.Renderer.
func (v *View) Submit(s systems.Snapshot) {
	v.mu.Lock()
	v.snap = s
	v.has = true
	v.mu.Unlock()
}

// SetDOFFocus implements systems.PostFX.
func (v *View) SetDOFFocus(focus, aperture float64) {
	v.mu.Lock()
	v.focus = focus
	v.aperture = aperture
	v.mu.Unlock()
}

func (v *View) latest() (systems.Snapshot, float64, float64, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snap, v.focus, v.aperture, v.has
}

// Camera returns the projection of the last submitted frame.
func (v *View) Camera(w, h int) (picking.View, bool) {
	s, _, _, ok := v.latest()
	if !ok {
		return picking.View{}, false
	}
	return picking.NewView(s.Camera, w, h), true
}

// Targets projects the orbs of the last frame for hover picking.
func (v *View) Targets(w, h int) []picking.Target {
	s, _, _, ok := v.latest()
	if !ok {
		return nil
	}
	pv := picking.NewView(s.Camera, w, h)
	targets := make([]picking.Target, 0, len(s.Orbs))
	for _, o := range s.Orbs {
		x, y, depth, ok := pv.Project(o.Transform.Position)
		if !ok {
			continue
		}
		r := pv.ProjectRadius(o.Transform.Position, o.BaseR*o.Transform.Scale)
		targets = append(targets, picking.Target{Index: o.Index, X: x, Y: y, R: r, Depth: depth})
	}
	return targets
}

// Orb returns the snapshot of orb idx from the last frame.
func (v *View) Orb(idx int) (systems.OrbSnapshot, bool) {
	s, _, _, _ := v.latest()
	for _, o := range s.Orbs {
		if o.Index == idx {
			return o, true
		}
	}
	return systems.OrbSnapshot{}, false
}

// Draw renders the last frame back to front.
func (v *View) Draw(screen *ebiten.Image) {
	th := theme.Dark
	if v.themes != nil {
		th = v.themes.Current()
	}
	screen.Fill(th.Background)

	s, focus, aperture, ok := v.latest()
	if !ok {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	pv := picking.NewView(s.Camera, w, h)

	if v.stars != nil {
		v.stars.Draw(screen, pv, th)
	}

	type projected struct {
		orb   systems.OrbSnapshot
		x, y  float64
		depth float64
	}
	var orbs []projected
	for _, o := range s.Orbs {
		x, y, depth, ok := pv.Project(o.Transform.Position)
		if !ok {
			continue
		}
		orbs = append(orbs, projected{o, x, y, depth})
	}
	sort.Slice(orbs, func(i, j int) bool { return orbs[i].depth > orbs[j].depth })

	layer := v.labelLayer(w, h)
	blend := th.LabelBlend()
	for _, p := range orbs {
		blur := dofFade(p.depth, focus, aperture)
		unit := pv.ProjectRadius(p.orb.Transform.Position, 1)
		drawCore(screen, p.orb, p.x, p.y, unit, blur)
		drawOutline(screen, p.orb, p.x, p.y, unit, blur)
		drawLabel(layer, pv, p.orb, blur)
		blend = p.orb.Label.Blend
	}
	compositeLabels(screen, layer, blend)
}

func (v *View) labelLayer(w, h int) *ebiten.Image {
	if v.labels == nil || v.labels.Bounds().Dx() != w || v.labels.Bounds().Dy() != h {
		v.labels = ebiten.NewImage(w, h)
	}
	v.labels.Clear()
	return v.labels
}

// dofFade dims orbs away from the focus plane. A zero aperture keeps everything sharp.
func dofFade(depth, focus, aperture float64) float64 {
	if aperture <= 0 {
		return 1
	}
	return 1 / (1 + math.Abs(depth-focus)*aperture*1000)
}

func drawCore(screen *ebiten.Image, o systems.OrbSnapshot, x, y, unit, fade float64) {
	r := o.BaseR * 0.35 * o.Core.Scale * o.Transform.Scale * unit
	alpha := o.Core.Opacity * fade
	if r <= 0 || alpha <= 0 {
		return
	}
	clr := rgba(o.Uniforms.Color, alpha)
	if assets.GlowShader == nil {
		vector.FillCircle(screen, float32(x), float32(y), float32(r), clr, true)
		return
	}

	// The glow fades to zero at twice the core radius.
	glow := 2 * r
	size := int(math.Ceil(2 * glow))
	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(x-glow, y-glow)
	op.Uniforms = map[string]any{
		"Color":  []float32{float32(clr.R) / 255, float32(clr.G) / 255, float32(clr.B) / 255, float32(clr.A) / 255},
		"Center": []float32{float32(x), float32(y)},
		"Radius": float32(glow),
	}
	screen.DrawRectShader(size, size, assets.GlowShader, op)
}

func drawOutline(screen *ebiten.Image, o systems.OrbSnapshot, x, y, unit, fade float64) {
	u := o.Uniforms
	alpha := u.Opacity * fade * (0.6 + 0.4*u.PulseGlow)
	if alpha <= 0 {
		return
	}
	clr := rgba(u.Color, math.Min(alpha, 1))
	spin := o.Transform.Rotation.Y()
	scale := o.Transform.Scale * unit

	radius := func(theta float64) float64 {
		r := o.Shape.Radius(theta, spin)
		r += u.WaveAmp * 0.08 * math.Sin(waveBands*theta-u.WaveTime*4)
		r += u.NoiseAmp * 0.5 * math.Sin(noiseBands*theta+u.NoiseTime*3)
		return r * scale
	}

	px, py := x+radius(0), y
	for i := 1; i <= outlineSegments; i++ {
		theta := 2 * math.Pi * float64(i) / outlineSegments
		r := radius(theta)
		nx, ny := x+r*math.Cos(theta), y-r*math.Sin(theta)
		vector.StrokeLine(screen, float32(px), float32(py), float32(nx), float32(ny), 1, clr, true)
		px, py = nx, ny
	}
}

func drawLabel(dst *ebiten.Image, pv picking.View, o systems.OrbSnapshot, fade float64) {
	lbl := o.Label
	alpha := lbl.Opacity * fade
	if lbl.DrawCount == 0 || alpha <= 0 {
		return
	}
	clr := rgba(lbl.Color, alpha)
	rot := o.Transform.Quat.Mul(lbl.Orientation)
	anchor := o.Transform.Position.Add(worldUp.Mul(cfg.Label.Height))
	for _, d := range lbl.Dots[:lbl.DrawCount] {
		x, y, _, ok := pv.Project(anchor.Add(rot.Rotate(d.Vec3())))
		if !ok {
			continue
		}
		vector.FillRect(dst, float32(x), float32(y), dotSize, dotSize, clr, false)
	}
}

// compositeLabels lays the label layer over the scene, additively on dark themes.
func compositeLabels(screen, layer *ebiten.Image, blend theme.BlendMode) {
	op := &ebiten.DrawImageOptions{}
	if blend == theme.BlendAdditive {
		op.Blend = ebiten.BlendLighter
	}
	screen.DrawImage(layer, op)
}

func rgba(c colorful.Color, alpha float64) color.RGBA {
	c = c.Clamped()
	a := math.Max(0, math.Min(alpha, 1))
	return color.RGBA{
		R: uint8(c.R * a * 255),
		G: uint8(c.G * a * 255),
		B: uint8(c.B * a * 255),
		A: uint8(a * 255),
	}
}
