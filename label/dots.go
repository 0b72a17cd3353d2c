// Package label turns a project name into the dot cloud drawn above its orb.
package label

import (
	"image"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// alphaCutoff is the coverage a pixel needs to become a dot.
const alphaCutoff = 128

// Dot is a point in the label plane, centred on the label anchor, y up.
type Dot struct {
	X, Y float64
}

// Vec3 places the dot in the label's local space (z = 0).
func (d Dot) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{d.X, d.Y, 0}
}

// Build rasterizes text with face and samples every stride-th pixel. Dots are
// ordered column by column, left to right, so a typewriter reveal that draws
// the first n dots uncovers the text from the left.
func Build(text string, face font.Face, stride int, spacing float64) []Dot {
	if text == "" || face == nil {
		return nil
	}
	if stride < 1 {
		stride = 1
	}

	metrics := face.Metrics()
	w := font.MeasureString(face, text).Ceil()
	h := (metrics.Ascent + metrics.Descent).Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: metrics.Ascent},
	}
	d.DrawString(text)

	cx, cy := float64(w)/2, float64(h)/2
	var dots []Dot
	for x := 0; x < w; x += stride {
		for y := 0; y < h; y += stride {
			if img.AlphaAt(x, y).A < alphaCutoff {
				continue
			}
			dots = append(dots, Dot{
				X: (float64(x) - cx) * spacing,
				Y: (cy - float64(y)) * spacing,
			})
		}
	}
	return dots
}
