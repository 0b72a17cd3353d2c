package render

import (
	"fmt"
	"image/color"

	"github.com/SythFlux/Donny-Portfolio/picking"
	"github.com/SythFlux/Donny-Portfolio/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawPickDebug outlines the picking space's objects and prints the hovered index.
func DrawPickDebug(screen *ebiten.Image, picker *picking.Picker, hovered int) {
	for _, obj := range picker.Objects() {
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvCursor) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if idx, ok := obj.Data.(int); ok && idx == hovered {
			c = color.RGBA{0, 255, 0, 255} // Green
		}

		x, y := obj.X, obj.Y
		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  hovered %d", ebiten.ActualTPS(), hovered), 4, 4)
}
