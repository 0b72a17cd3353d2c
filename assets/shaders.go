package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// GlowShader draws the soft inner core of an orb
	GlowShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	glowSrc, err := shaderFS.ReadFile("shaders/glow.kage")
	if err != nil {
		return err
	}
	GlowShader, err = ebiten.NewShader(glowSrc)
	if err != nil {
		return fmt.Errorf("assets: compile glow shader: %w", err)
	}
	return nil
}
