package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Label FontName = "label"
	HUD   FontName = "hud"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts = map[FontName]font.Face{}
)

// LoadDefaults registers the bundled Go Regular face under every name the
// orb field uses.
func LoadDefaults(labelSize float64) error {
	if err := LoadFontWithSize(Label, goregular.TTF, labelSize); err != nil {
		return err
	}
	return LoadFontWithSize(HUD, goregular.TTF, 12)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	face, err := NewFace(ttf, size)
	if err != nil {
		return fmt.Errorf("fonts: load %s: %w", name, err)
	}
	fonts[name] = face
	return nil
}

// NewFace parses ttf and returns an unhinted face at size points.
func NewFace(ttf []byte, size float64) (font.Face, error) {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(fontData, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone}), nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
