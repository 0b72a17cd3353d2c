package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrEmptyPath is returned by Load when no file was given.
var ErrEmptyPath = errors.New("config: empty path")

// file mirrors the tunable sections of a TOML override file. Sections that
// are absent keep their current values.
type file struct {
	Window     Config           `toml:"window"`
	Frame      FrameConfig      `toml:"frame"`
	Orb        OrbConfig        `toml:"orb"`
	Wave       WaveConfig       `toml:"wave"`
	Noise      NoiseConfig      `toml:"noise"`
	Appearance AppearanceConfig `toml:"appearance"`
	Label      LabelConfig      `toml:"label"`
	Camera     CameraConfig     `toml:"camera"`
	Sway       SwayConfig       `toml:"sway"`
	DOF        DOFConfig        `toml:"dof"`
	Intro      IntroConfig      `toml:"intro"`
}

// Load overlays the TOML file at path on top of the current configuration.
func Load(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return Decode(data)
}

// Decode overlays TOML data on top of the current configuration. Nothing is
// applied when the data fails to decode.
func Decode(data []byte) error {
	f := file{
		Window:     *C,
		Frame:      Frame,
		Orb:        Orb,
		Wave:       Wave,
		Noise:      Noise,
		Appearance: Appearance,
		Label:      Label,
		Camera:     Camera,
		Sway:       Sway,
		DOF:        DOF,
		Intro:      Intro,
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("config: decode: %w", err)
	}

	window := f.Window
	C = &window
	Frame = f.Frame
	Orb = f.Orb
	Wave = f.Wave
	Noise = f.Noise
	Appearance = f.Appearance
	Label = f.Label
	Camera = f.Camera
	Sway = f.Sway
	DOF = f.DOF
	Intro = f.Intro
	return nil
}
