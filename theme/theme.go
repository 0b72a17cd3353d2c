// Package theme provides the dark and light palettes the orb field reads
// every frame, plus the persisted dark-mode preference.
package theme

import (
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"
)

// BlendMode selects how label dots composite over the scene.
type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendAdditive
)

func (b BlendMode) String() string {
	if b == BlendAdditive {
		return "additive"
	}
	return "normal"
}

// Theme is a snapshot of the colors the animation core needs.
type Theme struct {
	Dark       bool
	Wire       colorful.Color // base orb wireframe color
	WireHover  colorful.Color // hovered or focused orb color
	Background colorful.Color
}

// LabelBlend is additive on dark backgrounds and normal on light ones.
func (t Theme) LabelBlend() BlendMode {
	if t.Dark {
		return BlendAdditive
	}
	return BlendNormal
}

var (
	Dark = Theme{
		Dark:       true,
		Wire:       mustHex("#5ec8ff"),
		WireHover:  mustHex("#e8fbff"),
		Background: mustHex("#05070d"),
	}
	Light = Theme{
		Dark:       false,
		Wire:       mustHex("#1d3557"),
		WireHover:  mustHex("#e63946"),
		Background: mustHex("#f1f4f8"),
	}
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("theme: bad color " + s + ": " + err.Error())
	}
	return c
}

// Provider holds the active theme and persists toggles through an optional Store.
type Provider struct {
	dark  bool
	store *Store
}

// NewProvider starts from the stored preference when one exists, otherwise from dark.
func NewProvider(store *Store) *Provider {
	p := &Provider{dark: true, store: store}
	if store == nil {
		return p
	}
	if dark, ok := store.LoadDark(); ok {
		p.dark = dark
	}
	return p
}

// Current returns the active palette.
func (p *Provider) Current() Theme {
	if p.dark {
		return Dark
	}
	return Light
}

// Toggle flips between dark and light and saves the preference.
func (p *Provider) Toggle() {
	p.SetDark(!p.dark)
}

// SetDark selects the palette and saves the preference.
func (p *Provider) SetDark(dark bool) {
	p.dark = dark
	if p.store == nil {
		return
	}
	if err := p.store.SaveDark(dark); err != nil {
		slog.Warn("could not save theme preference", "err", err)
	}
}
