package main

import (
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	"github.com/SythFlux/Donny-Portfolio/assets"
	"github.com/SythFlux/Donny-Portfolio/config"
	"github.com/SythFlux/Donny-Portfolio/fonts"
	"github.com/SythFlux/Donny-Portfolio/picking"
	"github.com/SythFlux/Donny-Portfolio/render"
	"github.com/SythFlux/Donny-Portfolio/scenes"
	"github.com/SythFlux/Donny-Portfolio/systems"
	"github.com/SythFlux/Donny-Portfolio/theme"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

const (
	starCount   = 400
	appDataName = "donny_portfolio"
)

type Game struct {
	field    *scenes.OrbField
	view     *render.View
	controls *render.OrbitControls
	picker   *picking.Picker
	themes   *theme.Provider
	intro    *scenes.TimedIntro

	hovered int
	debug   bool
}

func NewGame(themes *theme.Provider) (*Game, error) {
	if err := fonts.LoadDefaults(config.Label.FontSize); err != nil {
		return nil, err
	}
	if err := assets.LoadShaders(); err != nil {
		slog.Warn("shaders unavailable, falling back to flat cores", "err", err)
	}

	seed := config.C.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	stars := render.NewStars(rand.New(rand.NewPCG(seed, 1)), starCount)
	view := render.NewView(themes, stars)
	controls := render.NewOrbitControls()
	intro := scenes.NewTimedIntro(config.Intro.Duration)

	field := scenes.NewOrbField(scenes.Options{
		Hooks: systems.Hooks{
			Intro:    intro,
			Effects:  stars,
			PostFX:   view,
			Controls: controls,
			Theme:    themes,
			Renderer: view,
		},
		Seed:      seed,
		LabelFace: fonts.Label.Get(),
	})

	return &Game{
		field:    field,
		view:     view,
		controls: controls,
		picker:   picking.NewPicker(config.C.Width, config.C.Height),
		themes:   themes,
		intro:    intro,
		hovered:  -1,
	}, nil
}

func (g *Game) Update() error {
	g.handleInput()
	g.field.Update()
	return nil
}

func (g *Game) handleInput() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.field.CloseProject()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.field.Navigate(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.field.Navigate(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.themes.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyF3):
		g.debug = !g.debug
	}

	if !g.intro.Done() {
		return
	}

	w, h := config.C.Width, config.C.Height
	g.picker.Sync(g.view.Targets(w, h))
	cx, cy := ebiten.CursorPosition()
	idx, ok := g.picker.Pick(float64(cx), float64(cy))
	if !ok {
		idx = -1
	}
	if idx != g.hovered {
		if g.hovered >= 0 {
			g.field.Hover(g.hovered, false)
		}
		if idx >= 0 {
			g.field.Hover(idx, true)
		}
		g.hovered = idx
	}
	if idx >= 0 {
		g.updateHitPoint(idx, float64(cx), float64(cy), w, h)
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && idx >= 0 && !g.controls.Dragged() {
		g.field.OpenProject(idx)
	}
}

func (g *Game) updateHitPoint(idx int, x, y float64, w, h int) {
	pv, ok := g.view.Camera(w, h)
	if !ok {
		return
	}
	o, ok := g.view.Orb(idx)
	if !ok {
		return
	}
	origin, dir, err := pv.Ray(x, y)
	if err != nil {
		return
	}
	p, ok := picking.HitPoint(origin, dir, o.Transform.Position, o.BaseR*o.Transform.Scale, o.Transform.Quat, o.Transform.Scale)
	if ok {
		g.field.SetHitPoint(idx, p)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.view.Draw(screen)
	g.drawPanel(screen)
	if g.debug {
		render.DrawPickDebug(screen, g.picker, g.hovered)
	}
}

// drawPanel shows the focused project's details on the right.
func (g *Game) drawPanel(screen *ebiten.Image) {
	state := g.field.State()
	if !state.PanelOpen || state.FocusedIdx < 0 || state.FocusedIdx >= len(config.Projects) {
		return
	}
	p := config.Projects[state.FocusedIdx]
	th := g.themes.Current()
	var clr color.Color = th.WireHover
	face := fonts.HUD.Get()

	x := config.C.Width * 2 / 3
	lines := []string{p.Name, p.Tag, strings.Join(p.Techs, " · ")}
	if p.Link != "" {
		lines = append(lines, p.Link)
	}
	lines = append(lines, "", "< / > navigate   esc close")
	for i, line := range lines {
		text.Draw(screen, line, face, x, 80+i*18, clr)
	}
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func run() error {
	configPath := flag.String("config", "", "TOML file overriding the tuning defaults")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			return err
		}
	}

	store, err := theme.OpenStore(appDataName)
	if err != nil {
		slog.Warn("could not open preference store", "err", err)
		store = nil
	}
	themes := theme.NewProvider(store)

	game, err := NewGame(themes)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	return ebiten.RunGame(game)
}

func main() {
	if err := run(); err != nil {
		slog.Error("portfolio exited", "err", err)
		os.Exit(1)
	}
}
