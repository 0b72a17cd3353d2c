package scenes

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/SythFlux/Donny-Portfolio/clock"
	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/SythFlux/Donny-Portfolio/systems"
	"github.com/SythFlux/Donny-Portfolio/systems/factory"
	"github.com/SythFlux/Donny-Portfolio/theme"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// FrameInput is one clock sample: elapsed seconds and the clamped delta.
type FrameInput struct {
	T  float64
	Dt float64
}

// Options configures an OrbField. Zero values fall back to the configured cast,
// a wall clock and a time-based seed.
type Options struct {
	Hooks     systems.Hooks
	Seed      uint64
	LabelFace font.Face
	Clock     *clock.Clock
	Projects  []cfg.Project
	Origins   [][3]float64
}

// OrbField owns the orb scene and runs its systems once per display refresh.
type OrbField struct {
	ecs      *ecs.ECS
	hooks    systems.Hooks
	rng      *rand.Rand
	clock    *clock.Clock
	commands *components.Commands
	orbCount int

	input    FrameInput
	stepping bool
}

// NewOrbField builds the scene and registers its systems in execution order.
func NewOrbField(opts Options) *OrbField {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	projects := opts.Projects
	if projects == nil {
		projects = cfg.Projects
	}
	origins := opts.Origins
	if origins == nil {
		origins = cfg.OrbOrigins
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.New(cfg.Frame.MaxDelta)
	}

	f := &OrbField{
		ecs:   ecs.NewECS(donburi.NewWorld()),
		hooks: opts.Hooks,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		clock: clk,
	}

	th := theme.Dark
	if f.hooks.Theme != nil {
		th = f.hooks.Theme.Current()
	}

	scene := factory.CreateScene(f.ecs, th)
	f.commands = components.CommandQueue.Get(scene).Commands
	factory.CreateCamera(f.ecs, f.rng)

	n := min(len(projects), len(origins))
	if len(projects) != len(origins) {
		slog.Warn("project and origin counts differ", "projects", len(projects), "origins", len(origins), "orbs", n)
	}
	for i := 0; i < n; i++ {
		factory.CreateOrb(f.ecs, factory.OrbParams{
			Index:  i,
			Origin: mgl64.Vec3(origins[i]),
			Name:   projects[i].Name,
		}, f.rng, opts.LabelFace, th)
	}
	f.orbCount = n

	f.configure()
	return f
}

// configure registers the frame systems. The order is the per-frame contract.
func (f *OrbField) configure() {
	h := f.hooks

	f.ecs.AddSystem(func(e *ecs.ECS) { systems.ProcessCommands(e, h.Controls) })
	f.ecs.AddSystem(func(e *ecs.ECS) {
		systems.BeginFrame(e, f.input.T, f.input.Dt, h.Intro, h.Parallax, h.Theme)
	})
	f.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateOrbs(e, f.rng, h.Shape) })
	f.ecs.AddSystem(systems.UpdateLabels)
	f.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateEffects(e, h.Effects) })
	f.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateCameraTransition(e, h.Controls) })
	f.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateDepthOfField(e, h.PostFX) })
	f.ecs.AddSystem(func(e *ecs.ECS) { systems.UpdateControls(e, h.Controls) })
	f.ecs.AddSystem(systems.UpdateIdleSway)
	f.ecs.AddSystem(func(e *ecs.ECS) { systems.ForwardRender(e, h.Renderer) })
}

// Update samples the clock and runs one frame.
func (f *OrbField) Update() {
	t, dt := f.clock.Sample()
	f.Step(FrameInput{T: t, Dt: dt})
}

// Step runs one frame with an explicit clock sample. A call made from inside
// a hook while a frame is running is dropped.
func (f *OrbField) Step(in FrameInput) {
	if f.stepping {
		slog.Warn("re-entrant frame step dropped")
		return
	}
	f.stepping = true
	defer func() { f.stepping = false }()

	f.input = in
	f.ecs.Update()
}

// Hover queues a hover change for orb idx.
func (f *OrbField) Hover(idx int, on bool) {
	f.commands.Post(components.Command{Kind: components.CommandHover, Index: idx, On: on})
}

// OpenProject queues focusing orb idx.
func (f *OrbField) OpenProject(idx int) {
	f.commands.Post(components.Command{Kind: components.CommandOpen, Index: idx})
}

// CloseProject queues closing the panel.
func (f *OrbField) CloseProject() {
	f.commands.Post(components.Command{Kind: components.CommandClose})
}

// Navigate queues opening the previous (dir < 0) or next (dir > 0) project.
func (f *OrbField) Navigate(dir int) {
	f.commands.Post(components.Command{Kind: components.CommandNavigate, Dir: dir})
}

// SetHitPoint queues the pointer hit point on orb idx, in orb-local space.
func (f *OrbField) SetHitPoint(idx int, p mgl64.Vec3) {
	f.commands.Post(components.Command{Kind: components.CommandHitPoint, Index: idx, Point: p})
}

// Snapshot copies the state of the last frame.
func (f *OrbField) Snapshot() systems.Snapshot {
	return systems.TakeSnapshot(f.ecs)
}

// State returns a copy of the shared animation context.
func (f *OrbField) State() components.SceneStateData {
	state := systems.GetSceneState(f.ecs)
	out := *state
	out.Orbs = append([]donburi.Entity(nil), state.Orbs...)
	return out
}

func (f *OrbField) ECS() *ecs.ECS {
	return f.ecs
}

func (f *OrbField) OrbCount() int {
	return f.orbCount
}
