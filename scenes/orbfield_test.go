package scenes

import (
	"testing"
	"time"

	"github.com/SythFlux/Donny-Portfolio/clock"
	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/SythFlux/Donny-Portfolio/harmonics"
	"github.com/SythFlux/Donny-Portfolio/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

// callLog records the order in which hooks run within a frame.
type callLog struct {
	calls []string
}

func (l *callLog) add(name string) { l.calls = append(l.calls, name) }

type logShape struct{ log *callLog }

func (s logShape) Morph(int, harmonics.Coeffs, float64) { s.log.add("shape") }

type logIntro struct{ log *callLog }

func (i logIntro) Update(float64) { i.log.add("intro") }
func (i logIntro) Done() bool     { return true }

type logParallax struct{ log *callLog }

func (p logParallax) Update(*components.CameraData, float64) { p.log.add("parallax") }

type logEffects struct{ log *callLog }

func (f logEffects) Update(float64, float64) { f.log.add("effects") }

type logPostFX struct{ log *callLog }

func (f logPostFX) SetDOFFocus(float64, float64) { f.log.add("dof") }

type recordingControls struct {
	log     *callLog
	enabled []bool
}

func (c *recordingControls) SetEnabled(on bool) { c.enabled = append(c.enabled, on) }

func (c *recordingControls) Update(*components.CameraData) {
	if c.log != nil {
		c.log.add("controls")
	}
}

func (c *recordingControls) last() bool {
	return c.enabled[len(c.enabled)-1]
}

type recordingRenderer struct {
	log      *callLog
	frames   []systems.Snapshot
	onSubmit func()
}

func (r *recordingRenderer) Submit(s systems.Snapshot) {
	if r.log != nil {
		r.log.add("render")
	}
	r.frames = append(r.frames, s)
	if r.onSubmit != nil {
		r.onSubmit()
	}
}

func newField(t *testing.T, hooks systems.Hooks) *OrbField {
	t.Helper()
	cfg.Reset()
	return NewOrbField(Options{Hooks: hooks, Seed: 42})
}

func run(f *OrbField, from float64, frames int) float64 {
	tm := from
	for i := 0; i < frames; i++ {
		tm += dt
		f.Step(FrameInput{T: tm, Dt: dt})
	}
	return tm
}

func TestNewOrbFieldCreatesConfiguredCast(t *testing.T) {
	f := newField(t, systems.Hooks{})

	assert.Equal(t, len(cfg.Projects), f.OrbCount())
	state := f.State()
	assert.Len(t, state.Orbs, len(cfg.Projects))
	assert.Equal(t, -1, state.FocusedIdx)
	assert.False(t, state.PanelOpen)
}

func TestStepRunsHooksInFixedOrder(t *testing.T) {
	log := &callLog{}
	f := newField(t, systems.Hooks{
		Shape:    logShape{log},
		Intro:    logIntro{log},
		Parallax: logParallax{log},
		Effects:  logEffects{log},
		PostFX:   logPostFX{log},
		Controls: &recordingControls{log: log},
		Renderer: &recordingRenderer{log: log},
	})

	f.Step(FrameInput{T: dt, Dt: dt})

	want := []string{"intro", "parallax"}
	for i := 0; i < f.OrbCount(); i++ {
		want = append(want, "shape")
	}
	want = append(want, "effects", "dof", "controls", "render")
	assert.Equal(t, want, log.calls)
}

func TestOpenThenCloseProject(t *testing.T) {
	controls := &recordingControls{}
	renderer := &recordingRenderer{}
	f := newField(t, systems.Hooks{Controls: controls, Renderer: renderer})
	tm := run(f, 0, 5)

	before := f.Snapshot().Camera
	camEntry, ok := systems.GetCamera(f.ECS())
	require.True(t, ok)
	sway := components.IdleSway.Get(camEntry)
	restingBefore := before.Position.Sub(sway.Prev)

	f.OpenProject(2)
	f.Step(FrameInput{T: tm, Dt: 0})

	fly := components.FlyTo.Get(camEntry)
	state := f.State()
	assert.True(t, state.PanelOpen)
	assert.Equal(t, 2, state.FocusedIdx)
	assert.Equal(t, restingBefore, state.SavedPos)
	assert.True(t, fly.Active)
	assert.False(t, fly.Returning)
	assert.Zero(t, fly.T)
	assert.False(t, controls.last())

	tm = run(f, tm, 120)
	assert.False(t, fly.Active)
	assert.False(t, controls.last())
	snap := renderer.frames[len(renderer.frames)-1]
	assertNear(t, fly.To, snap.Camera.Position.Sub(sway.Prev))
	assert.Equal(t, 2, snap.FocusedIdx)

	f.CloseProject()
	f.Step(FrameInput{T: tm, Dt: 0})
	assert.True(t, fly.Active)
	assert.True(t, fly.Returning)
	assert.Equal(t, restingBefore, fly.To)
	assert.Equal(t, before.Target, fly.LookTo)
	assert.False(t, f.State().PanelOpen)

	run(f, tm, 120)
	assert.False(t, fly.Active)
	assert.True(t, controls.last())
	cam := f.Snapshot().Camera
	assertNear(t, restingBefore, cam.Position.Sub(sway.Prev))
	assert.True(t, cam.ManualControl)
}

func TestNavigateCyclesProjects(t *testing.T) {
	f := newField(t, systems.Hooks{})
	n := f.OrbCount()

	f.OpenProject(0)
	f.Navigate(-1)
	f.Step(FrameInput{T: dt, Dt: dt})
	assert.Equal(t, n-1, f.State().FocusedIdx)

	f.Navigate(1)
	f.Navigate(1)
	f.Step(FrameInput{T: 2 * dt, Dt: dt})
	assert.Equal(t, 1, f.State().FocusedIdx)
}

func TestHoverAndHitPointThroughQueue(t *testing.T) {
	f := newField(t, systems.Hooks{})
	f.Hover(3, true)
	f.SetHitPoint(3, mgl64.Vec3{0, 0, 1})
	f.Hover(99, true)
	run(f, 0, 30)

	s := f.Snapshot()
	require.Greater(t, len(s.Orbs), 3)
	assert.Greater(t, s.Orbs[3].Uniforms.WaveAmp, 0.0)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, s.Orbs[3].Uniforms.HitPoint)
	assert.Zero(t, s.Orbs[0].Uniforms.WaveAmp)
}

func TestReentrantStepIsDropped(t *testing.T) {
	renderer := &recordingRenderer{}
	f := newField(t, systems.Hooks{Renderer: renderer})
	renderer.onSubmit = func() { f.Step(FrameInput{T: 1, Dt: dt}) }

	f.Step(FrameInput{T: dt, Dt: dt})

	assert.Len(t, renderer.frames, 1)
	assert.Equal(t, 1, f.Snapshot().Frame.Count)
}

func TestUpdateSamplesClock(t *testing.T) {
	now := time.Unix(100, 0)
	clk := clock.NewWithSource(cfg.Frame.MaxDelta, func() time.Time { return now })
	cfg.Reset()
	f := NewOrbField(Options{Seed: 1, Clock: clk})

	f.Update()
	now = now.Add(10 * time.Millisecond)
	f.Update()

	frame := f.Snapshot().Frame
	assert.Equal(t, 2, frame.Count)
	assert.InDelta(t, 0.01, frame.T, 1e-9)
	assert.InDelta(t, 0.01, frame.Dt, 1e-9)
}

func TestMismatchedCastUsesShorterList(t *testing.T) {
	cfg.Reset()
	f := NewOrbField(Options{
		Seed:     1,
		Projects: cfg.Projects[:3],
		Origins:  cfg.OrbOrigins,
	})
	assert.Equal(t, 3, f.OrbCount())
}

func assertNear(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}
