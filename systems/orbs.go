package systems

import (
	"math/rand/v2"

	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/SythFlux/Donny-Portfolio/gamemath"
	"github.com/SythFlux/Donny-Portfolio/harmonics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateOrbs runs the procedural animation of every orb, in index order.
func UpdateOrbs(e *ecs.ECS, rng *rand.Rand, shape ShapeSink) {
	state := GetSceneState(e)
	frame := GetFrame(e)
	if state == nil || frame == nil {
		return
	}
	eachOrb(e, func(entry *donburi.Entry) {
		updateOrb(entry, state, frame, rng, shape)
	})
}

func updateOrb(entry *donburi.Entry, state *components.SceneStateData, frame *components.FrameData, rng *rand.Rand, shape ShapeSink) {
	orb := components.Orb.Get(entry)
	hover := components.Hover.Get(entry)
	uniforms := components.Uniforms.Get(entry)
	focused := state.Focused(orb.Index)

	morph := components.Morph.Get(entry)
	updateMorph(morph, orb, frame.Dt, rng)
	if shape != nil {
		shape.Morph(orb.Index, morph.Mixed, orb.BaseR)
	}

	updateWave(components.Wave.Get(entry), uniforms, hover.Hovered, frame.Dt)
	updateNoise(uniforms, focused, frame.Dt)

	pulse := components.Pulse.Get(entry)
	pulse.Value = gamemath.Pulse(frame.T, pulse.Phase, pulse.Freq1, pulse.Freq2, pulse.Mix, cfg.Orb.PulsePhase2)
	uniforms.PulseGlow = pulse.Value * pulse.Amp
	updateCore(components.Core.Get(entry), pulse.Value, state, focused)

	target := 0.0
	if hover.Hovered {
		target = 1
	}
	hover.T = gamemath.Approach(hover.T, target, cfg.Appearance.HoverRate)

	updateTransform(components.Transform.Get(entry), components.Motion.Get(entry), orb, hover.T, frame.T)
	updateAppearance(uniforms, state, hover.Hovered || focused, focused)
}

// updateMorph advances the blend between two shapes. Crossing 1 commits the
// target, draws a new one and restarts at 0; any overshoot is discarded.
func updateMorph(m *components.MorphData, orb *components.OrbData, dt float64, rng *rand.Rand) {
	m.LerpT += dt * m.Speed
	if m.LerpT >= 1 {
		m.LerpT = 0
		m.Coeffs = m.CoeffsTarget
		m.CoeffsTarget = harmonics.Random(rng, orb.BaseR, orb.AmpHi)
	}
	m.Mixed = harmonics.Blend(m.Coeffs, m.CoeffsTarget, gamemath.Smoothstep(m.LerpT))
}

// updateWave runs the ripple: it starts when the orb becomes hovered, keeps
// running while it fades after hover ends, and goes dormant once faded out.
func updateWave(w *components.WaveData, u *components.UniformsData, hovered bool, dt float64) {
	if hovered && !w.Active {
		w.Active = true
		w.Elapsed = 0
		w.Fade = 0
	}

	if hovered {
		w.Fade = gamemath.Approach(w.Fade, 1, cfg.Wave.FadeIn)
	} else {
		w.Fade = gamemath.Approach(w.Fade, 0, cfg.Wave.FadeOut)
	}

	if !w.Active {
		u.WaveAmp = 0
		return
	}

	u.WaveAmp = w.Fade
	w.Elapsed += dt
	u.WaveTime = w.Elapsed
	if hovered && w.HasHit {
		u.HitPoint = w.HitPoint
	}
	if !hovered && w.Fade < cfg.Wave.KillThreshold {
		w.Active = false
		u.WaveTime = cfg.Wave.DormantTime
		u.WaveAmp = 0
	}
}

// updateNoise agitates the focused orb; calming down is faster than ramping up.
func updateNoise(u *components.UniformsData, focused bool, dt float64) {
	if focused {
		u.NoiseTime += dt
		u.NoiseAmp = gamemath.Approach(u.NoiseAmp, cfg.Noise.Target, cfg.Noise.RampUp)
		return
	}
	u.NoiseAmp = gamemath.Approach(u.NoiseAmp, 0, cfg.Noise.Decay)
}

func updateCore(core *components.CoreData, pulse float64, state *components.SceneStateData, focused bool) {
	base := cfg.Appearance.CoreLightBase + pulse*cfg.Appearance.CoreLightSpan
	if state.Dark {
		base = cfg.Appearance.CoreDarkBase + pulse*cfg.Appearance.CoreDarkSpan
	}
	target := base
	if state.PanelOpen && !focused {
		target = 0
	}
	core.Opacity = gamemath.Approach(core.Opacity, target, cfg.Appearance.CoreOpacityRate)
	core.Scale = 1 + pulse*cfg.Appearance.CorePulseScale
}

func updateTransform(tr *components.TransformData, m *components.MotionData, orb *components.OrbData, hoverT, t float64) {
	tr.Position = orb.Origin.Add(gamemath.Lissajous(t, m.SwayAmp, m.SwayFreq, m.SwayPhase))
	tr.Rotation = tr.Rotation.Add(m.RotSpeed)
	tr.Quat = mgl64.AnglesToQuat(tr.Rotation[0], tr.Rotation[1], tr.Rotation[2], mgl64.XYZ)

	breath := gamemath.Breath(t, m.BreathSpeed, m.BreathPhase, m.BreathAmp)
	tr.Scale = breath * (1 + hoverT*cfg.Appearance.HoverScale)
}

// updateAppearance moves color and opacity toward their targets. Non-focused
// orbs almost vanish while the panel is open.
func updateAppearance(u *components.UniformsData, state *components.SceneStateData, highlighted, focused bool) {
	if highlighted {
		u.Color = u.Color.BlendRgb(state.WireHover, cfg.Appearance.ColorRise)
	} else {
		u.Color = u.Color.BlendRgb(state.Wire, cfg.Appearance.ColorFall)
	}

	target := 1.0
	if state.PanelOpen && !focused {
		target = cfg.Appearance.DimmedOpacity
	}
	u.Opacity = gamemath.Approach(u.Opacity, target, cfg.Appearance.OpacityRate)
}
