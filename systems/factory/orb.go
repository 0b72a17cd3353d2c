package factory

import (
	"math"
	"math/rand/v2"

	"github.com/SythFlux/Donny-Portfolio/archetypes"
	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/SythFlux/Donny-Portfolio/harmonics"
	"github.com/SythFlux/Donny-Portfolio/label"
	"github.com/SythFlux/Donny-Portfolio/theme"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// OrbParams describes one orb to create
type OrbParams struct {
	Index  int
	Origin mgl64.Vec3
	Name   string
}

func between(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func phase(rng *rand.Rand) float64 {
	return rng.Float64() * 2 * math.Pi
}

// CreateOrb spawns an orb with randomized motion parameters so no two orbs
// move in lockstep, and registers it in the scene's index table. face may be
// nil, in which case the orb has no label dots.
func CreateOrb(ecs *ecs.ECS, p OrbParams, rng *rand.Rand, face font.Face, th theme.Theme) *donburi.Entry {
	orb := archetypes.Orb.Spawn(ecs)
	o := cfg.Orb

	components.Orb.Set(orb, &components.OrbData{
		Index:  p.Index,
		Origin: p.Origin,
		BaseR:  o.BaseRadius,
		AmpHi:  o.AmpHi,
	})

	coeffs := harmonics.Random(rng, o.BaseRadius, o.AmpHi)
	components.Morph.Set(orb, &components.MorphData{
		Coeffs:       coeffs,
		CoeffsTarget: harmonics.Random(rng, o.BaseRadius, o.AmpHi),
		Speed:        between(rng, o.MorphSpeedMin, o.MorphSpeedMax),
		Mixed:        coeffs,
	})

	components.Wave.Set(orb, &components.WaveData{})
	components.Hover.Set(orb, &components.HoverData{})

	var motion components.MotionData
	for axis := 0; axis < 3; axis++ {
		motion.SwayAmp[axis] = between(rng, o.SwayAmpMin[axis], o.SwayAmpMax[axis])
		motion.SwayFreq[axis] = between(rng, o.SwayFreqMin, o.SwayFreqMax)
		motion.SwayPhase[axis] = phase(rng)
		motion.RotSpeed[axis] = between(rng, o.RotSpeedMin, o.RotSpeedMax)
	}
	motion.BreathSpeed = between(rng, o.BreathSpeedMin, o.BreathSpeedMax)
	motion.BreathPhase = phase(rng)
	motion.BreathAmp = between(rng, o.BreathAmpMin, o.BreathAmpMax)
	components.Motion.Set(orb, &motion)

	components.Pulse.Set(orb, &components.PulseData{
		Phase: phase(rng),
		Freq1: between(rng, o.PulseFreq1Min, o.PulseFreq1Max),
		Freq2: between(rng, o.PulseFreq2Min, o.PulseFreq2Max),
		Mix:   between(rng, o.PulseMixMin, o.PulseMixMax),
		Amp:   between(rng, o.PulseAmpMin, o.PulseAmpMax),
	})

	components.Transform.Set(orb, &components.TransformData{
		Position: p.Origin,
		Quat:     mgl64.QuatIdent(),
		Scale:    1,
	})
	components.Uniforms.Set(orb, &components.UniformsData{
		WaveTime: cfg.Wave.DormantTime,
		Color:    th.Wire,
		Opacity:  cfg.Appearance.InitialOpacity,
	})
	components.Core.Set(orb, &components.CoreData{Scale: 1})

	dots := label.Build(p.Name, face, cfg.Label.DotStride, cfg.Label.DotSpacing)
	components.Label.Set(orb, &components.LabelData{
		Dots:        dots,
		Total:       len(dots),
		Orientation: mgl64.QuatIdent(),
		Color:       th.Wire,
		Blend:       th.LabelBlend(),
	})

	registerOrb(ecs, p.Index, orb.Entity())
	return orb
}

// registerOrb stores entity at idx in the scene's arena table, growing it as needed.
func registerOrb(ecs *ecs.ECS, idx int, entity donburi.Entity) {
	sceneEntry, ok := components.SceneState.First(ecs.World)
	if !ok {
		return
	}
	state := components.SceneState.Get(sceneEntry)
	for len(state.Orbs) <= idx {
		state.Orbs = append(state.Orbs, donburi.Null)
	}
	state.Orbs[idx] = entity
}
