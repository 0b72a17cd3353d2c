package factory

import (
	"math/rand/v2"
	"testing"

	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/SythFlux/Donny-Portfolio/fonts"
	"github.com/SythFlux/Donny-Portfolio/theme"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/gofont/goregular"
)

func TestCreateOrbRegistersByIndex(t *testing.T) {
	cfg.Reset()
	e := ecs.NewECS(donburi.NewWorld())
	scene := CreateScene(e, theme.Dark)
	rng := rand.New(rand.NewPCG(1, 1))

	second := CreateOrb(e, OrbParams{Index: 1, Origin: mgl64.Vec3{1, 2, 3}}, rng, nil, theme.Dark)
	first := CreateOrb(e, OrbParams{Index: 0}, rng, nil, theme.Dark)

	state := components.SceneState.Get(scene)
	require.Len(t, state.Orbs, 2)
	assert.Equal(t, first.Entity(), state.Orbs[0])
	assert.Equal(t, second.Entity(), state.Orbs[1])
	assert.Equal(t, -1, state.FocusedIdx)
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, components.Transform.Get(second).Position)
}

func TestCreateOrbDrawsParametersFromRanges(t *testing.T) {
	cfg.Reset()
	e := ecs.NewECS(donburi.NewWorld())
	CreateScene(e, theme.Dark)
	rng := rand.New(rand.NewPCG(5, 6))

	for i := 0; i < 20; i++ {
		entry := CreateOrb(e, OrbParams{Index: i}, rng, nil, theme.Dark)
		morph := components.Morph.Get(entry)
		motion := components.Motion.Get(entry)
		pulse := components.Pulse.Get(entry)
		u := components.Uniforms.Get(entry)

		assert.GreaterOrEqual(t, morph.Speed, cfg.Orb.MorphSpeedMin)
		assert.LessOrEqual(t, morph.Speed, cfg.Orb.MorphSpeedMax)
		assert.Zero(t, morph.LerpT)
		for axis := 0; axis < 3; axis++ {
			assert.GreaterOrEqual(t, motion.SwayAmp[axis], cfg.Orb.SwayAmpMin[axis])
			assert.LessOrEqual(t, motion.SwayAmp[axis], cfg.Orb.SwayAmpMax[axis])
			assert.GreaterOrEqual(t, motion.RotSpeed[axis], cfg.Orb.RotSpeedMin)
			assert.LessOrEqual(t, motion.RotSpeed[axis], cfg.Orb.RotSpeedMax)
		}
		assert.GreaterOrEqual(t, pulse.Mix, cfg.Orb.PulseMixMin)
		assert.LessOrEqual(t, pulse.Mix, cfg.Orb.PulseMixMax)
		assert.Equal(t, cfg.Wave.DormantTime, u.WaveTime)
		assert.Equal(t, cfg.Appearance.InitialOpacity, u.Opacity)
	}
}

func TestCreateOrbBuildsLabelDots(t *testing.T) {
	cfg.Reset()
	face, err := fonts.NewFace(goregular.TTF, cfg.Label.FontSize)
	require.NoError(t, err)
	e := ecs.NewECS(donburi.NewWorld())
	CreateScene(e, theme.Light)

	entry := CreateOrb(e, OrbParams{Index: 0, Name: "IP-CAR"}, rand.New(rand.NewPCG(1, 2)), face, theme.Light)
	lbl := components.Label.Get(entry)

	assert.NotEmpty(t, lbl.Dots)
	assert.Equal(t, len(lbl.Dots), lbl.Total)
	assert.Zero(t, lbl.Revealed)
	assert.Zero(t, lbl.Opacity)
	assert.Equal(t, theme.BlendNormal, lbl.Blend)
}

func TestCreateCameraStartsAtConfiguredPose(t *testing.T) {
	cfg.Reset()
	e := ecs.NewECS(donburi.NewWorld())
	entry := CreateCamera(e, rand.New(rand.NewPCG(3, 3)))

	cam := components.Camera.Get(entry)
	assert.Equal(t, mgl64.Vec3(cfg.Camera.StartPos), cam.Position)
	assert.Equal(t, mgl64.Vec3(cfg.Camera.StartTarget), cam.Target)
	assert.True(t, cam.ManualControl)

	fly := components.FlyTo.Get(entry)
	assert.False(t, fly.Active)
	assert.Equal(t, 1.0, fly.T)

	assert.Equal(t, cfg.DOF.FarFocus, components.DepthOfField.Get(entry).Focus)
	assert.Zero(t, components.IdleSway.Get(entry).Weight)
}
