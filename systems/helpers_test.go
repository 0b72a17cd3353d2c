package systems

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/SythFlux/Donny-Portfolio/systems/factory"
	"github.com/SythFlux/Donny-Portfolio/theme"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frameDt = 1.0 / 60

type controlsRecorder struct {
	enabled []bool
	updates int
}

func (c *controlsRecorder) SetEnabled(enabled bool) { c.enabled = append(c.enabled, enabled) }

func (c *controlsRecorder) Update(*components.CameraData) { c.updates++ }

func (c *controlsRecorder) last() (bool, bool) {
	if len(c.enabled) == 0 {
		return false, false
	}
	return c.enabled[len(c.enabled)-1], true
}

// newTestScene builds a scene with n orbs on a line and no label dots.
func newTestScene(t *testing.T, n int) (*ecs.ECS, *rand.Rand) {
	t.Helper()
	cfg.Reset()
	rng := rand.New(rand.NewPCG(1, 2))
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateScene(e, theme.Dark)
	factory.CreateCamera(e, rng)
	for i := 0; i < n; i++ {
		factory.CreateOrb(e, factory.OrbParams{
			Index:  i,
			Origin: mgl64.Vec3{float64(i)*4 - 6, 0, 0},
			Name:   "orb",
		}, rng, nil, theme.Dark)
	}
	require.Len(t, GetSceneState(e).Orbs, n)
	return e, rng
}

func camera(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := GetCamera(e)
	require.True(t, ok)
	return entry
}

func orb(t *testing.T, e *ecs.ECS, idx int) *donburi.Entry {
	t.Helper()
	entry, ok := OrbAt(e, idx)
	require.True(t, ok)
	return entry
}

func assertVec3Near(t *testing.T, want, got mgl64.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d: want %v got %v", i, want, got)
	}
}

// assertSameRotation treats q and -q as the same rotation.
func assertSameRotation(t *testing.T, want, got mgl64.Quat) {
	t.Helper()
	assert.InDelta(t, 1.0, math.Abs(want.Dot(got)), 1e-9)
}
