package factory

import (
	"math"
	"math/rand/v2"

	"github.com/SythFlux/Donny-Portfolio/archetypes"
	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera at its start pose with manual control enabled
// and a random idle sway phase.
func CreateCamera(ecs *ecs.ECS, rng *rand.Rand) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	pos := mgl64.Vec3(cfg.Camera.StartPos)
	target := mgl64.Vec3(cfg.Camera.StartTarget)
	up := mgl64.Vec3{0, 1, 0}
	components.Camera.Set(camera, &components.CameraData{
		Position:      pos,
		Target:        target,
		Up:            up,
		Quat:          mgl64.QuatLookAtV(pos, target, up),
		ManualControl: true,
	})
	components.FlyTo.Set(camera, &components.FlyToData{T: 1})
	components.IdleSway.Set(camera, &components.IdleSwayData{
		Amp:  mgl64.Vec3(cfg.Sway.Amp),
		Freq: mgl64.Vec3(cfg.Sway.Freq),
		Phase: mgl64.Vec3{
			rng.Float64() * 2 * math.Pi,
			rng.Float64() * 2 * math.Pi,
			rng.Float64() * 2 * math.Pi,
		},
	})
	components.DepthOfField.Set(camera, &components.DepthOfFieldData{
		Focus: cfg.DOF.FarFocus,
	})
	return camera
}
