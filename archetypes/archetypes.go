package archetypes

import (
	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/SythFlux/Donny-Portfolio/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Orb = newArchetype(
		tags.Orb,
		components.Orb,
		components.Morph,
		components.Wave,
		components.Hover,
		components.Motion,
		components.Pulse,
		components.Transform,
		components.Uniforms,
		components.Core,
		components.Label,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.FlyTo,
		components.IdleSway,
		components.DepthOfField,
	)
	Scene = newArchetype(
		components.SceneState,
		components.Frame,
		components.CommandQueue,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
