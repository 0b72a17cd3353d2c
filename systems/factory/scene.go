package factory

import (
	"github.com/SythFlux/Donny-Portfolio/archetypes"
	"github.com/SythFlux/Donny-Portfolio/components"
	"github.com/SythFlux/Donny-Portfolio/theme"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateScene spawns the singleton holding the shared animation context, the
// frame sample and the command queue.
func CreateScene(ecs *ecs.ECS, th theme.Theme) *donburi.Entry {
	scene := archetypes.Scene.Spawn(ecs)
	components.SceneState.Set(scene, &components.SceneStateData{
		FocusedIdx: -1,
		Dark:       th.Dark,
		Wire:       th.Wire,
		WireHover:  th.WireHover,
	})
	components.Frame.Set(scene, &components.FrameData{})
	components.CommandQueue.Set(scene, &components.CommandQueueData{
		Commands: &components.Commands{},
	})
	return scene
}
