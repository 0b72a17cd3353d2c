package systems

import (
	"log/slog"

	"github.com/SythFlux/Donny-Portfolio/components"
	cfg "github.com/SythFlux/Donny-Portfolio/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// ProcessCommands applies every UI command posted since the last frame, in order.
func ProcessCommands(e *ecs.ECS, controls Controls) {
	entry, ok := components.CommandQueue.First(e.World)
	if !ok {
		return
	}
	queue := components.CommandQueue.Get(entry)
	if queue.Commands == nil {
		return
	}
	for _, c := range queue.Drain() {
		applyCommand(e, c, controls)
	}
}

func applyCommand(e *ecs.ECS, c components.Command, controls Controls) {
	switch c.Kind {
	case components.CommandHover:
		Hover(e, c.Index, c.On)
	case components.CommandOpen:
		OpenProject(e, c.Index, controls)
	case components.CommandClose:
		CloseProject(e, controls)
	case components.CommandNavigate:
		Navigate(e, c.Dir, controls)
	case components.CommandHitPoint:
		SetHitPoint(e, c.Index, c.Point)
	default:
		slog.Warn("dropping unknown command", "kind", c.Kind)
	}
}

// Hover sets the hover flag of orb idx. While the panel is open the focused
// orb stays highlighted, so un-hovering it is ignored.
func Hover(e *ecs.ECS, idx int, on bool) {
	orb, ok := OrbAt(e, idx)
	if !ok {
		slog.Warn("hover: orb index out of range", "index", idx)
		return
	}
	if !on && GetSceneState(e).Focused(idx) {
		return
	}
	components.Hover.Get(orb).Hovered = on
}

// SetHitPoint records where the pointer touches orb idx, in orb-local space.
func SetHitPoint(e *ecs.ECS, idx int, p mgl64.Vec3) {
	orb, ok := OrbAt(e, idx)
	if !ok {
		slog.Warn("hit point: orb index out of range", "index", idx)
		return
	}
	wave := components.Wave.Get(orb)
	wave.HitPoint = p
	wave.HasHit = true
}

// OpenProject focuses orb idx and flies the camera to it. The pre-focus
// camera pose is saved only when the panel was closed, so cycling between
// projects still returns to the original view. Reports whether anything changed.
func OpenProject(e *ecs.ECS, idx int, controls Controls) bool {
	state := GetSceneState(e)
	orb, ok := OrbAt(e, idx)
	if !ok {
		slog.Warn("open: orb index out of range", "index", idx)
		return false
	}
	if state.Focused(idx) {
		return false
	}
	camEntry, ok := GetCamera(e)
	if !ok {
		return false
	}
	cam := components.Camera.Get(camEntry)
	sway := components.IdleSway.Get(camEntry)

	if prev, ok := OrbAt(e, state.FocusedIdx); ok {
		components.Hover.Get(prev).Hovered = false
	}

	if !state.PanelOpen {
		state.SavedPos = restingPosition(cam, sway)
		state.SavedTarget = cam.Target
		state.HasSaved = true
	}

	state.FocusedIdx = idx
	state.PanelOpen = true
	components.Hover.Get(orb).Hovered = true

	StartFlyIn(camEntry, components.Transform.Get(orb).Position, controls)
	slog.Debug("project opened", "index", idx)
	return true
}

// CloseProject clears the focus and flies the camera back to the saved pose.
// Reports whether the panel was open.
func CloseProject(e *ecs.ECS, controls Controls) bool {
	state := GetSceneState(e)
	if state == nil || !state.PanelOpen {
		return false
	}
	camEntry, ok := GetCamera(e)
	if !ok {
		return false
	}

	if prev, ok := OrbAt(e, state.FocusedIdx); ok {
		components.Hover.Get(prev).Hovered = false
	}
	state.PanelOpen = false
	state.FocusedIdx = -1

	to := mgl64.Vec3(cfg.Camera.StartPos)
	lookTo := mgl64.Vec3(cfg.Camera.StartTarget)
	if state.HasSaved {
		to = state.SavedPos
		lookTo = state.SavedTarget
	}
	StartFlyOut(camEntry, to, lookTo, controls)
	slog.Debug("project closed")
	return true
}

// Navigate opens the previous (dir < 0) or next (dir > 0) project, wrapping
// around. Only meaningful while the panel is open.
func Navigate(e *ecs.ECS, dir int, controls Controls) bool {
	state := GetSceneState(e)
	if state == nil || !state.PanelOpen || len(state.Orbs) == 0 {
		return false
	}
	n := len(state.Orbs)
	next := ((state.FocusedIdx+dir)%n + n) % n
	return OpenProject(e, next, controls)
}
