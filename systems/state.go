package systems

import (
	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates keeps the per-state marker components in sync with
// StateData and advances state timers. Runs after the gameplay systems so
// markers reflect this tick's transitions.
func UpdateStates(ecs *ecs.ECS) {
	tags.Skier.Each(ecs.World, func(e *donburi.Entry) {
		state := components.State.Get(e)
		state.StateTimer++
		updateSkierStateTags(e, state)
	})

	tags.Rhino.Each(ecs.World, func(e *donburi.Entry) {
		components.State.Get(e).StateTimer++
	})
}

func updateSkierStateTags(e *donburi.Entry, state *components.StateData) {
	if state.CurrentState == state.PreviousState {
		return
	}

	removeSkierStateTags(e)

	switch state.CurrentState {
	case cfg.StateSkiing:
		donburi.Add(e, components.Skiing, &components.SkiingState{})
	case cfg.StateJumping:
		donburi.Add(e, components.Jumping, &components.JumpingState{})
	case cfg.StateCrashed:
		donburi.Add(e, components.Crashed, &components.CrashedState{})
	case cfg.StateDead:
		donburi.Add(e, components.Dead, &components.DeadState{})
	}

	state.PreviousState = state.CurrentState
}

func removeSkierStateTags(e *donburi.Entry) {
	if e.HasComponent(components.Skiing) {
		donburi.Remove[components.SkiingState](e, components.Skiing)
	}
	if e.HasComponent(components.Jumping) {
		donburi.Remove[components.JumpingState](e, components.Jumping)
	}
	if e.HasComponent(components.Crashed) {
		donburi.Remove[components.CrashedState](e, components.Crashed)
	}
	if e.HasComponent(components.Dead) {
		donburi.Remove[components.DeadState](e, components.Dead)
	}
}
