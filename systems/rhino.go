package systems

import (
	"math"

	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/systems/factory"
	"github.com/dartedfa/SkiFree/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRhino owns the chase. Once the skier has descended past the
// difficulty's trigger distance a rhino spawns off-screen and homes in;
// catching the skier ends the run through the eat and celebrate phases.
func UpdateRhino(ecs *ecs.ECS) {
	skierEntry, ok := tags.Skier.First(ecs.World)
	if !ok {
		return
	}

	rhinoEntry, exists := tags.Rhino.First(ecs.World)
	if !exists {
		maybeTriggerChase(ecs, skierEntry)
		return
	}

	if components.State.Get(rhinoEntry).CurrentState != cfg.StateRhinoRunning {
		return
	}

	chase(rhinoEntry, skierEntry)
}

func maybeTriggerChase(ecs *ecs.ECS, skierEntry *donburi.Entry) {
	if components.State.Get(skierEntry).CurrentState == cfg.StateDead {
		return
	}
	if SkierDistance(skierEntry) < cfg.Difficulty().RhinoTriggerDistance {
		return
	}
	pos := components.Position.Get(skierEntry)
	factory.CreateRhino(ecs, pos.X-cfg.Rhino.SpawnOffsetX, pos.Y, GameTime(ecs), skierEntry)
}

func chase(rhinoEntry, skierEntry *donburi.Entry) {
	rhino := components.Rhino.Get(rhinoEntry)
	rpos := components.Position.Get(rhinoEntry)
	spos := components.Position.Get(skierEntry)

	dx := spos.X - rpos.X
	dy := spos.Y - rpos.Y
	dist := math.Hypot(dx, dy)

	caught := dist <= rhino.Speed+cfg.Rhino.CatchSlack
	if caught {
		rpos.X = spos.X
		rpos.Y = spos.Y
		components.KillSkier(skierEntry)
		components.StartRhinoEating(rhinoEntry)
		return
	}

	rpos.X += dx / dist * rhino.Speed
	rpos.Y += dy / dist * rhino.Speed
}
