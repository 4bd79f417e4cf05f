package archetypes

import (
	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Skier = newArchetype(
		tags.Skier,
		components.Skier,
		components.Position,
		components.Object,
		components.Animation,
		components.State,
		components.Flash,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Obstacle,
		components.Position,
		components.Object,
	)
	Rhino = newArchetype(
		tags.Rhino,
		components.Rhino,
		components.Position,
		components.Object,
		components.Animation,
		components.State,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
		components.ScreenShake,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Spawner = newArchetype(
		components.Spawner,
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
