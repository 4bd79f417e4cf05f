package factory

import (
	"github.com/dartedfa/SkiFree/archetypes"
	"github.com/dartedfa/SkiFree/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(ecs)
	components.Clock.Set(clock, &components.ClockData{})
	return clock
}
