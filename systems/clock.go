package systems

import (
	"github.com/dartedfa/SkiFree/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the run clock by one tick's worth of milliseconds.
// Runs first so every system sees the same timestamp for the frame.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	components.Clock.Get(entry).Now += 1000.0 / float64(ebiten.TPS())
}

// GameTime returns the current run clock in milliseconds.
func GameTime(ecs *ecs.ECS) float64 {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Now
}
