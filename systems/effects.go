package systems

import (
	"github.com/dartedfa/SkiFree/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects decrements flash timers and restores the neutral tint when
// a flash expires.
func UpdateEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
			if flash.Duration == 0 {
				flash.R, flash.G, flash.B = 1, 1, 1
			}
		}
	})
}
