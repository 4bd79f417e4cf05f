package systems

import (
	"github.com/dartedfa/SkiFree/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances every active animation against the run clock.
// Entities whose state has no animation (a skiing skier, for example) keep
// a system-controlled static sprite and are skipped.
func UpdateAnimations(ecs *ecs.ECS) {
	gameTime := GameTime(ecs)
	components.Animation.Each(ecs.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		if anim.CurrentAnim != nil {
			anim.CurrentAnim.Animate(gameTime)
		}
	})
}
