package systems

import (
	"github.com/dartedfa/SkiFree/assets"
	"github.com/dartedfa/SkiFree/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects mirrors entity positions into the resolv space. Obstacles
// never move, but the skier and rhino do; their box tracks the current
// sprite so the spawner's clearance checks see honest footprints.
func UpdateObjects(ecs *ecs.ECS) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if e.HasComponent(components.Position) {
			pos := components.Position.Get(e)
			if e.HasComponent(components.Animation) {
				if w, h, ok := assets.ImageSize(components.Animation.Get(e).ImageName); ok {
					obj.W = w
					obj.H = h
				}
			}
			obj.X = pos.X - obj.W/2
			obj.Y = pos.Y - obj.H/2
		}
		obj.Update()
	})
}
