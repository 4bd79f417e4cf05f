package factory

import (
	"github.com/dartedfa/SkiFree/archetypes"
	"github.com/dartedfa/SkiFree/assets"
	"github.com/dartedfa/SkiFree/components"
	"github.com/dartedfa/SkiFree/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateObstacle spawns an obstacle centered on x, y. Its collision box is
// the full sprite rectangle.
func CreateObstacle(ecs *ecs.ECS, x, y float64, sprite string) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	w, h, ok := assets.ImageSize(sprite)
	if !ok {
		w, h = 32, 32
	}
	obj := resolv.NewObject(x-w/2, y-h/2, w, h)
	obj.AddTags(tags.ResolvObstacle)
	obj.Data = obstacle
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	if spaceEntry, found := components.Space.First(ecs.World); found {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Position.SetValue(obstacle, components.PositionData{X: x, Y: y})
	components.Obstacle.SetValue(obstacle, components.ObstacleData{Sprite: sprite})

	return obstacle
}
