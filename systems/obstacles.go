package systems

import (
	"math/rand"

	"github.com/dartedfa/SkiFree/assets"
	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/systems/factory"
	"github.com/dartedfa/SkiFree/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// obstacleSprites is the spawn pool. Trees repeat so they dominate the
// slope the way rocks and ramps should not.
var obstacleSprites = []string{
	cfg.SpriteTree,
	cfg.SpriteTree,
	cfg.SpriteTree,
	cfg.SpriteTreeCluster,
	cfg.SpriteRock1,
	cfg.SpriteRock2,
	cfg.SpriteJumpRamp,
}

// SeedCourse places a course's authored obstacles, then scatters the
// initial procedural batch in the band below the skier spawn.
func SeedCourse(ecs *ecs.ECS, course *assets.Course, seed int64) {
	for _, o := range course.Obstacles {
		factory.CreateObstacle(ecs, o.X, o.Y, o.Sprite)
	}

	spawnerEntry, ok := components.Spawner.First(ecs.World)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(spawnerEntry)
	spawner.Rand = rand.New(rand.NewSource(seed))
	spawner.LastSpawnRow = course.SkierSpawn.Y

	minX := course.SkierSpawn.X - float64(cfg.C.Width)
	maxX := course.SkierSpawn.X + float64(cfg.C.Width)
	minY := course.SkierSpawn.Y + cfg.Spawn.ClearRadius
	maxY := course.SkierSpawn.Y + 3*float64(cfg.C.Height)
	for i := 0; i < cfg.Spawn.InitialObstacles; i++ {
		x := minX + spawner.Rand.Float64()*(maxX-minX)
		y := minY + spawner.Rand.Float64()*(maxY-minY)
		trySpawnObstacle(ecs, spawner, x, y)
	}
}

// UpdateObstacles extends the slope as the skier descends. Every
// travel-step of vertical progress rolls a chance to drop a new obstacle
// just beyond the bottom edge of the viewport.
func UpdateObstacles(ecs *ecs.ECS) {
	skierEntry, ok := tags.Skier.First(ecs.World)
	if !ok {
		return
	}
	spawnerEntry, ok := components.Spawner.First(ecs.World)
	if !ok {
		return
	}
	spawner := components.Spawner.Get(spawnerEntry)
	if spawner.Rand == nil {
		return
	}

	pos := components.Position.Get(skierEntry)
	for pos.Y-spawner.LastSpawnRow >= cfg.Spawn.TravelStep {
		spawner.LastSpawnRow += cfg.Spawn.TravelStep
		if spawner.Rand.Intn(100) >= cfg.Spawn.EdgeChance {
			continue
		}
		x := pos.X - float64(cfg.C.Width)/2 + spawner.Rand.Float64()*float64(cfg.C.Width)
		y := pos.Y + float64(cfg.C.Height)/2 + cfg.Spawn.EdgeMargin
		trySpawnObstacle(ecs, spawner, x, y)
	}
}

// trySpawnObstacle drops a random obstacle at x, y unless the spot is
// already occupied or inside the skier's clear radius.
func trySpawnObstacle(ecs *ecs.ECS, spawner *components.SpawnerData, x, y float64) {
	sprite := obstacleSprites[spawner.Rand.Intn(len(obstacleSprites))]
	w, h, ok := assets.ImageSize(sprite)
	if !ok {
		return
	}

	if skierEntry, found := tags.Skier.First(ecs.World); found {
		pos := components.Position.Get(skierEntry)
		dx, dy := x-pos.X, y-pos.Y
		if dx*dx+dy*dy < cfg.Spawn.ClearRadius*cfg.Spawn.ClearRadius {
			return
		}
	}

	if spaceEntry, found := components.Space.First(ecs.World); found {
		space := components.Space.Get(spaceEntry)
		if spotOccupied(space, x-w/2, y-h/2, w, h) {
			return
		}
	}

	factory.CreateObstacle(ecs, x, y, sprite)
}

func spotOccupied(space *resolv.Space, x, y, w, h float64) bool {
	for _, obj := range space.Objects() {
		if !obj.HasTags(tags.ResolvObstacle) {
			continue
		}
		if x <= obj.X+obj.W && x+w >= obj.X && y <= obj.Y+obj.H && y+h >= obj.Y {
			return true
		}
	}
	return false
}
