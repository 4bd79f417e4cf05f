package systems

import (
	"math/rand"
	"testing"

	"github.com/dartedfa/SkiFree/assets"
	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/systems/factory"
	"github.com/dartedfa/SkiFree/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func countObstacles(e *ecs.ECS) int {
	n := 0
	tags.Obstacle.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func testCourse() *assets.Course {
	return &assets.Course{
		Name:       "test",
		Width:      2000,
		Height:     20000,
		SkierSpawn: assets.SkierSpawn{X: testSpawnX, Y: testSpawnY},
		Obstacles: []assets.ObstacleSpawn{
			{X: 500, Y: 600, Sprite: cfg.SpriteTree},
			{X: 1400, Y: 900, Sprite: cfg.SpriteRock2},
		},
	}
}

func TestSeedCoursePlacesAuthoredObstacles(t *testing.T) {
	e, skier := newTestRun(t)
	factory.CreateSpawner(e)

	course := testCourse()
	SeedCourse(e, course, 1)

	got := countObstacles(e)
	if got < len(course.Obstacles) {
		t.Fatalf("obstacle count = %d, want at least %d", got, len(course.Obstacles))
	}

	authored := 0
	skierPos := components.Position.Get(skier)
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		pos := components.Position.Get(entry)
		for _, o := range course.Obstacles {
			if pos.X == o.X && pos.Y == o.Y {
				authored++
				return
			}
		}
		// Everything else came from the procedural scatter, which must
		// keep out of the skier's clear radius.
		dx, dy := pos.X-skierPos.X, pos.Y-skierPos.Y
		if dx*dx+dy*dy < cfg.Spawn.ClearRadius*cfg.Spawn.ClearRadius {
			t.Errorf("procedural obstacle at (%v, %v) inside clear radius", pos.X, pos.Y)
		}
	})
	if authored != len(course.Obstacles) {
		t.Fatalf("authored obstacles placed = %d, want %d", authored, len(course.Obstacles))
	}
}

func TestTrySpawnObstacleRespectsClearRadius(t *testing.T) {
	e, skier := newTestRun(t)
	spawnerEntry := factory.CreateSpawner(e)
	spawner := components.Spawner.Get(spawnerEntry)
	spawner.Rand = rand.New(rand.NewSource(1))

	pos := components.Position.Get(skier)
	trySpawnObstacle(e, spawner, pos.X+10, pos.Y+10)
	if got := countObstacles(e); got != 0 {
		t.Fatalf("obstacle spawned inside clear radius, count = %d", got)
	}

	trySpawnObstacle(e, spawner, pos.X, pos.Y+cfg.Spawn.ClearRadius+200)
	if got := countObstacles(e); got != 1 {
		t.Fatalf("obstacle count = %d, want 1", got)
	}
}

func TestTrySpawnObstacleSkipsOccupiedSpot(t *testing.T) {
	e, _ := newTestRun(t)
	spawnerEntry := factory.CreateSpawner(e)
	spawner := components.Spawner.Get(spawnerEntry)
	spawner.Rand = rand.New(rand.NewSource(1))

	x, y := testSpawnX, testSpawnY+1000.0
	factory.CreateObstacle(e, x, y, cfg.SpriteTreeCluster)

	trySpawnObstacle(e, spawner, x, y)
	if got := countObstacles(e); got != 1 {
		t.Fatalf("obstacle count = %d, want 1", got)
	}
}

func TestUpdateObstaclesExtendsSlope(t *testing.T) {
	e, skier := newTestRun(t)
	factory.CreateSpawner(e)
	SeedCourse(e, testCourse(), 1)

	spawnerEntry, _ := components.Spawner.First(e.World)
	spawner := components.Spawner.Get(spawnerEntry)
	before := countObstacles(e)

	steps := 400.0
	components.Position.Get(skier).Y += steps * cfg.Spawn.TravelStep
	UpdateObstacles(e)

	wantRow := testSpawnY + steps*cfg.Spawn.TravelStep
	if spawner.LastSpawnRow != wantRow {
		t.Fatalf("LastSpawnRow = %v, want %v", spawner.LastSpawnRow, wantRow)
	}
	if got := countObstacles(e); got <= before {
		t.Fatalf("obstacle count = %d, want more than %d after descending", got, before)
	}
}

func TestUpdateObstaclesIdleSkierSpawnsNothing(t *testing.T) {
	e, _ := newTestRun(t)
	factory.CreateSpawner(e)
	SeedCourse(e, testCourse(), 1)

	before := countObstacles(e)
	UpdateObstacles(e)
	if got := countObstacles(e); got != before {
		t.Fatalf("obstacle count = %d, want %d with no travel", got, before)
	}
}
