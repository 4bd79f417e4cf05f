package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/dartedfa/SkiFree/assets"
	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/systems"
	"github.com/dartedfa/SkiFree/systems/factory"
	"github.com/dartedfa/SkiFree/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// celebrationTicks is how long the rhino gets the screen to itself before
// the game over scene takes over.
const celebrationTicks = 120

// SkiScene runs a single descent.
type SkiScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewSkiScene creates a new run
func NewSkiScene(sc SceneChanger) *SkiScene {
	return &SkiScene{sceneChanger: sc}
}

func (ss *SkiScene) Update() {
	ss.once.Do(ss.configure)
	ss.ecs.Update()

	if ss.runOver() {
		meters := ss.finalDistanceMeters()
		ss.sceneChanger.ChangeScene(NewGameOverScene(ss.sceneChanger, meters))
	}
}

// runOver reports whether the rhino has finished celebrating over the
// skier's remains.
func (ss *SkiScene) runOver() bool {
	skierEntry, ok := tags.Skier.First(ss.ecs.World)
	if !ok {
		return false
	}
	if components.State.Get(skierEntry).CurrentState != cfg.StateDead {
		return false
	}
	rhinoEntry, ok := tags.Rhino.First(ss.ecs.World)
	if !ok {
		return false
	}
	rhinoState := components.State.Get(rhinoEntry)
	return rhinoState.CurrentState == cfg.StateRhinoCelebrating &&
		rhinoState.StateTimer >= celebrationTicks
}

func (ss *SkiScene) finalDistanceMeters() int {
	skierEntry, ok := tags.Skier.First(ss.ecs.World)
	if !ok {
		return 0
	}
	return int(systems.SkierDistance(skierEntry) * cfg.HUD.MetersPerPix)
}

func (ss *SkiScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ss.ecs == nil {
		return
	}
	ss.ecs.Draw(screen)
}

func (ss *SkiScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateDebug)

	// Game systems, frozen while paused
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateClock))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSkier))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateRhino))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateAnimations))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObstacles))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateStates))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateObjects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateEffects))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	ecs.AddRenderer(cfg.Default, systems.DrawCourse)
	ecs.AddRenderer(cfg.Default, systems.DrawObstacles)
	ecs.AddRenderer(cfg.Default, systems.DrawAnimated)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ss.ecs = ecs

	course := assets.NewCourseLoader().MustLoadCourses()[0]

	factory.CreateSpace(ss.ecs, course.Width, course.Height, 16, 16)
	factory.CreateClock(ss.ecs)
	factory.CreateSpawner(ss.ecs)

	factory.CreateSkier(ss.ecs, course.SkierSpawn.X, course.SkierSpawn.Y, 0)
	factory.CreateCamera(ss.ecs, course.SkierSpawn.X, course.SkierSpawn.Y)

	systems.SeedCourse(ss.ecs, &course, time.Now().UnixNano())
}
