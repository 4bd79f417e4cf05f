package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs            *ecs.ECS
	sceneChanger   SceneChanger
	distanceMeters int
	once           sync.Once
}

// NewGameOverScene creates a new game over scene showing the run's final
// distance.
func NewGameOverScene(sc SceneChanger, distanceMeters int) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, distanceMeters: distanceMeters}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createSkiScene := func() interface{} {
		return NewSkiScene(gs.sceneChanger)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createSkiScene, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	systems.GetOrCreateGameOver(gs.ecs).DistanceMeters = gs.distanceMeters
}
