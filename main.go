package main

import (
	"image"
	"log"

	"github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/fonts"
	"github.com/dartedfa/SkiFree/scenes"
	"github.com/dartedfa/SkiFree/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadAll()

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewSkiScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	scale := config.SettingsMenu.WindowScales[config.SettingsMenu.DefaultScaleIndex].Factor
	ebiten.SetWindowSize(config.C.Width*scale, config.C.Height*scale)
	ebiten.SetWindowTitle("SkiFree")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := systems.InitPersistence(); err == nil {
		if saved, err := systems.LoadSettings(); err == nil {
			systems.ApplySavedSettings(saved)
		}
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
