package scenes

import (
	"image/color"
	"os"
	"sync"

	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/systems"
	"github.com/dartedfa/SkiFree/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene displays the main menu using ebitenui
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
	shouldStart  bool
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)

	ms.menuUI.Update()

	if ms.shouldStart {
		ms.sceneChanger.ChangeScene(NewSkiScene(ms.sceneChanger))
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	saved, _ := systems.LoadSettings()

	fullscreen := false
	scaleIndex := cfg.SettingsMenu.DefaultScaleIndex
	if saved != nil {
		fullscreen = saved.Fullscreen
		scaleIndex = saved.ScaleIndex
	}

	ms.menuUI = ui.NewMenuUI(
		fullscreen,
		scaleIndex,
		func() { ms.shouldStart = true },
		func() { os.Exit(0) },
		func(fullscreen bool, scaleIndex int, difficulty string) {
			_ = systems.SaveSettings(&systems.SavedSettings{
				Fullscreen: fullscreen,
				ScaleIndex: scaleIndex,
				Difficulty: difficulty,
			})
		},
	)
}
