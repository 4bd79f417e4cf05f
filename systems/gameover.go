package systems

import (
	"fmt"

	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver creates an UpdateGameOver system with scene transition
// capability. Menu input is held back until the fade-in finishes so a
// mashed key from the run does not skip the screen instantly.
func NewUpdateGameOver(sceneChanger SceneChanger, createSkiScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		if gameOver.Fade != nil {
			alpha, done := gameOver.Fade.Update(1.0 / float32(ebiten.TPS()))
			gameOver.Alpha = alpha
			if !done {
				return
			}
		}

		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createSkiScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	bg := cfg.GameOver.BackgroundColor
	bg.A = uint8(float32(bg.A) * gameOver.Alpha)
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		bg,
		false,
	)
	if gameOver.Alpha < 1 {
		return
	}

	titleFont := fonts.Title.Get()
	title := cfg.GameOver.Title
	titleWidth := len(title) * 17
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, titleFont, titleX, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)

	score := fmt.Sprintf("You skied %dm", gameOver.DistanceMeters)
	scoreFont := fonts.Menu.Get()
	scoreWidth := len(score) * 11
	text.Draw(screen, score, scoreFont,
		int((width-float64(scoreWidth))/2), int(cfg.GameOver.ScoreY), cfg.White)

	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}

		textWidth := len(option) * 11
		x := int((width - float64(textWidth)) / 2)

		text.Draw(screen, option, scoreFont, x, int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
			Fade:           gween.New(0, 1, cfg.GameOver.FadeSeconds, ease.Linear),
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
