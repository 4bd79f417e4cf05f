package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// MenuUI holds the ebitenui interface for the main menu
type MenuUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnStart           func()
	OnExit            func()
	OnSettingsChanged func(fullscreen bool, scaleIndex int, difficulty string)

	fullscreen bool
	scaleIndex int

	diffButton  *widget.Button
	scaleButton *widget.Button
	fsButton    *widget.Button

	titleFace  text.Face
	normalFace text.Face
}

// NewMenuUI creates the main menu. The settings callback fires on every
// change so the caller can persist them.
func NewMenuUI(fullscreen bool, scaleIndex int, onStart, onExit func(), onSettingsChanged func(bool, int, string)) *MenuUI {
	mui := &MenuUI{
		OnStart:           onStart,
		OnExit:            onExit,
		OnSettingsChanged: onSettingsChanged,
		fullscreen:        fullscreen,
		scaleIndex:        scaleIndex,
	}

	mui.loadFonts()
	mui.buildUI()

	return mui
}

func (mui *MenuUI) loadFonts() {
	titleSource, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}
	normalSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	mui.titleFace = &text.GoTextFace{
		Source: titleSource,
		Size:   32,
	}
	mui.normalFace = &text.GoTextFace{
		Source: normalSource,
		Size:   14,
	}
}

func (mui *MenuUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("SKIFREE", &mui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(mui.newButton("Ski", mui.startButtonImage(), func() {
		if mui.OnStart != nil {
			mui.OnStart()
		}
	}))

	mui.diffButton = mui.newButton(difficultyLabel(), mui.buttonImage(), func() {
		cycleDifficulty()
		mui.diffButton.Text().Label = difficultyLabel()
		mui.settingsChanged()
	})
	contentContainer.AddChild(mui.diffButton)

	mui.scaleButton = mui.newButton(mui.scaleLabel(), mui.buttonImage(), func() {
		mui.scaleIndex = (mui.scaleIndex + 1) % len(cfg.SettingsMenu.WindowScales)
		mui.scaleButton.Text().Label = mui.scaleLabel()
		if !mui.fullscreen {
			scale := cfg.SettingsMenu.WindowScales[mui.scaleIndex].Factor
			ebiten.SetWindowSize(cfg.C.Width*scale, cfg.C.Height*scale)
		}
		mui.settingsChanged()
	})
	contentContainer.AddChild(mui.scaleButton)

	mui.fsButton = mui.newButton(mui.fullscreenLabel(), mui.buttonImage(), func() {
		mui.fullscreen = !mui.fullscreen
		mui.fsButton.Text().Label = mui.fullscreenLabel()
		ebiten.SetFullscreen(mui.fullscreen)
		mui.settingsChanged()
	})
	contentContainer.AddChild(mui.fsButton)

	contentContainer.AddChild(mui.newButton("Exit", mui.buttonImage(), func() {
		if mui.OnExit != nil {
			mui.OnExit()
		}
	}))

	rootContainer.AddChild(contentContainer)

	mui.UI = &ebitenui.UI{Container: rootContainer}
}

func (mui *MenuUI) newButton(label string, img *widget.ButtonImage, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(220, 32),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (mui *MenuUI) settingsChanged() {
	if mui.OnSettingsChanged != nil {
		mui.OnSettingsChanged(mui.fullscreen, mui.scaleIndex, cfg.ActiveDifficulty)
	}
}

func (mui *MenuUI) scaleLabel() string {
	return fmt.Sprintf("Window: %s", cfg.SettingsMenu.WindowScales[mui.scaleIndex].Label)
}

func (mui *MenuUI) fullscreenLabel() string {
	if mui.fullscreen {
		return "Fullscreen: On"
	}
	return "Fullscreen: Off"
}

func difficultyLabel() string {
	return fmt.Sprintf("Difficulty: %s", cfg.ActiveDifficulty)
}

func cycleDifficulty() {
	for i, name := range cfg.DifficultyNames {
		if name == cfg.ActiveDifficulty {
			cfg.ActiveDifficulty = cfg.DifficultyNames[(i+1)%len(cfg.DifficultyNames)]
			return
		}
	}
	cfg.ActiveDifficulty = cfg.DifficultyNames[0]
}

// Update steps the ebitenui widget tree.
func (mui *MenuUI) Update() {
	mui.UI.Update()
}

func (mui *MenuUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (mui *MenuUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 50, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
