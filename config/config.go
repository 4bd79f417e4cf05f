package config

import (
	_ "embed"
	"fmt"
	"image/color"

	"github.com/yohamta/donburi/ecs"
	"gopkg.in/yaml.v3"
)

//go:embed gameplay.yaml
var gameplayYAML []byte

// Default is the ECS layer all renderers are registered on.
const Default = ecs.LayerDefault

// SkierConfig contains the skier movement tuning loaded from gameplay.yaml.
type SkierConfig struct {
	// StartingSpeed is the speed on spawn and crash recovery. It is also the
	// fixed step for input-driven horizontal/uphill creep, regardless of the
	// skier's current speed.
	StartingSpeed float64 `yaml:"starting_speed"`
	// DiagonalReducer divides the speed on 45-degree travel so diagonal and
	// straight-line traversal cover ground at the same rate.
	DiagonalReducer float64 `yaml:"diagonal_reducer"`
}

// SpawnConfig tunes procedural obstacle placement.
type SpawnConfig struct {
	InitialObstacles int     `yaml:"initial_obstacles"` // scattered below the spawn at course start
	EdgeChance       int     `yaml:"edge_chance"`       // percent chance per travel step
	TravelStep       float64 `yaml:"travel_step"`       // pixels travelled between spawn rolls
	ClearRadius      float64 `yaml:"clear_radius"`      // obstacle-free zone around the skier spawn
	EdgeMargin       float64 `yaml:"edge_margin"`       // how far beyond the viewport edge to place
}

// DifficultyConfig holds the per-difficulty rhino tuning.
type DifficultyConfig struct {
	RhinoTriggerDistance float64 `yaml:"rhino_trigger_distance"` // vertical pixels before the chase starts
	RhinoSpeed           float64 `yaml:"rhino_speed"`
}

// GameplayConfig is the root of the embedded gameplay.yaml document.
type GameplayConfig struct {
	Skier        SkierConfig                 `yaml:"skier"`
	Spawn        SpawnConfig                 `yaml:"spawn"`
	Difficulties map[string]DifficultyConfig `yaml:"difficulties"`
}

// RhinoConfig contains rhino behavior constants not tied to difficulty.
type RhinoConfig struct {
	SpawnOffsetX float64 // horizontal offset from the skier when the chase starts
	CatchSlack   float64 // extra reach around the rhino bounds when grabbing
}

// CameraConfig contains camera follow and shake tuning.
type CameraConfig struct {
	Smoothing      float64 // lerp factor toward the skier per tick
	LeadY          float64 // vertical offset so more downhill course is visible
	ShakeIntensity float64 // crash shake offset in pixels
	ShakeDuration  int     // crash shake frames
}

// HUDConfig contains HUD colors and layout.
type HUDConfig struct {
	Margin       float64
	TextColor    color.RGBA
	HintColor    color.RGBA
	CrashHint    string
	MetersPerPix float64 // distance display scale
}

// PauseConfig contains pause overlay configuration.
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuOptions       []string
	MenuItemHeight    float64
	MenuItemGap       float64
}

// GameOverConfig contains game over screen configuration.
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	ScoreY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
	FadeSeconds       float32 // overlay fade-in driven by a gween tween
}

// EffectsConfig contains crash feedback tuning.
type EffectsConfig struct {
	CrashFlashFrames int
}

// DebugConfig contains debug/testing options.
type DebugConfig struct {
	SkipMenu bool // skip the menu and go directly to the slope
}

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Skier SkierConfig
var Spawn SpawnConfig
var Difficulties map[string]DifficultyConfig
var Rhino RhinoConfig
var Camera CameraConfig
var HUD HUDConfig
var Pause PauseConfig
var GameOver GameOverConfig
var Effects EffectsConfig
var Debug DebugConfig

// ActiveDifficulty selects the DifficultyConfig used by the run. Persisted
// via the settings store.
var ActiveDifficulty = "normal"

// DifficultyNames lists the selectable difficulties in menu order.
var DifficultyNames = []string{"easy", "normal", "hard"}

// Difficulty returns the tuning for the active difficulty.
func Difficulty() DifficultyConfig {
	d, ok := Difficulties[ActiveDifficulty]
	if !ok {
		return Difficulties["normal"]
	}
	return d
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Snow         = color.RGBA{R: 240, G: 244, B: 248, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	SlateGray    = color.RGBA{R: 80, G: 90, B: 110, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	gp := GameplayConfig{}
	if err := yaml.Unmarshal(gameplayYAML, &gp); err != nil {
		panic(fmt.Sprintf("failed to parse embedded gameplay.yaml: %v", err))
	}
	if _, ok := gp.Difficulties["normal"]; !ok {
		panic("gameplay.yaml must define a \"normal\" difficulty")
	}
	Skier = gp.Skier
	Spawn = gp.Spawn
	Difficulties = gp.Difficulties

	C = &Config{
		Width:  640,
		Height: 480,
	}

	Rhino = RhinoConfig{
		SpawnOffsetX: 420,
		CatchSlack:   4,
	}

	Camera = CameraConfig{
		Smoothing:      0.12,
		LeadY:          120,
		ShakeIntensity: 5,
		ShakeDuration:  18,
	}

	HUD = HUDConfig{
		Margin:       10,
		TextColor:    SlateGray,
		HintColor:    Red,
		CrashHint:    "Press Left or Right to get up",
		MetersPerPix: 0.1,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		MenuOptions:       []string{"Resume", "Exit"},
		MenuItemHeight:    24,
		MenuItemGap:       8,
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 20, G: 20, B: 30, A: 255},
		TitleColor:        Red,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		Title:             "THE RHINO GOT YOU",
		TitleY:            140,
		ScoreY:            190,
		MenuStartY:        250,
		MenuItemHeight:    24,
		MenuItemGap:       8,
		MenuOptions:       []string{"Ski Again", "Main Menu"},
		FadeSeconds:       0.8,
	}

	Effects = EffectsConfig{
		CrashFlashFrames: 20,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
