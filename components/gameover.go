package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GameOverOption represents the available game over menu selections
type GameOverOption int

const (
	GameOverRetry GameOverOption = iota
	GameOverMenu
)

// GameOverData stores the current state of the game over screen
type GameOverData struct {
	SelectedOption GameOverOption
	// DistanceMeters is the final run distance shown on the screen.
	DistanceMeters int
	// Fade drives the overlay alpha from transparent to opaque.
	Fade  *gween.Tween
	Alpha float32
}

// GameOver is the component type for game over screen state
var GameOver = donburi.NewComponentType[GameOverData]()
