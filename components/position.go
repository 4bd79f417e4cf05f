package components

import (
	"github.com/yohamta/donburi"
)

// PositionData holds an entity's center position in course coordinates.
// Sprites are drawn centered on it and collision bounds derive from it.
type PositionData struct {
	X float64
	Y float64
}

var Position = donburi.NewComponentType[PositionData]()
