package components

import "github.com/yohamta/donburi"

// ObstacleData identifies what kind of obstacle occupies a course cell.
// The sprite name doubles as the collision behavior key: ramps launch the
// skier, rocks are cleared while airborne, everything else crashes.
type ObstacleData struct {
	Sprite string
}

var Obstacle = donburi.NewComponentType[ObstacleData]()
