package tags

import (
	"github.com/yohamta/donburi"
)

var (
	Skier    = donburi.NewTag().SetName("Skier")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Rhino    = donburi.NewTag().SetName("Rhino")
	Camera   = donburi.NewTag().SetName("Camera")
	Course   = donburi.NewTag().SetName("Course")
)

// Collision space tags used on resolv objects.
const (
	ResolvSkier    = "skier"
	ResolvObstacle = "obstacle"
	ResolvRhino    = "rhino"
)
