package factory

import (
	"github.com/dartedfa/SkiFree/archetypes"
	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera places the viewport so the skier starts centered
// horizontally with extra downhill course visible below.
func CreateCamera(ecs *ecs.ECS, skierX, skierY float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{
			X: skierX - float64(cfg.C.Width)/2,
			Y: skierY - float64(cfg.C.Height)/2 + cfg.Camera.LeadY,
		},
	})
	components.ScreenShake.Set(camera, &components.ScreenShakeData{})
}
