package systems

import (
	"math"

	"github.com/dartedfa/SkiFree/components"
	"github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera eases the viewport after the skier, biased downhill so the
// player sees what they are about to hit. The slope is endless, so there
// are no level bounds to clamp against.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	skierEntry, ok := tags.Skier.First(e.World)
	if ok {
		pos := components.Position.Get(skierEntry)

		targetX := pos.X - float64(config.C.Width)/2
		targetY := pos.Y - float64(config.C.Height)/2 + config.Camera.LeadY

		camera.Position.X += (targetX - camera.Position.X) * config.Camera.Smoothing
		camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.Smoothing
	}

	updateScreenShake(cameraEntry, camera)
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	if shake.Duration <= 0 {
		return
	}
	shake.Elapsed++

	// Decaying intensity over the shake's lifetime
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
		shake.Duration = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity
}
