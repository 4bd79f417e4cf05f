package systems

import (
	"image/color"

	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var debugEnabled bool

// UpdateDebug toggles the collision overlay with F1.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionDebugToggle).JustPressed {
		debugEnabled = !debugEnabled
	}
}

// DrawDebug outlines every collision object in the resolv space.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !debugEnabled {
		return
	}

	camera, ok := cameraView(ecs)
	if !ok {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	viewX := camera.Position.X
	viewY := camera.Position.Y
	viewW := float64(screen.Bounds().Dx())
	viewH := float64(screen.Bounds().Dy())

	for _, obj := range space.Objects() {
		if obj.X+obj.W < viewX || obj.X > viewX+viewW || obj.Y+obj.H < viewY || obj.Y > viewY+viewH {
			continue
		}

		x := obj.X - viewX
		y := obj.Y - viewY

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		if obj.HasTags(tags.ResolvSkier) {
			c = color.RGBA{0, 0, 255, 255} // Blue
		} else if obj.HasTags(tags.ResolvRhino) {
			c = color.RGBA{255, 0, 0, 255} // Red
		} else if obj.HasTags(tags.ResolvObstacle) {
			c = color.RGBA{100, 100, 100, 255} // Grey
		}

		vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
		vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
		vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
		vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
	}
}
