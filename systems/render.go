package systems

import (
	"github.com/dartedfa/SkiFree/assets"
	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// Viewport culling skips draw calls for entities that are currently
// off-screen. A small padding prevents sprites popping at the edges.
const cullPadding = 96.0

func cameraView(ecs *ecs.ECS) (*components.CameraData, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(cameraEntry), true
}

// DrawCourse paints the snow. Runs first on the render layer.
func DrawCourse(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Snow)
}

// DrawObstacles renders every obstacle inside the viewport, centered on
// its position.
func DrawObstacles(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraView(ecs)
	if !ok {
		return
	}

	minX := camera.Position.X - cullPadding
	maxX := camera.Position.X + float64(cfg.C.Width) + cullPadding
	minY := camera.Position.Y - cullPadding
	maxY := camera.Position.Y + float64(cfg.C.Height) + cullPadding

	tags.Obstacle.Each(ecs.World, func(e *donburi.Entry) {
		pos := components.Position.Get(e)
		if pos.X < minX || pos.X > maxX || pos.Y < minY || pos.Y > maxY {
			return
		}

		img := assets.GetImage(components.Obstacle.Get(e).Sprite)
		w, h := img.Bounds().Dx(), img.Bounds().Dy()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(
			pos.X-float64(w)/2-camera.Position.X,
			pos.Y-float64(h)/2-camera.Position.Y,
		)
		screen.DrawImage(img, drawOp)
	})
}

// DrawAnimated renders the skier and the rhino from their current sprite
// name. A dead skier is not drawn at all; at that point the rhino owns the
// scene.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	camera, ok := cameraView(ecs)
	if !ok {
		return
	}

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(tags.Skier) &&
			components.State.Get(e).CurrentState == cfg.StateDead {
			return
		}

		anim := components.Animation.Get(e)
		if anim.ImageName == "" {
			return
		}
		img := assets.GetImage(anim.ImageName)
		w, h := img.Bounds().Dx(), img.Bounds().Dy()

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(
			components.Position.Get(e).X-float64(w)/2-camera.Position.X,
			components.Position.Get(e).Y-float64(h)/2-camera.Position.Y,
		)

		if e.HasComponent(components.Flash) {
			flash := components.Flash.Get(e)
			if flash.Duration > 0 {
				drawOp.ColorScale.Scale(flash.R, flash.G, flash.B, 1)
			}
		}

		screen.DrawImage(img, drawOp)
	})
}
