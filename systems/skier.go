package systems

import (
	"github.com/dartedfa/SkiFree/assets"
	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// skierActions are polled for edges each tick, in a fixed order so
// simultaneous presses resolve deterministically.
var skierActions = []cfg.ActionID{
	cfg.ActionTurnLeft,
	cfg.ActionTurnRight,
	cfg.ActionTurnUp,
	cfg.ActionTurnDown,
	cfg.ActionJump,
}

// UpdateSkier delivers this tick's input edges to the skier, then applies
// movement and collision. Runs after UpdateInput.
func UpdateSkier(ecs *ecs.ECS) {
	entry, ok := tags.Skier.First(ecs.World)
	if !ok {
		return
	}

	input := getOrCreateInput(ecs)
	for _, action := range skierActions {
		if GetAction(input, action).JustPressed {
			HandleSkierAction(entry, action)
		}
	}

	updateSkierTick(ecs, entry)
}

// HandleSkierAction applies a single input event and reports whether the
// skier consumed it. Dead and airborne skiers ignore all input; every
// recognized action otherwise counts as handled even when it ends up a
// no-op for the current state.
func HandleSkierAction(entry *donburi.Entry, action cfg.ActionID) bool {
	state := components.State.Get(entry).CurrentState
	if state == cfg.StateDead || state == cfg.StateJumping {
		return false
	}

	switch action {
	case cfg.ActionTurnLeft:
		turnLeft(entry)
	case cfg.ActionTurnRight:
		turnRight(entry)
	case cfg.ActionTurnUp:
		turnUp(entry)
	case cfg.ActionTurnDown:
		turnDown(entry)
	case cfg.ActionJump:
		components.JumpSkier(entry)
	default:
		return false
	}
	return true
}

// turnLeft steps the skier one direction toward fully left. A crashed
// skier first stands up facing left, which makes the same press also creep
// left. Once fully left, each press shifts the skier sideways at the fixed
// starting speed regardless of current speed.
func turnLeft(entry *donburi.Entry) {
	if components.State.Get(entry).CurrentState == cfg.StateCrashed {
		components.RecoverSkier(entry, cfg.DirectionLeft)
	}
	skier := components.Skier.Get(entry)
	if skier.Direction == cfg.DirectionLeft {
		components.Position.Get(entry).X -= cfg.Skier.StartingSpeed
		return
	}
	components.SetDirection(entry, skier.Direction-1)
}

func turnRight(entry *donburi.Entry) {
	if components.State.Get(entry).CurrentState == cfg.StateCrashed {
		components.RecoverSkier(entry, cfg.DirectionRight)
	}
	skier := components.Skier.Get(entry)
	if skier.Direction == cfg.DirectionRight {
		components.Position.Get(entry).X += cfg.Skier.StartingSpeed
		return
	}
	components.SetDirection(entry, skier.Direction+1)
}

// turnUp only moves a skier that has already come to a full sideways stop;
// a moving skier cannot climb.
func turnUp(entry *donburi.Entry) {
	if components.State.Get(entry).CurrentState == cfg.StateCrashed {
		return
	}
	d := components.Skier.Get(entry).Direction
	if d == cfg.DirectionLeft || d == cfg.DirectionRight {
		components.Position.Get(entry).Y -= cfg.Skier.StartingSpeed
	}
}

func turnDown(entry *donburi.Entry) {
	if components.State.Get(entry).CurrentState == cfg.StateCrashed {
		return
	}
	components.SetDirection(entry, cfg.DirectionDown)
}

// updateSkierTick applies per-tick movement for the current direction and
// resolves obstacle contact. Only a skiing or jumping skier moves; fully
// sideways directions produce no per-tick displacement, their motion is
// input-driven only.
func updateSkierTick(ecs *ecs.ECS, entry *donburi.Entry) {
	state := components.State.Get(entry).CurrentState
	if state != cfg.StateSkiing && state != cfg.StateJumping {
		return
	}

	skier := components.Skier.Get(entry)
	pos := components.Position.Get(entry)
	switch skier.Direction {
	case cfg.DirectionLeftDown:
		d := skier.Speed / cfg.Skier.DiagonalReducer
		pos.X -= d
		pos.Y += d
	case cfg.DirectionDown:
		pos.Y += skier.Speed
	case cfg.DirectionRightDown:
		d := skier.Speed / cfg.Skier.DiagonalReducer
		pos.X += d
		pos.Y += d
	}

	checkObstacles(ecs, entry)
}

type rect struct {
	left, top, right, bottom float64
}

func intersects(a, b rect) bool {
	return a.left <= b.right && a.right >= b.left &&
		a.top <= b.bottom && a.bottom >= b.top
}

// skierBounds derives the collision box from the current sprite. The
// bottom edge sits a quarter height above the vertical center so the
// skier visually lands inside an obstacle instead of stopping short.
// Without a resolvable sprite there are no bounds and collision is
// skipped for the tick.
func skierBounds(entry *donburi.Entry) (rect, bool) {
	name := components.Animation.Get(entry).ImageName
	w, h, ok := assets.ImageSize(name)
	if !ok {
		return rect{}, false
	}
	pos := components.Position.Get(entry)
	return rect{
		left:   pos.X - w/2,
		top:    pos.Y - h/2,
		right:  pos.X + w/2,
		bottom: pos.Y - h/4,
	}, true
}

func obstacleBounds(obstacle *donburi.Entry) (rect, bool) {
	w, h, ok := assets.ImageSize(components.Obstacle.Get(obstacle).Sprite)
	if !ok {
		return rect{}, false
	}
	pos := components.Position.Get(obstacle)
	return rect{
		left:   pos.X - w/2,
		top:    pos.Y - h/2,
		right:  pos.X + w/2,
		bottom: pos.Y + h/2,
	}, true
}

// checkObstacles acts on the first intersecting obstacle in entity
// creation order. Ramps launch the skier, rocks only matter on the
// ground, anything else downs the skier outright.
func checkObstacles(ecs *ecs.ECS, entry *donburi.Entry) {
	bounds, ok := skierBounds(entry)
	if !ok {
		return
	}

	hitSprite := ""
	found := false
	tags.Obstacle.Each(ecs.World, func(obstacle *donburi.Entry) {
		if found {
			return
		}
		ob, ok := obstacleBounds(obstacle)
		if !ok {
			return
		}
		if intersects(bounds, ob) {
			hitSprite = components.Obstacle.Get(obstacle).Sprite
			found = true
		}
	})
	if !found {
		return
	}

	switch hitSprite {
	case cfg.SpriteJumpRamp:
		components.JumpSkier(entry)
	case cfg.SpriteRock1, cfg.SpriteRock2:
		if components.State.Get(entry).CurrentState != cfg.StateJumping {
			crashWithFeedback(ecs, entry)
		}
	default:
		crashWithFeedback(ecs, entry)
	}
}

// crashWithFeedback downs the skier and kicks off the camera shake and
// sprite flash.
func crashWithFeedback(ecs *ecs.ECS, entry *donburi.Entry) {
	components.CrashSkier(entry)
	if components.State.Get(entry).CurrentState != cfg.StateCrashed {
		return
	}

	flash := components.Flash.Get(entry)
	flash.Duration = cfg.Effects.CrashFlashFrames
	flash.R, flash.G, flash.B = 1, 0.5, 0.5

	if cameraEntry, ok := components.ScreenShake.First(ecs.World); ok {
		shake := components.ScreenShake.Get(cameraEntry)
		shake.Intensity = cfg.Camera.ShakeIntensity
		shake.Duration = cfg.Camera.ShakeDuration
		shake.Elapsed = 0
	}
}

// SkierDistance reports how far downhill the skier has travelled, in
// course pixels.
func SkierDistance(entry *donburi.Entry) float64 {
	return components.Position.Get(entry).Y - components.Skier.Get(entry).StartY
}
