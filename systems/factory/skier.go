package factory

import (
	"github.com/dartedfa/SkiFree/archetypes"
	"github.com/dartedfa/SkiFree/assets"
	"github.com/dartedfa/SkiFree/assets/animations"
	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSkier spawns the skier at x, y facing downhill. startTime anchors
// the jump animation's interval gate to the run clock.
func CreateSkier(ecs *ecs.ECS, x, y, startTime float64) *donburi.Entry {
	skier := archetypes.Skier.Spawn(ecs)

	w, h, ok := assets.ImageSize(cfg.SpriteSkierDown)
	if !ok {
		w, h = 32, 44
	}
	obj := resolv.NewObject(x-w/2, y-h/2, w, h)
	obj.AddTags(tags.ResolvSkier)
	obj.Data = skier
	components.Object.SetValue(skier, components.ObjectData{Object: obj})
	if spaceEntry, found := components.Space.First(ecs.World); found {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Position.SetValue(skier, components.PositionData{X: x, Y: y})
	components.Skier.SetValue(skier, components.SkierData{
		Direction: cfg.DirectionDown,
		Speed:     cfg.Skier.StartingSpeed,
		StartY:    y,
	})
	components.State.SetValue(skier, components.StateData{
		CurrentState:  cfg.StateSkiing,
		PreviousState: cfg.StateNone,
	})

	// The jump animation is built once and reused for every jump. Its
	// callbacks capture the entry, not the component pointer: entries stay
	// valid when the entity moves between archetypes, component pointers
	// do not.
	jump := animations.NewAnimation(cfg.SkierJumpSequence, false, startTime,
		func(image string) {
			components.Animation.Get(skier).ImageName = image
		},
		func() {
			components.LandSkier(skier)
		},
	)
	components.Animation.Set(skier, &components.AnimationData{
		ImageName: cfg.DirectionSprites[cfg.DirectionDown],
		Animations: map[cfg.StateID]*animations.Animation{
			cfg.StateJumping: jump,
		},
	})

	components.Flash.SetValue(skier, components.FlashData{R: 1, G: 1, B: 1})

	return skier
}
