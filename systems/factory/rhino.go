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

// CreateRhino spawns the chasing rhino targeting the given skier.
func CreateRhino(ecs *ecs.ECS, x, y, startTime float64, target *donburi.Entry) *donburi.Entry {
	rhino := archetypes.Rhino.Spawn(ecs)

	w, h, ok := assets.ImageSize(cfg.SpriteRhinoRun1)
	if !ok {
		w, h = 64, 56
	}
	obj := resolv.NewObject(x-w/2, y-h/2, w, h)
	obj.AddTags(tags.ResolvRhino)
	obj.Data = rhino
	components.Object.SetValue(rhino, components.ObjectData{Object: obj})
	if spaceEntry, found := components.Space.First(ecs.World); found {
		components.Space.Get(spaceEntry).Add(obj)
	}

	components.Position.SetValue(rhino, components.PositionData{X: x, Y: y})
	components.Rhino.SetValue(rhino, components.RhinoData{
		Speed:  cfg.Difficulty().RhinoSpeed,
		Target: target,
	})
	components.State.SetValue(rhino, components.StateData{
		CurrentState:  cfg.StateRhinoRunning,
		PreviousState: cfg.StateNone,
	})

	setFrame := func(image string) {
		components.Animation.Get(rhino).ImageName = image
	}
	run := animations.NewAnimation(cfg.RhinoRunSequence, true, startTime, setFrame, nil)
	eat := animations.NewAnimation(cfg.RhinoEatSequence, false, startTime, setFrame,
		func() {
			components.StartRhinoCelebrating(rhino)
		},
	)
	celebrate := animations.NewAnimation(cfg.RhinoCelebrateSequence, true, startTime, setFrame, nil)

	anim := &components.AnimationData{
		ImageName: cfg.SpriteRhinoRun1,
		Animations: map[cfg.StateID]*animations.Animation{
			cfg.StateRhinoRunning:     run,
			cfg.StateRhinoEating:      eat,
			cfg.StateRhinoCelebrating: celebrate,
		},
	}
	anim.SetAnimation(cfg.StateRhinoRunning)
	components.Animation.Set(rhino, anim)

	return rhino
}
