package config

// Sprite identifiers. Each maps to an embedded image file
// assets/images/<name>.png.
const (
	SpriteSkierLeft      = "skier_left"
	SpriteSkierLeftDown  = "skier_left_down"
	SpriteSkierDown      = "skier_down"
	SpriteSkierRightDown = "skier_right_down"
	SpriteSkierRight     = "skier_right"
	SpriteSkierCrash     = "skier_crash"

	SpriteSkierJump1 = "skier_jump_1"
	SpriteSkierJump2 = "skier_jump_2"
	SpriteSkierJump3 = "skier_jump_3"
	SpriteSkierJump4 = "skier_jump_4"
	SpriteSkierJump5 = "skier_jump_5"

	SpriteTree        = "tree_1"
	SpriteTreeCluster = "tree_cluster"
	SpriteRock1       = "rock_1"
	SpriteRock2       = "rock_2"
	SpriteJumpRamp    = "jump_ramp"

	SpriteRhinoRun1          = "rhino_run_left"
	SpriteRhinoRun2          = "rhino_run_left_2"
	SpriteRhinoLift          = "rhino_lift"
	SpriteRhinoLiftMouthOpen = "rhino_lift_mouth_open"
	SpriteRhinoLiftEat1      = "rhino_lift_eat_1"
	SpriteRhinoLiftEat2      = "rhino_lift_eat_2"
	SpriteRhinoLiftEat3      = "rhino_lift_eat_3"
	SpriteRhinoLiftEat4      = "rhino_lift_eat_4"
	SpriteRhinoCelebrate1    = "rhino_celebrate_1"
	SpriteRhinoCelebrate2    = "rhino_celebrate_2"
)

// DirectionSprites maps a skier direction to its sprite.
var DirectionSprites = [DirectionCount]string{
	SpriteSkierLeft,
	SpriteSkierLeftDown,
	SpriteSkierDown,
	SpriteSkierRightDown,
	SpriteSkierRight,
}

// SkierJumpSequence is the skier's airborne flip, played once per jump.
var SkierJumpSequence = []string{
	SpriteSkierJump1,
	SpriteSkierJump2,
	SpriteSkierJump3,
	SpriteSkierJump4,
	SpriteSkierJump5,
}

var RhinoRunSequence = []string{
	SpriteRhinoRun1,
	SpriteRhinoRun2,
}

var RhinoEatSequence = []string{
	SpriteRhinoLift,
	SpriteRhinoLiftMouthOpen,
	SpriteRhinoLiftEat1,
	SpriteRhinoLiftEat2,
	SpriteRhinoLiftEat3,
	SpriteRhinoLiftEat4,
}

var RhinoCelebrateSequence = []string{
	SpriteRhinoCelebrate1,
	SpriteRhinoCelebrate2,
}
