package systems

import (
	"math"
	"testing"

	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	testSpawnX = 1000.0
	testSpawnY = 200.0
)

func newTestRun(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, 2000, 4000, 16, 16)
	factory.CreateClock(e)
	skier := factory.CreateSkier(e, testSpawnX, testSpawnY, 0)
	return e, skier
}

func setClock(t *testing.T, e *ecs.ECS, ms float64) {
	t.Helper()
	entry, ok := components.Clock.First(e.World)
	if !ok {
		t.Fatal("no clock entity")
	}
	components.Clock.Get(entry).Now = ms
}

func skierState(entry *donburi.Entry) cfg.StateID {
	return components.State.Get(entry).CurrentState
}

func skierSprite(entry *donburi.Entry) string {
	return components.Animation.Get(entry).ImageName
}

func TestDirectionCyclingLeft(t *testing.T) {
	_, skier := newTestRun(t)

	if got := components.Skier.Get(skier).Direction; got != cfg.DirectionDown {
		t.Fatalf("initial direction = %d, want %d", got, cfg.DirectionDown)
	}

	if !HandleSkierAction(skier, cfg.ActionTurnLeft) {
		t.Fatal("turn left not handled")
	}
	if got := components.Skier.Get(skier).Direction; got != cfg.DirectionLeftDown {
		t.Fatalf("direction after one left = %d, want %d", got, cfg.DirectionLeftDown)
	}
	if got := skierSprite(skier); got != cfg.SpriteSkierLeftDown {
		t.Fatalf("sprite = %q, want %q", got, cfg.SpriteSkierLeftDown)
	}

	HandleSkierAction(skier, cfg.ActionTurnLeft)
	if got := components.Skier.Get(skier).Direction; got != cfg.DirectionLeft {
		t.Fatalf("direction after two lefts = %d, want %d", got, cfg.DirectionLeft)
	}
	if got := skierSprite(skier); got != cfg.SpriteSkierLeft {
		t.Fatalf("sprite = %q, want %q", got, cfg.SpriteSkierLeft)
	}
}

func TestDirectionCyclingRight(t *testing.T) {
	_, skier := newTestRun(t)

	HandleSkierAction(skier, cfg.ActionTurnRight)
	if got := components.Skier.Get(skier).Direction; got != cfg.DirectionRightDown {
		t.Fatalf("direction after one right = %d, want %d", got, cfg.DirectionRightDown)
	}
	HandleSkierAction(skier, cfg.ActionTurnRight)
	if got := components.Skier.Get(skier).Direction; got != cfg.DirectionRight {
		t.Fatalf("direction after two rights = %d, want %d", got, cfg.DirectionRight)
	}
	if got := skierSprite(skier); got != cfg.SpriteSkierRight {
		t.Fatalf("sprite = %q, want %q", got, cfg.SpriteSkierRight)
	}
}

func TestHorizontalCreepAtFullLeft(t *testing.T) {
	_, skier := newTestRun(t)

	HandleSkierAction(skier, cfg.ActionTurnLeft)
	HandleSkierAction(skier, cfg.ActionTurnLeft)
	x := components.Position.Get(skier).X

	HandleSkierAction(skier, cfg.ActionTurnLeft)
	if got := components.Position.Get(skier).X; got != x-cfg.Skier.StartingSpeed {
		t.Fatalf("x after creep = %v, want %v", got, x-cfg.Skier.StartingSpeed)
	}
	if got := components.Skier.Get(skier).Direction; got != cfg.DirectionLeft {
		t.Fatalf("direction changed during creep: %d", got)
	}
}

func TestJumpingIgnoresInput(t *testing.T) {
	_, skier := newTestRun(t)

	if !HandleSkierAction(skier, cfg.ActionJump) {
		t.Fatal("jump not handled")
	}
	if got := skierState(skier); got != cfg.StateJumping {
		t.Fatalf("state = %v, want jumping", got)
	}

	dir := components.Skier.Get(skier).Direction
	sprite := skierSprite(skier)
	for _, action := range []cfg.ActionID{
		cfg.ActionTurnLeft, cfg.ActionTurnRight, cfg.ActionTurnUp, cfg.ActionJump,
	} {
		if HandleSkierAction(skier, action) {
			t.Fatalf("action %d handled while jumping", action)
		}
	}
	if got := components.Skier.Get(skier).Direction; got != dir {
		t.Fatalf("direction changed while jumping: %d", got)
	}
	if got := skierSprite(skier); got != sprite {
		t.Fatalf("sprite changed while jumping: %q", got)
	}
	if got := skierState(skier); got != cfg.StateJumping {
		t.Fatalf("state = %v, want jumping", got)
	}
}

func TestJumpBlockedFacingFullySideways(t *testing.T) {
	_, skier := newTestRun(t)

	HandleSkierAction(skier, cfg.ActionTurnLeft)
	HandleSkierAction(skier, cfg.ActionTurnLeft)

	if !HandleSkierAction(skier, cfg.ActionJump) {
		t.Fatal("jump input should still count as handled")
	}
	if got := skierState(skier); got != cfg.StateSkiing {
		t.Fatalf("state = %v, want skiing", got)
	}
}

func TestCrashedSpaceStaysCrashed(t *testing.T) {
	_, skier := newTestRun(t)

	components.CrashSkier(skier)
	if !HandleSkierAction(skier, cfg.ActionJump) {
		t.Fatal("jump input should count as handled while crashed")
	}
	if got := skierState(skier); got != cfg.StateCrashed {
		t.Fatalf("state = %v, want crashed", got)
	}
}

func TestCrashOnTree(t *testing.T) {
	e, skier := newTestRun(t)

	// One tick moves the skier 10px downhill; the tree overlaps the
	// raised bottom edge of the skier bounds after the move.
	factory.CreateObstacle(e, testSpawnX, testSpawnY+20, cfg.SpriteTree)

	UpdateSkier(e)

	if got := skierState(skier); got != cfg.StateCrashed {
		t.Fatalf("state = %v, want crashed", got)
	}
	if got := components.Skier.Get(skier).Speed; got != 0 {
		t.Fatalf("speed after crash = %v, want 0", got)
	}
	if got := skierSprite(skier); got != cfg.SpriteSkierCrash {
		t.Fatalf("sprite = %q, want %q", got, cfg.SpriteSkierCrash)
	}
}

func TestRockSafeWhileJumping(t *testing.T) {
	e, skier := newTestRun(t)

	factory.CreateObstacle(e, testSpawnX, testSpawnY+12, cfg.SpriteRock1)
	HandleSkierAction(skier, cfg.ActionJump)

	UpdateSkier(e)

	if got := skierState(skier); got != cfg.StateJumping {
		t.Fatalf("state = %v, want jumping", got)
	}
}

func TestRockCrashesOnGround(t *testing.T) {
	e, skier := newTestRun(t)

	factory.CreateObstacle(e, testSpawnX, testSpawnY+12, cfg.SpriteRock1)

	UpdateSkier(e)

	if got := skierState(skier); got != cfg.StateCrashed {
		t.Fatalf("state = %v, want crashed", got)
	}
}

func TestRampTriggersJump(t *testing.T) {
	e, skier := newTestRun(t)

	factory.CreateObstacle(e, testSpawnX, testSpawnY+5, cfg.SpriteJumpRamp)

	UpdateSkier(e)

	if got := skierState(skier); got != cfg.StateJumping {
		t.Fatalf("state = %v, want jumping", got)
	}
}

func TestLandingRestoresDirectionSprite(t *testing.T) {
	e, skier := newTestRun(t)

	HandleSkierAction(skier, cfg.ActionTurnRight)
	HandleSkierAction(skier, cfg.ActionJump)

	for i := 1; i <= len(cfg.SkierJumpSequence); i++ {
		setClock(t, e, float64(i)*300)
		UpdateAnimations(e)
	}

	if got := skierState(skier); got != cfg.StateSkiing {
		t.Fatalf("state after landing = %v, want skiing", got)
	}
	if got := skierSprite(skier); got != cfg.SpriteSkierRightDown {
		t.Fatalf("sprite after landing = %q, want %q", got, cfg.SpriteSkierRightDown)
	}
}

func TestRecoverFromCrashFacesChosenSide(t *testing.T) {
	_, skier := newTestRun(t)

	components.CrashSkier(skier)
	x := components.Position.Get(skier).X

	HandleSkierAction(skier, cfg.ActionTurnLeft)

	if got := skierState(skier); got != cfg.StateSkiing {
		t.Fatalf("state = %v, want skiing", got)
	}
	if got := components.Skier.Get(skier).Direction; got != cfg.DirectionLeft {
		t.Fatalf("direction = %d, want %d", got, cfg.DirectionLeft)
	}
	if got := components.Skier.Get(skier).Speed; got != cfg.Skier.StartingSpeed {
		t.Fatalf("speed = %v, want %v", got, cfg.Skier.StartingSpeed)
	}
	// Standing up facing left also creeps left on the same press.
	if got := components.Position.Get(skier).X; got != x-cfg.Skier.StartingSpeed {
		t.Fatalf("x = %v, want %v", got, x-cfg.Skier.StartingSpeed)
	}
}

func TestDeadIsTerminal(t *testing.T) {
	_, skier := newTestRun(t)

	components.KillSkier(skier)
	if got := components.Skier.Get(skier).Speed; got != 0 {
		t.Fatalf("speed after death = %v, want 0", got)
	}

	for _, action := range []cfg.ActionID{
		cfg.ActionTurnLeft, cfg.ActionTurnRight, cfg.ActionTurnUp,
		cfg.ActionTurnDown, cfg.ActionJump,
	} {
		if HandleSkierAction(skier, action) {
			t.Fatalf("action %d handled while dead", action)
		}
	}
	components.RecoverSkier(skier, cfg.DirectionLeft)
	if got := skierState(skier); got != cfg.StateDead {
		t.Fatalf("state = %v, want dead", got)
	}
}

func TestMovementDeltas(t *testing.T) {
	tests := []struct {
		name      string
		direction int
		wantDX    float64
		wantDY    float64
	}{
		{"down", cfg.DirectionDown, 0, cfg.Skier.StartingSpeed},
		{"left down", cfg.DirectionLeftDown,
			-cfg.Skier.StartingSpeed / cfg.Skier.DiagonalReducer,
			cfg.Skier.StartingSpeed / cfg.Skier.DiagonalReducer},
		{"right down", cfg.DirectionRightDown,
			cfg.Skier.StartingSpeed / cfg.Skier.DiagonalReducer,
			cfg.Skier.StartingSpeed / cfg.Skier.DiagonalReducer},
		{"left", cfg.DirectionLeft, 0, 0},
		{"right", cfg.DirectionRight, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, skier := newTestRun(t)
			components.SetDirection(skier, tt.direction)
			pos := components.Position.Get(skier)
			x, y := pos.X, pos.Y

			UpdateSkier(e)

			if dx := pos.X - x; math.Abs(dx-tt.wantDX) > 1e-9 {
				t.Fatalf("dx = %v, want %v", dx, tt.wantDX)
			}
			if dy := pos.Y - y; math.Abs(dy-tt.wantDY) > 1e-9 {
				t.Fatalf("dy = %v, want %v", dy, tt.wantDY)
			}
		})
	}
}

func TestTurnUpClimbsOnlyWhenFullySideways(t *testing.T) {
	_, skier := newTestRun(t)

	y := components.Position.Get(skier).Y
	HandleSkierAction(skier, cfg.ActionTurnUp)
	if got := components.Position.Get(skier).Y; got != y {
		t.Fatalf("climbed while facing down: %v", got)
	}

	HandleSkierAction(skier, cfg.ActionTurnLeft)
	HandleSkierAction(skier, cfg.ActionTurnLeft)
	y = components.Position.Get(skier).Y
	HandleSkierAction(skier, cfg.ActionTurnUp)
	if got := components.Position.Get(skier).Y; got != y-cfg.Skier.StartingSpeed {
		t.Fatalf("y = %v, want %v", got, y-cfg.Skier.StartingSpeed)
	}
}

func TestTurnDownFromDiagonal(t *testing.T) {
	_, skier := newTestRun(t)

	HandleSkierAction(skier, cfg.ActionTurnLeft)
	HandleSkierAction(skier, cfg.ActionTurnDown)
	if got := components.Skier.Get(skier).Direction; got != cfg.DirectionDown {
		t.Fatalf("direction = %d, want %d", got, cfg.DirectionDown)
	}
	if got := skierSprite(skier); got != cfg.SpriteSkierDown {
		t.Fatalf("sprite = %q, want %q", got, cfg.SpriteSkierDown)
	}
}
