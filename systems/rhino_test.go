package systems

import (
	"math"
	"testing"

	"github.com/dartedfa/SkiFree/components"
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/dartedfa/SkiFree/systems/factory"
	"github.com/dartedfa/SkiFree/tags"
)

func TestChaseTriggersAtDistance(t *testing.T) {
	e, skier := newTestRun(t)
	trigger := cfg.Difficulty().RhinoTriggerDistance

	components.Position.Get(skier).Y = testSpawnY + trigger - 1
	UpdateRhino(e)
	if _, ok := tags.Rhino.First(e.World); ok {
		t.Fatal("rhino spawned before the trigger distance")
	}

	components.Position.Get(skier).Y = testSpawnY + trigger
	UpdateRhino(e)
	rhino, ok := tags.Rhino.First(e.World)
	if !ok {
		t.Fatal("rhino did not spawn at the trigger distance")
	}
	if got := components.State.Get(rhino).CurrentState; got != cfg.StateRhinoRunning {
		t.Fatalf("rhino state = %v, want running", got)
	}

	skierPos := components.Position.Get(skier)
	rhinoPos := components.Position.Get(rhino)
	if got := skierPos.X - rhinoPos.X; got != cfg.Rhino.SpawnOffsetX {
		t.Fatalf("spawn offset = %v, want %v", got, cfg.Rhino.SpawnOffsetX)
	}
}

func TestNoChaseForDeadSkier(t *testing.T) {
	e, skier := newTestRun(t)

	components.Position.Get(skier).Y = testSpawnY + cfg.Difficulty().RhinoTriggerDistance + 500
	components.KillSkier(skier)

	UpdateRhino(e)
	if _, ok := tags.Rhino.First(e.World); ok {
		t.Fatal("rhino spawned for a dead skier")
	}
}

func TestChaseClosesDistance(t *testing.T) {
	e, skier := newTestRun(t)
	rhino := factory.CreateRhino(e, testSpawnX-300, testSpawnY, 0, skier)
	speed := components.Rhino.Get(rhino).Speed

	UpdateRhino(e)

	pos := components.Position.Get(rhino)
	if got := pos.X - (testSpawnX - 300); math.Abs(got-speed) > 1e-9 {
		t.Fatalf("rhino moved %v, want %v", got, speed)
	}
	if pos.Y != testSpawnY {
		t.Fatalf("rhino drifted vertically to %v on a level chase", pos.Y)
	}
}

func TestCatchKillsSkierAndStartsEating(t *testing.T) {
	e, skier := newTestRun(t)
	rhino := factory.CreateRhino(e, testSpawnX-5, testSpawnY, 0, skier)

	UpdateRhino(e)

	if got := skierState(skier); got != cfg.StateDead {
		t.Fatalf("skier state = %v, want dead", got)
	}
	if got := components.Skier.Get(skier).Speed; got != 0 {
		t.Fatalf("skier speed = %v, want 0", got)
	}
	if got := components.State.Get(rhino).CurrentState; got != cfg.StateRhinoEating {
		t.Fatalf("rhino state = %v, want eating", got)
	}

	rpos := components.Position.Get(rhino)
	spos := components.Position.Get(skier)
	if rpos.X != spos.X || rpos.Y != spos.Y {
		t.Fatalf("rhino at (%v, %v), want snapped to skier (%v, %v)",
			rpos.X, rpos.Y, spos.X, spos.Y)
	}
}

func TestEatSequenceEndsInCelebration(t *testing.T) {
	e, skier := newTestRun(t)
	rhino := factory.CreateRhino(e, testSpawnX-5, testSpawnY, 0, skier)

	UpdateRhino(e)
	if got := components.State.Get(rhino).CurrentState; got != cfg.StateRhinoEating {
		t.Fatalf("rhino state = %v, want eating", got)
	}

	for i := 1; i <= len(cfg.RhinoEatSequence); i++ {
		setClock(t, e, float64(i)*300)
		UpdateAnimations(e)
	}

	if got := components.State.Get(rhino).CurrentState; got != cfg.StateRhinoCelebrating {
		t.Fatalf("rhino state = %v, want celebrating", got)
	}
	// A caught skier stays down; the chase system must not restart.
	UpdateRhino(e)
	if got := components.State.Get(rhino).CurrentState; got != cfg.StateRhinoCelebrating {
		t.Fatalf("rhino state after extra tick = %v, want celebrating", got)
	}
}
