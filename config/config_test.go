package config

import "testing"

func TestGameplayValuesLoaded(t *testing.T) {
	if Skier.StartingSpeed <= 0 {
		t.Fatalf("StartingSpeed = %v, want positive", Skier.StartingSpeed)
	}
	if Skier.DiagonalReducer <= 1 {
		t.Fatalf("DiagonalReducer = %v, want > 1", Skier.DiagonalReducer)
	}
	if Spawn.TravelStep <= 0 || Spawn.ClearRadius <= 0 {
		t.Fatalf("spawn tuning not loaded: %+v", Spawn)
	}
	for _, name := range DifficultyNames {
		d, ok := Difficulties[name]
		if !ok {
			t.Fatalf("difficulty %q missing from gameplay.yaml", name)
		}
		if d.RhinoSpeed <= 0 || d.RhinoTriggerDistance <= 0 {
			t.Fatalf("difficulty %q not tuned: %+v", name, d)
		}
	}
}

func TestDifficultyOrdering(t *testing.T) {
	easy, norm, hard := Difficulties["easy"], Difficulties["normal"], Difficulties["hard"]
	if !(easy.RhinoTriggerDistance > norm.RhinoTriggerDistance &&
		norm.RhinoTriggerDistance > hard.RhinoTriggerDistance) {
		t.Errorf("trigger distances not descending: easy=%v normal=%v hard=%v",
			easy.RhinoTriggerDistance, norm.RhinoTriggerDistance, hard.RhinoTriggerDistance)
	}
	if !(easy.RhinoSpeed < norm.RhinoSpeed && norm.RhinoSpeed < hard.RhinoSpeed) {
		t.Errorf("rhino speeds not ascending: easy=%v normal=%v hard=%v",
			easy.RhinoSpeed, norm.RhinoSpeed, hard.RhinoSpeed)
	}
}

func TestDifficultyFallsBackToNormal(t *testing.T) {
	prev := ActiveDifficulty
	defer func() { ActiveDifficulty = prev }()

	ActiveDifficulty = "nightmare"
	if got := Difficulty(); got != Difficulties["normal"] {
		t.Fatalf("Difficulty() = %+v, want the normal tuning", got)
	}
}

func TestDirectionSpritesCoverAllDirections(t *testing.T) {
	for d, sprite := range DirectionSprites {
		if sprite == "" {
			t.Fatalf("direction %d has no sprite", d)
		}
	}
}
