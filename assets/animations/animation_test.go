package animations

import (
	"reflect"
	"testing"
)

func TestNonLoopingDeliversEachFrameOnceThenCompletes(t *testing.T) {
	var frames []string
	completions := 0

	anim := NewAnimation([]string{"a", "b"}, false, 0,
		func(image string) { frames = append(frames, image) },
		func() { completions++ },
	)

	anim.Animate(300)
	anim.Animate(600)
	anim.Animate(900)

	want := []string{"a", "b"}
	if !reflect.DeepEqual(frames, want) {
		t.Fatalf("frames = %v, want %v", frames, want)
	}
	if completions != 1 {
		t.Fatalf("completions = %d, want 1", completions)
	}
	if !anim.Finished() {
		t.Fatal("animation should be finished")
	}
}

func TestIntervalGating(t *testing.T) {
	var frames []string
	anim := NewAnimation([]string{"a", "b", "c"}, false, 0,
		func(image string) { frames = append(frames, image) },
		nil,
	)

	anim.Animate(100)
	anim.Animate(299)
	if len(frames) != 0 {
		t.Fatalf("advanced before the frame delay elapsed: %v", frames)
	}

	anim.Animate(300)
	if len(frames) != 1 || frames[0] != "a" {
		t.Fatalf("frames = %v, want [a]", frames)
	}

	// The reference time moved to 300, so 550 is still inside the window.
	anim.Animate(550)
	if len(frames) != 1 {
		t.Fatalf("advanced too early: %v", frames)
	}
	anim.Animate(600)
	if len(frames) != 2 || frames[1] != "b" {
		t.Fatalf("frames = %v, want [a b]", frames)
	}
}

func TestLoopingWrapsWithoutCompleting(t *testing.T) {
	var frames []string
	completions := 0
	anim := NewAnimation([]string{"x", "y"}, true, 0,
		func(image string) { frames = append(frames, image) },
		func() { completions++ },
	)

	for i := 1; i <= 5; i++ {
		anim.Animate(float64(i) * 300)
	}

	want := []string{"x", "y", "x", "y", "x"}
	if !reflect.DeepEqual(frames, want) {
		t.Fatalf("frames = %v, want %v", frames, want)
	}
	if completions != 0 {
		t.Fatalf("looping animation completed %d times", completions)
	}
	if anim.Finished() {
		t.Fatal("looping animation must never finish")
	}
}

func TestFinishedLatchBlocksFurtherFrames(t *testing.T) {
	var frames []string
	anim := NewAnimation([]string{"a"}, false, 0,
		func(image string) { frames = append(frames, image) },
		nil,
	)

	anim.Animate(300)
	anim.Animate(600)
	anim.Animate(900)
	if len(frames) != 1 {
		t.Fatalf("finished animation kept delivering: %v", frames)
	}
}

func TestResetRearmsWithoutCallbacks(t *testing.T) {
	var frames []string
	completions := 0
	anim := NewAnimation([]string{"a", "b"}, false, 0,
		func(image string) { frames = append(frames, image) },
		func() { completions++ },
	)

	anim.Animate(300)
	anim.Animate(600)
	if !anim.Finished() {
		t.Fatal("expected finished after two advances")
	}

	anim.Reset()
	if anim.Finished() {
		t.Fatal("reset must clear the finished latch")
	}
	if anim.Frame() != 0 {
		t.Fatalf("frame after reset = %d, want 0", anim.Frame())
	}
	if len(frames) != 2 || completions != 1 {
		t.Fatalf("reset invoked callbacks: frames=%v completions=%d", frames, completions)
	}

	anim.Animate(900)
	anim.Animate(1200)
	want := []string{"a", "b", "a", "b"}
	if !reflect.DeepEqual(frames, want) {
		t.Fatalf("frames after reset = %v, want %v", frames, want)
	}
	if completions != 2 {
		t.Fatalf("completions after reset = %d, want 2", completions)
	}
}

func TestAccessors(t *testing.T) {
	images := []string{"a", "b"}
	anim := NewAnimation(images, true, 0, func(string) {}, nil)

	if !reflect.DeepEqual(anim.Images(), images) {
		t.Fatalf("Images() = %v, want %v", anim.Images(), images)
	}
	if !anim.Looping() {
		t.Fatal("Looping() = false, want true")
	}
	if anim.OnComplete() != nil {
		t.Fatal("OnComplete() should be nil when not provided")
	}
}
