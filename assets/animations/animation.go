// Package animations implements a time-driven frame-sequence player.
// An Animation steps through an ordered list of sprite names at a fixed
// minimum interval, delivering each frame to a sink callback. It does no
// scheduling of its own; the owner calls Animate once per tick with the
// current game clock.
package animations

// FrameDelayMs is the minimum time between frame advances.
const FrameDelayMs = 300

// FrameFunc receives each newly selected sprite name.
type FrameFunc func(image string)

// CompleteFunc runs once when a non-looping animation plays out.
type CompleteFunc func()

type Animation struct {
	images     []string
	looping    bool
	onFrame    FrameFunc
	onComplete CompleteFunc

	frame     int
	frameTime float64
	finished  bool
}

// NewAnimation builds an animation over the given sprite names. onFrame is
// required; onComplete may be nil and is ignored for looping animations.
// startTime anchors the interval gate so the first frame is not delivered
// before one full delay has passed.
func NewAnimation(images []string, looping bool, startTime float64, onFrame FrameFunc, onComplete CompleteFunc) *Animation {
	return &Animation{
		images:     images,
		looping:    looping,
		onFrame:    onFrame,
		onComplete: onComplete,
		frameTime:  startTime,
	}
}

// Animate advances at most one frame. It must be called every tick while
// the animation is active; calls inside the frame interval are no-ops, as
// are calls after a non-looping animation has finished.
func (a *Animation) Animate(gameTime float64) {
	if a.finished || len(a.images) == 0 {
		return
	}
	if gameTime-a.frameTime >= FrameDelayMs {
		a.nextFrame(gameTime)
	}
}

// nextFrame delivers the current frame, then moves the index. Reaching the
// end of a non-looping sequence fires the completion callback and latches
// the animation finished until Reset.
func (a *Animation) nextFrame(gameTime float64) {
	a.frameTime = gameTime
	a.onFrame(a.images[a.frame])
	a.frame++
	if a.frame < len(a.images) {
		return
	}
	a.frame = 0
	if !a.looping {
		a.finished = true
		if a.onComplete != nil {
			a.onComplete()
		}
	}
}

// Reset rewinds to the first frame without invoking any callback. The
// interval reference time is left alone, so the next Animate call after a
// long idle delivers immediately.
func (a *Animation) Reset() {
	a.frame = 0
	a.finished = false
}

func (a *Animation) Frame() int { return a.frame }

// Finished reports whether a non-looping animation has played out since
// its last Reset.
func (a *Animation) Finished() bool { return a.finished }

func (a *Animation) Images() []string { return a.images }

func (a *Animation) Looping() bool { return a.looping }

func (a *Animation) OnComplete() CompleteFunc { return a.onComplete }
