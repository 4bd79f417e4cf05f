package components

import (
	"github.com/dartedfa/SkiFree/assets/animations"
	"github.com/dartedfa/SkiFree/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	// ImageName is the sprite drawn this frame. While an animation is
	// playing its frame callback overwrites it; otherwise systems set it
	// directly (for example from the skier's facing direction).
	ImageName string

	Animations   map[config.StateID]*animations.Animation
	CurrentAnim  *animations.Animation
	CurrentState config.StateID
}

// SetAnimation switches to the animation registered for state, restarting
// it from the first frame. States with no registered animation clear the
// current one and leave ImageName under direct system control.
func (a *AnimationData) SetAnimation(state config.StateID) {
	anim, ok := a.Animations[state]
	if !ok {
		a.CurrentAnim = nil
		a.CurrentState = state
		return
	}
	if a.CurrentAnim == anim && a.CurrentState == state {
		return
	}
	a.CurrentAnim = anim
	a.CurrentState = state
	anim.Reset()
}

// Stop clears the current animation without touching ImageName.
func (a *AnimationData) Stop() {
	a.CurrentAnim = nil
	a.CurrentState = config.StateNone
}

var Animation = donburi.NewComponentType[AnimationData]()
