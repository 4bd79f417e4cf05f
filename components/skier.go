package components

import (
	"github.com/dartedfa/SkiFree/config"
	"github.com/yohamta/donburi"
)

type SkierData struct {
	// Direction is one of the config.Direction* values.
	Direction int
	// Speed in pixels per tick along the travel vector.
	Speed float64
	// StartY is the spawn row, used to measure distance travelled.
	StartY float64
}

var Skier = donburi.NewComponentType[SkierData]()

// The functions below are the only way skier state transitions happen.
// They keep StateData, SkierData and the visible sprite consistent, so no
// caller can leave the skier facing the wrong way for its state.

func setSkierState(entry *donburi.Entry, next config.StateID) {
	state := State.Get(entry)
	if state.CurrentState == next {
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.StateTimer = 0
}

// SetDirection turns the skier, clamping to the valid range. The facing
// sprite only updates while skiing; jumping and crashed skiers keep their
// current image.
func SetDirection(entry *donburi.Entry, direction int) {
	if direction < config.DirectionLeft {
		direction = config.DirectionLeft
	}
	if direction > config.DirectionRight {
		direction = config.DirectionRight
	}
	skier := Skier.Get(entry)
	skier.Direction = direction

	if State.Get(entry).CurrentState == config.StateSkiing {
		Animation.Get(entry).ImageName = config.DirectionSprites[direction]
	}
}

// JumpSkier launches the skier. Only a skiing skier with downhill momentum
// can jump; crashed and dead skiers stay put, an airborne skier cannot
// double-jump, and a skier facing fully sideways has no speed to take off.
func JumpSkier(entry *donburi.Entry) {
	if State.Get(entry).CurrentState != config.StateSkiing {
		return
	}
	d := Skier.Get(entry).Direction
	if d == config.DirectionLeft || d == config.DirectionRight {
		return
	}
	setSkierState(entry, config.StateJumping)
	Animation.Get(entry).SetAnimation(config.StateJumping)
}

// LandSkier puts an airborne skier back on the snow facing its stored
// direction. Called from the jump animation's completion callback.
func LandSkier(entry *donburi.Entry) {
	if State.Get(entry).CurrentState != config.StateJumping {
		return
	}
	setSkierState(entry, config.StateSkiing)
	anim := Animation.Get(entry)
	anim.Stop()
	anim.ImageName = config.DirectionSprites[Skier.Get(entry).Direction]
}

// CrashSkier downs the skier with zero speed. A crash mid-jump rewinds the
// jump animation so the next takeoff starts from its first frame. A dead
// skier cannot crash.
func CrashSkier(entry *donburi.Entry) {
	if State.Get(entry).CurrentState == config.StateDead {
		return
	}
	anim := Animation.Get(entry)
	if State.Get(entry).CurrentState == config.StateJumping {
		if jump, ok := anim.Animations[config.StateJumping]; ok {
			jump.Reset()
		}
	}
	setSkierState(entry, config.StateCrashed)
	Skier.Get(entry).Speed = 0
	anim.Stop()
	anim.ImageName = config.SpriteSkierCrash
}

// RecoverSkier stands a crashed skier up facing the given side, with speed
// reset to the starting value.
func RecoverSkier(entry *donburi.Entry, direction int) {
	if State.Get(entry).CurrentState != config.StateCrashed {
		return
	}
	setSkierState(entry, config.StateSkiing)
	Skier.Get(entry).Speed = config.Skier.StartingSpeed
	SetDirection(entry, direction)
}

// KillSkier removes the skier from play. Dead is terminal; no transition
// leads out of it.
func KillSkier(entry *donburi.Entry) {
	setSkierState(entry, config.StateDead)
	Skier.Get(entry).Speed = 0
	Animation.Get(entry).Stop()
}
