package components

import (
	cfg "github.com/dartedfa/SkiFree/config"
	"github.com/yohamta/donburi"
)

type RhinoData struct {
	// Speed in pixels per tick while chasing.
	Speed float64
	// Target is the skier entity being chased.
	Target *donburi.Entry
}

var Rhino = donburi.NewComponentType[RhinoData]()

// StartRhinoEating switches a chasing rhino to its meal. The eat animation's
// completion callback moves it on to celebrating.
func StartRhinoEating(entry *donburi.Entry) {
	state := State.Get(entry)
	if state.CurrentState != cfg.StateRhinoRunning {
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.StateRhinoEating
	state.StateTimer = 0
	Animation.Get(entry).SetAnimation(cfg.StateRhinoEating)
}

// StartRhinoCelebrating is called when the eat sequence finishes.
func StartRhinoCelebrating(entry *donburi.Entry) {
	state := State.Get(entry)
	if state.CurrentState != cfg.StateRhinoEating {
		return
	}
	state.PreviousState = state.CurrentState
	state.CurrentState = cfg.StateRhinoCelebrating
	state.StateTimer = 0
	Animation.Get(entry).SetAnimation(cfg.StateRhinoCelebrating)
}
