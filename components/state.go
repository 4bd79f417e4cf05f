package components

import (
	"github.com/dartedfa/SkiFree/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()

// Marker components mirroring StateData.CurrentState, kept in sync by the
// state system so queries can filter on state without reading the struct.
type SkiingState struct{}
type JumpingState struct{}
type CrashedState struct{}
type DeadState struct{}

var Skiing = donburi.NewComponentType[SkiingState]()
var Jumping = donburi.NewComponentType[JumpingState]()
var Crashed = donburi.NewComponentType[CrashedState]()
var Dead = donburi.NewComponentType[DeadState]()
