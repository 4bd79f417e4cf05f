package config

// StateID identifies a behavioral state for the skier or the rhino.
type StateID int

const (
	StateNone StateID = iota

	// Skier states
	StateSkiing
	StateJumping
	StateCrashed
	StateDead

	// Rhino states
	StateRhinoRunning
	StateRhinoEating
	StateRhinoCelebrating
)

func (s StateID) String() string {
	switch s {
	case StateSkiing:
		return "skiing"
	case StateJumping:
		return "jumping"
	case StateCrashed:
		return "crashed"
	case StateDead:
		return "dead"
	case StateRhinoRunning:
		return "rhino_running"
	case StateRhinoEating:
		return "rhino_eating"
	case StateRhinoCelebrating:
		return "rhino_celebrating"
	}
	return "none"
}

// Skier facing directions, ordered left to right. Only the three downhill
// directions produce per-tick movement.
const (
	DirectionLeft = iota
	DirectionLeftDown
	DirectionDown
	DirectionRightDown
	DirectionRight
)

// DirectionCount is the number of valid skier directions.
const DirectionCount = 5
