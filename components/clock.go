package components

import "github.com/yohamta/donburi"

// ClockData is the run's monotonic clock in milliseconds. Animations
// advance against it, so pausing the clock pauses every animation.
type ClockData struct {
	Now float64
}

var Clock = donburi.NewComponentType[ClockData]()
