package tracker

import (
	"github.com/benbjohnson/clock"
)

// State represents the tracker state.
type State uint8

const (
	// StateIdle indicates no anchor and a zero baseline.
	StateIdle State = iota

	// StateRunning indicates the tracker is anchored to the clock.
	StateRunning

	// StatePaused indicates a frozen value waiting to be resumed.
	StatePaused
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateRunning:
		return "RUNNING"
	case StatePaused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// StateChangeFunc is called after every state transition.
type StateChangeFunc func(oldState, newState State)

func clockOrDefault(clk clock.Clock) clock.Clock {
	if clk == nil {
		return clock.New()
	}
	return clk
}
