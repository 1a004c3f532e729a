package tracker

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Countdown tracks the time remaining until a deadline.
// It is safe for concurrent use.
type Countdown struct {
	mu    sync.RWMutex
	clock clock.Clock

	state State

	// deadline is set only while Running.
	deadline time.Time

	// frozen is the remaining time while Paused.
	frozen time.Duration

	// target is the duration of the current run as first started.
	target time.Duration

	onStateChange StateChangeFunc
}

// NewCountdown creates an Idle countdown reading time from clk.
// A nil clk selects the real clock.
func NewCountdown(clk clock.Clock) *Countdown {
	return &Countdown{
		clock: clockOrDefault(clk),
		state: StateIdle,
	}
}

// State returns the current state.
func (c *Countdown) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Target returns the duration the most recent run was started with.
// Reset clears it.
func (c *Countdown) Target() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.target
}

// Deadline returns the instant the countdown reaches zero.
// Returns the zero time unless Running.
func (c *Countdown) Deadline() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deadline
}

// Start starts a fresh countdown from Idle or resumes one from Paused.
//
// From Idle, target must be positive; otherwise Start is a no-op. From Paused,
// target is ignored and the frozen remaining time is used. Start while
// Running is a no-op. Returns true if the tracker transitioned to Running.
func (c *Countdown) Start(target time.Duration) bool {
	c.mu.Lock()

	now := c.clock.Now()
	switch c.state {
	case StateRunning:
		c.mu.Unlock()
		return false
	case StatePaused:
		c.deadline = now.Add(c.frozen)
	default:
		if target <= 0 {
			c.mu.Unlock()
			return false
		}
		c.target = target
		c.frozen = target
		c.deadline = now.Add(target)
	}

	oldState := c.state
	c.state = StateRunning
	fn := c.onStateChange

	c.mu.Unlock()

	if fn != nil {
		fn(oldState, StateRunning)
	}
	return true
}

// Pause freezes the live remaining time. Returns false unless Running.
func (c *Countdown) Pause() bool {
	c.mu.Lock()

	if c.state != StateRunning {
		c.mu.Unlock()
		return false
	}

	c.frozen = c.remaining(c.clock.Now())
	c.deadline = time.Time{}
	c.state = StatePaused
	fn := c.onStateChange

	c.mu.Unlock()

	if fn != nil {
		fn(StateRunning, StatePaused)
	}
	return true
}

// Amend replaces the frozen remaining time while Paused, so the next
// Start resumes from d. A non-positive d returns the tracker to Idle.
// Returns false unless Paused.
func (c *Countdown) Amend(d time.Duration) bool {
	c.mu.Lock()

	if c.state != StatePaused {
		c.mu.Unlock()
		return false
	}

	if d > 0 {
		c.frozen = d
		c.mu.Unlock()
		return true
	}

	c.frozen = 0
	c.target = 0
	c.state = StateIdle
	fn := c.onStateChange

	c.mu.Unlock()

	if fn != nil {
		fn(StatePaused, StateIdle)
	}
	return true
}

// Reset discards the deadline and any frozen value and returns to Idle.
func (c *Countdown) Reset() {
	c.mu.Lock()

	oldState := c.state
	c.state = StateIdle
	c.deadline = time.Time{}
	c.frozen = 0
	c.target = 0
	fn := c.onStateChange

	c.mu.Unlock()

	if fn != nil && oldState != StateIdle {
		fn(oldState, StateIdle)
	}
}

// Remaining returns the live remaining time without transitioning.
// It is the frozen value while Paused and 0 while Idle.
func (c *Countdown) Remaining() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch c.state {
	case StateRunning:
		return c.remaining(c.clock.Now())
	case StatePaused:
		return c.frozen
	default:
		return 0
	}
}

// Sample returns the live remaining time. When a running countdown has
// reached zero, Sample freezes it at zero, returns to Idle and reports
// finished. A finished countdown is reported exactly once.
func (c *Countdown) Sample() (remaining time.Duration, finished bool) {
	c.mu.Lock()

	switch c.state {
	case StatePaused:
		remaining = c.frozen
		c.mu.Unlock()
		return remaining, false
	case StateIdle:
		c.mu.Unlock()
		return 0, false
	}

	remaining = c.remaining(c.clock.Now())
	if remaining > 0 {
		c.mu.Unlock()
		return remaining, false
	}

	c.state = StateIdle
	c.deadline = time.Time{}
	c.frozen = 0
	fn := c.onStateChange

	c.mu.Unlock()

	if fn != nil {
		fn(StateRunning, StateIdle)
	}
	return 0, true
}

// OnStateChange sets a callback for state changes.
// The callback is invoked without holding the tracker lock.
func (c *Countdown) OnStateChange(fn StateChangeFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStateChange = fn
}

func (c *Countdown) remaining(now time.Time) time.Duration {
	r := c.deadline.Sub(now)
	if r < 0 {
		return 0
	}
	return r
}
