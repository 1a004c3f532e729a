package tracker

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Stopwatch tracks elapsed time across start/stop cycles.
// It is safe for concurrent use.
type Stopwatch struct {
	mu    sync.RWMutex
	clock clock.Clock

	state State

	// anchor is now minus the baseline at the last (re)start.
	anchor time.Time

	// baseline is the elapsed time accumulated before the last Start.
	baseline time.Duration

	onStateChange StateChangeFunc
}

// NewStopwatch creates an Idle stopwatch reading time from clk.
// A nil clk selects the real clock.
func NewStopwatch(clk clock.Clock) *Stopwatch {
	return &Stopwatch{
		clock: clockOrDefault(clk),
		state: StateIdle,
	}
}

// State returns the current state.
func (s *Stopwatch) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Start anchors the stopwatch so elapsed time continues from the baseline.
// Returns false if already Running.
func (s *Stopwatch) Start() bool {
	s.mu.Lock()

	if s.state == StateRunning {
		s.mu.Unlock()
		return false
	}

	oldState := s.state
	s.anchor = s.clock.Now().Add(-s.baseline)
	s.state = StateRunning
	fn := s.onStateChange

	s.mu.Unlock()

	if fn != nil {
		fn(oldState, StateRunning)
	}
	return true
}

// Stop freezes the elapsed time as the new baseline.
// Returns false unless Running.
func (s *Stopwatch) Stop() bool {
	s.mu.Lock()

	if s.state != StateRunning {
		s.mu.Unlock()
		return false
	}

	s.baseline = s.elapsed(s.clock.Now())
	s.anchor = time.Time{}
	s.state = StatePaused
	fn := s.onStateChange

	s.mu.Unlock()

	if fn != nil {
		fn(StateRunning, StatePaused)
	}
	return true
}

// Reset clears the anchor and baseline and returns to Idle.
func (s *Stopwatch) Reset() {
	s.mu.Lock()

	oldState := s.state
	s.state = StateIdle
	s.anchor = time.Time{}
	s.baseline = 0
	fn := s.onStateChange

	s.mu.Unlock()

	if fn != nil && oldState != StateIdle {
		fn(oldState, StateIdle)
	}
}

// Elapsed returns the live elapsed time while Running and the baseline
// otherwise.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateRunning {
		return s.baseline
	}
	return s.elapsed(s.clock.Now())
}

// OnStateChange sets a callback for state changes.
// The callback is invoked without holding the tracker lock.
func (s *Stopwatch) OnStateChange(fn StateChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onStateChange = fn
}

func (s *Stopwatch) elapsed(now time.Time) time.Duration {
	e := now.Sub(s.anchor)
	if e < 0 {
		return 0
	}
	return e
}
