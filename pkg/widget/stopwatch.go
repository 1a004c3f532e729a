package widget

import (
	"sync"
	"time"

	"github.com/RajatGang07/stop-watch/pkg/display"
	"github.com/RajatGang07/stop-watch/pkg/log"
	"github.com/RajatGang07/stop-watch/pkg/poller"
	"github.com/RajatGang07/stop-watch/pkg/tracker"
)

// StopwatchView is a snapshot of what a stopwatch UI renders.
type StopwatchView struct {
	Display string
	State   tracker.State

	StartLabel   string
	StartEnabled bool
	StopEnabled  bool
	ResetEnabled bool
}

// Stopwatch is a stopwatch with centisecond display.
type Stopwatch struct {
	base

	tracker *tracker.Stopwatch
	poll    *poller.Poller

	mu      sync.Mutex
	display string
	closed  bool
}

// NewStopwatch creates an Idle stopwatch.
func NewStopwatch(opts Options) *Stopwatch {
	s := &Stopwatch{
		base:    newBase(log.KindStopwatch, opts),
		display: display.ZeroCentis,
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = poller.StopwatchInterval
	}

	s.tracker = tracker.NewStopwatch(s.clock)
	s.tracker.OnStateChange(s.stateChanged)
	s.poll = poller.New(s.clock, interval, s.tick)
	return s
}

// Start starts or resumes the stopwatch. Returns false if already running.
func (s *Stopwatch) Start() bool {
	s.mu.Lock()
	ok := !s.closed && s.tracker.Start()
	s.mu.Unlock()

	s.flushStates()
	if ok {
		s.startPolling(s.poll, s.isClosed)
	}
	s.control(log.ActionStart, ok)
	return ok
}

func (s *Stopwatch) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Stop freezes the elapsed time. Returns false unless running.
func (s *Stopwatch) Stop() bool {
	s.poll.Stop()

	s.mu.Lock()

	if s.closed || !s.tracker.Stop() {
		s.mu.Unlock()
		s.control(log.ActionStop, false)
		return false
	}

	text := display.FormatCentis(s.tracker.Elapsed())
	s.display = text

	s.mu.Unlock()

	s.flushStates()
	s.sink.Publish(text)
	s.control(log.ActionStop, true)
	return true
}

// Reset cancels polling and returns the stopwatch to zero.
func (s *Stopwatch) Reset() {
	s.poll.Stop()

	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return
	}

	s.tracker.Reset()
	s.display = display.ZeroCentis

	s.mu.Unlock()

	s.flushStates()
	s.sink.Publish(display.ZeroCentis)
	s.control(log.ActionReset, true)
}

// Close cancels polling and disables the widget.
func (s *Stopwatch) Close() {
	s.mu.Lock()
	wasClosed := s.closed
	s.closed = true
	s.mu.Unlock()

	s.poll.Stop()

	if !wasClosed {
		s.control(log.ActionClose, true)
	}
}

// Elapsed returns the live elapsed time.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.tracker.Elapsed()
}

// View returns a snapshot of the rendered state.
func (s *Stopwatch) View() StopwatchView {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.tracker.State()
	running := state == tracker.StateRunning

	label := LabelStart
	if running {
		label = LabelRunning
	}

	return StopwatchView{
		Display:      s.display,
		State:        state,
		StartLabel:   label,
		StartEnabled: !running && !s.closed,
		StopEnabled:  running && !s.closed,
		ResetEnabled: !s.closed,
	}
}

// tick publishes the elapsed time. A run left behind by a Stop or Reset
// that raced the poller start ends itself.
func (s *Stopwatch) tick(time.Time) bool {
	if s.tracker.State() != tracker.StateRunning {
		return false
	}
	elapsed := s.tracker.Elapsed()
	text := display.FormatCentis(elapsed)

	s.mu.Lock()
	s.display = text
	s.mu.Unlock()

	s.sink.Publish(text)
	s.ticked(elapsed, text)
	return true
}
