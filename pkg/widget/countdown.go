package widget

import (
	"strconv"
	"sync"
	"time"

	"github.com/RajatGang07/stop-watch/pkg/display"
	"github.com/RajatGang07/stop-watch/pkg/hms"
	"github.com/RajatGang07/stop-watch/pkg/log"
	"github.com/RajatGang07/stop-watch/pkg/poller"
	"github.com/RajatGang07/stop-watch/pkg/tracker"
)

// Start button labels.
const (
	LabelStart    = "Start"
	LabelContinue = "Continue"
	LabelRunning  = "Running..."
)

// CountdownView is a snapshot of what a countdown UI renders.
type CountdownView struct {
	Display string

	// Input fields as shown; empty means the field was cleared.
	Hour   string
	Minute string
	Second string

	State tracker.State

	StartLabel    string
	StartEnabled  bool
	PauseEnabled  bool
	ResetEnabled  bool
	FieldsEnabled bool
}

// Countdown is a countdown timer fed from three free-form input fields.
type Countdown struct {
	base

	tracker    *tracker.Countdown
	poll       *poller.Poller
	maxHours   int
	onFinished func()

	mu      sync.Mutex
	hour    string
	minute  string
	second  string
	display string
	closed  bool
}

// NewCountdown creates an Idle countdown with empty fields.
func NewCountdown(opts Options) *Countdown {
	c := &Countdown{
		base:       newBase(log.KindCountdown, opts),
		maxHours:   opts.MaxHours,
		onFinished: opts.OnFinished,
		display:    display.Zero,
	}
	if c.maxHours <= 0 || c.maxHours > hms.MaxInputHours {
		c.maxHours = hms.MaxInputHours
	}
	if c.onFinished == nil {
		c.onFinished = func() {}
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = poller.CountdownInterval
	}

	c.tracker = tracker.NewCountdown(c.clock)
	c.tracker.OnStateChange(c.stateChanged)
	c.poll = poller.New(c.clock, interval, c.tick)
	return c
}

// SetHour edits the hour field. The value is capped at the configured
// maximum before normalization.
func (c *Countdown) SetHour(val string) {
	c.edit(log.FieldHour, val)
}

// SetMinute edits the minute field. Values of 60 or more carry into hours.
func (c *Countdown) SetMinute(val string) {
	c.edit(log.FieldMinute, val)
}

// SetSecond edits the second field. Values of 60 or more carry into minutes.
func (c *Countdown) SetSecond(val string) {
	c.edit(log.FieldSecond, val)
}

// SetFields edits all three fields at once.
func (c *Countdown) SetFields(h, m, s string) {
	c.edit(log.FieldHour, h)
	c.edit(log.FieldMinute, m)
	c.edit(log.FieldSecond, s)
}

// edit applies a field change. Fields are read-only while Running. While
// Idle the display follows the fields; while Paused the edited value also
// replaces the frozen remaining time, so Continue resumes from it.
func (c *Countdown) edit(field log.Field, val string) {
	c.mu.Lock()

	state := c.tracker.State()
	if c.closed || state == tracker.StateRunning {
		c.mu.Unlock()
		return
	}

	if val == "" {
		c.setField(field, "")
	} else {
		h, m, s := c.hour, c.minute, c.second
		switch field {
		case log.FieldHour:
			h = strconv.Itoa(min(hms.ParseField(val), c.maxHours))
		case log.FieldMinute:
			m = val
		case log.FieldSecond:
			s = val
		}
		c.hour, c.minute, c.second = hms.Normalize(h, m, s).Fields()
	}

	t := hms.Normalize(c.hour, c.minute, c.second)
	if state == tracker.StatePaused {
		c.tracker.Amend(t.Duration())
	}
	text := display.Format(t.Duration())
	c.display = text

	c.mu.Unlock()

	c.flushStates()
	c.sink.Publish(text)
	c.emit(log.Event{
		Category: log.CategoryInput,
		Input: &log.InputEvent{
			Field:   field,
			Raw:     val,
			Hours:   t.Hours,
			Minutes: t.Minutes,
			Seconds: t.Seconds,
		},
	})
}

func (c *Countdown) setField(field log.Field, val string) {
	switch field {
	case log.FieldHour:
		c.hour = val
	case log.FieldMinute:
		c.minute = val
	case log.FieldSecond:
		c.second = val
	}
}

// Start starts a countdown from the fields, or continues a paused one.
// Starting with a zero total and starting while Running are no-ops.
// Returns true if the countdown is now running.
func (c *Countdown) Start() bool {
	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()
		return false
	}

	action := log.ActionStart
	var ok bool
	switch c.tracker.State() {
	case tracker.StateRunning:
	case tracker.StatePaused:
		action = log.ActionResume
		ok = c.tracker.Start(0)
	default:
		t := hms.Normalize(c.hour, c.minute, c.second)
		if ok = c.tracker.Start(t.Duration()); ok {
			c.hour, c.minute, c.second = t.Fields()
			c.logger.Debug("countdown started", "target", t.Duration())
		}
	}

	c.mu.Unlock()

	c.flushStates()
	if ok {
		c.startPolling(c.poll, c.isClosed)
	}
	c.control(action, ok)
	return ok
}

func (c *Countdown) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Pause freezes the countdown and rewrites the fields to the remaining
// time. Returns false unless Running.
func (c *Countdown) Pause() bool {
	c.poll.Stop()

	c.mu.Lock()

	if c.closed || !c.tracker.Pause() {
		c.mu.Unlock()
		c.control(log.ActionPause, false)
		return false
	}

	remaining := c.tracker.Remaining()
	c.hour, c.minute, c.second = hms.FromDuration(remaining).Fields()
	text := display.Format(remaining)
	c.display = text

	c.mu.Unlock()

	c.flushStates()
	c.sink.Publish(text)
	c.control(log.ActionPause, true)
	return true
}

// Reset cancels polling, clears the fields and shows zero.
func (c *Countdown) Reset() {
	c.poll.Stop()

	c.mu.Lock()

	if c.closed {
		c.mu.Unlock()
		return
	}

	c.tracker.Reset()
	c.hour, c.minute, c.second = "", "", ""
	c.display = display.Zero

	c.mu.Unlock()

	c.flushStates()
	c.sink.Publish(display.Zero)
	c.control(log.ActionReset, true)
}

// Close cancels polling and disables the widget. It is safe to call
// Close multiple times, and from an event logger handling a control or
// state event raised by a control. It must not be called from the polling
// goroutine: the Sink, OnFinished, or events raised by a tick.
func (c *Countdown) Close() {
	c.mu.Lock()
	wasClosed := c.closed
	c.closed = true
	c.mu.Unlock()

	c.poll.Stop()

	if !wasClosed {
		c.control(log.ActionClose, true)
	}
}

// Remaining returns the live remaining time.
func (c *Countdown) Remaining() time.Duration {
	return c.tracker.Remaining()
}

// View returns a snapshot of the rendered state.
func (c *Countdown) View() CountdownView {
	c.mu.Lock()
	defer c.mu.Unlock()

	state := c.tracker.State()
	running := state == tracker.StateRunning

	label := LabelStart
	if state == tracker.StatePaused {
		label = LabelContinue
	}

	return CountdownView{
		Display:       c.display,
		Hour:          c.hour,
		Minute:        c.minute,
		Second:        c.second,
		State:         state,
		StartLabel:    label,
		StartEnabled:  !running && !c.closed,
		PauseEnabled:  running && !c.closed,
		ResetEnabled:  !c.closed,
		FieldsEnabled: !running && !c.closed,
	}
}

// tick samples the tracker and publishes the remaining time. It ends the
// run once the countdown reaches zero, or when the countdown is no longer
// running because a control raced the poller start.
func (c *Countdown) tick(time.Time) bool {
	remaining, finished := c.tracker.Sample()
	c.flushStates()
	if !finished && c.tracker.State() != tracker.StateRunning {
		return false
	}
	text := display.Format(remaining)

	c.mu.Lock()
	c.display = text
	c.mu.Unlock()

	c.sink.Publish(text)
	c.ticked(remaining, text)

	if !finished {
		return true
	}

	target := c.tracker.Target()
	c.logger.Info("countdown finished", "target", target)
	c.emit(log.Event{
		Category: log.CategoryFinish,
		Finish:   &log.FinishEvent{Target: target},
	})
	c.onFinished()
	return false
}
