package widget

import (
	"log/slog"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/RajatGang07/stop-watch/pkg/display"
	"github.com/RajatGang07/stop-watch/pkg/log"
	"github.com/RajatGang07/stop-watch/pkg/poller"
	"github.com/RajatGang07/stop-watch/pkg/tracker"
)

// Sink receives rendered display text.
type Sink interface {
	Publish(display string)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(display string)

// Publish calls f.
func (f SinkFunc) Publish(display string) { f(display) }

type discardSink struct{}

func (discardSink) Publish(string) {}

// Options configures a widget. The zero value is usable.
type Options struct {
	// Clock is the time source. Nil selects the real clock.
	Clock clock.Clock

	// Interval overrides the default polling cadence.
	Interval time.Duration

	// Sink receives display updates. Nil discards them.
	Sink Sink

	// Logger receives operational logs. Nil selects slog.Default().
	Logger *slog.Logger

	// Events receives widget events. Nil disables event capture.
	Events log.Logger

	// MaxHours caps the countdown hour field. Zero selects hms.MaxInputHours.
	MaxHours int

	// OnFinished is called when a countdown reaches zero.
	OnFinished func()
}

// base carries what both widgets share: identity, time source and outputs.
type base struct {
	id     string
	kind   log.Kind
	clock  clock.Clock
	sink   Sink
	logger *slog.Logger
	events log.Logger

	// lastTick is the second-resolution text of the last TICK event.
	lastTick string

	// Tracker transitions are queued under the widget lock and emitted by
	// flushStates once it is released.
	pendingMu sync.Mutex
	pending   []stateChange
}

type stateChange struct {
	oldState, newState tracker.State
}

func newBase(kind log.Kind, opts Options) base {
	b := base{
		id:     uuid.New().String(),
		kind:   kind,
		clock:  opts.Clock,
		sink:   opts.Sink,
		logger: opts.Logger,
		events: opts.Events,
	}
	if b.clock == nil {
		b.clock = clock.New()
	}
	if b.sink == nil {
		b.sink = discardSink{}
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	if b.events == nil {
		b.events = log.NoopLogger{}
	}
	b.logger = b.logger.With("widget", kind.String(), "widget_id", b.id)
	return b
}

// ID returns the widget instance ID.
func (b *base) ID() string {
	return b.id
}

func (b *base) emit(event log.Event) {
	event.Timestamp = b.clock.Now()
	event.WidgetID = b.id
	event.Kind = b.kind
	b.events.Log(event)
}

func (b *base) control(action log.Action, accepted bool) {
	if !accepted {
		b.logger.Debug("control ignored", "action", action.String())
	}
	b.emit(log.Event{
		Category: log.CategoryControl,
		Control:  &log.ControlEvent{Action: action, Accepted: accepted},
	})
}

// stateChanged is the tracker callback. It may run under the widget lock,
// so it only queues.
func (b *base) stateChanged(oldState, newState tracker.State) {
	b.pendingMu.Lock()
	b.pending = append(b.pending, stateChange{oldState, newState})
	b.pendingMu.Unlock()
}

// flushStates emits queued transitions. Callers must not hold the widget lock.
func (b *base) flushStates() {
	b.pendingMu.Lock()
	changes := b.pending
	b.pending = nil
	b.pendingMu.Unlock()

	for _, sc := range changes {
		b.logger.Debug("state change", "old", sc.oldState.String(), "new", sc.newState.String())
		b.emit(log.Event{
			Category: log.CategoryState,
			StateChange: &log.StateChangeEvent{
				OldState: sc.oldState.String(),
				NewState: sc.newState.String(),
			},
		})
	}
}

// startPolling starts p after an accepted start. A Close that landed
// before the run existed is caught by the closed check and stops it again.
func (b *base) startPolling(p *poller.Poller, closed func() bool) {
	p.Start()
	if closed() {
		p.Stop()
	}
}

// ticked records a TICK event when the value changes at one-second
// resolution. Only the poller goroutine calls it.
func (b *base) ticked(value time.Duration, text string) {
	key := display.Format(value)
	if key == b.lastTick {
		return
	}
	b.lastTick = key
	b.emit(log.Event{
		Category: log.CategoryTick,
		Tick:     &log.TickEvent{Value: value, Display: text},
	})
}
