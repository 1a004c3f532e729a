package widget

import (
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RajatGang07/stop-watch/pkg/log"
)

// recordingSink keeps every published value.
type recordingSink struct {
	mu     sync.Mutex
	values []string
}

func (r *recordingSink) Publish(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, s)
}

func (r *recordingSink) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.values) == 0 {
		return ""
	}
	return r.values[len(r.values)-1]
}

// mockSink expects exact Publish calls.
type mockSink struct {
	mock.Mock
}

func (m *mockSink) Publish(s string) {
	m.Called(s)
}

// eventRecorder collects widget events.
type eventRecorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *eventRecorder) Log(e log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *eventRecorder) ByCategory(c log.Category) []log.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []log.Event
	for _, e := range r.events {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

// advanceUntil moves the mock clock forward in steps until cond holds.
func advanceUntil(t *testing.T, clk *clock.Mock, step time.Duration, cond func() bool) {
	t.Helper()
	require.Eventually(t, func() bool {
		if cond() {
			return true
		}
		clk.Add(step)
		return cond()
	}, 5*time.Second, time.Millisecond)
}

// callbackLogger hands matching events to *fn, which may call back into
// the widget that logged them. *fn is set once the widget exists.
func callbackLogger(match func(log.Event) bool, fn *func()) log.Logger {
	return log.LoggerFunc(func(e log.Event) {
		if *fn != nil && match(e) {
			(*fn)()
		}
	})
}

func isCategory(c log.Category) func(log.Event) bool {
	return func(e log.Event) bool { return e.Category == c }
}

func isAcceptedStart(e log.Event) bool {
	return e.Control != nil && e.Control.Action == log.ActionStart && e.Control.Accepted
}

// within fails the test if fn does not return in time.
func within(t *testing.T, d time.Duration, what string, fn func()) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
	case <-time.After(d):
		t.Fatalf("%s did not return within %v", what, d)
	}
}
