// Package poller runs a callback at a fixed cadence until cancelled.
//
// A Poller owns at most one goroutine. The first tick is delivered as soon
// as the goroutine starts, then once per interval. Stop cancels the run and
// waits for the goroutine to exit, so no tick is delivered after Stop
// returns.
package poller

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Default cadences.
const (
	CountdownInterval = 250 * time.Millisecond
	StopwatchInterval = 10 * time.Millisecond
)

// TickFunc is called on every tick. Returning false ends the run.
type TickFunc func(now time.Time) bool

// Poller calls a TickFunc periodically.
type Poller struct {
	mu       sync.Mutex
	clock    clock.Clock
	interval time.Duration
	fn       TickFunc

	cur *run
}

type run struct {
	ticker *clock.Ticker
	stop   chan struct{}
	done   chan struct{}
}

// New creates a stopped Poller. A nil clk selects the real clock.
func New(clk clock.Clock, interval time.Duration, fn TickFunc) *Poller {
	if clk == nil {
		clk = clock.New()
	}
	return &Poller{
		clock:    clk,
		interval: interval,
		fn:       fn,
	}
}

// Interval returns the tick cadence.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Start begins polling. An active run is stopped first, so at most one
// goroutine exists at any time.
//
// Start and Stop must not be called from the TickFunc; return false instead.
func (p *Poller) Start() {
	p.Stop()

	r := &run{
		ticker: p.clock.Ticker(p.interval),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	p.mu.Lock()
	p.cur = r
	p.mu.Unlock()

	go p.loop(r)
}

// Stop cancels the active run and waits for its goroutine to exit.
// It is safe to call Stop when no run is active.
func (p *Poller) Stop() {
	p.mu.Lock()
	r := p.cur
	p.cur = nil
	p.mu.Unlock()

	if r == nil {
		return
	}

	close(r.stop)
	<-r.done
}

// Active reports whether a run is in progress.
func (p *Poller) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cur != nil
}

func (p *Poller) loop(r *run) {
	defer close(r.done)
	defer r.ticker.Stop()

	if !p.tick(r, p.clock.Now()) {
		return
	}

	for {
		select {
		case <-r.stop:
			return
		case now := <-r.ticker.C:
			if !p.tick(r, now) {
				return
			}
		}
	}
}

// tick runs fn unless the run was cancelled. When fn ends the run, the run
// is detached so a later Stop does not wait on it.
func (p *Poller) tick(r *run, now time.Time) bool {
	select {
	case <-r.stop:
		return false
	default:
	}

	if p.fn(now) {
		return true
	}

	p.mu.Lock()
	if p.cur == r {
		p.cur = nil
	}
	p.mu.Unlock()
	return false
}
