// Package tracker implements elapsed and remaining time bookkeeping.
//
// A tracker anchors a duration to a wall-clock instant and derives the live
// value from the clock on every read. It never counts ticks, so late or
// skipped polls do not cause drift.
//
// # States
//
// Both trackers move between exactly three states:
//
//   - Idle: no anchor, zero baseline
//   - Running: anchored to a clock instant
//   - Paused: no anchor, the live value frozen at the moment of pausing
//
// Start while Running and Pause/Stop while not Running are no-ops.
//
// # Countdown
//
// A Countdown is anchored to a deadline. Resuming computes a fresh deadline
// from the frozen remaining time, so time spent paused is not counted. When
// Sample observes that the deadline has passed, the tracker freezes at zero
// and returns to Idle.
//
// # Stopwatch
//
// A Stopwatch is anchored to a start instant shifted back by the elapsed
// baseline, so elapsed time continues from where Stop left it.
//
// # Clocks
//
// Trackers read time from a clock.Clock. Production code passes nil to use
// the real clock; tests pass clock.NewMock() and advance it explicitly.
package tracker
