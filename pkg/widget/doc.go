// Package widget provides headless countdown and stopwatch widgets.
//
// A widget owns its tracker, its poller and the state a user interface
// renders: the display text, the countdown input fields and which controls
// are enabled. Rendering is left to the caller, which receives display
// updates through a Sink and reads the rest through View.
//
// Scheduling state (anchor, poller) is private. Callers only observe and
// control.
//
// # Lifecycle
//
// Every control cancels the poller before it mutates state. Close is the
// teardown contract: it cancels the poller, waits for it to exit and turns
// every later control into a no-op. A widget must be closed when its owner
// goes away.
//
// # Threading
//
// Controls are expected to come from a single goroutine (the UI loop).
// Ticks arrive on the poller goroutine; the Sink must therefore be safe to
// call from another goroutine.
package widget
