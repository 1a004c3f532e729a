// Package log captures widget events for later analysis.
//
// This package defines the Logger interface and Event types recorded by the
// countdown and stopwatch widgets: state transitions, control actions, field
// edits, display updates and countdown completion. It is separate from
// operational logging (slog); the event log is a machine-readable trace
// that can be replayed with the stopwatch-log tool.
//
// # Basic Usage
//
//	// For development: log to console via slog
//	opts.Events = log.NewSlogAdapter(slog.Default())
//
//	// For later analysis: write to a binary file
//	fl, _ := log.NewFileLogger("session.swlog")
//	opts.Events = fl
//
//	// One file per run in a directory
//	fl, _ = log.OpenSession("/var/log/stopwatch", time.Now())
//
//	// Both
//	opts.Events = log.Combine(log.NewSlogAdapter(slog.Default()), fl)
//
// # File Format
//
// Log files are a sequence of CBOR-encoded events with integer keys, using
// the .swlog extension.
package log
