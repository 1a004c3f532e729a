package log

// FileExtension is the conventional extension for event log files.
const FileExtension = ".swlog"

// Logger receives widget events.
// Pass nil or NoopLogger to disable event capture.
type Logger interface {
	// Log records an event. Implementations must be thread-safe and must
	// not block; widgets call Log from their polling goroutine.
	Log(event Event)
}

// NoopLogger discards all events.
// NoopLogger is safe for concurrent use and usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) {}

// LoggerFunc adapts a function to Logger.
type LoggerFunc func(event Event)

// Log calls f.
func (f LoggerFunc) Log(event Event) { f(event) }

var (
	_ Logger = NoopLogger{}
	_ Logger = LoggerFunc(nil)
)
