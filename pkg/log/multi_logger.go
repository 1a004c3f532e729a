package log

// MultiLogger fans events out to several loggers.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger. Nil and NoopLogger entries are
// skipped and nested MultiLoggers are flattened.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		m.add(l)
	}
	return m
}

func (m *MultiLogger) add(l Logger) {
	switch l := l.(type) {
	case nil, NoopLogger:
	case *MultiLogger:
		if l != nil {
			m.loggers = append(m.loggers, l.loggers...)
		}
	default:
		m.loggers = append(m.loggers, l)
	}
}

// Combine returns the cheapest Logger delivering to every given logger:
// NoopLogger when none remain, the logger itself when one remains, and a
// MultiLogger otherwise.
func Combine(loggers ...Logger) Logger {
	m := NewMultiLogger(loggers...)
	switch len(m.loggers) {
	case 0:
		return NoopLogger{}
	case 1:
		return m.loggers[0]
	default:
		return m
	}
}

// Len returns the number of destination loggers.
func (m *MultiLogger) Len() int {
	return len(m.loggers)
}

// Log sends the event to every logger in order.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

var _ Logger = (*MultiLogger)(nil)
