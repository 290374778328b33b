package robotlog

// MultiLogger fans each event out to several loggers. The robot binary
// uses it to write the match file while mirroring events to stderr.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger over the given targets. A
// MultiLogger with no targets discards events.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	return &MultiLogger{loggers: loggers}
}

// Log hands the event to every target in order.
func (m *MultiLogger) Log(event Event) {
	for _, l := range m.loggers {
		l.Log(event)
	}
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
