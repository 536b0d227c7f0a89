package journal

import "errors"

// MultiLogger sends events to multiple loggers, e.g. the journal file and
// the diagnostic log.
type MultiLogger struct {
	loggers []Logger
}

// NewMultiLogger creates a MultiLogger that sends events to all provided
// loggers. Nil loggers are skipped.
func NewMultiLogger(loggers ...Logger) *MultiLogger {
	m := &MultiLogger{}
	for _, l := range loggers {
		if l != nil {
			m.loggers = append(m.loggers, l)
		}
	}
	return m
}

// Log sends the event to every logger, even after one fails, and joins the
// errors.
func (m *MultiLogger) Log(event Event) error {
	var errs []error
	for _, l := range m.loggers {
		if err := l.Log(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*MultiLogger)(nil)
