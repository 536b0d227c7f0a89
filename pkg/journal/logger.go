package journal

// Logger receives journal events. Pass nil or NoopLogger to disable the
// journal.
type Logger interface {
	// Log records an event. A returned error never undoes the write the
	// event describes.
	Log(event Event) error
}

// NoopLogger discards all events. Usable as a zero value.
type NoopLogger struct{}

// Log discards the event.
func (NoopLogger) Log(Event) error { return nil }

// Compile-time interface satisfaction check.
var _ Logger = NoopLogger{}
