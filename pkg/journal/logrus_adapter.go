package journal

import (
	log "github.com/sirupsen/logrus"
)

// LogrusAdapter writes journal events to a logrus logger at Debug level.
type LogrusAdapter struct {
	logger log.FieldLogger
}

// NewLogrusAdapter creates an adapter writing to logger.
func NewLogrusAdapter(logger log.FieldLogger) *LogrusAdapter {
	return &LogrusAdapter{logger: logger}
}

// Log writes the event to the logger.
func (a *LogrusAdapter) Log(event Event) error {
	fields := log.Fields{
		"event_id": event.ID,
		"command":  event.Command,
		"address":  event.Address,
		"kind":     event.Kind.String(),
		"value":    event.Value,
	}
	if event.Previous != nil {
		fields["previous"] = *event.Previous
	}
	if event.Max != 0 {
		fields["max"] = event.Max
	}
	a.logger.WithFields(fields).Debug("journal")
	return nil
}

// Compile-time interface satisfaction check.
var _ Logger = (*LogrusAdapter)(nil)
