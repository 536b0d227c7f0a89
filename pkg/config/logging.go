package config

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// LogLevel maps a verbosity of 0 to 3 onto a logrus level. 0 prints only
// values, 1 adds errors, 2 adds warnings and 3 adds notices.
func LogLevel(verbosity int) log.Level {
	switch {
	case verbosity <= 0:
		return log.PanicLevel
	case verbosity == 1:
		return log.ErrorLevel
	case verbosity == 2:
		return log.WarnLevel
	default:
		return log.InfoLevel
	}
}

// NewLogger creates the diagnostic logger writing to w.
func NewLogger(w io.Writer, verbosity int) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetLevel(LogLevel(verbosity))
	l.SetFormatter(&log.TextFormatter{
		DisableTimestamp:       true,
		DisableLevelTruncation: true,
	})
	return l
}
