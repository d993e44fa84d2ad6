package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/taskdeck/taskdeck/internal/log"
)

type logger struct {
	*logrus.Entry
}

// NewLogrus returns a new log.Logger based on a logrus entry.
func NewLogrus(l *logrus.Entry) log.Logger {
	return logger{Entry: l}
}

func (l logger) WithValues(kv log.Kv) log.Logger {
	newLogger := l.Entry.WithFields(kv)
	return NewLogrus(newLogger)
}

func (l logger) Warningf(format string, args ...any) { l.Warnf(format, args...) }
