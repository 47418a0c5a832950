// Package log provides the logging interface used by the emulator
// components, along with a logrus-backed default implementation.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface components accept through
// their options.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text to stderr at debug level.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewWithOutput returns a Logger writing to w at the given level. The
// level is parsed by logrus ("debug", "info", ...); an unknown level
// falls back to info.
func NewWithOutput(w io.Writer, level string) Logger {
	l := New().(*logrus.Logger)
	l.SetOutput(w)
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}

// WithComponent returns a Logger tagging every entry with the given
// component name. Loggers not created by this package are returned
// unchanged.
func WithComponent(l Logger, name string) Logger {
	switch lg := l.(type) {
	case *logrus.Logger:
		return lg.WithField("component", name)
	case *logrus.Entry:
		return lg.WithField("component", name)
	}
	return l
}
