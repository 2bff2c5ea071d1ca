package log

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// logrusLogger adapts a logrus entry to the Logger interface. Wrapping the
// entry (not the logger) keeps WithField/WithError immutable: each call
// returns a new Logger instead of mutating shared state.
type logrusLogger struct {
	entry *logrus.Entry
}

func newLogrusLogger(cfg Config) *logrusLogger {
	l, err := build(cfg)
	if err != nil {
		// Defaults are static and known-good; reaching this is a bug.
		panic(err)
	}
	return l
}

func build(cfg Config) (*logrusLogger, error) {
	cfg = cfg.withDefaults()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log: invalid level %q: %w", cfg.Level, err)
	}

	writer, err := buildWriter(cfg.Appenders)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetLevel(level)
	l.SetOutput(writer)
	l.SetFormatter(&formatter{pattern: cfg.Pattern, time: cfg.Time})
	return &logrusLogger{entry: logrus.NewEntry(l)}, nil
}

func (l *logrusLogger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *logrusLogger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *logrusLogger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l *logrusLogger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *logrusLogger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l *logrusLogger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *logrusLogger) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *logrusLogger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

func (l *logrusLogger) WithField(field string, value interface{}) Logger {
	return &logrusLogger{entry: l.entry.WithField(field, value)}
}

func (l *logrusLogger) WithError(err error) Logger {
	return &logrusLogger{entry: l.entry.WithError(err)}
}
