// Package log provides the process logger: logrus behind a small interface,
// with a pattern-based formatter and configurable appenders (console always,
// rotating file optional).
package log

import (
	"sync"
)

// Logger is the logging surface the rest of the codebase depends on.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})

	Error(args ...interface{})
	Errorf(format string, args ...interface{})

	WithField(field string, value interface{}) Logger
	WithError(err error) Logger
}

var (
	mu     sync.RWMutex
	logger Logger = newLogrusLogger(defaultConfig())
)

// GetLogger returns the process logger. Safe before Init: a console logger
// with default settings is installed at package init.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Init replaces the process logger according to cfg. Call once, before any
// goroutines start logging.
func Init(cfg Config) error {
	l, err := build(cfg)
	if err != nil {
		return err
	}
	mu.Lock()
	logger = l
	mu.Unlock()
	return nil
}
