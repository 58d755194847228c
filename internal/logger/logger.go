// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger our internal "singleton" wrapper around zerolog. Results meant
// for the user are never written here, only operational failures.
type Logger struct {
	zl *zerolog.Logger
}

// unexported "singleton" logger
var logger Logger

// init sets the internal "singleton" logger
func init() {
	Reset()
}

// New returns the internal "singleton" logger
func New() Logger {
	return logger
}

// SetGlobalLevel set level for all loggers, debug level also adds the
// caller to the log context
func SetGlobalLevel(level zerolog.Level) {
	if level == zerolog.DebugLevel {
		newZl := logger.zl.With().Caller().Logger()
		*logger.zl = newZl
	}

	zerolog.SetGlobalLevel(level)
}

// DefaultLevel returns the global level for this build: debug when built
// with the "debug" tag, otherwise only errors are logged
func DefaultLevel() zerolog.Level {
	if debugEnabled {
		return zerolog.DebugLevel
	}

	return zerolog.ErrorLevel
}

// SetOutput redirects the singleton logger, used by tests to capture output
func SetOutput(w io.Writer) {
	newZl := logger.zl.Output(zerolog.ConsoleWriter{Out: w, NoColor: true})

	*logger.zl = newZl
}

// Reset resets logger to default values: console output on stderr
func Reset() {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger()

	logger = Logger{
		zl: &zl,
	}
}

// Info wrapper around zerolog Info
func (l Logger) Info() *zerolog.Event {
	return l.zl.Info()
}

// Debug wrapper around zerolog Debug
func (l Logger) Debug() *zerolog.Event {
	return l.zl.Debug()
}

// Error wrapper around zerolog Error
func (l Logger) Error() *zerolog.Event {
	return l.zl.Error()
}
