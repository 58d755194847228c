// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"io"

	"github.com/rs/zerolog"
)

var debugLogger DebugLogger

// set by enable-debug.go
var debugEnabled = false

func init() {
	// disabled unless built with the "debug" tag, see enable-debug.go
	zl := zerolog.New(io.Discard).Level(zerolog.Disabled)

	debugLogger = DebugLogger{
		zl: &zl,
	}
}

// DebugLogger carries request and subprocess diagnostics. It is only
// turned on when built with the "debug" tag so the three-flag command
// line stays the sole user surface.
type DebugLogger struct {
	zl *zerolog.Logger
}

// NewDebugLogger returns a instance of DebugLogger
func NewDebugLogger() DebugLogger {
	return debugLogger
}

// Info wrapper around zerolog Info
func (l DebugLogger) Info() *zerolog.Event {
	return l.zl.Info()
}

// Debug wrapper around zerolog Debug
func (l DebugLogger) Debug() *zerolog.Event {
	return l.zl.Debug()
}

// Error wrapper around zerolog Error
func (l DebugLogger) Error() *zerolog.Event {
	return l.zl.Error()
}
