// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !debug

package logger_test

import (
	"testing"

	"github.com/robgonnella/go-ouilookup/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDebugLogging(t *testing.T) {
	debug := logger.NewDebugLogger()

	t.Run("returns shared debug logger", func(st *testing.T) {
		assert.Equal(st, debug, logger.NewDebugLogger())
	})

	t.Run("disabled since not built with debug flag", func(st *testing.T) {
		assert.False(st, debug.Debug().Enabled())
		assert.False(st, debug.Info().Enabled())
		assert.False(st, debug.Error().Enabled())
	})

	t.Run("logs only errors by default", func(st *testing.T) {
		assert.Equal(st, zerolog.ErrorLevel, logger.DefaultLevel())
	})
}
