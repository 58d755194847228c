// SPDX-License-Identifier: GPL-3.0-or-later

package logger_test

import (
	"bytes"
	"testing"

	"github.com/robgonnella/go-ouilookup/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	defer func() {
		logger.SetGlobalLevel(zerolog.DebugLevel)
		logger.Reset()
	}()

	t.Run("sets global log level", func(st *testing.T) {
		defer func() {
			logger.SetGlobalLevel(zerolog.DebugLevel)
			logger.Reset()
		}()

		buf := &bytes.Buffer{}

		logger.SetOutput(buf)
		logger.SetGlobalLevel(zerolog.ErrorLevel)

		log := logger.New()

		testString := "vendor lookup message"

		log.Debug().Msg(testString)
		assert.NotContains(st, buf.String(), testString)

		log.Info().Msg(testString)
		assert.NotContains(st, buf.String(), testString)

		log.Error().Msg(testString)
		assert.Contains(st, buf.String(), testString)
	})

	t.Run("disables all output", func(st *testing.T) {
		defer func() {
			logger.SetGlobalLevel(zerolog.DebugLevel)
			logger.Reset()
		}()

		buf := &bytes.Buffer{}

		logger.SetOutput(buf)
		logger.SetGlobalLevel(zerolog.Disabled)

		logger.New().Error().Msg("should not appear")

		assert.Empty(st, buf.String())
	})

	t.Run("debug level adds caller", func(st *testing.T) {
		defer func() {
			logger.SetGlobalLevel(zerolog.DebugLevel)
			logger.Reset()
		}()

		buf := &bytes.Buffer{}

		logger.SetOutput(buf)
		logger.SetGlobalLevel(zerolog.DebugLevel)

		log := logger.New()

		testString := "arp table message"

		log.Info().Msg(testString)
		output := buf.String()
		assert.Contains(st, output, testString)
		assert.Contains(st, output, "logger_test.go")
	})
}
