// SPDX-License-Identifier: GPL-3.0-or-later

package arp

import (
	"context"
	"errors"

	"github.com/robgonnella/go-ouilookup/internal/logger"
)

// DefaultCommand is the system utility used to display the ARP table
const DefaultCommand = "arp"

// DefaultArgs passed to DefaultCommand
var DefaultArgs = []string{"-a"}

// Option configures a CommandTableReader
type Option = func(r *CommandTableReader)

// WithCommand overrides the command and arguments used to read the table
func WithCommand(name string, args ...string) Option {
	return func(r *CommandTableReader) {
		r.command = name
		r.args = args
	}
}

// WithRunner sets the CommandRunner used to execute the command
func WithRunner(runner CommandRunner) Option {
	return func(r *CommandTableReader) {
		r.runner = runner
	}
}

// CommandTableReader implements TableReader by shelling out to the
// system's arp utility. The output is returned unparsed.
type CommandTableReader struct {
	command string
	args    []string
	runner  CommandRunner
	debug   logger.DebugLogger
}

// NewCommandTableReader returns a new instance of CommandTableReader
func NewCommandTableReader(options ...Option) *CommandTableReader {
	reader := &CommandTableReader{
		command: DefaultCommand,
		args:    DefaultArgs,
		runner:  NewExecRunner(),
		debug:   logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(reader)
	}

	return reader
}

// Table runs the arp command once and returns its stdout verbatim.
// Returns an *ExitError if the command exited non-zero, or the launch
// error if it could not be started at all.
func (r *CommandTableReader) Table(ctx context.Context) (string, error) {
	out, err := r.runner.Run(ctx, r.command, r.args...)

	if err != nil {
		var exitErr *ExitError

		if errors.As(err, &exitErr) {
			r.debug.Error().
				Int("code", exitErr.Code).
				Str("command", r.command).
				Msg("arp: command exited non-zero")
		} else {
			r.debug.Error().Err(err).Str("command", r.command).Msg("arp: failed to run command")
		}

		return "", err
	}

	r.debug.Info().Int("bytes", len(out)).Msg("arp: read table")

	return string(out), nil
}
