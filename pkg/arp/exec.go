// SPDX-License-Identifier: GPL-3.0-or-later

package arp

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ExitError returned when the command ran but exited with a non-zero code
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.Code)
}

// ExecRunner implements CommandRunner using os/exec
type ExecRunner struct{}

// NewExecRunner returns a new instance of ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the named command with the default environment and
// returns its stdout. Stderr is discarded.
func (r *ExecRunner) Run(
	ctx context.Context,
	name string,
	args ...string,
) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()

	var exitErr *exec.ExitError

	if errors.As(err, &exitErr) {
		return out, &ExitError{Code: exitErr.ExitCode()}
	}

	return out, err
}
