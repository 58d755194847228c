// SPDX-License-Identifier: GPL-3.0-or-later

package arp_test

import (
	"context"
	"errors"
	"testing"

	mock_arp "github.com/robgonnella/go-ouilookup/mock/arp"
	"github.com/robgonnella/go-ouilookup/pkg/arp"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCommandTableReader(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	t.Run("returns stdout verbatim", func(st *testing.T) {
		runner := mock_arp.NewMockCommandRunner(ctrl)

		output := "? (192.168.1.1) at aa:bb:cc:dd:ee:ff [ether] on eth0\n"

		runner.EXPECT().Run(gomock.Any(), "arp", "-a").Return([]byte(output), nil)

		reader := arp.NewCommandTableReader(arp.WithRunner(runner))

		table, err := reader.Table(context.Background())

		assert.NoError(st, err)
		assert.Equal(st, output, table)
	})

	t.Run("returns exit error and discards output", func(st *testing.T) {
		runner := mock_arp.NewMockCommandRunner(ctrl)

		runner.EXPECT().Run(gomock.Any(), "arp", "-a").Return([]byte("partial"), &arp.ExitError{Code: 1})

		reader := arp.NewCommandTableReader(arp.WithRunner(runner))

		table, err := reader.Table(context.Background())

		var exitErr *arp.ExitError

		assert.ErrorAs(st, err, &exitErr)
		assert.Equal(st, 1, exitErr.Code)
		assert.Empty(st, table)
	})

	t.Run("returns launch error", func(st *testing.T) {
		runner := mock_arp.NewMockCommandRunner(ctrl)

		launchErr := errors.New("executable file not found in $PATH")

		runner.EXPECT().Run(gomock.Any(), "arp", "-a").Return(nil, launchErr)

		reader := arp.NewCommandTableReader(arp.WithRunner(runner))

		_, err := reader.Table(context.Background())

		assert.ErrorIs(st, err, launchErr)
	})

	t.Run("uses custom command", func(st *testing.T) {
		runner := mock_arp.NewMockCommandRunner(ctrl)

		runner.EXPECT().Run(gomock.Any(), "ip", "neigh", "show").Return([]byte("table"), nil)

		reader := arp.NewCommandTableReader(
			arp.WithRunner(runner),
			arp.WithCommand("ip", "neigh", "show"),
		)

		table, err := reader.Table(context.Background())

		assert.NoError(st, err)
		assert.Equal(st, "table", table)
	})
}

func TestExecRunner(t *testing.T) {
	runner := arp.NewExecRunner()

	t.Run("captures stdout", func(st *testing.T) {
		out, err := runner.Run(context.Background(), "sh", "-c", "echo hello")

		assert.NoError(st, err)
		assert.Equal(st, "hello\n", string(out))
	})

	t.Run("converts non-zero exit to ExitError", func(st *testing.T) {
		_, err := runner.Run(context.Background(), "sh", "-c", "echo nope >&2; exit 3")

		var exitErr *arp.ExitError

		assert.ErrorAs(st, err, &exitErr)
		assert.Equal(st, 3, exitErr.Code)
	})

	t.Run("returns launch error for missing executable", func(st *testing.T) {
		_, err := runner.Run(context.Background(), "definitely-not-a-real-arp-binary")

		var exitErr *arp.ExitError

		assert.Error(st, err)
		assert.False(st, errors.As(err, &exitErr))
	})
}
