// SPDX-License-Identifier: GPL-3.0-or-later

package arp

import "context"

//go:generate mockgen -destination=../../mock/arp/arp.go -package=mock_arp . TableReader,CommandRunner

// TableReader returns the host's ARP table as raw text
type TableReader interface {
	Table(ctx context.Context) (string, error)
}

// CommandRunner runs an external command and returns its stdout. A
// command that starts but exits non-zero must produce an *ExitError.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}
