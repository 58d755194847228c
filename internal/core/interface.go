// SPDX-License-Identifier: GPL-3.0-or-later

package core

import "context"

//go:generate mockgen -destination=../mock/core/core.go -package=mock_core . Runner

// Runner performs the single operation requested on the command line and
// prints its result
type Runner interface {
	LookupVendor(ctx context.Context, mac string) error
	PrintARPTable(ctx context.Context) error
}
