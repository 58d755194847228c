// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import "errors"

// ErrNoAction returned when neither --mac nor --arp was supplied
var ErrNoAction = errors.New("no action requested")

var errShortHelp = errors.New("unknown shorthand flag: 'h'")

// UsageError wraps a flag parsing failure
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return "invalid usage: " + e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}
