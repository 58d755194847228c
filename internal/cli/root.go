// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/robgonnella/go-ouilookup/internal/core"
	"github.com/robgonnella/go-ouilookup/internal/logger"
)

const (
	usageMessage      = "Uso: OUILookup --mac <mac> | --arp | [--help]"
	usageErrorMessage = "Uso incorrecto de los parámetros. Ingresa: OUILookup --mac <mac> | --arp | [--help]"
	noActionMessage   = "Debes colocar --mac o --arp. O sino utiliza --help para encontrar más información."
)

// Exit codes returned by Execute
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Root returns the OUILookup command. Only the long flags --mac, --arp and
// --help are recognized; --mac wins when both --mac and --arp are given.
func Root(runner core.Runner) *cobra.Command {
	var mac string
	var showArp bool

	cmd := &cobra.Command{
		Use:           "OUILookup",
		Short:         "Look up MAC vendors and print the ARP table",
		Long:          `CLI to resolve the vendor of a MAC address or dump the local ARP table`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if mac != "" {
				return runner.LookupVendor(cmd.Context(), mac)
			}

			if showArp {
				return runner.PrintARPTable(cmd.Context())
			}

			fmt.Fprintln(cmd.OutOrStdout(), noActionMessage)

			return ErrNoAction
		},
	}

	cmd.Flags().StringVar(&mac, "mac", "", "MAC address to look up")
	cmd.Flags().BoolVar(&showArp, "arp", false, "print the local ARP table")
	// registering help ourselves keeps cobra from adding the -h shorthand
	cmd.Flags().Bool("help", false, "print usage")
	// options end at the first bare argument
	cmd.Flags().SetInterspersed(false)

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		// pflag reports an unregistered -h as ErrHelp, which cobra would
		// otherwise treat as a help request
		if errors.Is(err, pflag.ErrHelp) {
			err = errShortHelp
		}

		return &UsageError{Err: err}
	})

	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		fmt.Fprintln(c.OutOrStdout(), usageMessage)
	})

	cmd.CompletionOptions.DisableDefaultCmd = true

	return cmd
}

// Execute runs cmd with the given arguments and returns the exit code
// the process should terminate with
func Execute(ctx context.Context, cmd *cobra.Command, args []string) int {
	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	var usageErr *UsageError

	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usageErr):
		fmt.Fprintln(cmd.OutOrStdout(), usageErrorMessage)
		return ExitUsage
	case errors.Is(err, ErrNoAction):
		return ExitUsage
	default:
		logger.New().Error().Err(err).Msg("command encountered an error")
		return ExitError
	}
}
