// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"os"

	"github.com/robgonnella/go-ouilookup/internal/cli"
	"github.com/robgonnella/go-ouilookup/internal/core"
	"github.com/robgonnella/go-ouilookup/internal/logger"
	"github.com/robgonnella/go-ouilookup/pkg/arp"
	"github.com/robgonnella/go-ouilookup/pkg/vendor"
)

func main() {
	logger.SetGlobalLevel(logger.DefaultLevel())

	vendorRepo := vendor.GetDefaultVendorRepo()

	arpReader := arp.NewCommandTableReader()

	runner := core.New(vendorRepo, arpReader, os.Stdout)

	cmd := cli.Root(runner)

	os.Exit(cli.Execute(context.Background(), cmd, os.Args[1:]))
}
