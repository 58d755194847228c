// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/robgonnella/go-ouilookup/internal/logger"
	"github.com/robgonnella/go-ouilookup/pkg/arp"
	"github.com/robgonnella/go-ouilookup/pkg/vendor"
)

// Messages printed in place of a result when a lookup fails
const (
	VendorNotFound  = "Fabricante no encontrado"
	APIQueryError   = "Error en la consulta a la API"
	ARPTableHeader  = "Tabla ARP:"
	ARPTableError   = "Error al obtener la tabla ARP"
	ARPCommandError = "Error al ejecutar el comando ARP"
)

// Core implements Runner. Lookup failures are never returned as errors,
// they are rendered inline so a result is always printed. The only
// errors returned come from writing to the output.
type Core struct {
	out        io.Writer
	vendorRepo vendor.VendorRepo
	arpReader  arp.TableReader
	debug      logger.DebugLogger
}

// New returns a new instance of Core writing results to out
func New(
	vendorRepo vendor.VendorRepo,
	arpReader arp.TableReader,
	out io.Writer,
) *Core {
	return &Core{
		out:        out,
		vendorRepo: vendorRepo,
		arpReader:  arpReader,
		debug:      logger.NewDebugLogger(),
	}
}

// LookupVendor queries the vendor repo once and prints the MAC, vendor
// and response time
func (c *Core) LookupVendor(ctx context.Context, mac string) error {
	result, err := c.vendorRepo.Query(ctx, mac)

	if result == nil {
		result = &vendor.VendorResult{}
	}

	name := result.Name

	switch {
	case err != nil:
		c.debug.Error().Err(err).Str("mac", mac).Msg("core: vendor lookup failed")
		name = APIQueryError
	case !result.Found:
		name = VendorNotFound
	}

	_, err = fmt.Fprintf(
		c.out,
		"MAC address : %s\nFabricante : %s\nTiempo de respuesta: %.2f segundos\n",
		mac,
		name,
		result.Elapsed.Seconds(),
	)

	return err
}

// PrintARPTable reads the host ARP table and prints it unmodified
// beneath a header line
func (c *Core) PrintARPTable(ctx context.Context) error {
	table, err := c.arpReader.Table(ctx)

	if err != nil {
		var exitErr *arp.ExitError

		if errors.As(err, &exitErr) {
			table = ARPTableError
		} else {
			table = fmt.Sprintf("%s: %s", ARPCommandError, err)
		}
	}

	_, err = fmt.Fprintf(c.out, "%s\n%s\n", ARPTableHeader, table)

	return err
}
