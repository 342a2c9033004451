package main

import (
	"context"
	"fmt"

	"github.com/laobamac/SimpleToolkit/internal/cli"
	"github.com/laobamac/SimpleToolkit/internal/constants"
	"github.com/laobamac/SimpleToolkit/internal/hwenum"
	"github.com/laobamac/SimpleToolkit/internal/hwid"
	"github.com/laobamac/SimpleToolkit/internal/match"
	"github.com/laobamac/SimpleToolkit/internal/report"
	"github.com/laobamac/SimpleToolkit/internal/supportdb"
)

// cmdCheck handles the check command: enumerate devices, resolve each one
// against its class database, and print the compatibility report.
func (c *CLI) cmdCheck(result *cli.ParseResult) int {
	ctx := context.Background()

	rep := report.Report{}

	// Informational system rows come from the local prober. A probe
	// failure degrades the report, it does not abort the check.
	prober := hwenum.NewLocalProber(c.logger)
	if sys, err := prober.Probe(ctx); err != nil {
		c.logger.Warn("system probe failed", "error", err)
	} else {
		rep.System = &sys
	}

	snapshot := result.CheckFlags.Snapshot
	if snapshot == "" {
		snapshot = c.config.SnapshotFile
	}

	var devices []hwenum.Device
	if snapshot != "" {
		src := hwenum.NewSnapshotSource(snapshot)
		var err error
		devices, err = src.Devices(ctx)
		if err != nil {
			return c.fail(err, constants.ExitError)
		}
		c.logger.Debug("snapshot loaded", "file", snapshot, "devices", len(devices))
	} else {
		c.logger.Info("no device snapshot configured; reporting system rows only")
	}

	resolvers := make(map[constants.HardwareClass]*match.Resolver)
	for _, dev := range devices {
		if dev.Class == "" {
			continue
		}
		resolver, ok := resolvers[dev.Class]
		if !ok {
			resolver = c.loadResolver(dev.Class)
			resolvers[dev.Class] = resolver
		}

		row := report.Row{Class: dev.Class, Name: dev.Name}
		if dev.Class.IsNameKeyed() {
			row.Query = dev.Name
			row.Result = resolver.ResolveName(dev.Name)
		} else if id, ok := hwid.Extract(dev.Descriptor); ok {
			row.Query = id.String()
			row.Result = resolver.ResolveID(id)
		} else {
			// No identifier to look up; resolves to unknown.
			row.Result = resolver.ResolveIDText("")
		}
		rep.Rows = append(rep.Rows, row)
	}

	if result.CheckFlags.JSON {
		out, err := report.RenderJSON(rep)
		if err != nil {
			return c.fail(err, constants.ExitError)
		}
		fmt.Println(out)
		return constants.ExitSuccess.Int()
	}

	fmt.Print(report.Render(rep, c.config.NoColor))
	return constants.ExitSuccess.Int()
}

// loadResolver loads the support database for a class. A missing or
// unreadable database yields an empty resolver, so every query in that
// class reports unknown rather than failing the whole check.
func (c *CLI) loadResolver(class constants.HardwareClass) *match.Resolver {
	path := c.config.DatabasePath(class)
	db, err := supportdb.LoadFile(path)
	if err != nil {
		c.logger.Warn("support database unavailable", "class", class, "path", path, "error", err)
		return match.NewResolver(supportdb.New())
	}
	c.logger.Debug("support database loaded", "class", class, "records", db.Len())
	return match.NewResolver(db)
}
