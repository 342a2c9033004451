package main

import (
	"fmt"

	"github.com/laobamac/SimpleToolkit/internal/cli"
	"github.com/laobamac/SimpleToolkit/internal/constants"
	"github.com/laobamac/SimpleToolkit/internal/errors"
	"github.com/laobamac/SimpleToolkit/internal/hwid"
	"github.com/laobamac/SimpleToolkit/internal/match"
	"github.com/laobamac/SimpleToolkit/internal/report"
	"github.com/laobamac/SimpleToolkit/internal/supportdb"
)

// cmdLookup handles the lookup command: resolve one identifier, descriptor
// or model name against a class database.
func (c *CLI) cmdLookup(result *cli.ParseResult) int {
	class := constants.ParseHardwareClass(result.LookupFlags.Class)
	if class == "" {
		err := errors.Newf(errors.Validation,
			"unknown hardware class %q: want gpu, audio, ethernet or disk", result.LookupFlags.Class)
		return c.fail(err, constants.ExitValidation)
	}

	path := result.LookupFlags.DB
	if path == "" {
		path = c.config.DatabasePath(class)
	}
	db, err := supportdb.LoadFile(path)
	if err != nil {
		return c.fail(err, constants.ExitError)
	}
	c.logger.Debug("support database loaded", "path", path, "records", db.Len())

	query := result.Args[0]
	resolver := match.NewResolver(db)

	var res match.Result
	switch {
	case class.IsNameKeyed():
		res = resolver.ResolveName(query)
	default:
		// Raw descriptors carry VEN_/DEV_ tokens; plain queries are
		// the canonical VVVV&DDDD form.
		if id, ok := hwid.Extract(query); ok {
			query = id.String()
			res = resolver.ResolveID(id)
		} else {
			res = resolver.ResolveIDText(query)
		}
	}

	row := report.Row{Class: class, Name: query, Query: query, Result: res}

	if result.LookupFlags.JSON {
		out, err := report.RenderJSON(report.Report{Rows: []report.Row{row}})
		if err != nil {
			return c.fail(err, constants.ExitError)
		}
		fmt.Println(out)
		return constants.ExitSuccess.Int()
	}

	printLookupResult(query, res)
	return constants.ExitSuccess.Int()
}

func printLookupResult(query string, res match.Result) {
	status := "unknown"
	if res.HasStatus {
		if res.Supported() {
			status = "supported"
		} else {
			status = "unsupported"
		}
	}

	fmt.Printf("query:   %s\n", query)
	fmt.Printf("match:   %s\n", res.Kind)
	if res.MatchedKey != "" {
		fmt.Printf("key:     %s\n", res.MatchedKey)
	}
	fmt.Printf("status:  %s", status)
	if res.HasStatus && res.Status != supportdb.StatusSupported && res.Status != supportdb.StatusUnsupported {
		fmt.Printf(" (raw %q)", res.Status)
	}
	fmt.Println()
	fmt.Printf("detail:  %s\n", res.Detail)
	fmt.Printf("driver:  %s\n", res.Driver)
}
