package main

import (
	"fmt"
	"os"

	"github.com/laobamac/SimpleToolkit/internal/cli"
	"github.com/laobamac/SimpleToolkit/internal/constants"
	"github.com/laobamac/SimpleToolkit/internal/errors"
	"github.com/laobamac/SimpleToolkit/internal/supportdb"
)

// cmdDB dispatches the db maintenance subcommands.
func (c *CLI) cmdDB(result *cli.ParseResult) int {
	switch result.DBFlags.Subcommand {
	case cli.DBValidate:
		return c.cmdDBValidate(result)
	case cli.DBImport:
		return c.cmdDBImport(result)
	default:
		err := errors.Newf(errors.Validation, "unknown db subcommand %q", result.DBFlags.Subcommand)
		return c.fail(err, constants.ExitValidation)
	}
}

func dbKind(nameKeyed bool) supportdb.Kind {
	if nameKeyed {
		return supportdb.NameKeyed
	}
	return supportdb.IDKeyed
}

// cmdDBValidate strictly validates a list file, printing every violation
// with its 1-based line number. With --repair the offending lines are
// deleted and the file rewritten.
func (c *CLI) cmdDBValidate(result *cli.ParseResult) int {
	path := result.Args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return c.fail(errors.Wrapf(errors.NotFound, err, "read %s", path), constants.ExitError)
	}
	content := string(data)

	issues, repairable := supportdb.Validate(content, dbKind(result.DBFlags.NameKeyed))
	if len(issues) == 0 {
		fmt.Printf("%s: ok\n", path)
		return constants.ExitSuccess.Int()
	}

	for _, issue := range issues {
		fmt.Println(issue)
	}

	if !result.DBFlags.Repair {
		fmt.Printf("%s: %d violation(s)\n", path, len(issues))
		return constants.ExitFormat.Int()
	}

	repaired := supportdb.Repair(content, repairable)
	if err := os.WriteFile(path, []byte(repaired), 0644); err != nil {
		return c.fail(errors.Wrapf(errors.Unknown, err, "write %s", path), constants.ExitError)
	}
	c.logger.Info("repaired database", "file", path, "removed", len(repairable))
	fmt.Printf("%s: removed %d line(s)\n", path, len(repairable))
	return constants.ExitSuccess.Int()
}

// cmdDBImport merges a source list file into the destination database.
func (c *CLI) cmdDBImport(result *cli.ParseResult) int {
	srcPath := result.Args[0]
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return c.fail(errors.Wrapf(errors.NotFound, err, "read %s", srcPath), constants.ExitError)
	}

	// A missing destination starts a fresh database.
	dest, err := supportdb.LoadFile(result.DBFlags.Into)
	if err != nil {
		if !errors.IsCode(err, errors.NotFound) {
			return c.fail(err, constants.ExitError)
		}
		dest = supportdb.New()
	}

	opts := supportdb.MergeOptions{
		Status:      !result.DBFlags.NoStatus,
		Detail:      !result.DBFlags.NoDetail,
		Driver:      !result.DBFlags.NoDriver,
		Overwrite:   result.DBFlags.Overwrite,
		SkipInvalid: result.DBFlags.SkipInvalid,
		Kind:        dbKind(result.DBFlags.NameKeyed),
	}

	mergeReport, err := dest.Merge(string(data), opts)
	if err != nil {
		return c.fail(err, constants.ExitFormat)
	}

	if err := dest.SaveFile(result.DBFlags.Into); err != nil {
		return c.fail(err, constants.ExitError)
	}

	for _, skip := range mergeReport.Skips {
		fmt.Printf("skipped %s: %s\n", skip.Ref, skip.Reason)
	}
	fmt.Printf("imported %d record(s) into %s (%d skipped)\n",
		mergeReport.Imported, result.DBFlags.Into, mergeReport.Skipped())
	return constants.ExitSuccess.Int()
}
