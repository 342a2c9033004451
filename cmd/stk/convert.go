package main

import (
	"fmt"

	"github.com/laobamac/SimpleToolkit/internal/cli"
	"github.com/laobamac/SimpleToolkit/internal/constants"
	"github.com/laobamac/SimpleToolkit/internal/devpath"
	"github.com/laobamac/SimpleToolkit/internal/errors"
)

// cmdConvert handles the convert command: auto-detect the notation of a
// device path and print every conversion it supports.
func (c *CLI) cmdConvert(result *cli.ParseResult) int {
	if len(result.Args) != 1 {
		err := errors.New(errors.Validation, "convert takes exactly one device path")
		return c.fail(err, constants.ExitValidation)
	}

	path, err := devpath.Parse(result.Args[0])
	if err != nil {
		return c.fail(err, constants.ExitValidation)
	}

	if path.IsACPI() {
		// ACPI enumerator paths only derive the name path; there is no
		// firmware form and the derivation is one way.
		name, err := path.AcpiNamePath()
		if err != nil {
			return c.fail(err, constants.ExitError)
		}
		fmt.Printf("acpi:       %s\n", name)
		return constants.ExitSuccess.Int()
	}

	enum, err := path.Enumerator()
	if err != nil {
		return c.fail(err, constants.ExitError)
	}
	fw, err := path.Firmware()
	if err != nil {
		return c.fail(err, constants.ExitError)
	}

	fmt.Printf("enumerator: %s\n", enum)
	fmt.Printf("firmware:   %s\n", fw)
	return constants.ExitSuccess.Int()
}
