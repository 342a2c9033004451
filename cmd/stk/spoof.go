package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/laobamac/SimpleToolkit/internal/cli"
	"github.com/laobamac/SimpleToolkit/internal/constants"
	"github.com/laobamac/SimpleToolkit/internal/devpath"
	"github.com/laobamac/SimpleToolkit/internal/errors"
	"github.com/laobamac/SimpleToolkit/internal/patch"
)

// cmdSpoof handles the spoof command: generate SSDT spoof or disable patch
// text for a device path.
func (c *CLI) cmdSpoof(result *cli.ParseResult) int {
	acpiPath, err := resolveNamePath(result.SpoofFlags.Path)
	if err != nil {
		return c.fail(err, constants.ExitValidation)
	}

	var text string
	if method := result.SpoofFlags.Disable; method != "" {
		m, err := patch.ParseDisableMethod(method)
		if err != nil {
			return c.fail(err, constants.ExitValidation)
		}
		text, err = patch.BuildDisable(acpiPath, m)
		if err != nil {
			return c.fail(err, constants.ExitValidation)
		}
	} else {
		text, err = patch.BuildSpoof(patch.SpoofOptions{
			ACPIPath: acpiPath,
			DeviceID: result.SpoofFlags.ID,
			Model:    result.SpoofFlags.Model,
			Bridge:   result.SpoofFlags.Bridge,
		})
		if err != nil {
			return c.fail(err, constants.ExitValidation)
		}
	}

	if out := result.SpoofFlags.Output; out != "" {
		if err := os.WriteFile(out, []byte(text), 0644); err != nil {
			return c.fail(errors.Wrapf(errors.Unknown, err, "write %s", out), constants.ExitError)
		}
		c.logger.Info("patch written", "file", out)
		return constants.ExitSuccess.Int()
	}

	fmt.Print(text)
	return constants.ExitSuccess.Int()
}

// resolveNamePath accepts either a dot-joined ACPI name path or an
// enumerator ACPI path and returns the dot-joined form.
func resolveNamePath(path string) (string, error) {
	if !strings.Contains(path, "(") {
		return path, nil
	}
	parsed, err := devpath.Parse(path)
	if err != nil {
		return "", err
	}
	return parsed.AcpiNamePath()
}
