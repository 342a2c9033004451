// Package patch generates ACPI SSDT patch text from DSL templates: disable
// patches that park or hide a device, and spoof patches that present a
// different device ID and model to the OS. Output is DSL source text only;
// compiling it to a binary table is out of scope.
package patch

import (
	"embed"
	"strings"

	"github.com/laobamac/SimpleToolkit/internal/constants"
	"github.com/laobamac/SimpleToolkit/internal/devpath"
	"github.com/laobamac/SimpleToolkit/internal/errors"
	"github.com/laobamac/SimpleToolkit/internal/hwid"
)

//go:embed templates/*.dsl
var templates embed.FS

// Template placeholders. Device ID bytes are spliced over the 0xAB/0xCD
// literals in little-endian order.
const (
	placeholderAddr  = "{ADDR}"
	placeholderModel = "{MODEL}"
	placeholderHigh  = "0xAB"
	placeholderLow   = "0xCD"
)

// DefaultModel is substituted when a spoof request names no model.
const DefaultModel = "AMD Radeon Graphics"

// DisableMethod selects how a disable patch parks the device.
type DisableMethod string

const (
	// DisablePS3 calls the device's _PS3 at init, dropping it to D3.
	DisablePS3 DisableMethod = "s3"
	// DisableOff calls the device's _OFF at init.
	DisableOff DisableMethod = "off"
	// DisableIOName forces the device's _STA to zero, hiding it.
	DisableIOName DisableMethod = "ioname"
)

func (m DisableMethod) templateName() string {
	switch m {
	case DisablePS3:
		return "SSDT-NDGP_PS3.dsl"
	case DisableOff:
		return "SSDT-NDGP_OFF.dsl"
	case DisableIOName:
		return "SSDT-NDGP_IOName.dsl"
	default:
		return ""
	}
}

// ParseDisableMethod converts a string to a DisableMethod.
func ParseDisableMethod(s string) (DisableMethod, error) {
	switch m := DisableMethod(strings.ToLower(s)); m {
	case DisablePS3, DisableOff, DisableIOName:
		return m, nil
	default:
		return "", errors.Newf(errors.Validation,
			"unknown disable method %q: want s3, off or ioname", s)
	}
}

func loadTemplate(name string) (string, error) {
	data, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return "", errors.Wrapf(errors.NotFound, err, "template %s", name)
	}
	return string(data), nil
}

// BuildDisable renders a disable patch targeting the device at the given
// dot-joined ACPI name path.
func BuildDisable(acpiPath string, method DisableMethod) (string, error) {
	const op = "patch.BuildDisable"
	if strings.TrimSpace(acpiPath) == "" {
		return "", errors.New(errors.Validation, "empty ACPI path").WithOp(op)
	}
	name := method.templateName()
	if name == "" {
		return "", errors.Newf(errors.Validation, "unknown disable method %q", method).WithOp(op)
	}
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(tmpl, placeholderAddr, acpiPath), nil
}

// SpoofOptions describes a spoof patch request.
type SpoofOptions struct {
	// ACPIPath is the device's dot-joined ACPI name path.
	ACPIPath string
	// DeviceID is the spoofed device ID, four hex digits.
	DeviceID string
	// Model is the display model string; DefaultModel when empty. Ignored
	// for bridge-scoped patches, whose template carries no model.
	Model string
	// Bridge scopes the patch to the device's parent PCIe bridge instead
	// of the device itself. The path must then contain the bridge marker.
	Bridge bool
}

// BuildSpoof renders a spoof patch. The spoofed ID's bytes replace the
// template's 0xAB/0xCD literals in little-endian order; for bridge-scoped
// patches the path is trimmed at the rightmost bridge marker first.
func BuildSpoof(opts SpoofOptions) (string, error) {
	const op = "patch.BuildSpoof"

	high, low, err := hwid.SpliceBytes(opts.DeviceID)
	if err != nil {
		return "", err
	}

	path := opts.ACPIPath
	if strings.TrimSpace(path) == "" {
		return "", errors.New(errors.Validation, "empty ACPI path").WithOp(op)
	}

	name := "SSDT-SH-SPOOF.dsl"
	if opts.Bridge {
		name = "SSDT-6x50XT-GPU-SPOOF.dsl"
		trimmed, found := devpath.TrimNamePath(path, constants.BridgeMarker)
		if !found || trimmed == "" {
			return "", errors.Newf(errors.Validation,
				"path %q has no %s bridge segment", path, constants.BridgeMarker).WithOp(op)
		}
		path = trimmed
	}

	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	out := strings.ReplaceAll(tmpl, placeholderAddr, path)
	// Both byte literals are spliced in one pass. Sequential replacement
	// would rewrite a freshly spliced high byte of 0xCD with the low byte.
	out = strings.NewReplacer(placeholderHigh, high, placeholderLow, low).Replace(out)
	if !opts.Bridge {
		model := opts.Model
		if model == "" {
			model = DefaultModel
		}
		out = strings.ReplaceAll(out, placeholderModel, model)
	}
	return out, nil
}
