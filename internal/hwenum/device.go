// Package hwenum supplies hardware device descriptors for compatibility
// checks. Two sources exist: a JSON snapshot exported by the device-path
// exporter, and a local prober for informational system rows. Both produce
// plain data; resolution against the support database happens elsewhere.
package hwenum

import (
	"context"
	"strings"

	"github.com/laobamac/SimpleToolkit/internal/constants"
)

// Device is one enumerated hardware device.
type Device struct {
	// Name is the model or friendly name.
	Name string
	// Descriptor is the raw PNP instance descriptor the identifier is
	// extracted from (for example "PCI\VEN_1002&DEV_67DF&SUBSYS_..."). May
	// be empty for devices the source knows only by name.
	Descriptor string
	// Class is the hardware class for support lookup, empty when the
	// device falls outside the checked classes.
	Class constants.HardwareClass
	// LocationPaths holds the enumerator-notation device paths, most
	// specific first.
	LocationPaths []string
	// Status is the raw device status reported by the source ("OK",
	// "Error", ...).
	Status string
}

// Source yields device descriptors.
type Source interface {
	Devices(ctx context.Context) ([]Device, error)
}

// classifyPnp maps a PNP device class string to a support-lookup class.
// Unchecked classes map to the empty class.
func classifyPnp(pnpClass string) constants.HardwareClass {
	switch strings.ToLower(pnpClass) {
	case "display":
		return constants.ClassGPU
	case "media", "audioendpoint":
		return constants.ClassAudio
	case "net":
		return constants.ClassEthernet
	case "diskdrive":
		return constants.ClassDisk
	default:
		return ""
	}
}
