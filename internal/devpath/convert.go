package devpath

import (
	"fmt"
	"strings"

	"github.com/laobamac/SimpleToolkit/internal/errors"
)

// Convert renders the path in the requested notation. Converting between the
// enumerator and firmware notations round-trips byte for byte; rendering an
// ACPI name path from PCI segments, or a PCI notation from ACPI name
// segments, fails with an UnsupportedSegment error.
func Convert(p Path, target Notation) (string, error) {
	switch target {
	case NotationEnumerator:
		return p.Enumerator()
	case NotationFirmware:
		return p.Firmware()
	case NotationACPI:
		return p.AcpiNamePath()
	default:
		return "", errors.Newf(errors.Validation, "unknown target notation %d", target)
	}
}

// Enumerator renders the path in enumerator notation. Root indexes are
// decimal, PCI byte pairs are re-joined as four upper-case hex digits.
func (p Path) Enumerator() (string, error) {
	const op = "devpath.Enumerator"
	parts := make([]string, 0, len(p.Segments))
	for _, seg := range p.Segments {
		switch seg.Kind {
		case KindPciRoot:
			parts = append(parts, fmt.Sprintf("PCIROOT(%d)", seg.RootIndex))
		case KindPci:
			parts = append(parts, fmt.Sprintf("PCI(%02X%02X)", seg.First, seg.Second))
		case KindAcpiName:
			parts = append(parts, fmt.Sprintf("ACPI(%s)", seg.Name))
		default:
			return "", errors.Newf(errors.UnsupportedSegment,
				"segment kind %d has no enumerator form", seg.Kind).WithOp(op)
		}
	}
	return strings.Join(parts, "#"), nil
}

// Firmware renders the path in firmware notation. Root indexes and PCI bytes
// are emitted as unpadded 0x-prefixed hex. ACPI name segments have no
// firmware form.
func (p Path) Firmware() (string, error) {
	const op = "devpath.Firmware"
	parts := make([]string, 0, len(p.Segments))
	for _, seg := range p.Segments {
		switch seg.Kind {
		case KindPciRoot:
			parts = append(parts, fmt.Sprintf("PciRoot(0x%X)", seg.RootIndex))
		case KindPci:
			parts = append(parts, fmt.Sprintf("Pci(0x%X,0x%X)", seg.First, seg.Second))
		case KindAcpiName:
			return "", errors.Newf(errors.UnsupportedSegment,
				"ACPI name %q has no firmware form", seg.Name).WithOp(op)
		default:
			return "", errors.Newf(errors.UnsupportedSegment,
				"segment kind %d has no firmware form", seg.Kind).WithOp(op)
		}
	}
	return strings.Join(parts, "/"), nil
}

// AcpiNamePath renders the dot-joined ACPI name path. Underscore padding is
// stripped from every name (_SB_ becomes SB). The derivation is one way:
// stripped names cannot be converted back to enumerator or firmware form,
// and PCI segments have no name to render.
func (p Path) AcpiNamePath() (string, error) {
	const op = "devpath.AcpiNamePath"
	names := make([]string, 0, len(p.Segments))
	for _, seg := range p.Segments {
		if seg.Kind != KindAcpiName {
			return "", errors.New(errors.UnsupportedSegment,
				"PCI segments have no ACPI name form").WithOp(op)
		}
		names = append(names, strings.Trim(seg.Name, "_"))
	}
	return strings.Join(names, "."), nil
}
