// Package devpath parses and re-emits device location paths in the three
// textual notations the toolkit deals with:
//
//	enumerator:  PCIROOT(0)#PCI(0100)#PCI(0000)  or  ACPI(_SB_)#ACPI(PCI0)#ACPI(GFX0)
//	firmware:    PciRoot(0x0)/Pci(0x1,0x0)/Pci(0x0,0x0)
//	ACPI name:   SB.PCI0.GFX0
//
// Conversion between the enumerator and firmware notations is bidirectional
// and lossless. The ACPI name path is derived only from enumerator ACPI()
// segments and has no reverse conversion.
package devpath

import "strings"

// SegmentKind identifies the variant a Segment carries.
type SegmentKind int

const (
	// KindPciRoot is a PCI root bridge with a root index.
	KindPciRoot SegmentKind = iota
	// KindPci is a PCI hop carrying two positional hex bytes. The pair is
	// conventionally device/function but is passed through positionally;
	// no interpretation is attached to either byte.
	KindPci
	// KindAcpiName is an ACPI namespace name, stored raw (underscore
	// padding intact).
	KindAcpiName
)

// Segment is one hop of a device path.
type Segment struct {
	Kind SegmentKind

	// RootIndex is set for KindPciRoot.
	RootIndex int

	// First and Second are set for KindPci, in the order they appear in
	// the source text.
	First  byte
	Second byte

	// Name is set for KindAcpiName.
	Name string
}

// Path is an ordered sequence of segments. A path is homogeneous: either
// entirely PCI-notation segments (PciRoot/Pci) or entirely ACPI name
// segments; the parsers reject mixed paths.
type Path struct {
	Segments []Segment
}

// IsACPI reports whether the path consists of ACPI name segments.
func (p Path) IsACPI() bool {
	return len(p.Segments) > 0 && p.Segments[0].Kind == KindAcpiName
}

// Len returns the number of segments.
func (p Path) Len() int {
	return len(p.Segments)
}

// TrimBeforeMarker returns the path truncated just before the rightmost
// segment whose name begins with marker, isolating the segment's parent.
// Paths without the marker are returned unmodified. Only ACPI name segments
// carry names, so the operation is a no-op on PCI paths.
func (p Path) TrimBeforeMarker(marker string) Path {
	for i := len(p.Segments) - 1; i >= 0; i-- {
		seg := p.Segments[i]
		if seg.Kind != KindAcpiName {
			continue
		}
		if strings.HasPrefix(strings.Trim(seg.Name, "_"), marker) {
			return Path{Segments: p.Segments[:i]}
		}
	}
	return p
}

// TrimNamePath truncates a dot-joined ACPI name path just before the
// rightmost component beginning with marker. The second return value reports
// whether the marker was found; when it was not, the path comes back
// unmodified.
func TrimNamePath(namePath, marker string) (string, bool) {
	parts := strings.Split(namePath, ".")
	p := Path{Segments: make([]Segment, 0, len(parts))}
	for _, name := range parts {
		p.Segments = append(p.Segments, Segment{Kind: KindAcpiName, Name: name})
	}

	trimmed := p.TrimBeforeMarker(marker)
	if trimmed.Len() == p.Len() {
		return namePath, false
	}
	names := make([]string, 0, trimmed.Len())
	for _, seg := range trimmed.Segments {
		names = append(names, seg.Name)
	}
	return strings.Join(names, "."), true
}

// Notation selects an output dialect for Convert.
type Notation int

const (
	// NotationEnumerator is the host enumerator dialect
	// (PCIROOT(n)#PCI(xxyy), segments joined with '#').
	NotationEnumerator Notation = iota
	// NotationFirmware is the firmware device-path dialect
	// (PciRoot(0xN)/Pci(0xA,0xB), segments joined with '/').
	NotationFirmware
	// NotationACPI is the dot-joined ACPI name path (SB.PCI0.GFX0).
	NotationACPI
)

// String returns the notation name for error messages.
func (n Notation) String() string {
	switch n {
	case NotationEnumerator:
		return "enumerator"
	case NotationFirmware:
		return "firmware"
	case NotationACPI:
		return "acpi"
	default:
		return "unknown"
	}
}
