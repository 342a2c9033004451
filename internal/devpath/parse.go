package devpath

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/laobamac/SimpleToolkit/internal/errors"
)

var (
	enumPciRootRe = regexp.MustCompile(`^PCIROOT\((\d+)\)$`)
	enumPciRe     = regexp.MustCompile(`^PCI\(([0-9A-Fa-f]{4})\)$`)
	enumAcpiRe    = regexp.MustCompile(`^ACPI\((\w+)\)$`)

	fwPciRootRe = regexp.MustCompile(`^PciRoot\(0x([0-9A-Fa-f]+)\)$`)
	fwPciRe     = regexp.MustCompile(`^Pci\(0x([0-9A-Fa-f]+),0x([0-9A-Fa-f]+)\)$`)
)

// Parse detects the notation of s and parses it. Enumerator paths start with
// PCIROOT( or ACPI(, firmware paths with PciRoot(.
func Parse(s string) (Path, error) {
	const op = "devpath.Parse"
	switch {
	case strings.HasPrefix(s, "PCIROOT(") || strings.HasPrefix(s, "ACPI("):
		return ParseEnumerator(s)
	case strings.HasPrefix(s, "PciRoot("):
		return ParseFirmware(s)
	default:
		return Path{}, errors.Newf(errors.PathSyntax,
			"unrecognized device path notation: %q", s).WithOp(op)
	}
}

// ParseEnumerator parses an enumerator-notation path. Segments are separated
// by '#'; each is PCIROOT(n) with a decimal root index, PCI(xxyy) with four
// hex digits split into two bytes, or ACPI(name) with a raw namespace name.
// PCI and ACPI segments never mix within one path.
func ParseEnumerator(s string) (Path, error) {
	const op = "devpath.ParseEnumerator"
	if strings.TrimSpace(s) == "" {
		return Path{}, errors.New(errors.PathSyntax, "empty device path").WithOp(op)
	}

	var segs []Segment
	var sawPci, sawAcpi bool
	for _, part := range strings.Split(s, "#") {
		switch {
		case enumPciRootRe.MatchString(part):
			m := enumPciRootRe.FindStringSubmatch(part)
			idx, err := strconv.Atoi(m[1])
			if err != nil {
				return Path{}, errors.Wrapf(errors.PathSyntax, err,
					"root index in %q", part).WithOp(op)
			}
			segs = append(segs, Segment{Kind: KindPciRoot, RootIndex: idx})
			sawPci = true
		case enumPciRe.MatchString(part):
			m := enumPciRe.FindStringSubmatch(part)
			first, _ := strconv.ParseUint(m[1][:2], 16, 8)
			second, _ := strconv.ParseUint(m[1][2:], 16, 8)
			segs = append(segs, Segment{Kind: KindPci, First: byte(first), Second: byte(second)})
			sawPci = true
		case enumAcpiRe.MatchString(part):
			m := enumAcpiRe.FindStringSubmatch(part)
			segs = append(segs, Segment{Kind: KindAcpiName, Name: m[1]})
			sawAcpi = true
		default:
			return Path{}, errors.Newf(errors.PathSyntax,
				"unrecognized path segment %q", part).WithOp(op)
		}
	}
	if sawPci && sawAcpi {
		return Path{}, errors.Wrap(errors.PathSyntax, s, errors.ErrMixedPath).WithOp(op)
	}
	return Path{Segments: segs}, nil
}

// ParseFirmware parses a firmware-notation path. Segments are separated by
// '/'; each is PciRoot(0xN) or Pci(0xA,0xB) with unpadded hex values. Pci
// values larger than a byte are rejected.
func ParseFirmware(s string) (Path, error) {
	const op = "devpath.ParseFirmware"
	if strings.TrimSpace(s) == "" {
		return Path{}, errors.New(errors.PathSyntax, "empty device path").WithOp(op)
	}

	var segs []Segment
	for _, part := range strings.Split(s, "/") {
		switch {
		case fwPciRootRe.MatchString(part):
			m := fwPciRootRe.FindStringSubmatch(part)
			idx, err := strconv.ParseInt(m[1], 16, 32)
			if err != nil {
				return Path{}, errors.Wrapf(errors.PathSyntax, err,
					"root index in %q", part).WithOp(op)
			}
			segs = append(segs, Segment{Kind: KindPciRoot, RootIndex: int(idx)})
		case fwPciRe.MatchString(part):
			m := fwPciRe.FindStringSubmatch(part)
			first, err := strconv.ParseUint(m[1], 16, 8)
			if err != nil {
				return Path{}, errors.Wrapf(errors.PathSyntax, err,
					"value 0x%s does not fit in one byte", m[1]).WithOp(op)
			}
			second, err := strconv.ParseUint(m[2], 16, 8)
			if err != nil {
				return Path{}, errors.Wrapf(errors.PathSyntax, err,
					"value 0x%s does not fit in one byte", m[2]).WithOp(op)
			}
			segs = append(segs, Segment{Kind: KindPci, First: byte(first), Second: byte(second)})
		default:
			return Path{}, errors.Newf(errors.PathSyntax,
				"unrecognized path segment %q", part).WithOp(op)
		}
	}
	return Path{Segments: segs}, nil
}
