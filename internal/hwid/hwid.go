// Package hwid implements the canonical hardware identifier used as the
// primary key for hardware identity: a vendor ID and a device ID, each four
// hex digits, rendered "VVVV&DDDD". It also performs the byte split needed
// to splice a replacement device ID into a patch template.
package hwid

import (
	"regexp"
	"strings"

	"github.com/laobamac/SimpleToolkit/internal/errors"
)

var (
	identifierPattern = regexp.MustCompile(`^[0-9A-Fa-f]{4}&[0-9A-Fa-f]{4}$`)
	deviceHexPattern  = regexp.MustCompile(`^[0-9A-Fa-f]{4}$`)
	vendorToken       = regexp.MustCompile(`(?i)VEN_([0-9A-F]{4})`)
	deviceToken       = regexp.MustCompile(`(?i)DEV_([0-9A-F]{4})`)
)

// WildcardByte is the hex byte used to wildcard part of a device ID in
// support database keys: "VVVV&DDFF" matches any low byte, "VVVV&FFFF"
// matches any device from the vendor.
const WildcardByte = "FF"

// Identifier is a vendor/device pair. Both halves are always exactly four
// uppercase hex digits. Identifiers are immutable once constructed.
type Identifier struct {
	Vendor string
	Device string
}

// String renders the canonical "VVVV&DDDD" form.
func (id Identifier) String() string {
	return id.Vendor + "&" + id.Device
}

// IsZero reports whether the identifier is the zero value.
func (id Identifier) IsZero() bool {
	return id.Vendor == "" && id.Device == ""
}

// FuzzyKey returns the lookup key with the device low byte wildcarded:
// "VVVV&DDFF". Vendor and device high byte are preserved.
func (id Identifier) FuzzyKey() string {
	return id.Vendor + "&" + id.Device[:2] + WildcardByte
}

// VendorKey returns the lookup key with the entire device field wildcarded:
// "VVVV&FFFF", meaning "any device from this vendor".
func (id Identifier) VendorKey() string {
	return id.Vendor + "&" + WildcardByte + WildcardByte
}

// Valid reports whether text matches the identifier shape
// ^[0-9A-Fa-f]{4}&[0-9A-Fa-f]{4}$. All user-supplied identifiers are gated
// through this check before they are accepted as database keys or spoof
// targets.
func Valid(text string) bool {
	return identifierPattern.MatchString(text)
}

// Parse constructs an Identifier from user-entered text, normalizing case
// to uppercase. It fails with a MalformedIdentifier error when the text
// does not match the required shape.
func Parse(text string) (Identifier, error) {
	if !Valid(text) {
		return Identifier{}, errors.Newf(errors.MalformedIdentifier,
			"invalid identifier %q: want VVVV&DDDD hex form", text).WithOp("hwid.Parse")
	}
	upper := strings.ToUpper(text)
	return Identifier{Vendor: upper[:4], Device: upper[5:]}, nil
}

// Extract scans a raw enumerator device descriptor case-insensitively for
// VEN_XXXX and DEV_XXXX tokens. It returns the combined identifier and true
// when both tokens are present, or the zero Identifier and false otherwise.
// Extract never fails: a descriptor without both tokens is simply not
// ID-keyed hardware.
func Extract(raw string) (Identifier, bool) {
	if raw == "" {
		return Identifier{}, false
	}
	ven := vendorToken.FindStringSubmatch(raw)
	dev := deviceToken.FindStringSubmatch(raw)
	if ven == nil || dev == nil {
		return Identifier{}, false
	}
	return Identifier{
		Vendor: strings.ToUpper(ven[1]),
		Device: strings.ToUpper(dev[1]),
	}, true
}

// SpliceBytes splits the four-hex-digit device half of an identifier into
// the two 8-bit hex literals a patch template consumes, in little-endian
// splice order: the second pair of digits becomes the high byte literal and
// the first pair becomes the low byte literal.
//
//	SpliceBytes("67DF") -> "0xDF", "0x67"
func SpliceBytes(deviceHex string) (high, low string, err error) {
	if !deviceHexPattern.MatchString(deviceHex) {
		return "", "", errors.Newf(errors.MalformedIdentifier,
			"invalid device ID %q: want four hex digits", deviceHex).WithOp("hwid.SpliceBytes")
	}
	upper := strings.ToUpper(deviceHex)
	return "0x" + upper[2:], "0x" + upper[:2], nil
}
