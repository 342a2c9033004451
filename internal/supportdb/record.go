// Package supportdb loads, validates, and re-emits the flat support-database
// list files. One logical record is spread over up to three lines:
//
//	<KEY>=<STATUS>           status: "1" supported, "0" unsupported
//	<KEY>.info=<DETAIL>      optional free text
//	<KEY>.kext=<DRIVER>      optional free text
//
// Lines beginning with '#' and blank lines are ignored. Loading is lenient
// (lines without '=' are skipped); Validate applies the strict rules and
// reports every violation with its line number.
package supportdb

// Suffixes classifying a line's field within its logical record.
const (
	detailSuffix = ".info"
	driverSuffix = ".kext"
)

// Field defaults reported when a record carries no detail or driver line.
const (
	// DefaultDetail is the detail reported for records without a .info line.
	DefaultDetail = "unknown"
	// DefaultDriver is the driver reported for records without a .kext line.
	DefaultDriver = "none"
)

// Record is one logical support entry. Key is an identifier ("VVVV&DDDD"),
// a vendor-wildcard key ("VVVV&FFFF"), or a free-text device-name substring
// for name-keyed files. Status is present only when the file carries a
// key=status line for the key; its raw value is preserved even when it is
// not a recognized "0"/"1".
type Record struct {
	Key       string
	Status    string
	HasStatus bool
	Detail    string
	Driver    string
}

// Supported reports whether the record's status marks the hardware as
// supported. Any present value other than "1" counts as unsupported.
func (r Record) Supported() bool {
	return r.HasStatus && r.Status == StatusSupported
}

// Recognized status values. Anything else in a status position is a strict
// format violation.
const (
	// StatusSupported marks hardware as supported.
	StatusSupported = "1"
	// StatusUnsupported marks hardware as unsupported.
	StatusUnsupported = "0"
)
