package supportdb

import (
	"fmt"
	"strings"

	"github.com/laobamac/SimpleToolkit/internal/hwid"
)

// Kind selects which strict key rules apply to a list file. ID-keyed files
// require non-.info/.kext keys to match the VVVV&DDDD identifier shape;
// name-keyed files carry free-text model keys and skip the shape check.
type Kind int

const (
	// IDKeyed marks a file keyed by hardware identifiers.
	IDKeyed Kind = iota
	// NameKeyed marks a file keyed by device model strings.
	NameKeyed
)

// Issue is one strict-validation violation, located by its 1-based line
// number and carrying the raw offending text.
type Issue struct {
	Line    int
	Message string
	Raw     string
}

// String formats the issue for user display.
func (i Issue) String() string {
	return fmt.Sprintf("line %d: %s - %s", i.Line, i.Message, i.Raw)
}

// Violation messages. The remediation policy for all three classes is to
// delete the offending line; no content-level auto-correction is attempted.
const (
	msgMissingSeparator = "missing separator"
	msgInvalidShape     = "invalid identifier shape"
	msgInvalidStatus    = "invalid status value"
)

// Validate re-parses content applying the strict rules: every line must
// contain '=', non-.info/.kext keys must match the identifier pattern (for
// IDKeyed files), and status values must be exactly "0" or "1". Unlike the
// lenient loader, Validate never skips a line silently: every violation is
// reported with its 1-based line number. The second return value lists the
// raw lines that the delete-line repair policy would remove; all three
// violation classes are repairable.
func Validate(content string, kind Kind) (issues []Issue, repairable []string) {
	for i, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		msg := checkLine(line, kind)
		if msg == "" {
			continue
		}
		issues = append(issues, Issue{Line: i + 1, Message: msg, Raw: line})
		repairable = append(repairable, line)
	}
	return issues, repairable
}

// checkLine applies the strict rules to a single non-blank, non-comment
// line, returning the violation message or "" when the line is valid.
func checkLine(line string, kind Kind) string {
	key, value, found := strings.Cut(line, "=")
	if !found {
		return msgMissingSeparator
	}
	key = strings.TrimSpace(key)
	value = strings.TrimSpace(value)

	if strings.HasSuffix(key, detailSuffix) || strings.HasSuffix(key, driverSuffix) {
		return ""
	}
	if kind == IDKeyed && !hwid.Valid(key) {
		return msgInvalidShape + ": " + key
	}
	if value != StatusUnsupported && value != StatusSupported {
		return msgInvalidStatus
	}
	return ""
}

// Repair returns content with every repairable line removed, preserving all
// other lines byte-for-byte.
func Repair(content string, repairable []string) string {
	drop := make(map[string]bool, len(repairable))
	for _, line := range repairable {
		drop[line] = true
	}

	var kept []string
	for _, raw := range strings.Split(content, "\n") {
		if drop[strings.TrimSpace(raw)] {
			continue
		}
		kept = append(kept, raw)
	}
	return strings.Join(kept, "\n")
}
