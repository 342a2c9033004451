package supportdb

import (
	"fmt"
	"strings"

	"github.com/laobamac/SimpleToolkit/internal/errors"
)

// MergeOptions selects which fields of incoming records are applied and how
// collisions with existing records are handled.
type MergeOptions struct {
	// Status applies incoming key=status lines.
	Status bool
	// Detail applies incoming key.info lines.
	Detail bool
	// Driver applies incoming key.kext lines.
	Driver bool
	// Overwrite replaces fields of records that already exist. When false,
	// records whose key is already present are skipped whole.
	Overwrite bool
	// SkipInvalid drops strictly-invalid source lines with a report entry
	// instead of failing the merge.
	SkipInvalid bool
	// Kind selects the strict key rules applied to the source.
	Kind Kind
}

// DefaultMergeOptions imports all three fields, skips invalid lines, and
// does not overwrite existing records.
func DefaultMergeOptions() MergeOptions {
	return MergeOptions{Status: true, Detail: true, Driver: true, SkipInvalid: true}
}

// Skip describes one source record or line that the merge did not apply.
type Skip struct {
	// Ref locates the skipped input: "line N" for format violations or the
	// record key for policy skips.
	Ref    string
	Reason string
}

// MergeReport summarizes a merge: how many records were applied and why the
// rest were skipped.
type MergeReport struct {
	Imported int
	Skips    []Skip
}

// Skipped returns the number of records and lines not applied.
func (r MergeReport) Skipped() int {
	return len(r.Skips)
}

// Merge imports records parsed from src into db according to opts. Source
// lines are strictly validated first; a violation either aborts the merge
// (SkipInvalid false) or is recorded as a skip. Records merge additively:
// only the selected, present fields of each incoming record are applied.
func (db *Database) Merge(src string, opts MergeOptions) (MergeReport, error) {
	var report MergeReport

	issues, repairable := Validate(src, opts.Kind)
	if len(issues) > 0 {
		if !opts.SkipInvalid {
			first := issues[0]
			return report, errors.Newf(errors.DatabaseFormat,
				"source line %d: %s", first.Line, first.Message).WithOp("supportdb.Merge")
		}
		for _, issue := range issues {
			report.Skips = append(report.Skips, Skip{
				Ref:    fmt.Sprintf("line %d", issue.Line),
				Reason: issue.Message,
			})
		}
		src = Repair(src, repairable)
	}

	incoming := Parse(src)
	for _, key := range incoming.Keys() {
		rec, _ := incoming.Lookup(key)

		if _, exists := db.Lookup(key); exists && !opts.Overwrite {
			report.Skips = append(report.Skips, Skip{Ref: key, Reason: "already present"})
			continue
		}

		status, detail, driver := selectFields(incoming, key, rec, opts)
		if status == "" && detail == "" && driver == "" {
			report.Skips = append(report.Skips, Skip{Ref: key, Reason: "no importable fields"})
			continue
		}

		db.Set(key, status, detail, driver)
		report.Imported++
	}
	return report, nil
}

// selectFields picks the incoming fields enabled by opts, returning "" for
// fields that are absent or deselected.
func selectFields(incoming *Database, key string, rec Record, opts MergeOptions) (status, detail, driver string) {
	key = strings.ToUpper(key)
	if opts.Status && rec.HasStatus {
		status = rec.Status
	}
	if opts.Detail {
		if v, ok := incoming.details[key]; ok {
			detail = v
		}
	}
	if opts.Driver {
		if v, ok := incoming.drivers[key]; ok {
			driver = v
		}
	}
	return status, detail, driver
}
