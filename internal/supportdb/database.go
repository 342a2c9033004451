package supportdb

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/laobamac/SimpleToolkit/internal/errors"
)

// Database holds one support list file as three parallel mappings keyed by
// the upper-cased record key: status, human-readable detail, and required
// driver. Insertion order of keys is preserved so a load→mutate→save round
// trip does not reorder the file.
//
// A Database is not safe for concurrent mutation, but once loaded it may be
// shared by reference across any number of concurrent lookups.
type Database struct {
	statuses map[string]string
	details  map[string]string
	drivers  map[string]string
	order    []string
}

// New returns an empty Database.
func New() *Database {
	return &Database{
		statuses: make(map[string]string),
		details:  make(map[string]string),
		drivers:  make(map[string]string),
	}
}

// Parse loads database content leniently: every non-empty, non-comment line
// containing '=' is split once on the first '=' and classified by key
// suffix. Lines without '=' are silently skipped; this is the deliberate
// forgiving-parse policy, not a validation pass (see Validate).
func Parse(content string) *Database {
	db := New()
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch {
		case strings.HasSuffix(key, detailSuffix):
			base := strings.ToUpper(strings.TrimSuffix(key, detailSuffix))
			db.touch(base)
			db.details[base] = value
		case strings.HasSuffix(key, driverSuffix):
			base := strings.ToUpper(strings.TrimSuffix(key, driverSuffix))
			db.touch(base)
			db.drivers[base] = value
		default:
			base := strings.ToUpper(key)
			db.touch(base)
			db.statuses[base] = value
		}
	}
	return db
}

// Load reads database content from r and parses it leniently.
func Load(r io.Reader) (*Database, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.Unknown, "failed to read support database", err).WithOp("supportdb.Load")
	}
	return Parse(string(content)), nil
}

// LoadFile reads and parses the list file at path. The file handle is
// released before returning on every path. A missing file yields a NotFound
// error so callers can distinguish "no database" from an empty one.
func LoadFile(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(errors.NotFound, err, "support database %s not found", path).WithOp("supportdb.LoadFile")
		}
		return nil, errors.Wrap(errors.Unknown, "failed to open support database", err).WithOp("supportdb.LoadFile")
	}
	defer f.Close()
	return Load(f)
}

// touch records the first appearance of a base key, fixing its position in
// the emission order.
func (db *Database) touch(key string) {
	if _, ok := db.statuses[key]; ok {
		return
	}
	if _, ok := db.details[key]; ok {
		return
	}
	if _, ok := db.drivers[key]; ok {
		return
	}
	db.order = append(db.order, key)
}

// Lookup returns the record for key, case-normalized. The boolean reports
// whether the key exists in any of the three mappings; HasStatus on the
// returned record reports whether a status line specifically is present.
func (db *Database) Lookup(key string) (Record, bool) {
	key = strings.ToUpper(strings.TrimSpace(key))
	status, hasStatus := db.statuses[key]
	detail, hasDetail := db.details[key]
	driver, hasDriver := db.drivers[key]
	if !hasStatus && !hasDetail && !hasDriver {
		return Record{}, false
	}
	if !hasDetail {
		detail = DefaultDetail
	}
	if !hasDriver {
		driver = DefaultDriver
	}
	return Record{
		Key:       key,
		Status:    status,
		HasStatus: hasStatus,
		Detail:    detail,
		Driver:    driver,
	}, true
}

// Keys returns the base keys in insertion order. The returned slice is a
// copy and safe for the caller to retain.
func (db *Database) Keys() []string {
	keys := make([]string, len(db.order))
	copy(keys, db.order)
	return keys
}

// Len returns the number of logical records.
func (db *Database) Len() int {
	return len(db.order)
}

// Set stores fields for key, creating the record if needed. Empty field
// values leave the corresponding mapping untouched, matching the editor
// semantics where a blank input means "no change".
func (db *Database) Set(key, status, detail, driver string) {
	key = strings.ToUpper(strings.TrimSpace(key))
	db.touch(key)
	if status != "" {
		db.statuses[key] = status
	}
	if detail != "" {
		db.details[key] = detail
	}
	if driver != "" {
		db.drivers[key] = driver
	}
}

// Delete removes the record for key from all three mappings and from the
// emission order.
func (db *Database) Delete(key string) {
	key = strings.ToUpper(strings.TrimSpace(key))
	if _, ok := db.Lookup(key); !ok {
		return
	}
	delete(db.statuses, key)
	delete(db.details, key)
	delete(db.drivers, key)
	for i, k := range db.order {
		if k == key {
			db.order = append(db.order[:i], db.order[i+1:]...)
			break
		}
	}
}

// Serialize re-emits the database deterministically: for each key with a
// present field, the key=status line, then key.info, then key.kext, in that
// fixed order; keys appear in insertion order.
func (db *Database) Serialize() string {
	var b strings.Builder
	for _, key := range db.order {
		if status, ok := db.statuses[key]; ok {
			b.WriteString(key)
			b.WriteString("=")
			b.WriteString(status)
			b.WriteString("\n")
		}
		if detail, ok := db.details[key]; ok {
			b.WriteString(key)
			b.WriteString(detailSuffix)
			b.WriteString("=")
			b.WriteString(detail)
			b.WriteString("\n")
		}
		if driver, ok := db.drivers[key]; ok {
			b.WriteString(key)
			b.WriteString(driverSuffix)
			b.WriteString("=")
			b.WriteString(driver)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// SaveFile writes the serialized database to path, truncating any existing
// file. The file handle is released on all exit paths.
func (db *Database) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.Unknown, "failed to create support database file", err).WithOp("supportdb.SaveFile")
	}
	defer f.Close()
	if _, err := f.WriteString(db.Serialize()); err != nil {
		return errors.Wrap(errors.Unknown, "failed to write support database", err).WithOp("supportdb.SaveFile")
	}
	return nil
}
