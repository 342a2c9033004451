// Package match implements tiered support classification of hardware
// against a loaded support database. Two lookup families share the same
// tier priority: ID-keyed hardware (GPU, audio, network controllers) is
// matched by identifier with byte-level wildcarding, name-keyed hardware
// (storage) by model string with substring wildcarding.
package match

import (
	"strings"

	"github.com/laobamac/SimpleToolkit/internal/hwid"
	"github.com/laobamac/SimpleToolkit/internal/supportdb"
)

// Kind reports which tier produced a match.
type Kind int

const (
	// KindNone means no tier matched; support status is unknown.
	KindNone Kind = iota
	// KindExact means the query itself was a database key.
	KindExact
	// KindFuzzy means the device low byte wildcard ("VVVV&DDFF") or a
	// *-prefixed name key matched.
	KindFuzzy
	// KindWildcard means the vendor wildcard ("VVVV&FFFF") or a plain
	// substring name key matched.
	KindWildcard
)

// String returns the kind as a short lowercase word.
func (k Kind) String() string {
	switch k {
	case KindExact:
		return "exact"
	case KindFuzzy:
		return "fuzzy"
	case KindWildcard:
		return "wildcard"
	default:
		return "none"
	}
}

// Result is the outcome of one resolution. It is created fresh per query
// and never mutated. MatchedKey is the database key that actually produced
// the hit, which differs from the query when a fuzzy or wildcard tier
// matched. Status carries the raw stored value; any present value other
// than "1" displays as unsupported but is preserved verbatim.
type Result struct {
	Status     string
	HasStatus  bool
	MatchedKey string
	Detail     string
	Driver     string
	Kind       Kind
}

// Supported reports whether the matched status marks the hardware as
// supported.
func (r Result) Supported() bool {
	return r.HasStatus && r.Status == supportdb.StatusSupported
}

// Unknown reports whether no tier produced a present status.
func (r Result) Unknown() bool {
	return !r.HasStatus
}

// unknownResult is the terminal "no match" outcome. Not an error.
func unknownResult() Result {
	return Result{
		Detail: supportdb.DefaultDetail,
		Driver: supportdb.DefaultDriver,
		Kind:   KindNone,
	}
}

// Resolver classifies hardware queries against one support database. The
// database is treated as read-only; a single Resolver may serve concurrent
// resolutions.
type Resolver struct {
	db *supportdb.Database
}

// NewResolver creates a Resolver over db.
func NewResolver(db *supportdb.Database) *Resolver {
	return &Resolver{db: db}
}

// ResolveIDText resolves raw identifier text. Empty or malformed text
// short-circuits to the unknown result without consulting the database.
func (r *Resolver) ResolveIDText(text string) Result {
	id, err := hwid.Parse(text)
	if err != nil {
		return unknownResult()
	}
	return r.ResolveID(id)
}

// ResolveID resolves an ID-keyed query through the three tiers:
//
//  1. exact:    VVVV&DDDD
//  2. fuzzy:    VVVV&DDFF (device low byte wildcarded)
//  3. wildcard: VVVV&FFFF (any device from this vendor)
//
// The first tier whose key carries a present status wins. A key present
// with no status line does not match its tier.
func (r *Resolver) ResolveID(id hwid.Identifier) Result {
	if id.IsZero() {
		return unknownResult()
	}
	tiers := []struct {
		key  string
		kind Kind
	}{
		{id.String(), KindExact},
		{id.FuzzyKey(), KindFuzzy},
		{id.VendorKey(), KindWildcard},
	}
	for _, tier := range tiers {
		if res, ok := r.hit(tier.key, tier.kind); ok {
			return res
		}
	}
	return unknownResult()
}

// ResolveName resolves a name-keyed query (a device model string) through
// the name tiers:
//
//  1. exact:    the upper-cased name is itself a database key
//  2. fuzzy:    a *-prefixed key whose suffix is a substring of the name
//  3. wildcard: any plain key that is a substring of the name
//
// Database insertion order breaks ties among multiple fuzzy or wildcard
// candidates: first found in storage order wins.
func (r *Resolver) ResolveName(name string) Result {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		return unknownResult()
	}

	if res, ok := r.hit(name, KindExact); ok {
		return res
	}

	keys := r.db.Keys()
	for _, key := range keys {
		if !strings.HasPrefix(key, "*") {
			continue
		}
		if suffix := key[1:]; suffix != "" && strings.Contains(name, suffix) {
			if res, ok := r.hit(key, KindFuzzy); ok {
				return res
			}
		}
	}
	for _, key := range keys {
		if strings.HasPrefix(key, "*") || key == name {
			continue
		}
		if strings.Contains(name, key) {
			if res, ok := r.hit(key, KindWildcard); ok {
				return res
			}
		}
	}
	return unknownResult()
}

// hit builds a Result from key if the database holds a present status for
// it.
func (r *Resolver) hit(key string, kind Kind) (Result, bool) {
	rec, ok := r.db.Lookup(key)
	if !ok || !rec.HasStatus {
		return Result{}, false
	}
	return Result{
		Status:     rec.Status,
		HasStatus:  true,
		MatchedKey: rec.Key,
		Detail:     rec.Detail,
		Driver:     rec.Driver,
		Kind:       kind,
	}, true
}
