package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laobamac/SimpleToolkit/internal/hwid"
	"github.com/laobamac/SimpleToolkit/internal/supportdb"
)

func tierDB(t *testing.T) *supportdb.Database {
	t.Helper()
	return supportdb.Parse(`1002&FFFF=1
1002&FFFF.info=Generic AMD fallback
1002&67FF=1
1002&67FF.info=Polaris family
1002&67DF=1
1002&67DF.info=RX 480/580
1002&67DF.kext=WhateverGreen
10DE&1C82=0
`)
}

func TestResolveIDTierPrecedence(t *testing.T) {
	r := NewResolver(tierDB(t))

	tests := []struct {
		name     string
		query    string
		wantKind Kind
		wantKey  string
	}{
		{"exact beats fuzzy and wildcard", "1002&67DF", KindExact, "1002&67DF"},
		{"fuzzy beats wildcard", "1002&67AA", KindFuzzy, "1002&67FF"},
		{"wildcard catches the vendor", "1002&9999", KindWildcard, "1002&FFFF"},
		{"no match at all", "5555&0000", KindNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.ResolveIDText(tt.query)
			assert.Equal(t, tt.wantKind, res.Kind)
			assert.Equal(t, tt.wantKey, res.MatchedKey)
		})
	}
}

func TestResolveIDCarriesRecordFields(t *testing.T) {
	r := NewResolver(tierDB(t))

	res := r.ResolveIDText("1002&67DF")
	assert.True(t, res.Supported())
	assert.Equal(t, "RX 480/580", res.Detail)
	assert.Equal(t, "WhateverGreen", res.Driver)

	res = r.ResolveIDText("1002&67AA")
	assert.Equal(t, "Polaris family", res.Detail)
	assert.Equal(t, supportdb.DefaultDriver, res.Driver)
}

func TestResolveIDMalformedQueryShortCircuits(t *testing.T) {
	r := NewResolver(tierDB(t))

	for _, query := range []string{"", "1002", "1002&67D", "not an id"} {
		res := r.ResolveIDText(query)
		assert.Equal(t, KindNone, res.Kind, "query %q", query)
		assert.True(t, res.Unknown())
		assert.Equal(t, supportdb.DefaultDetail, res.Detail)
		assert.Equal(t, supportdb.DefaultDriver, res.Driver)
	}
}

func TestResolveIDZeroIdentifier(t *testing.T) {
	r := NewResolver(tierDB(t))
	res := r.ResolveID(hwid.Identifier{})
	assert.Equal(t, KindNone, res.Kind)
}

func TestResolveIDStatusRawValuePreserved(t *testing.T) {
	db := supportdb.Parse("1002&67DF=9\n")
	r := NewResolver(db)

	res := r.ResolveIDText("1002&67DF")
	assert.Equal(t, KindExact, res.Kind)
	assert.True(t, res.HasStatus)
	assert.False(t, res.Supported())
	assert.Equal(t, "9", res.Status)
}

func TestResolveIDKeyWithoutStatusDoesNotMatch(t *testing.T) {
	// A record known only by its .info line has no present status, so its
	// tier is skipped and the wildcard tier wins instead.
	db := supportdb.Parse("1002&67DF.info=detail only\n1002&FFFF=1\n")
	r := NewResolver(db)

	res := r.ResolveIDText("1002&67DF")
	assert.Equal(t, KindWildcard, res.Kind)
	assert.Equal(t, "1002&FFFF", res.MatchedKey)
}

func TestResolveNameTiers(t *testing.T) {
	db := supportdb.Parse(`SAMSUNG SSD 970 EVO 1TB=1
SAMSUNG SSD 970 EVO 1TB.info=NVMe, native
*INTEL=0
*INTEL.info=Intel NVMe controllers drop out of sleep
WDC=1
WDC.info=Western Digital, generally fine
`)
	r := NewResolver(db)

	tests := []struct {
		name     string
		query    string
		wantKind Kind
		wantKey  string
	}{
		{"exact model string", "Samsung SSD 970 EVO 1TB", KindExact, "SAMSUNG SSD 970 EVO 1TB"},
		{"star key substring", "INTEL SSDPEKNW512G8", KindFuzzy, "*INTEL"},
		{"plain key substring", "WDC WD10EZEX-08WN4A0", KindWildcard, "WDC"},
		{"nothing matches", "TOSHIBA DT01ACA100", KindNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.ResolveName(tt.query)
			assert.Equal(t, tt.wantKind, res.Kind)
			assert.Equal(t, tt.wantKey, res.MatchedKey)
		})
	}
}

func TestResolveNameStorageOrderTieBreak(t *testing.T) {
	// Both keys are substrings of the query; the first in storage order wins.
	db := supportdb.Parse("EVO=0\nSAMSUNG=1\n")
	r := NewResolver(db)

	res := r.ResolveName("SAMSUNG SSD 860 EVO")
	require.Equal(t, KindWildcard, res.Kind)
	assert.Equal(t, "EVO", res.MatchedKey)
	assert.False(t, res.Supported())
}

func TestResolveNameEmptyQuery(t *testing.T) {
	r := NewResolver(supportdb.Parse("WDC=1\n"))

	res := r.ResolveName("   ")
	assert.Equal(t, KindNone, res.Kind)
	assert.True(t, res.Unknown())
}

func TestResolveNameCaseInsensitive(t *testing.T) {
	db := supportdb.Parse("*wdc=1\n")
	r := NewResolver(db)

	res := r.ResolveName("wdc wd20ezaz")
	assert.Equal(t, KindFuzzy, res.Kind)
	assert.Equal(t, "*WDC", res.MatchedKey)
}
