package hwid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laobamac/SimpleToolkit/internal/errors"
)

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"uppercase", "1002&67DF", true},
		{"lowercase", "1002&67df", true},
		{"mixed case", "10dE&67Df", true},
		{"all digits", "8086&1539", true},
		{"wildcard device", "1002&FFFF", true},
		{"missing ampersand", "100267DF", false},
		{"short vendor", "102&67DF", false},
		{"short device", "1002&67D", false},
		{"long device", "1002&67DF0", false},
		{"non-hex", "10G2&67DF", false},
		{"empty", "", false},
		{"trailing space", "1002&67DF ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.text))
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("normalizes to uppercase", func(t *testing.T) {
		id, err := Parse("10de&1c82")
		require.NoError(t, err)
		assert.Equal(t, "10DE", id.Vendor)
		assert.Equal(t, "1C82", id.Device)
		assert.Equal(t, "10DE&1C82", id.String())
	})

	t.Run("rejects malformed text", func(t *testing.T) {
		_, err := Parse("10de-1c82")
		require.Error(t, err)
		assert.Equal(t, errors.MalformedIdentifier, errors.GetCode(err))
	})
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{
			name:   "typical PNP descriptor",
			raw:    `PCI\VEN_1002&DEV_67DF&SUBSYS_0B371002&REV_E7\4&2283f625&0&0019`,
			want:   "1002&67DF",
			wantOK: true,
		},
		{
			name:   "lowercase tokens",
			raw:    `pci\ven_10de&dev_1c82`,
			want:   "10DE&1C82",
			wantOK: true,
		},
		{
			name:   "vendor token only",
			raw:    `PCI\VEN_8086&REV_31`,
			wantOK: false,
		},
		{
			name:   "no tokens",
			raw:    `USB\VID_046D&PID_C52B`,
			wantOK: false,
		},
		{
			name:   "empty descriptor",
			raw:    "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := Extract(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, id.String())
			} else {
				assert.True(t, id.IsZero())
			}
		})
	}
}

func TestWildcardKeys(t *testing.T) {
	id, err := Parse("1002&67DF")
	require.NoError(t, err)

	assert.Equal(t, "1002&67FF", id.FuzzyKey())
	assert.Equal(t, "1002&FFFF", id.VendorKey())
}

func TestSpliceBytes(t *testing.T) {
	t.Run("swaps byte order", func(t *testing.T) {
		high, low, err := SpliceBytes("67DF")
		require.NoError(t, err)
		assert.Equal(t, "0xDF", high)
		assert.Equal(t, "0x67", low)
	})

	t.Run("normalizes case", func(t *testing.T) {
		high, low, err := SpliceBytes("73bf")
		require.NoError(t, err)
		assert.Equal(t, "0xBF", high)
		assert.Equal(t, "0x73", low)
	})

	t.Run("rejects short input", func(t *testing.T) {
		_, _, err := SpliceBytes("6")
		require.Error(t, err)
		assert.Equal(t, errors.MalformedIdentifier, errors.GetCode(err))
	})

	t.Run("rejects non-hex input", func(t *testing.T) {
		_, _, err := SpliceBytes("67DZ")
		require.Error(t, err)
		assert.Equal(t, errors.MalformedIdentifier, errors.GetCode(err))
	})
}
