package devpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/laobamac/SimpleToolkit/internal/errors"
)

func TestParseEnumerator(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Segment
		wantErr bool
	}{
		{
			name:  "root with two pci hops",
			input: "PCIROOT(0)#PCI(0100)#PCI(0000)",
			want: []Segment{
				{Kind: KindPciRoot, RootIndex: 0},
				{Kind: KindPci, First: 0x01, Second: 0x00},
				{Kind: KindPci, First: 0x00, Second: 0x00},
			},
		},
		{
			name:  "multi digit root index is decimal",
			input: "PCIROOT(12)#PCI(1F03)",
			want: []Segment{
				{Kind: KindPciRoot, RootIndex: 12},
				{Kind: KindPci, First: 0x1F, Second: 0x03},
			},
		},
		{
			name:  "acpi names kept raw",
			input: "ACPI(_SB_)#ACPI(PCI0)#ACPI(GFX0)",
			want: []Segment{
				{Kind: KindAcpiName, Name: "_SB_"},
				{Kind: KindAcpiName, Name: "PCI0"},
				{Kind: KindAcpiName, Name: "GFX0"},
			},
		},
		{
			name:    "mixed pci and acpi segments",
			input:   "PCIROOT(0)#ACPI(GFX0)",
			wantErr: true,
		},
		{
			name:    "pci hop with wrong digit count",
			input:   "PCIROOT(0)#PCI(010)",
			wantErr: true,
		},
		{
			name:    "hex root index",
			input:   "PCIROOT(A)#PCI(0100)",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnumerator(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.PathSyntax))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Segments)
		})
	}
}

func TestParseFirmware(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Segment
		wantErr bool
	}{
		{
			name:  "root with two pci hops",
			input: "PciRoot(0x0)/Pci(0x1,0x0)/Pci(0x0,0x0)",
			want: []Segment{
				{Kind: KindPciRoot, RootIndex: 0},
				{Kind: KindPci, First: 0x01, Second: 0x00},
				{Kind: KindPci, First: 0x00, Second: 0x00},
			},
		},
		{
			name:  "hex root index",
			input: "PciRoot(0xA)/Pci(0x1C,0x4)",
			want: []Segment{
				{Kind: KindPciRoot, RootIndex: 10},
				{Kind: KindPci, First: 0x1C, Second: 0x04},
			},
		},
		{
			name:    "pci value beyond one byte",
			input:   "PciRoot(0x0)/Pci(0x100,0x0)",
			wantErr: true,
		},
		{
			name:    "missing 0x prefix",
			input:   "PciRoot(0)/Pci(1,0)",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFirmware(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.PathSyntax))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Segments)
		})
	}
}

func TestParseAutoDetect(t *testing.T) {
	p, err := Parse("PCIROOT(0)#PCI(0100)")
	require.NoError(t, err)
	assert.Equal(t, KindPciRoot, p.Segments[0].Kind)

	p, err = Parse("PciRoot(0x0)/Pci(0x1,0x0)")
	require.NoError(t, err)
	assert.Equal(t, KindPciRoot, p.Segments[0].Kind)

	p, err = Parse("ACPI(_SB_)#ACPI(PCI0)")
	require.NoError(t, err)
	assert.True(t, p.IsACPI())

	_, err = Parse("SB.PCI0.GFX0")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.PathSyntax))
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		enumerator string
		firmware   string
	}{
		{
			name:       "two pci hops",
			enumerator: "PCIROOT(0)#PCI(0100)#PCI(0000)",
			firmware:   "PciRoot(0x0)/Pci(0x1,0x0)/Pci(0x0,0x0)",
		},
		{
			name:       "high byte values keep padding in enumerator only",
			enumerator: "PCIROOT(1)#PCI(1C04)#PCI(00A3)",
			firmware:   "PciRoot(0x1)/Pci(0x1C,0x4)/Pci(0x0,0xA3)",
		},
		{
			name:       "root only",
			enumerator: "PCIROOT(0)",
			firmware:   "PciRoot(0x0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseEnumerator(tt.enumerator)
			require.NoError(t, err)
			fw, err := p.Firmware()
			require.NoError(t, err)
			assert.Equal(t, tt.firmware, fw)

			back, err := ParseFirmware(fw)
			require.NoError(t, err)
			enum, err := back.Enumerator()
			require.NoError(t, err)
			assert.Equal(t, tt.enumerator, enum)
		})
	}
}

func TestAcpiNamePath(t *testing.T) {
	p, err := ParseEnumerator("ACPI(_SB_)#ACPI(PCI0)#ACPI(GFX0)")
	require.NoError(t, err)

	got, err := p.AcpiNamePath()
	require.NoError(t, err)
	assert.Equal(t, "SB.PCI0.GFX0", got)

	// Stripped names still re-emit in enumerator notation untouched.
	enum, err := p.Enumerator()
	require.NoError(t, err)
	assert.Equal(t, "ACPI(_SB_)#ACPI(PCI0)#ACPI(GFX0)", enum)

	// PCI paths carry no namespace names.
	pci, err := ParseEnumerator("PCIROOT(0)#PCI(0100)")
	require.NoError(t, err)
	_, err = pci.AcpiNamePath()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.UnsupportedSegment))

	// And name paths have no firmware form.
	_, err = p.Firmware()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.UnsupportedSegment))
}

func TestConvert(t *testing.T) {
	p, err := ParseEnumerator("PCIROOT(0)#PCI(0200)")
	require.NoError(t, err)

	fw, err := Convert(p, NotationFirmware)
	require.NoError(t, err)
	assert.Equal(t, "PciRoot(0x0)/Pci(0x2,0x0)", fw)

	enum, err := Convert(p, NotationEnumerator)
	require.NoError(t, err)
	assert.Equal(t, "PCIROOT(0)#PCI(0200)", enum)

	_, err = Convert(p, Notation(99))
	assert.Error(t, err)
}

func TestTrimBeforeMarker(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		marker string
		want   string
	}{
		{
			name:   "bridge child trimmed to parent",
			input:  "ACPI(_SB_)#ACPI(PCI0)#ACPI(PEG0)#ACPI(PEGP)",
			marker: "PEGP",
			want:   "SB.PCI0.PEG0",
		},
		{
			name:   "rightmost marker wins",
			input:  "ACPI(_SB_)#ACPI(PEGP)#ACPI(PCI0)#ACPI(PEGP)",
			marker: "PEGP",
			want:   "SB.PEGP.PCI0",
		},
		{
			name:   "padded marker segment matches",
			input:  "ACPI(_SB_)#ACPI(PCI0)#ACPI(PEGP_)",
			marker: "PEGP",
			want:   "SB.PCI0",
		},
		{
			name:   "marker absent leaves path alone",
			input:  "ACPI(_SB_)#ACPI(PCI0)#ACPI(GFX0)",
			marker: "PEGP",
			want:   "SB.PCI0.GFX0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseEnumerator(tt.input)
			require.NoError(t, err)
			got, err := p.TrimBeforeMarker(tt.marker).AcpiNamePath()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTrimNamePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		found bool
	}{
		{"bridge child trimmed to parent", "SB.PCI0.PEG0.PEGP", "SB.PCI0.PEG0", true},
		{"rightmost marker wins", "SB.PEGP.PCI0.PEGP", "SB.PEGP.PCI0", true},
		{"marker at head trims to empty", "PEGP.GFX0", "", true},
		{"marker absent leaves path alone", "SB.PCI0.GFX0", "SB.PCI0.GFX0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := TrimNamePath(tt.input, "PEGP")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.found, found)
		})
	}
}
