package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *Parser {
	return NewParser("stk", "1.0.0", "2026-01-01T00:00:00Z", "abcdef1234567890")
}

func TestParseNoArgsShowsHelp(t *testing.T) {
	result, err := newTestParser().Parse(nil)
	require.NoError(t, err)
	assert.True(t, result.ShowHelp)
}

func TestParseHelpFlag(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}, {"check", "--help"}} {
		result, err := newTestParser().Parse(args)
		require.NoError(t, err)
		assert.True(t, result.ShowHelp, "args %v", args)
	}
}

func TestParseCommands(t *testing.T) {
	tests := []struct {
		args []string
		want Command
	}{
		{[]string{"check"}, CommandCheck},
		{[]string{"c"}, CommandCheck},
		{[]string{"lookup", "--class", "gpu", "1002&67DF"}, CommandLookup},
		{[]string{"convert", "PCIROOT(0)#PCI(0100)"}, CommandConvert},
		{[]string{"db", "validate", "GPUSupportInfo.list"}, CommandDB},
		{[]string{"spoof", "--path", "SB.PCI0.GFX0", "--id", "67DF"}, CommandSpoof},
		{[]string{"version"}, CommandVersion},
		{[]string{"v"}, CommandVersion},
	}

	for _, tt := range tests {
		result, err := newTestParser().Parse(tt.args)
		require.NoError(t, err, "args %v", tt.args)
		assert.Equal(t, tt.want, result.Command, "args %v", tt.args)
	}
}

func TestParseUnknownCommand(t *testing.T) {
	_, err := newTestParser().Parse([]string{"frobnicate"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestParseGlobalFlags(t *testing.T) {
	result, err := newTestParser().Parse([]string{
		"--verbose", "--config", "/tmp/stk.yaml", "--log-level", "debug", "--no-color", "version",
	})
	require.NoError(t, err)

	assert.True(t, result.GlobalFlags.Verbose)
	assert.Equal(t, "/tmp/stk.yaml", result.GlobalFlags.ConfigFile)
	assert.Equal(t, "debug", result.GlobalFlags.LogLevel)
	assert.True(t, result.GlobalFlags.NoColor)
	assert.Equal(t, CommandVersion, result.Command)
}

func TestParseVerboseQuietConflict(t *testing.T) {
	_, err := newTestParser().Parse([]string{"-v", "-q", "version"})
	require.Error(t, err)
	var flagErr *FlagError
	assert.ErrorAs(t, err, &flagErr)
}

func TestParseCheckFlags(t *testing.T) {
	result, err := newTestParser().Parse([]string{"check", "--snapshot", "devices.json", "--json"})
	require.NoError(t, err)

	assert.Equal(t, "devices.json", result.CheckFlags.Snapshot)
	assert.True(t, result.CheckFlags.JSON)
}

func TestParseLookupFlags(t *testing.T) {
	result, err := newTestParser().Parse([]string{"lookup", "--class", "disk", "SAMSUNG SSD 970 EVO 1TB"})
	require.NoError(t, err)

	assert.Equal(t, "disk", result.LookupFlags.Class)
	require.Len(t, result.Args, 1)
	assert.Equal(t, "SAMSUNG SSD 970 EVO 1TB", result.Args[0])
}

func TestParseLookupRequiresClassAndQuery(t *testing.T) {
	_, err := newTestParser().Parse([]string{"lookup", "1002&67DF"})
	assert.Error(t, err)

	_, err = newTestParser().Parse([]string{"lookup", "--class", "gpu"})
	assert.Error(t, err)

	_, err = newTestParser().Parse([]string{"lookup", "--class", "gpu", "a", "b"})
	assert.Error(t, err)
}

func TestParseDBValidate(t *testing.T) {
	result, err := newTestParser().Parse([]string{"db", "validate", "--repair", "--name-keyed", "Disk.list"})
	require.NoError(t, err)

	assert.Equal(t, DBValidate, result.DBFlags.Subcommand)
	assert.True(t, result.DBFlags.Repair)
	assert.True(t, result.DBFlags.NameKeyed)
	require.Len(t, result.Args, 1)
	assert.Equal(t, "Disk.list", result.Args[0])
}

func TestParseDBImport(t *testing.T) {
	result, err := newTestParser().Parse([]string{
		"db", "import", "--no-driver", "--overwrite", "--into", "GPU.list", "extra.list",
	})
	require.NoError(t, err)

	assert.Equal(t, DBImport, result.DBFlags.Subcommand)
	assert.True(t, result.DBFlags.NoDriver)
	assert.False(t, result.DBFlags.NoStatus)
	assert.True(t, result.DBFlags.Overwrite)
	assert.Equal(t, "GPU.list", result.DBFlags.Into)
	require.Len(t, result.Args, 1)
	assert.Equal(t, "extra.list", result.Args[0])
}

func TestParseDBErrors(t *testing.T) {
	_, err := newTestParser().Parse([]string{"db"})
	assert.Error(t, err)

	_, err = newTestParser().Parse([]string{"db", "compact", "x.list"})
	assert.Error(t, err)

	_, err = newTestParser().Parse([]string{"db", "import", "src.list"})
	assert.Error(t, err, "import without --into")

	_, err = newTestParser().Parse([]string{"db", "validate"})
	assert.Error(t, err, "validate without file")
}

func TestParseSpoofFlags(t *testing.T) {
	result, err := newTestParser().Parse([]string{
		"spoof", "--path", "SB.PCI0.PEG0.PEGP", "--id", "67DF",
		"--model", "Radeon RX 580", "--bridge", "-o", "out.dsl",
	})
	require.NoError(t, err)

	assert.Equal(t, "SB.PCI0.PEG0.PEGP", result.SpoofFlags.Path)
	assert.Equal(t, "67DF", result.SpoofFlags.ID)
	assert.Equal(t, "Radeon RX 580", result.SpoofFlags.Model)
	assert.True(t, result.SpoofFlags.Bridge)
	assert.Equal(t, "out.dsl", result.SpoofFlags.Output)
}

func TestParseSpoofDisableNeedsNoID(t *testing.T) {
	result, err := newTestParser().Parse([]string{"spoof", "--path", "SB.PCI0.GFX0", "--disable", "off"})
	require.NoError(t, err)
	assert.Equal(t, "off", result.SpoofFlags.Disable)

	_, err = newTestParser().Parse([]string{"spoof", "--path", "SB.PCI0.GFX0"})
	assert.Error(t, err, "spoof without --id or --disable")

	_, err = newTestParser().Parse([]string{"spoof", "--id", "67DF"})
	assert.Error(t, err, "spoof without --path")
}

func TestUsageListsAllCommands(t *testing.T) {
	usage := newTestParser().Usage()
	for _, cmd := range Commands() {
		assert.Contains(t, usage, cmd.Name)
	}
}

func TestCommandUsage(t *testing.T) {
	p := newTestParser()

	out := p.CommandUsage("lookup")
	assert.Contains(t, out, "stk lookup --class")

	out = p.CommandUsage("nope")
	assert.Contains(t, out, "Unknown command")
}

func TestVersionString(t *testing.T) {
	out := newTestParser().VersionString()
	assert.Contains(t, out, "stk version 1.0.0")
	assert.Contains(t, out, "abcdef1")
	assert.NotContains(t, out, "abcdef12")
}

func TestParseCommandAliases(t *testing.T) {
	assert.Equal(t, CommandLookup, ParseCommand("l"))
	assert.Equal(t, CommandConvert, ParseCommand("conv"))
	assert.Equal(t, CommandSpoof, ParseCommand("s"))
	assert.Equal(t, CommandHelp, ParseCommand("h"))
	assert.Equal(t, CommandNone, ParseCommand("install"))
}
