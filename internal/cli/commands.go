package cli

// Command represents a CLI command type.
type Command int

const (
	// CommandNone represents no command or an unrecognized command.
	CommandNone Command = iota

	// CommandCheck represents the check command for a full compatibility report.
	CommandCheck

	// CommandLookup represents the lookup command for resolving one query.
	CommandLookup

	// CommandConvert represents the convert command for device path notation conversion.
	CommandConvert

	// CommandDB represents the db command grouping database maintenance subcommands.
	CommandDB

	// CommandSpoof represents the spoof command for SSDT patch text generation.
	CommandSpoof

	// CommandVersion represents the version command for displaying build information.
	CommandVersion

	// CommandHelp represents the help command for showing usage information.
	CommandHelp
)

// String returns the command name as a string.
func (c Command) String() string {
	switch c {
	case CommandCheck:
		return "check"
	case CommandLookup:
		return "lookup"
	case CommandConvert:
		return "convert"
	case CommandDB:
		return "db"
	case CommandSpoof:
		return "spoof"
	case CommandVersion:
		return "version"
	case CommandHelp:
		return "help"
	default:
		return ""
	}
}

// IsValid returns true if the command is a recognized command.
func (c Command) IsValid() bool {
	return c > CommandNone && c <= CommandHelp
}

// CommandInfo holds metadata about a command.
type CommandInfo struct {
	// Name is the primary command name.
	Name string

	// Aliases are alternative names for the command.
	Aliases []string

	// Description is a brief description of what the command does.
	Description string

	// Usage shows how to invoke the command.
	Usage string

	// LongDescription provides detailed help text for the command.
	LongDescription string
}

// Commands returns all available commands with their metadata.
func Commands() []CommandInfo {
	return []CommandInfo{
		{
			Name:        "check",
			Aliases:     []string{"c"},
			Description: "Check detected hardware against the support databases",
			Usage:       "stk check [flags]",
			LongDescription: `Enumerate hardware and resolve every device against its
support database, then print a compatibility report.

Devices come from a JSON snapshot file when one is configured or passed
with --snapshot; informational system rows are probed locally.

Flags:
  --snapshot FILE   Read devices from an exported snapshot file
  --json            Output the report in JSON format

Examples:
  stk check                            Report on a snapshot from config
  stk check --snapshot devices.json    Report on an exported snapshot
  stk check --json                     Output as JSON for scripting`,
		},
		{
			Name:        "lookup",
			Aliases:     []string{"l"},
			Description: "Resolve one identifier or model name against a support database",
			Usage:       "stk lookup --class CLASS <identifier-or-name>",
			LongDescription: `Resolve a single query and print the match kind, status,
detail and driver.

GPU, audio and ethernet classes take a VVVV&DDDD identifier or a raw
device descriptor containing VEN_xxxx and DEV_xxxx tokens. The disk
class takes a model name.

Flags:
  --class CLASS   Hardware class: gpu, audio, ethernet or disk (required)
  --db FILE       Override the database file for this lookup
  --json          Output the result in JSON format

Examples:
  stk lookup --class gpu 1002&67DF
  stk lookup --class gpu "PCI\VEN_1002&DEV_67DF&SUBSYS_34111462"
  stk lookup --class disk "SAMSUNG SSD 970 EVO 1TB"`,
		},
		{
			Name:        "convert",
			Aliases:     []string{"conv"},
			Description: "Convert a device path between notations",
			Usage:       "stk convert <path>",
			LongDescription: `Auto-detect the notation of a device path and print its
conversions.

Enumerator paths (PCIROOT(0)#PCI(0100)) convert to firmware notation
and back, byte for byte. Enumerator ACPI paths (ACPI(_SB_)#ACPI(PCI0))
additionally yield the dot-joined ACPI name path; that derivation is
one way.

Examples:
  stk convert "PCIROOT(0)#PCI(0100)#PCI(0000)"
  stk convert "PciRoot(0x0)/Pci(0x1,0x0)/Pci(0x0,0x0)"
  stk convert "ACPI(_SB_)#ACPI(PCI0)#ACPI(GFX0)"`,
		},
		{
			Name:        "db",
			Aliases:     nil,
			Description: "Validate, repair or import support database files",
			Usage:       "stk db <validate|import> [flags] <file>",
			LongDescription: `Maintain support database list files.

Subcommands:
  validate [--repair] [--name-keyed] <file>
      Strictly validate a list file, reporting every violation with its
      1-based line number. With --repair, offending lines are deleted
      and the repaired file written back.

  import [--no-status] [--no-detail] [--no-driver] [--overwrite]
         [--skip-invalid] --into <file> <src>
      Merge records from <src> into the database at --into. Field
      classes can be excluded; existing keys are kept unless
      --overwrite is given. Skipped lines are reported with reasons.

Examples:
  stk db validate GPUSupportInfo.list
  stk db validate --repair --name-keyed DiskSupportInfo.list
  stk db import --overwrite --into GPUSupportInfo.list extra.list`,
		},
		{
			Name:        "spoof",
			Aliases:     []string{"s"},
			Description: "Generate SSDT spoof or disable patch text",
			Usage:       "stk spoof --path PATH [flags]",
			LongDescription: `Generate SSDT patch text for a device.

By default a spoof patch is produced: the given device ID is spliced
into the template in little-endian byte order and the model string
substituted. With --bridge the patch scopes the device's parent PCIe
bridge, which requires the path to contain a PEGP segment. With
--disable METHOD a disable patch is produced instead and --id is not
needed.

Flags:
  --path PATH       Device path: dot-joined ACPI name path or an
                    enumerator ACPI path (required)
  --id DDDD         Spoofed device ID, four hex digits
  --model NAME      Display model string
  --bridge          Scope the patch to the parent bridge
  --disable METHOD  Generate a disable patch: s3, off or ioname
  -o FILE           Write output to FILE instead of stdout

Examples:
  stk spoof --path SB.PCI0.PEG0.PEGP --id 67DF --model "Radeon RX 580"
  stk spoof --path "ACPI(_SB_)#ACPI(PCI0)#ACPI(PEG0)#ACPI(PEGP)" --id 73EF --bridge
  stk spoof --path SB.PCI0.PEG0.PEGP --disable off`,
		},
		{
			Name:        "version",
			Aliases:     []string{"v"},
			Description: "Show version information",
			Usage:       "stk version",
			LongDescription: `Display version information about stk.

Shows the version number, build time, and git commit hash.`,
		},
		{
			Name:        "help",
			Aliases:     []string{"h"},
			Description: "Show help for a command",
			Usage:       "stk help [command]",
			LongDescription: `Display help information.

When called without arguments, shows general help and available commands.
When called with a command name, shows detailed help for that command.

Examples:
  stk help          Show general help
  stk help lookup   Show help for lookup command`,
		},
	}
}

// GetCommandInfo returns the CommandInfo for a given command.
// Returns nil if the command is not found.
func GetCommandInfo(cmd Command) *CommandInfo {
	if !cmd.IsValid() {
		return nil
	}

	cmds := Commands()
	for i := range cmds {
		if cmds[i].Name == cmd.String() {
			return &cmds[i]
		}
	}
	return nil
}

// ParseCommand parses a string into a Command.
// It recognizes both primary command names and aliases.
func ParseCommand(s string) Command {
	for _, info := range Commands() {
		if s == info.Name {
			return commandFromName(info.Name)
		}
		for _, alias := range info.Aliases {
			if s == alias {
				return commandFromName(info.Name)
			}
		}
	}
	return CommandNone
}

// commandFromName converts a command name string to a Command type.
func commandFromName(name string) Command {
	switch name {
	case "check":
		return CommandCheck
	case "lookup":
		return CommandLookup
	case "convert":
		return CommandConvert
	case "db":
		return CommandDB
	case "spoof":
		return CommandSpoof
	case "version":
		return CommandVersion
	case "help":
		return CommandHelp
	default:
		return CommandNone
	}
}
