package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ParseResult holds the result of parsing command line arguments.
type ParseResult struct {
	// Command is the parsed command.
	Command Command

	// GlobalFlags contains the global flag values.
	GlobalFlags GlobalFlags

	// CheckFlags contains check command flag values.
	CheckFlags CheckFlags

	// LookupFlags contains lookup command flag values.
	LookupFlags LookupFlags

	// DBFlags contains db command flag values.
	DBFlags DBFlags

	// SpoofFlags contains spoof command flag values.
	SpoofFlags SpoofFlags

	// Args contains any remaining positional arguments.
	Args []string

	// ShowHelp indicates that help should be displayed.
	ShowHelp bool

	// HelpCommand is the command to show help for (when using "help <command>").
	HelpCommand string
}

// Parser handles command line argument parsing.
type Parser struct {
	programName string
	version     string
	buildTime   string
	gitCommit   string

	// output is where usage/help text is written (defaults to stderr equivalent behavior)
	output io.Writer
}

// NewParser creates a new CLI parser with build information.
func NewParser(programName, version, buildTime, gitCommit string) *Parser {
	return &Parser{
		programName: programName,
		version:     version,
		buildTime:   buildTime,
		gitCommit:   gitCommit,
	}
}

// SetOutput sets the output writer for usage and help messages.
func (p *Parser) SetOutput(w io.Writer) {
	p.output = w
}

// Parse parses command line arguments and returns a ParseResult.
// The args parameter should not include the program name (typically os.Args[1:]).
func (p *Parser) Parse(args []string) (*ParseResult, error) {
	result := &ParseResult{}

	if len(args) == 0 {
		result.ShowHelp = true
		return result, nil
	}

	// Check for help flags first before parsing
	for _, arg := range args {
		if arg == "-h" || arg == "--help" || arg == "-help" {
			result.ShowHelp = true
			return result, nil
		}
	}

	// Parse global flags - the flag package will stop at the first non-flag argument
	globalFs := p.createGlobalFlagSet(&result.GlobalFlags)
	globalFs.SetOutput(io.Discard) // Suppress default error output

	if err := globalFs.Parse(args); err != nil {
		return nil, fmt.Errorf("invalid global flags: %w", err)
	}

	// Get remaining args after global flags
	remaining := globalFs.Args()

	if len(remaining) == 0 {
		// No command specified, show help
		result.ShowHelp = true
		return result, nil
	}

	// Validate global flags
	if err := result.GlobalFlags.Validate(); err != nil {
		return nil, err
	}

	// Get command (first remaining argument)
	cmdStr := remaining[0]
	result.Command = ParseCommand(cmdStr)

	if result.Command == CommandNone {
		return nil, fmt.Errorf("unknown command: %s", cmdStr)
	}

	// Parse command-specific flags
	cmdArgs := remaining[1:]
	if err := p.parseCommandFlags(result, cmdArgs); err != nil {
		return nil, err
	}

	return result, nil
}

// createGlobalFlagSet creates a FlagSet with global flag definitions.
func (p *Parser) createGlobalFlagSet(flags *GlobalFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("global", flag.ContinueOnError)

	// Verbose flags
	fs.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose output")
	fs.BoolVar(&flags.Verbose, "v", false, "Enable verbose output (shorthand)")

	// Quiet flags
	fs.BoolVar(&flags.Quiet, "quiet", false, "Suppress non-essential output")
	fs.BoolVar(&flags.Quiet, "q", false, "Suppress non-essential output (shorthand)")

	// Config file flags
	fs.StringVar(&flags.ConfigFile, "config", "", "Path to config file")
	fs.StringVar(&flags.ConfigFile, "c", "", "Path to config file (shorthand)")

	// Log file
	fs.StringVar(&flags.LogFile, "log-file", "", "Path to log file")

	// Log level
	fs.StringVar(&flags.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	// No color
	fs.BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")

	return fs
}

// parseCommandFlags parses flags specific to each command.
func (p *Parser) parseCommandFlags(result *ParseResult, args []string) error {
	switch result.Command {
	case CommandCheck:
		return p.parseCheckFlags(result, args)
	case CommandLookup:
		return p.parseLookupFlags(result, args)
	case CommandConvert:
		// Convert takes positional arguments only
		result.Args = args
		return nil
	case CommandDB:
		return p.parseDBFlags(result, args)
	case CommandSpoof:
		return p.parseSpoofFlags(result, args)
	case CommandHelp:
		return p.parseHelpFlags(result, args)
	case CommandVersion:
		// Version command has no flags
		result.Args = args
		return nil
	}
	return nil
}

func (p *Parser) parseCheckFlags(result *ParseResult, args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&result.CheckFlags.Snapshot, "snapshot", "", "Device snapshot file to read")
	fs.BoolVar(&result.CheckFlags.JSON, "json", false, "Output in JSON format")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid check flags: %w", err)
	}
	result.Args = fs.Args()
	return nil
}

func (p *Parser) parseLookupFlags(result *ParseResult, args []string) error {
	fs := flag.NewFlagSet("lookup", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&result.LookupFlags.Class, "class", "", "Hardware class (gpu, audio, ethernet, disk)")
	fs.StringVar(&result.LookupFlags.DB, "db", "", "Database file override")
	fs.BoolVar(&result.LookupFlags.JSON, "json", false, "Output in JSON format")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid lookup flags: %w", err)
	}
	result.Args = fs.Args()

	if result.LookupFlags.Class == "" {
		return &FlagError{Flag: "class", Message: "lookup requires --class"}
	}
	if len(result.Args) != 1 {
		return &FlagError{Flag: "lookup", Message: "lookup takes exactly one identifier or name"}
	}
	return nil
}

func (p *Parser) parseDBFlags(result *ParseResult, args []string) error {
	if len(args) == 0 {
		return &FlagError{Flag: "db", Message: "db requires a subcommand: validate or import"}
	}

	sub := DBSubcommand(args[0])
	result.DBFlags.Subcommand = sub

	fs := flag.NewFlagSet("db "+args[0], flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	switch sub {
	case DBValidate:
		fs.BoolVar(&result.DBFlags.Repair, "repair", false, "Delete offending lines and rewrite the file")
		fs.BoolVar(&result.DBFlags.NameKeyed, "name-keyed", false, "Validate name-keyed records (skip identifier shape check)")
	case DBImport:
		fs.StringVar(&result.DBFlags.Into, "into", "", "Destination database file")
		fs.BoolVar(&result.DBFlags.NameKeyed, "name-keyed", false, "Treat records as name-keyed (skip identifier shape check)")
		fs.BoolVar(&result.DBFlags.NoStatus, "no-status", false, "Exclude status fields")
		fs.BoolVar(&result.DBFlags.NoDetail, "no-detail", false, "Exclude detail fields")
		fs.BoolVar(&result.DBFlags.NoDriver, "no-driver", false, "Exclude driver fields")
		fs.BoolVar(&result.DBFlags.Overwrite, "overwrite", false, "Overwrite fields already present")
		fs.BoolVar(&result.DBFlags.SkipInvalid, "skip-invalid", false, "Drop invalid source lines instead of failing")
	default:
		return &FlagError{Flag: "db", Message: fmt.Sprintf("unknown db subcommand: %s", args[0])}
	}

	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("invalid db %s flags: %w", sub, err)
	}
	result.Args = fs.Args()

	if len(result.Args) != 1 {
		return &FlagError{Flag: "db", Message: fmt.Sprintf("db %s takes exactly one file argument", sub)}
	}
	if sub == DBImport && result.DBFlags.Into == "" {
		return &FlagError{Flag: "into", Message: "db import requires --into"}
	}
	return nil
}

func (p *Parser) parseSpoofFlags(result *ParseResult, args []string) error {
	fs := flag.NewFlagSet("spoof", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&result.SpoofFlags.Path, "path", "", "Device path (ACPI name path or enumerator ACPI path)")
	fs.StringVar(&result.SpoofFlags.ID, "id", "", "Spoofed device ID (four hex digits)")
	fs.StringVar(&result.SpoofFlags.Model, "model", "", "Display model string")
	fs.BoolVar(&result.SpoofFlags.Bridge, "bridge", false, "Scope the patch to the parent bridge")
	fs.StringVar(&result.SpoofFlags.Disable, "disable", "", "Generate a disable patch: s3, off or ioname")
	fs.StringVar(&result.SpoofFlags.Output, "o", "", "Write patch text to file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid spoof flags: %w", err)
	}
	result.Args = fs.Args()

	if result.SpoofFlags.Path == "" {
		return &FlagError{Flag: "path", Message: "spoof requires --path"}
	}
	if result.SpoofFlags.Disable == "" && result.SpoofFlags.ID == "" {
		return &FlagError{Flag: "id", Message: "spoof requires --id unless --disable is given"}
	}
	return nil
}

func (p *Parser) parseHelpFlags(result *ParseResult, args []string) error {
	result.ShowHelp = true
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		result.HelpCommand = args[0]
	}
	return nil
}

// Usage returns the main usage string.
func (p *Parser) Usage() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s - Hardware compatibility and device path toolkit\n\n", p.programName))
	b.WriteString("Usage:\n")
	b.WriteString(fmt.Sprintf("  %s [global flags] <command> [command flags]\n\n", p.programName))

	b.WriteString("Commands:\n")
	for _, cmd := range Commands() {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", cmd.Name, cmd.Description))
	}

	b.WriteString("\nGlobal Flags:\n")
	b.WriteString("  -v, --verbose     Enable verbose output\n")
	b.WriteString("  -q, --quiet       Suppress non-essential output\n")
	b.WriteString("  -c, --config      Path to config file\n")
	b.WriteString("      --log-file    Path to log file\n")
	b.WriteString("      --log-level   Log level (debug, info, warn, error)\n")
	b.WriteString("      --no-color    Disable colored output\n")

	b.WriteString(fmt.Sprintf("\nUse \"%s help <command>\" for more information about a command.\n", p.programName))

	return b.String()
}

// CommandUsage returns the usage string for a specific command.
func (p *Parser) CommandUsage(cmd string) string {
	// Check if it's a valid command
	parsedCmd := ParseCommand(cmd)
	if parsedCmd == CommandNone {
		return fmt.Sprintf("Unknown command: %s\n\nRun '%s help' for usage.\n", cmd, p.programName)
	}

	info := GetCommandInfo(parsedCmd)
	if info == nil {
		return fmt.Sprintf("No help available for: %s\n", cmd)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n\n", info.Description))
	b.WriteString(fmt.Sprintf("Usage:\n  %s\n\n", info.Usage))

	if info.LongDescription != "" {
		b.WriteString(info.LongDescription)
		b.WriteString("\n")
	}

	return b.String()
}

// VersionString returns formatted version information.
func (p *Parser) VersionString() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s version %s\n", p.programName, p.version))

	if p.buildTime != "" && p.buildTime != "unknown" {
		b.WriteString(fmt.Sprintf("Build time: %s\n", p.buildTime))
	}

	if p.gitCommit != "" && p.gitCommit != "unknown" {
		commit := p.gitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		b.WriteString(fmt.Sprintf("Git commit: %s\n", commit))
	}

	return b.String()
}

// VersionInfo returns version components for structured output.
func (p *Parser) VersionInfo() map[string]string {
	return map[string]string{
		"version":   p.version,
		"buildTime": p.buildTime,
		"gitCommit": p.gitCommit,
	}
}
