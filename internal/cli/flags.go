// Package cli provides command-line argument parsing for SimpleToolkit.
// It supports subcommands, global flags, and command-specific flags with both
// short and long variants. The parser integrates with the config package to
// provide a unified configuration experience.
package cli

// GlobalFlags holds flags common to all commands.
// These flags can be specified before the command name and affect
// the overall behavior of the application.
type GlobalFlags struct {
	// Verbose enables detailed output for debugging and troubleshooting.
	Verbose bool

	// Quiet suppresses non-essential output, only showing errors.
	Quiet bool

	// ConfigFile specifies a custom configuration file path.
	ConfigFile string

	// LogFile specifies the path to write log output.
	LogFile string

	// LogLevel sets the logging verbosity (debug, info, warn, error).
	LogLevel string

	// NoColor disables colored terminal output.
	NoColor bool
}

// CheckFlags holds check command specific flags.
type CheckFlags struct {
	// Snapshot is the JSON snapshot file to enumerate devices from.
	Snapshot string

	// JSON outputs the report in JSON format.
	JSON bool
}

// LookupFlags holds lookup command specific flags.
type LookupFlags struct {
	// Class is the hardware class the query belongs to.
	Class string

	// DB overrides the database file path for this lookup.
	DB string

	// JSON outputs the result in JSON format.
	JSON bool
}

// DBSubcommand selects a db maintenance operation.
type DBSubcommand string

const (
	// DBValidate strictly validates a list file.
	DBValidate DBSubcommand = "validate"

	// DBImport merges records from one list file into another.
	DBImport DBSubcommand = "import"
)

// DBFlags holds db command specific flags.
type DBFlags struct {
	// Subcommand is the db operation to run.
	Subcommand DBSubcommand

	// Repair rewrites the validated file with offending lines removed.
	Repair bool

	// NameKeyed validates against name-keyed rules (no identifier shape check).
	NameKeyed bool

	// Into is the destination database file for import.
	Into string

	// NoStatus excludes status fields from import.
	NoStatus bool

	// NoDetail excludes detail fields from import.
	NoDetail bool

	// NoDriver excludes driver fields from import.
	NoDriver bool

	// Overwrite replaces fields already present in the destination.
	Overwrite bool

	// SkipInvalid drops invalid source lines instead of failing the import.
	SkipInvalid bool
}

// SpoofFlags holds spoof command specific flags.
type SpoofFlags struct {
	// Path is the device path the patch targets.
	Path string

	// ID is the spoofed device ID, four hex digits.
	ID string

	// Model is the display model string substituted into the template.
	Model string

	// Bridge scopes the patch to the device's parent PCIe bridge.
	Bridge bool

	// Disable selects a disable patch method instead of a spoof patch.
	Disable string

	// Output is the file to write the patch text to; stdout when empty.
	Output string
}

// Validate checks GlobalFlags for conflicting options.
// It returns an error if incompatible flags are set together.
func (f *GlobalFlags) Validate() error {
	if f.Verbose && f.Quiet {
		return &FlagError{
			Flag:    "verbose/quiet",
			Message: "cannot use --verbose and --quiet together",
		}
	}
	return nil
}

// FlagError represents an error with a command-line flag.
type FlagError struct {
	Flag    string
	Message string
}

// Error implements the error interface.
func (e *FlagError) Error() string {
	return "flag error: " + e.Flag + ": " + e.Message
}
