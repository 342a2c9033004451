// Package constants defines application-wide constants for SimpleToolkit.
// All constants are typed to ensure type safety and prevent accidental misuse.
package constants

// Application metadata
const (
	// AppName is the application name used in logs, configs, and user messages.
	AppName string = "stk"
	// AppDescription is a short description of the application.
	AppDescription string = "Hardware compatibility and device path toolkit"
)

// ExitCode represents process exit codes for different termination scenarios.
type ExitCode int

const (
	// ExitSuccess indicates the application completed successfully.
	ExitSuccess ExitCode = iota
	// ExitError indicates a general error occurred.
	ExitError
	// ExitValidation indicates invalid input or configuration.
	ExitValidation
	// ExitFormat indicates a support database failed strict validation.
	ExitFormat
)

// Int returns the exit code as an int for use with os.Exit().
func (e ExitCode) Int() int {
	return int(e)
}

// File paths relative to user's home directory
const (
	// DefaultConfigDir is the default configuration directory relative to $HOME.
	DefaultConfigDir string = ".config/stk"
	// DefaultDataDir is the default support-database directory relative to $HOME.
	DefaultDataDir string = ".local/share/stk"
	// ConfigFileName is the configuration file name.
	ConfigFileName string = "config.yaml"
)

// Support database file names, one per hardware class. The format is a flat
// UTF-8 key=value list; see the supportdb package.
const (
	// GPUSupportFile holds support records for display controllers.
	GPUSupportFile string = "GPUSupportInfo.list"
	// AudioSupportFile holds support records for audio controllers.
	AudioSupportFile string = "HDASupportInfo.list"
	// EthernetSupportFile holds support records for network controllers.
	EthernetSupportFile string = "ETHSupportInfo.list"
	// DiskSupportFile holds name-keyed support records for storage devices.
	DiskSupportFile string = "DiskSupportInfo.list"
)

// Device path notation markers.
const (
	// BridgeMarker prefixes the ACPI segment naming a GPU's parent PCIe
	// bridge. Paths are truncated just before it when a patch template
	// targets the bridge rather than the device.
	BridgeMarker string = "PEGP"
)

// HardwareClass identifies which support database a device is matched
// against and which match family (ID-keyed or name-keyed) applies.
type HardwareClass string

const (
	// ClassGPU is ID-keyed display controller hardware.
	ClassGPU HardwareClass = "gpu"
	// ClassAudio is ID-keyed audio controller hardware.
	ClassAudio HardwareClass = "audio"
	// ClassEthernet is ID-keyed network controller hardware.
	ClassEthernet HardwareClass = "ethernet"
	// ClassDisk is name-keyed storage hardware, matched by model string.
	ClassDisk HardwareClass = "disk"
)

// IsNameKeyed reports whether the class is matched by model name rather
// than by a bus identifier.
func (c HardwareClass) IsNameKeyed() bool {
	return c == ClassDisk
}

// SupportFile returns the default database file name for the class.
func (c HardwareClass) SupportFile() string {
	switch c {
	case ClassGPU:
		return GPUSupportFile
	case ClassAudio:
		return AudioSupportFile
	case ClassEthernet:
		return EthernetSupportFile
	case ClassDisk:
		return DiskSupportFile
	default:
		return ""
	}
}

// ParseHardwareClass converts a string to a HardwareClass.
// Returns an empty class for unrecognized input.
func ParseHardwareClass(s string) HardwareClass {
	switch s {
	case "gpu", "video", "display":
		return ClassGPU
	case "audio", "hda", "sound":
		return ClassAudio
	case "ethernet", "eth", "net", "network":
		return ClassEthernet
	case "disk", "storage":
		return ClassDisk
	default:
		return ""
	}
}
