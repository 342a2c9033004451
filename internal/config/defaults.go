package config

import (
	"os"
	"path/filepath"

	"github.com/laobamac/SimpleToolkit/internal/constants"
)

const (
	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     DefaultLogLevel,
		LogFile:      "",
		Verbose:      false,
		Quiet:        false,
		NoColor:      false,
		ConfigDir:    defaultConfigDir(),
		DatabaseDir:  defaultDatabaseDir(),
		SnapshotFile: "",
		GPUList:      constants.GPUSupportFile,
		AudioList:    constants.AudioSupportFile,
		EthernetList: constants.EthernetSupportFile,
		DiskList:     constants.DiskSupportFile,
	}
}

// defaultConfigDir returns the XDG config directory for stk.
// Falls back to ~/.config/stk if XDG_CONFIG_HOME is not set.
func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, constants.AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return filepath.Join(".", constants.DefaultConfigDir)
	}
	return filepath.Join(home, constants.DefaultConfigDir)
}

// defaultDatabaseDir returns the XDG data directory holding the support
// database list files. Falls back to ~/.local/share/stk if XDG_DATA_HOME is
// not set.
func defaultDatabaseDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, constants.AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", constants.DefaultDataDir)
	}
	return filepath.Join(home, constants.DefaultDataDir)
}

// GetConfigDir returns the configuration directory, respecting XDG.
// This is exported for use by other packages that need the config path.
func GetConfigDir() string {
	return defaultConfigDir()
}

// GetDatabaseDir returns the support database directory, respecting XDG.
func GetDatabaseDir() string {
	return defaultDatabaseDir()
}
