// Package config provides configuration management for SimpleToolkit.
// It supports loading configuration from YAML files and environment variables,
// with validation and sensible defaults. The package follows XDG Base Directory
// specification for locating configuration files.
package config

import (
	"path/filepath"

	"github.com/laobamac/SimpleToolkit/internal/constants"
)

// Config represents the application configuration.
// Configuration values can be set via YAML file or environment variables,
// with environment variables taking precedence.
type Config struct {
	// General settings
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	Verbose  bool   `yaml:"verbose"`
	Quiet    bool   `yaml:"quiet"`
	NoColor  bool   `yaml:"no_color"`

	// Directories
	ConfigDir   string `yaml:"config_dir"`
	DatabaseDir string `yaml:"database_dir"`

	// SnapshotFile is the default device snapshot consulted by check when
	// no --snapshot flag is given. Empty means probe locally.
	SnapshotFile string `yaml:"snapshot_file"`

	// Support database file names, resolved relative to DatabaseDir.
	GPUList      string `yaml:"gpu_list"`
	AudioList    string `yaml:"audio_list"`
	EthernetList string `yaml:"ethernet_list"`
	DiskList     string `yaml:"disk_list"`
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.ConfigDir, constants.ConfigFileName)
}

// DatabasePath returns the support database path for a hardware class.
func (c *Config) DatabasePath(class constants.HardwareClass) string {
	name := ""
	switch class {
	case constants.ClassGPU:
		name = c.GPUList
	case constants.ClassAudio:
		name = c.AudioList
	case constants.ClassEthernet:
		name = c.EthernetList
	case constants.ClassDisk:
		name = c.DiskList
	}
	if name == "" {
		name = class.SupportFile()
	}
	return filepath.Join(c.DatabaseDir, name)
}

// IsVerbose returns true if verbose output is enabled and quiet is not.
func (c *Config) IsVerbose() bool {
	return c.Verbose && !c.Quiet
}

// IsSilent returns true if quiet mode is enabled.
func (c *Config) IsSilent() bool {
	return c.Quiet
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
