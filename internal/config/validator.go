package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/laobamac/SimpleToolkit/internal/errors"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation: %s: %s", e.Field, e.Message)
}

// Validator validates configuration.
type Validator struct {
	// validLogLevels defines the accepted log level values.
	validLogLevels map[string]bool
}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{
		validLogLevels: map[string]bool{
			"debug": true,
			"info":  true,
			"warn":  true,
			"error": true,
		},
	}
}

// Validate validates the configuration and returns all errors.
// This allows collecting all validation errors at once rather than
// failing on the first error.
func (v *Validator) Validate(cfg *Config) []error {
	var errs []error

	if !v.validLogLevels[strings.ToLower(cfg.LogLevel)] {
		errs = append(errs, &ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("invalid log level %q: must be one of: debug, info, warn, error", cfg.LogLevel),
		})
	}

	if cfg.Verbose && cfg.Quiet {
		errs = append(errs, &ValidationError{
			Field:   "verbose/quiet",
			Message: "verbose and quiet cannot both be true",
		})
	}

	// Validate log file directory exists (if log file is specified)
	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if dir != "" && dir != "." {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				errs = append(errs, &ValidationError{
					Field:   "log_file",
					Message: fmt.Sprintf("directory does not exist: %s", dir),
				})
			}
		}
	}

	if cfg.ConfigDir == "" {
		errs = append(errs, &ValidationError{
			Field:   "config_dir",
			Message: "config directory cannot be empty",
		})
	}
	if cfg.DatabaseDir == "" {
		errs = append(errs, &ValidationError{
			Field:   "database_dir",
			Message: "database directory cannot be empty",
		})
	}

	for field, name := range map[string]string{
		"gpu_list":      cfg.GPUList,
		"audio_list":    cfg.AudioList,
		"ethernet_list": cfg.EthernetList,
		"disk_list":     cfg.DiskList,
	} {
		if name == "" {
			errs = append(errs, &ValidationError{
				Field:   field,
				Message: "list file name cannot be empty",
			})
			continue
		}
		if strings.ContainsRune(name, os.PathSeparator) {
			errs = append(errs, &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("list file name %q must not contain a path separator", name),
			})
		}
	}

	return errs
}

// ValidateOrError validates and returns a single wrapped error.
// If there are no validation errors, nil is returned.
func (v *Validator) ValidateOrError(cfg *Config) error {
	errs := v.Validate(cfg)
	if len(errs) == 0 {
		return nil
	}

	// Combine all errors into a single message
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}

	return errors.New(errors.Configuration, strings.Join(msgs, "; ")).
		WithOp("config.Validate")
}

// IsValid returns true if the configuration is valid.
func (v *Validator) IsValid(cfg *Config) bool {
	return len(v.Validate(cfg)) == 0
}

// ValidateField validates a single field and returns an error if invalid.
// This is useful for validating individual values before setting them.
func ValidateField(field, value string) error {
	v := NewValidator()

	switch field {
	case "log_level":
		if !v.validLogLevels[strings.ToLower(value)] {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("invalid log level %q", value),
			}
		}
	case "gpu_list", "audio_list", "ethernet_list", "disk_list":
		if value == "" {
			return &ValidationError{
				Field:   field,
				Message: "list file name cannot be empty",
			}
		}
	}

	return nil
}
