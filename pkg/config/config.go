package config

import (
	"github.com/tkunarajah/dircomp/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds report and terminal output settings
type OutputConfig struct {
	// ReportDir is where default-named reports are written (empty = cwd)
	ReportDir string `yaml:"report_dir"`
	// Color enables colorized terminal output
	Color bool `yaml:"color"`
	// Quiet suppresses non-error output
	Quiet bool `yaml:"quiet"`
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Format     string `yaml:"format"`      // "json" or "text"
	Level      string `yaml:"level"`       // "debug", "info", "warn", "error"
	File       string `yaml:"file"`        // Log file path (empty = logging disabled)
	MaxSize    int64  `yaml:"max_size"`    // Rotate past this many bytes (0 = no rotation)
	MaxBackups int    `yaml:"max_backups"` // Rotated files to keep
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			ReportDir: "",
			Color:     true,
			Quiet:     false,
		},
		Logging: LoggingConfig{
			Enabled:    false,
			Format:     "text",
			Level:      "info",
			File:       "",
			MaxSize:    10 * 1024 * 1024,
			MaxBackups: 3,
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.ValidationError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.ValidationError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	if c.Logging.MaxSize < 0 {
		return &models.ValidationError{
			Field:   "logging.max_size",
			Message: "must not be negative",
		}
	}

	if c.Logging.MaxBackups < 0 {
		return &models.ValidationError{
			Field:   "logging.max_backups",
			Message: "must not be negative",
		}
	}

	return nil
}
