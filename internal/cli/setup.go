package cli

import (
	"github.com/tkunarajah/dircomp/pkg/config"
	"github.com/tkunarajah/dircomp/pkg/logging"
)

// loadConfig loads configuration from file or returns default
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags
func applyFlagsToConfig(cfg *config.Config) {
	// Disable decoration in quiet mode
	if globalFlags.Quiet {
		cfg.Output.Quiet = true
		cfg.Output.Color = false
	}

	// Verbose runs log at debug level
	if globalFlags.Verbose {
		cfg.Logging.Level = "debug"
	}
}

// buildLogger creates the run logger from configuration
func buildLogger(cfg *config.Config) (logging.Logger, error) {
	if !cfg.Logging.Enabled || cfg.Logging.File == "" {
		return logging.NewNullLogger(), nil
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:       cfg.Logging.File,
		Format:     logging.Format(cfg.Logging.Format),
		Level:      logging.ParseLevel(cfg.Logging.Level),
		MaxSize:    cfg.Logging.MaxSize,
		MaxBackups: cfg.Logging.MaxBackups,
	})
}
