package app

import (
	"io"
	"os"
)

// Config holds the application configuration taken from the command line
type Config struct {
	// Debug forces debug logging regardless of LOG_LEVEL
	Debug bool

	// DryRun prints editor command lines instead of running them
	DryRun bool

	// ConfigDir, when set, is the only settings directory used
	ConfigDir string

	// Out receives status lines and editor output; Err receives logs
	Out io.Writer
	Err io.Writer
}

// NewConfig creates a new application configuration writing to the
// standard streams
func NewConfig(debug, dryRun bool, configDir string) *Config {
	return &Config{
		Debug:     debug,
		DryRun:    dryRun,
		ConfigDir: configDir,
		Out:       os.Stdout,
		Err:       os.Stderr,
	}
}
