package config

import (
	"errors"

	"github.com/jdefrancesco/fsident/internal/dmnt"
)

type Config struct {
	// Mount table to correlate against.
	MnttabPath string
	// Print the mount table and exit.
	ListMounts bool
	// Show matching mount records for each path.
	Verbose bool
	// Disable colored output.
	NoColor bool
	// Log destination. Empty means stderr.
	LogFile string
	// LogLevel overrides the logger level when set.
	LogLevel string
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		MnttabPath: dmnt.DefaultPath,
	}
}

// Validate reports settings that cannot work.
func (c Config) Validate() error {
	if c.MnttabPath == "" {
		return errors.New("mount table path must not be empty")
	}
	return nil
}
