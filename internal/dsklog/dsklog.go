// dsklog package is just a simple wrapper around logrus
package dsklog

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Environment variable that overrides the default log level.
const logLevelEnvVar = "FSIDENT_LOG_LEVEL"

// Global logger instance
var Dlogger = newLogger(io.Discard)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.Out = out
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return l
}

// InitializeDlogger initializes or resets the global logger (Dlogger).
// An empty logFile sends log output to stderr.
func InitializeDlogger(logFile string) {
	out := io.Writer(os.Stderr)
	if logFile != "" {
		// #nosec G304
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			logrus.Fatalf("Failed to open log file: %v", err)
		}
		out = file
	}

	Dlogger = newLogger(out)

	if lvl := os.Getenv(logLevelEnvVar); lvl != "" {
		if err := SetLevel(lvl); err != nil {
			Dlogger.Warnf("Ignoring %s: %v", logLevelEnvVar, err)
		}
	}
}

// SetLevel changes the level of the global logger. The current level is
// kept when name is not a valid logrus level.
func SetLevel(name string) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", name, err)
	}
	Dlogger.SetLevel(lvl)
	return nil
}
