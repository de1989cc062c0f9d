// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// verbosity is the logging verbosity selected by the program flags.
type verbosity int

const (
	verbosityDefault verbosity = iota
	verbosityDebug
	verbosityQuiet
)

// CreateLogger creates a logger with the level selected by the program flags.
func CreateLogger(flags options.Flags) *log.Logger {
	cfg := log.DefaultConfig()
	switch selectVerbosity(flags) {
	case verbosityDebug:
		cfg.Level = log.DebugLevel
	case verbosityQuiet:
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// selectVerbosity returns the verbosity of the flags. Debug logging, also
// enabled by tracing, takes precedence over quiet mode.
func selectVerbosity(flags options.Flags) verbosity {
	switch {
	case flags.Debug, flags.Trace:
		return verbosityDebug
	case flags.Quiet:
		return verbosityQuiet
	default:
		return verbosityDefault
	}
}
