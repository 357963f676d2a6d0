// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/retrochip8/internal/emulator"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// EmulatorConfig returns the emulator configuration for the program options.
// The option values are expected to be validated by the command line parser.
func EmulatorConfig(opts options.Program) emulator.Config {
	cfg := emulator.DefaultConfig()
	cfg.MemoryFill = byte(opts.MemoryFill)
	cfg.ProgramCounter = uint16(opts.ProgramCounter)
	cfg.NoFont = opts.NoFont
	if opts.HasSeed {
		cfg = cfg.WithSeed(opts.Seed)
	}
	return cfg
}
