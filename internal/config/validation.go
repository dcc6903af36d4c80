package config

import (
	"errors"
	"strings"
)

// Validate checks that all required configuration fields are present
func (c *Config) Validate() error {
	var errs []string

	if c.Library.ROMsDir == "" {
		errs = append(errs, "library.roms_dir is required")
	}
	if c.Library.CheatsDir == "" {
		errs = append(errs, "library.cheats_dir is required")
	}
	if c.Emulator.Command == "" && len(c.Emulator.Args) > 0 {
		errs = append(errs, "emulator.args set without emulator.command")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}
