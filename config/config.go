// Package config loads the host-side run configuration: which
// machine variant to build, how many cycles a run is allowed, and
// whether the fine countdown timer starts enabled. None of this is
// part of the CPU core; it is the boundary the shell and CLI use to
// construct one.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the run configuration, TOML-backed.
type Config struct {
	Machine struct {
		// Variant selects "d17b" or "d37c". Anything else falls back
		// to d17b at Load time.
		Variant string `toml:"variant"`
	} `toml:"machine"`

	Run struct {
		MaxCycles        int  `toml:"max_cycles"`
		CountdownEnabled bool `toml:"countdown_enabled"`
	} `toml:"run"`
}

// DefaultConfig returns the configuration a fresh install starts with.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Machine.Variant = "d17b"
	cfg.Run.MaxCycles = 100000
	cfg.Run.CountdownEnabled = false
	return cfg
}

// D37C reports whether the configured variant is D37C.
func (c *Config) D37C() bool {
	return c.Machine.Variant == "d37c"
}

// Load reads configuration from path, falling back to defaults if
// the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Machine.Variant != "d17b" && cfg.Machine.Variant != "d37c" {
		cfg.Machine.Variant = "d17b"
	}

	return cfg, nil
}
