package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the optional environment configuration. Every field defaults
// to its zero value, so a bare invocation consumes no configuration.
type Env struct {
	// NoColor disables the styled stderr headers even on a terminal.
	NoColor bool `env:"TRAITKIT_NO_COLOR"`
	// Scenario is a default scenario file path, overridden by the
	// -scenario flag when both are given.
	Scenario string `env:"TRAITKIT_SCENARIO"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Env, error) {
	var cfg Env
	if err := env.Parse(&cfg); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
