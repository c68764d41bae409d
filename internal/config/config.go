// Package config reads the tool's environment settings.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings read from the environment. None of them change the
// rendered icon; they only control diagnostics.
type Config struct {
	Debug    bool   `env:"ICONGEN_DEBUG"`
	StdioLog string `env:"ICONGEN_STDIO_LOG"`
}

// FromEnv parses Config out of the process environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
