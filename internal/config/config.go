// Package config reads the application settings from AIGUA_* environment
// variables. LLM provider settings live in llm.Config.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process-wide configuration.
type Config struct {
	// DBPath is the SQLite event log. Empty means the XDG default.
	DBPath   string `env:"DB"`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`
	Log      LogConfig
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"` // console | json
	// File receives log output instead of stderr. The terminal UI sets this
	// or discards logs entirely.
	File string `env:"LOG_FILE"`
}

// Load parses the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "AIGUA_"})
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Log.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown log formats.
func (c LogConfig) Validate() error {
	switch c.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("AIGUA_LOG_FORMAT must be console or json, got %q", c.Format)
	}
}
