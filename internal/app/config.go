package app

import (
	"fmt"

	"github.com/foamworks/foamctl/internal/dictionary"
)

// Config holds all the necessary configuration for an App instance.
type Config struct {
	Backend   string // backend mode: auto, builtin or foamdictionary
	LogFormat string // text or json
	LogLevel  string // debug, info, warn or error
	NoJournal bool   // disable the per-case edit journal
}

// NewConfig validates cfg and fills defaults for empty fields.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Backend == "" {
		cfg.Backend = string(dictionary.ModeAuto)
	}
	if _, ok := dictionary.ParseMode(cfg.Backend); !ok {
		return nil, fmt.Errorf("invalid backend %q: must be 'auto', 'builtin' or 'foamdictionary'", cfg.Backend)
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
