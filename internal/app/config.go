package app

import (
	"fmt"
	"strings"
)

// Config holds everything an App needs. It is built once at startup by
// NewConfig and passed by pointer.
type Config struct {
	Settings Settings

	LogFormat string // text|json
	LogLevel  string // debug|info|warn|error
}

// DefaultConfig returns a Config with default settings and text logging at info.
func DefaultConfig() Config {
	return Config{
		Settings:  DefaultSettings(),
		LogFormat: "text",
		LogLevel:  "info",
	}
}

// NewConfig normalizes and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
