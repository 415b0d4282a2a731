package app

import (
	"fmt"
	"io"
	"log/slog"
)

// Greeting is written to standard output once per invocation, before the
// arguments are looked at.
const Greeting = "Hellow World"

// Greet writes the greeting line to w.
func Greet(w io.Writer) error {
	if _, err := fmt.Fprintln(w, Greeting); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}
	return nil
}

// App owns the resolved configuration and its own logger.
type App struct {
	logger *slog.Logger
	config *Config
}

// NewApp builds an App whose logger writes to logW according to cfg.
// A nil cfg means DefaultConfig.
func NewApp(logW io.Writer, cfg *Config) *App {
	if cfg == nil {
		def := DefaultConfig()
		cfg = &def
	}
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		logger: logger,
		config: cfg,
	}
}

// Logger returns the App's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// Settings returns a copy of the startup settings.
func (a *App) Settings() Settings {
	return a.config.Settings
}
