package app

import (
	"io"
	"log/slog"
)

// App encapsulates the formatter's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. outW receives the
// rendered tables and nothing else; all diagnostics go to errW through an
// isolated logger, keeping standard output parseable by downstream
// consumers.
func NewApp(outW, errW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}
