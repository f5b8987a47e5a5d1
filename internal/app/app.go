package app

import (
	"io"
	"log/slog"

	"github.com/vk/formulago/internal/config"
)

// App encapsulates the extractor's dependencies, settings, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	settings *config.Settings
}

// NewApp returns a fully initialized App with its own isolated logger.
// Records go to outW; logs go to logW so machine-readable output stays
// clean.
func NewApp(outW, logW io.Writer, settings *config.Settings) *App {
	logger := newLogger(settings.LogLevel, settings.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		settings: settings,
	}
}
