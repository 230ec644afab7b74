package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/sozercan/inkwell/internal/config"
)

// New builds a logger writing to w in the configured format and level.
// Unknown levels fall back to info.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Install makes the configured logger the process default and records the
// loaded configuration through it.
func Install(cfg *config.Config, w io.Writer) *slog.Logger {
	logger := New(cfg.Log, w)
	slog.SetDefault(logger)
	logger.Info("configuration loaded successfully",
		"sentiment", cfg.Providers.Sentiment,
		"summarizer", cfg.Providers.Summarizer,
		"log_format", cfg.Log.Format,
	)
	return logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
