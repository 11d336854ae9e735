// Package logging configures the process-wide structured logger used for
// diagnostics. The health report itself is not logged.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// LoggerConfig selects the log level and whether records are written as JSON.
type LoggerConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

// ParseLevel maps a level name to a slog level. An empty name is info.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// New builds a logger writing to w.
func New(cfg *LoggerConfig, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h.WithAttrs(attrs))
}

// InitLogger installs the logger from New as the slog default.
func InitLogger(cfg *LoggerConfig, w io.Writer, attrs ...slog.Attr) {
	slog.SetDefault(New(cfg, w, attrs...))
}
