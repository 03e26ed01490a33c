package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// SetLogLevel sets up the default logger from LOG_LEVEL and LOG_FORMAT.
func SetLogLevel() {
	logger, err := NewLogger(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	if err != nil {
		slog.Error("Invalid log configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger)
}

// NewLogger creates a logger writing to w. Empty level and format mean INFO and text.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var slogLevel slog.Level

	switch strings.ToUpper(level) {
	case "DEBUG":
		slogLevel = slog.LevelDebug
	case "", "INFO":
		slogLevel = slog.LevelInfo
	case "WARN":
		slogLevel = slog.LevelWarn
	case "ERROR":
		slogLevel = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	options := &slog.HandlerOptions{Level: slogLevel}

	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, options)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, options)), nil
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
}
