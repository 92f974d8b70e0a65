package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// New opens a text slog logger writing to the given file, so log output never
// interleaves with the interactive console. The returned closer releases the
// file. An empty path discards all output.
func New(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		handler := slog.NewTextHandler(io.Discard, nil)
		return slog.New(handler), func() error { return nil }, nil
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{Level: level})
	return slog.New(handler), file.Close, nil
}

// ParseLevel maps a config level string onto a slog level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
