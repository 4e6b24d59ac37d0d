package app

import (
	"log/slog"
	"os"
	"strings"

	"loadboard/internal/logx"
)

// NewLogger builds the JSON logger shared by the api and the worker.
// Level comes from LOG_LEVEL (debug|info|warn|error), default info.
func NewLogger() logx.Logger {
	base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(os.Getenv("LOG_LEVEL")),
	}))
	return logx.NewSlogAdapter(base)
}

func logLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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
