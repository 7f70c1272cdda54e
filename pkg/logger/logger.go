package logger

import (
	"log/slog"
	"os"
)

// Log is the application logger. It falls back to slog's default until Init runs.
var Log = slog.Default()

// Init switches Log to a JSON handler on stdout
func Init(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
