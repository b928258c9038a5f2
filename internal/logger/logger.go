// Package logger provides the structured slog logger for the notifier.
// All logs are written in JSON format, to stderr by default or to a
// size-rotated file when LOG_FILE is set.
package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/sitepulse/visit-notifier/internal/config"
)

// New creates a JSON slog.Logger according to cfg.
func New(cfg *config.AppConfig) *slog.Logger {
	var sink io.Writer = os.Stderr
	if cfg.LogFile != "" {
		sink = &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    20, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
	}

	handler := slog.NewJSONHandler(sink, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	return slog.New(handler)
}
