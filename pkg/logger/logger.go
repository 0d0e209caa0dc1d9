package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log defaults to an info-level JSON logger until Init is called
var Log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func Init(level string) {
	InitWithWriter(os.Stdout, level)
}

// InitWithWriter is Init for processes whose stdout carries a protocol
func InitWithWriter(w io.Writer, level string) {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	Log = slog.New(handler)
}

// ParseLevel maps a config string to a slog level, defaulting to debug
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
