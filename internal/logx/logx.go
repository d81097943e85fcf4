// Package logx provides the structured logger used for the shot
// engine's two permitted log channels: sanitization warnings and a
// single per-call debug summary. It wraps the standard library's
// log/slog the way this corpus's own simulation logger does, writing
// to a rotating file when a directory is configured and falling back
// to stderr otherwise (e.g. under `go test`).
package logx

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is a thin wrapper around *slog.Logger, kept as a distinct
// type so callers in this module don't need to import log/slog
// themselves just to construct one.
type Logger struct {
	*slog.Logger
}

// New returns a Logger. If dir is empty, records are written to
// stderr; otherwise they go to a rotating "shotengine.log" file under
// dir. level is one of "debug", "info", "warn", "error"; unrecognized
// values fall back to "info".
func New(dir string, level string) *Logger {
	var w io.Writer
	if dir == "" {
		w = os.Stderr
	} else {
		w = &lumberjack.Logger{
			Filename: filepath.Join(dir, "shotengine.log"),
			MaxSize:  10, // MB
			MaxAge:   7,
			Compress: true,
		}
	}

	return &Logger{Logger: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))}
}

// Discard returns a Logger whose records are dropped, for tests and
// callers that don't want engine log output at all.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func parseLevel(level string) slog.Level {
	switch level {
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
