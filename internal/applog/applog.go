// Package applog is the structured logging facade shared by the dispatcher,
// render pool, and HTTP surface.
package applog

import (
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	once   sync.Once
	logger *slog.Logger
)

// Init sets up the process-wide JSON logger at the given level name
// ("debug", "info", "warn", "error"). Safe to call multiple times; only
// the first call takes effect.
func Init(level string) {
	once.Do(func() {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: parseLevel(level),
		}))
		slog.SetDefault(logger)
	})
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func get() *slog.Logger {
	if logger == nil {
		Init("info")
	}
	return logger
}

func Info(msg string, args ...any)  { get().Info(msg, args...) }
func Warn(msg string, args ...any)  { get().Warn(msg, args...) }
func Error(msg string, args ...any) { get().Error(msg, args...) }
func Debug(msg string, args ...any) { get().Debug(msg, args...) }

// With returns a logger carrying the given key/value context, for call
// sites that log several related lines (e.g. one render request).
func With(args ...any) *slog.Logger { return get().With(args...) }
