// Package logger provides the process-wide structured logger.
//
// It wraps log/slog behind a small package-level API so commands can log
// without threading a logger through every call. Level, format, and
// destination are chosen at Init time from configuration.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Config holds logger configuration.
type Config struct {
	Level  string // DEBUG, INFO, WARN, ERROR (case-insensitive)
	Format string // text, json
	Output string // stdout, stderr, or a file path
}

var (
	mu      sync.RWMutex
	slogger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

// parseLevel maps a configured level name to a slog.Level.
func parseLevel(level string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "", "INFO":
		return slog.LevelInfo, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

// Init configures the package logger. Output may be "stdout", "stderr",
// or a file path, which is opened in append mode.
func Init(cfg Config) error {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return err
	}

	var w io.Writer
	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		w = os.Stderr
	case "stdout":
		w = os.Stdout
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log output: %w", err)
		}
		w = f
	}

	InitWithWriter(w, level, cfg.Format)
	return nil
}

// InitWithWriter configures the package logger with an explicit writer.
// Useful in tests to capture output.
func InitWithWriter(w io.Writer, level slog.Level, format string) {
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if strings.ToLower(format) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	mu.Lock()
	slogger = slog.New(h)
	mu.Unlock()
}

func get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return slogger
}

// Debug logs at debug level with key-value pairs.
func Debug(msg string, args ...any) { get().Debug(msg, args...) }

// Info logs at info level with key-value pairs.
func Info(msg string, args ...any) { get().Info(msg, args...) }

// Warn logs at warn level with key-value pairs.
func Warn(msg string, args ...any) { get().Warn(msg, args...) }

// Error logs at error level with key-value pairs.
func Error(msg string, args ...any) { get().Error(msg, args...) }

// With returns a logger carrying the given key-value pairs on every
// record.
func With(args ...any) *slog.Logger { return get().With(args...) }
