// Package logger provides the structured logger used across blockgen.
//
// It is a thin front over log/slog with a package-level API, so callers
// write logger.Info("msg", "key", value) without threading a logger through
// every function of what is a short, linear tool.
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
	Level  string // DEBUG, INFO, WARN, ERROR
	Format string // text, json
	Output string // stdout, stderr, or a file path
}

var (
	mu       sync.RWMutex
	slogger  *slog.Logger
	level    = new(slog.LevelVar)
	format   = "text"
	output   io.Writer = os.Stdout
	useColor           = isTerminal(os.Stdout.Fd())
)

func init() {
	reconfigure()
}

// reconfigure rebuilds the slog handler from the current settings.
// Callers must hold mu.
func reconfigure() {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		slogger = slog.New(slog.NewJSONHandler(output, opts))
	} else {
		slogger = slog.New(NewColorTextHandler(output, opts, useColor))
	}
}

// Init configures the package logger. Output can be "stdout", "stderr", or a
// file path.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	switch strings.ToLower(cfg.Output) {
	case "stdout", "":
		output = os.Stdout
		useColor = isTerminal(os.Stdout.Fd())
	case "stderr":
		output = os.Stderr
		useColor = isTerminal(os.Stderr.Fd())
	default:
		f, err := os.OpenFile(cfg.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file %q: %w", cfg.Output, err)
		}
		output = f
		useColor = false
	}

	if err := setLevel(cfg.Level); err != nil {
		return err
	}
	if err := setFormat(cfg.Format); err != nil {
		return err
	}

	reconfigure()
	return nil
}

// InitWithWriter points the logger at an arbitrary writer. Primarily for
// tests.
func InitWithWriter(w io.Writer, lvl, outFormat string) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	useColor = false
	_ = setLevel(lvl)
	_ = setFormat(outFormat)
	reconfigure()
}

// setLevel parses and applies a level string. Callers must hold mu.
func setLevel(s string) error {
	switch strings.ToUpper(s) {
	case "", "INFO":
		level.Set(slog.LevelInfo)
	case "DEBUG":
		level.Set(slog.LevelDebug)
	case "WARN":
		level.Set(slog.LevelWarn)
	case "ERROR":
		level.Set(slog.LevelError)
	default:
		return fmt.Errorf("invalid log level %q", s)
	}
	return nil
}

// setFormat applies a format string. Callers must hold mu.
func setFormat(s string) error {
	switch strings.ToLower(s) {
	case "", "text":
		format = "text"
	case "json":
		format = "json"
	default:
		return fmt.Errorf("invalid log format %q", s)
	}
	return nil
}

func getLogger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return slogger
}

// Debug logs at debug level with structured fields.
func Debug(msg string, args ...any) {
	getLogger().Debug(msg, args...)
}

// Info logs at info level with structured fields.
func Info(msg string, args ...any) {
	getLogger().Info(msg, args...)
}

// Warn logs at warn level with structured fields.
func Warn(msg string, args ...any) {
	getLogger().Warn(msg, args...)
}

// Error logs at error level with structured fields.
func Error(msg string, args ...any) {
	getLogger().Error(msg, args...)
}
