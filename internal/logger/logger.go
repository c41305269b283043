// Package logger sets up the process-wide slog logger used by the generator
// and the CLI.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

var defaultLogger *slog.Logger

// Options control the handler built by Setup.
type Options struct {
	// Verbose forces debug level regardless of LOG_LEVEL.
	Verbose bool
	// Format is "text" or "json"; empty falls back to LOG_FORMAT.
	Format string
	// Output defaults to stderr.
	Output io.Writer
}

// Setup builds the default logger and installs it as slog's default.
func Setup(opts Options) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	if opts.Verbose {
		lvl = slog.LevelDebug
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	format := opts.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}

	var h slog.Handler
	if strings.ToLower(format) == "json" {
		h = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: lvl})
	} else {
		h = slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})
	}
	defaultLogger = slog.New(h)
	slog.SetDefault(defaultLogger)
	return defaultLogger
}

// L returns the default logger, setting it up with defaults on first use.
func L() *slog.Logger {
	if defaultLogger == nil {
		return Setup(Options{})
	}
	return defaultLogger
}
