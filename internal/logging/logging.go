// Package logging configures the process-wide slog logger for the cache
// buster commands: human-oriented text output when attached to a terminal,
// JSON lines when running under CI or with output redirected.
package logging

import (
	"io"
	"log/slog"

	"github.com/isseis/go-cache-buster/internal/terminal"
)

// Options controls logger construction.
type Options struct {
	// Level is the minimum level to emit. Defaults to slog.LevelInfo.
	Level slog.Level

	// Quiet raises the level to warn, keeping build output terse.
	Quiet bool

	// ForceJSON selects the JSON handler regardless of terminal detection.
	ForceJSON bool
}

// NewLogger builds a logger writing to w according to opts and the detected
// environment.
func NewLogger(w io.Writer, opts Options) *slog.Logger {
	level := opts.Level
	if opts.Quiet && level < slog.LevelWarn {
		level = slog.LevelWarn
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if opts.ForceJSON || !terminal.IsInteractive() {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}
	return slog.New(handler)
}

// Setup builds a logger via NewLogger and installs it as the slog default.
func Setup(w io.Writer, opts Options) *slog.Logger {
	logger := NewLogger(w, opts)
	slog.SetDefault(logger)
	return logger
}
