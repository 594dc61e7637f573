// Package logging builds the zerolog logger used by commands and the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultLevel = zerolog.InfoLevel

// Options selects the level and destination of a logger.
type Options struct {
	// Level is one of debug, info, warn, error. Empty means info.
	Level string
	// File, when set, receives JSON lines in append mode.
	File string
	// Console receives human readable lines when File is empty.
	// A nil Console disables logging.
	Console io.Writer
}

// New returns a logger and a closer for its destination.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), nopCloser{}, fmt.Errorf("failed to open log file: %w", err)
		}
		logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
		return logger, f, nil
	}
	if opts.Console == nil {
		return zerolog.Nop(), nopCloser{}, nil
	}
	writer := zerolog.ConsoleWriter{Out: opts.Console, TimeFormat: time.Kitchen, NoColor: true}
	logger := zerolog.New(writer).Level(level).With().Timestamp().Logger()
	return logger, nopCloser{}, nil
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return defaultLevel, nil
	}
	switch name {
	case "debug", "info", "warn", "error":
		return zerolog.ParseLevel(name)
	default:
		return defaultLevel, fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", name)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
