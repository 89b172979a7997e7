// Package logging builds the process slog.Logger from configuration.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

var slogLevels = map[Level]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

// ParseLevel normalizes a level name. "warning" is accepted for warn.
func ParseLevel(s string) Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		return LevelWarn
	}
	return Level(s)
}

func (l Level) Validate() error {
	if _, ok := slogLevels[l]; !ok {
		return fmt.Errorf("invalid log level %q: want debug, info, warn or error", string(l))
	}
	return nil
}

// ToSlogLevel maps l onto slog. Unknown levels log at info.
func (l Level) ToSlogLevel() slog.Level {
	if lvl, ok := slogLevels[l]; ok {
		return lvl
	}
	return slog.LevelInfo
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var handlers = map[Format]func(io.Writer, *slog.HandlerOptions) slog.Handler{
	FormatText: func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewTextHandler(w, o) },
	FormatJSON: func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewJSONHandler(w, o) },
}

func (f Format) Validate() error {
	if _, ok := handlers[f]; !ok {
		return fmt.Errorf("invalid log format %q: want text or json", string(f))
	}
	return nil
}

// New writes to stdout.
func New(cfg *Config) *slog.Logger {
	return NewWriter(cfg, os.Stdout)
}

// NewWriter builds a logger for cfg writing to w, tagged with the service
// name. An unknown format falls back to text.
func NewWriter(cfg *Config, w io.Writer) *slog.Logger {
	build, ok := handlers[cfg.Format]
	if !ok {
		build = handlers[FormatText]
	}

	h := build(w, &slog.HandlerOptions{
		Level:     cfg.Level.ToSlogLevel(),
		AddSource: cfg.AddSource,
	})
	return slog.New(h).With("service", cfg.Service)
}
