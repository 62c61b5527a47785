// Package logging configures the structured logger used by the editor.
//
// While the editor runs the terminal owns stdout and stderr, so logs go to a
// file. An empty file name disables logging.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Format selects the handler output format.
type Format string

const (
	// FormatText writes logfmt-style key=value lines.
	FormatText Format = "text"

	// FormatJSON writes one JSON object per line.
	FormatJSON Format = "json"
)

// Config configures the logger.
type Config struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string

	// File is the log file path. Empty disables logging.
	File string

	// Format is text or json. Empty means text.
	Format Format
}

// ParseLevel parses a level name. Unknown names are an error.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// New builds a logger from cfg. The returned closer releases the log file
// and must be called when the logger is no longer used.
func New(cfg Config) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}

	if cfg.File == "" {
		return Discard(), nopCloser{}, nil
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}

	handler, err := newHandler(f, cfg.Format, level)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return slog.New(handler), f, nil
}

// NewWriter builds a logger writing to w.
func NewWriter(w io.Writer, format Format, level slog.Level) (*slog.Logger, error) {
	handler, err := newHandler(w, format, level)
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}

func newHandler(w io.Writer, format Format, level slog.Level) (slog.Handler, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch format {
	case "", FormatText:
		return slog.NewTextHandler(w, opts), nil
	case FormatJSON:
		return slog.NewJSONHandler(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// WithComponent returns a logger tagged with a component name.
func WithComponent(l *slog.Logger, component string) *slog.Logger {
	return l.With(slog.String("component", component))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
