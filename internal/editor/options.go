package editor

import (
	"log/slog"
	"time"

	"github.com/dshills/keycore/internal/input/keymap"
)

// DefaultPollInterval bounds each wait for input.
const DefaultPollInterval = 300 * time.Millisecond

// Option configures an Editor during creation.
type Option func(*Editor)

// WithLogger sets the logger. The editor adds its own component and
// session attributes.
func WithLogger(l *slog.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithKeymap sets the keymap table. The default table is used otherwise.
func WithKeymap(t *keymap.Table) Option {
	return func(e *Editor) {
		if t != nil {
			e.table = t
		}
	}
}

// WithPollInterval sets the input poll timeout.
func WithPollInterval(d time.Duration) Option {
	return func(e *Editor) {
		if d > 0 {
			e.pollInterval = d
		}
	}
}

// WithLines sets the initial document content.
func WithLines(lines []string) Option {
	return func(e *Editor) {
		e.doc.SetLines(lines)
	}
}

// WithSessionID sets the session identifier attached to log records.
// A random UUID is used otherwise.
func WithSessionID(id string) Option {
	return func(e *Editor) {
		if id != "" {
			e.session = id
		}
	}
}
