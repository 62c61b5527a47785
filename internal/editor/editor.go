package editor

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/keycore/internal/engine/buffer"
	"github.com/dshills/keycore/internal/input/keymap"
	"github.com/dshills/keycore/internal/input/mode"
	"github.com/dshills/keycore/internal/logging"
	"github.com/dshills/keycore/internal/renderer/backend"
)

// Editor owns the document, the mode and the keymap for one session.
type Editor struct {
	doc   *buffer.Buffer
	modes *mode.Manager
	table *keymap.Table
	term  backend.Terminal

	logger       *slog.Logger
	session      string
	pollInterval time.Duration

	closed bool
}

// New creates an editor drawing to term. The document starts as a single
// empty line and the mode starts as Insert.
func New(term backend.Terminal, opts ...Option) *Editor {
	e := &Editor{
		doc:          buffer.New(),
		modes:        mode.NewManager(term),
		table:        keymap.DefaultTable(),
		term:         term,
		logger:       logging.Discard(),
		session:      uuid.NewString(),
		pollInterval: DefaultPollInterval,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.logger = logging.WithComponent(e.logger, "editor").With(slog.String("session", e.session))
	e.modes.OnChange(func(from, to mode.Mode) {
		e.logger.Debug("mode changed", "from", from.String(), "to", to.String())
	})

	return e
}

// Buffer returns the document.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.doc
}

// Mode returns the active mode.
func (e *Editor) Mode() mode.Mode {
	return e.modes.Current()
}

// Keymap returns the keymap table.
func (e *Editor) Keymap() *keymap.Table {
	return e.table
}

// Session returns the session identifier.
func (e *Editor) Session() string {
	return e.session
}

// PollInterval returns the input poll timeout.
func (e *Editor) PollInterval() time.Duration {
	return e.pollInterval
}

// View returns a snapshot of the state to render.
func (e *Editor) View() backend.View {
	return backend.View{
		Lines:  e.doc.Lines(),
		Cursor: e.doc.Cursor(),
		Mode:   e.modes.Current(),
	}
}

// Closed reports whether the terminal has been torn down.
func (e *Editor) Closed() bool {
	return e.closed
}
