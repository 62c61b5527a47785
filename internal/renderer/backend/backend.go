// Package backend provides the terminal layer the editor core talks to.
//
// Terminal is the only surface the core depends on. TcellTerminal drives a
// real terminal through tcell; NullTerminal is an in-memory implementation
// for tests that replays scripted events and records every call.
package backend

import (
	"errors"
	"fmt"
	"time"

	"github.com/dshills/keycore/internal/engine/buffer"
	"github.com/dshills/keycore/internal/input/key"
	"github.com/dshills/keycore/internal/input/mode"
)

// Terminal errors.
var (
	// ErrUnsupportedKey is matched by every UnsupportedKeyError.
	ErrUnsupportedKey = errors.New("backend: unsupported key")

	// ErrClosed is returned by operations on a torn-down terminal.
	ErrClosed = errors.New("backend: terminal closed")
)

// UnsupportedKeyError reports a raw key the backend cannot translate into a
// key.Event. The raw key is never coerced to a default key.
type UnsupportedKeyError struct {
	// Name is the backend's name for the key, e.g. "Clear" or "F13".
	Name string

	// Code is the backend's numeric key code.
	Code int
}

// Error implements error.
func (e *UnsupportedKeyError) Error() string {
	return fmt.Sprintf("backend: unsupported key %s (code %d)", e.Name, e.Code)
}

// Is reports whether target is ErrUnsupportedKey.
func (e *UnsupportedKeyError) Is(target error) bool {
	return target == ErrUnsupportedKey
}

// View is the state a render paints: the document, its cursor and the mode.
type View struct {
	Lines  []string
	Cursor buffer.Cursor
	Mode   mode.Mode
}

// Terminal is the terminal layer consumed by the editor core.
type Terminal interface {
	// Render paints all visible lines, the status line and positions the
	// hardware cursor.
	Render(v View) error

	// SetCursorStyle changes the hardware cursor presentation.
	SetCursorStyle(style mode.CursorStyle) error

	// Poll waits at most timeout for the next key event. It returns
	// ok == false when no key arrived: on timeout, or after a non-key
	// event such as a resize. Raw keys that cannot be translated are
	// reported as *UnsupportedKeyError.
	Poll(timeout time.Duration) (ev key.Event, ok bool, err error)

	// Teardown restores the terminal. It is safe to call more than once;
	// calls after the first return nil.
	Teardown() error
}
