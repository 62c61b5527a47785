package editor

import (
	"errors"
	"fmt"

	"github.com/dshills/keycore/internal/command"
)

// Editor errors.
var (
	// ErrQuit signals that the editor should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrNotImplemented is matched by every NotImplementedError.
	ErrNotImplemented = errors.New("command not implemented")
)

// NotImplementedError reports a reserved command that has no behavior.
type NotImplementedError struct {
	Command command.Command
}

// Error implements error.
func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Command.Kind, ErrNotImplemented)
}

// Unwrap returns ErrNotImplemented.
func (e *NotImplementedError) Unwrap() error {
	return ErrNotImplemented
}
