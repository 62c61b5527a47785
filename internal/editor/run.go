package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/dshills/keycore/internal/renderer/backend"
)

// Start applies the cursor presentation of the initial mode.
func (e *Editor) Start() error {
	if err := e.modes.Start(); err != nil {
		return fmt.Errorf("editor: start: %w", err)
	}
	return nil
}

// Render paints the current state.
func (e *Editor) Render() error {
	return e.term.Render(e.View())
}

// Run drives the editor until Quit, context cancellation or a terminal
// failure. It returns ErrQuit after Quit and ctx.Err() after cancellation.
// The terminal is torn down before Run returns, including when a command
// panics.
func (e *Editor) Run(ctx context.Context) (err error) {
	defer func() {
		_ = e.Close()
	}()

	e.logger.Info("editor started", "lines", e.doc.LineCount(), "bindings", e.table.Len(), "poll_interval", e.pollInterval)
	defer func() {
		e.logger.Info("editor stopped", "reason", stopReason(err))
	}()

	if err := e.Start(); err != nil {
		e.logger.Warn("initial cursor presentation failed", "error", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := e.Render(); err != nil {
			return fmt.Errorf("editor: render: %w", err)
		}

		ev, ok, err := e.term.Poll(e.pollInterval)
		if err != nil {
			if errors.Is(err, backend.ErrUnsupportedKey) {
				e.logger.Warn("unsupported key", "error", err)
				continue
			}
			return fmt.Errorf("editor: poll: %w", err)
		}
		if !ok {
			continue
		}

		if err := e.HandleKey(ev); err != nil {
			switch {
			case errors.Is(err, ErrQuit):
				return ErrQuit
			case errors.Is(err, ErrNotImplemented):
				e.logger.Warn("command not implemented", "key", ev.String(), "error", err)
			default:
				return err
			}
		}
	}
}

// Close tears the terminal down. It is idempotent. A teardown failure is
// logged and returned but never prevents shutdown.
func (e *Editor) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if err := e.term.Teardown(); err != nil {
		e.logger.Error("terminal teardown failed", "error", err)
		return fmt.Errorf("editor: teardown: %w", err)
	}
	return nil
}

func stopReason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrQuit):
		return "quit"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	default:
		return err.Error()
	}
}
