package editor

import (
	"fmt"

	"github.com/dshills/keycore/internal/command"
	"github.com/dshills/keycore/internal/input/key"
	"github.com/dshills/keycore/internal/input/mode"
)

// Execute runs cmd against the editor state.
//
// Edits and moves apply at the current cursor. Mode switches the mode and
// its cursor presentation. Quit tears the terminal down and returns ErrQuit.
// Reserved commands return a *NotImplementedError.
func (e *Editor) Execute(cmd command.Command) error {
	switch cmd.Kind {
	case command.KindInsertChar:
		e.doc.InsertChar(cmd.Char, nil)
	case command.KindInsertLine:
		e.doc.InsertLineBreak(nil)
	case command.KindDeleteChar:
		e.doc.DeleteForward(nil)
	case command.KindBackspaceChar:
		e.doc.DeleteBackward(nil)
	case command.KindMoveLeft:
		e.doc.MoveLeft()
	case command.KindMoveRight:
		e.doc.MoveRight()
	case command.KindMoveUp:
		e.doc.MoveUp()
	case command.KindMoveDown:
		e.doc.MoveDown()
	case command.KindMode:
		return e.switchMode(cmd.Mode)
	case command.KindQuit:
		e.logger.Info("quit requested")
		_ = e.Close()
		return ErrQuit
	default:
		if cmd.Kind.IsReserved() {
			return &NotImplementedError{Command: cmd}
		}
		return fmt.Errorf("editor: invalid command %s", cmd.Kind)
	}
	return nil
}

// switchMode changes mode. A presentation failure is logged; the mode
// change itself always takes effect.
func (e *Editor) switchMode(target mode.Mode) error {
	if !target.Valid() {
		return fmt.Errorf("editor: %w", e.modes.Switch(target))
	}
	if err := e.modes.Switch(target); err != nil {
		e.logger.Error("cursor presentation failed", "mode", target.String(), "error", err)
	}
	return nil
}

// HandleKey resolves ev against the keymap in the current mode and executes
// the result. An unmatched printable character without command modifiers is
// inserted in Insert mode; any other unmatched key has no effect.
func (e *Editor) HandleKey(ev key.Event) error {
	ev = ev.Normalize()
	current := e.modes.Current()

	cmd, ok := e.table.Resolve(current, ev)
	if ok {
		return e.Execute(cmd)
	}

	if current == mode.Insert && ev.IsPlainChar() {
		return e.Execute(command.InsertChar(ev.Rune))
	}

	e.logger.Debug("unbound key", "key", ev.String(), "mode", current.String())
	return nil
}
