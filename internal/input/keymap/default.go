package keymap

import (
	"github.com/dshills/keycore/internal/command"
	"github.com/dshills/keycore/internal/input/key"
	"github.com/dshills/keycore/internal/input/mode"
)

// DefaultTableName is the name of the built-in table.
const DefaultTableName = "default"

// DefaultTable returns the built-in bindings.
//
// Global bindings come first so that Ctrl+Q and Esc cannot be shadowed by
// mode-specific entries.
func DefaultTable() *Table {
	normal := Equals(mode.Normal)
	insert := Equals(mode.Insert)
	visual := Equals(mode.Visual)
	navigating := Or(normal, visual)

	t := NewTable(DefaultTableName)

	// Global
	t.Add(NewBinding(key.NewRuneEvent('q', key.ModCtrl), command.Quit()).
		WithDescription("Quit"))
	t.Add(NewBinding(key.NewSpecialEvent(key.KeyEscape, key.ModNone), command.SwitchMode(mode.Normal)).
		WithDescription("Enter normal mode"))

	// Mode switching
	t.Add(NewBinding(key.NewRuneEvent('i', key.ModNone), command.SwitchMode(mode.Insert)).
		WithWhen(normal).WithDescription("Enter insert mode"))
	t.Add(NewBinding(key.NewRuneEvent('v', key.ModNone), command.SwitchMode(mode.Visual)).
		WithWhen(normal).WithDescription("Enter visual mode"))
	t.Add(NewBinding(key.NewRuneEvent('v', key.ModNone), command.SwitchMode(mode.Normal)).
		WithWhen(visual).WithDescription("Leave visual mode"))

	// Movement
	moves := []struct {
		arrow key.Key
		vi    rune
		cmd   command.Command
		desc  string
	}{
		{key.KeyLeft, 'h', command.MoveLeft(), "Move left"},
		{key.KeyDown, 'j', command.MoveDown(), "Move down"},
		{key.KeyUp, 'k', command.MoveUp(), "Move up"},
		{key.KeyRight, 'l', command.MoveRight(), "Move right"},
	}
	for _, m := range moves {
		t.Add(NewBinding(key.NewSpecialEvent(m.arrow, key.ModNone), m.cmd).
			WithDescription(m.desc))
	}
	for _, m := range moves {
		t.Add(NewBinding(key.NewRuneEvent(m.vi, key.ModNone), m.cmd).
			WithWhen(navigating).WithDescription(m.desc))
	}

	// Editing
	t.Add(NewBinding(key.NewSpecialEvent(key.KeyEnter, key.ModNone), command.InsertLine()).
		WithWhen(insert).WithDescription("Split line"))
	t.Add(NewBinding(key.NewSpecialEvent(key.KeyBackspace, key.ModNone), command.BackspaceChar()).
		WithWhen(insert).WithDescription("Delete previous character"))
	t.Add(NewBinding(key.NewSpecialEvent(key.KeyDelete, key.ModNone), command.DeleteChar()).
		WithDescription("Delete character"))
	t.Add(NewBinding(key.NewRuneEvent('x', key.ModNone), command.DeleteChar()).
		WithWhen(normal).WithDescription("Delete character"))

	return t
}
