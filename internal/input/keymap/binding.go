package keymap

import (
	"github.com/dshills/keycore/internal/command"
	"github.com/dshills/keycore/internal/input/key"
	"github.com/dshills/keycore/internal/input/mode"
)

// Binding maps a key event, optionally guarded by a mode expression, to a
// command.
type Binding struct {
	// Key is the key event that triggers this binding. It is stored in
	// normalized form.
	Key key.Event

	// When restricts the binding to modes for which it evaluates true.
	// A nil guard matches every mode.
	When *Guard

	// Command is executed when the binding fires.
	Command command.Command

	// Description provides documentation for the binding.
	Description string
}

// NewBinding creates a binding for ev with no guard.
func NewBinding(ev key.Event, cmd command.Command) Binding {
	return Binding{
		Key:     ev.Normalize(),
		Command: cmd,
	}
}

// WithWhen sets the guard for this binding.
func (b Binding) WithWhen(g *Guard) Binding {
	b.When = g
	return b
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// Matches reports whether the binding fires for ev in mode m: the key codes
// are equal, the modifier sets are exactly equal after normalization, and
// the guard holds.
func (b Binding) Matches(m mode.Mode, ev key.Event) bool {
	want, got := b.Key.Normalize(), ev.Normalize()
	if !want.SameKey(got) || want.Modifiers != got.Modifiers {
		return false
	}
	return b.When.Eval(m)
}
