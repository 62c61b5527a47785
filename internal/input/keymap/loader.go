package keymap

import (
	"fmt"

	"github.com/dshills/keycore/internal/command"
	"github.com/dshills/keycore/internal/input/key"
)

// Entry is the configuration form of a binding, as found in config files.
//
//	key = "q"
//	modifiers = ["ctrl"]
//	command = "quit"
//
// Key accepts any notation understood by key.Parse. Modifiers listed
// separately are added to any written in Key.
type Entry struct {
	Key         string   `json:"key" toml:"key" yaml:"key"`
	Modifiers   []string `json:"modifiers,omitempty" toml:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	When        string   `json:"when,omitempty" toml:"when,omitempty" yaml:"when,omitempty"`
	Command     string   `json:"command" toml:"command" yaml:"command"`
	Arg         string   `json:"arg,omitempty" toml:"arg,omitempty" yaml:"arg,omitempty"`
	Description string   `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
}

// EntryError reports the entry that failed to compile.
type EntryError struct {
	Index int
	Entry Entry
	Err   error
}

// Error implements error.
func (e *EntryError) Error() string {
	return fmt.Sprintf("keymap entry %d (key %q, command %q): %v", e.Index, e.Entry.Key, e.Entry.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *EntryError) Unwrap() error {
	return e.Err
}

// Compile converts an entry into a binding.
func (e Entry) Compile() (Binding, error) {
	ev, err := key.Parse(e.Key)
	if err != nil {
		return Binding{}, err
	}

	mods, err := key.ParseModifiers(e.Modifiers)
	if err != nil {
		return Binding{}, err
	}
	ev.Modifiers |= mods

	when, err := ParseGuard(e.When)
	if err != nil {
		return Binding{}, err
	}

	cmd, err := command.Parse(e.Command, e.Arg)
	if err != nil {
		return Binding{}, err
	}

	return NewBinding(ev, cmd).WithWhen(when).WithDescription(e.Description), nil
}

// Compile builds a table from entries, preserving their order.
func Compile(name string, entries []Entry) (*Table, error) {
	t := NewTable(name)
	for i, e := range entries {
		b, err := e.Compile()
		if err != nil {
			return nil, &EntryError{Index: i, Entry: e, Err: err}
		}
		t.Add(b)
	}
	return t, nil
}

// EntryFor returns the configuration form of b.
func EntryFor(b Binding) Entry {
	return Entry{
		Key:         b.Key.String(),
		When:        b.When.String(),
		Command:     b.Command.Kind.String(),
		Arg:         b.Command.Arg(),
		Description: b.Description,
	}
}

// Entries returns the configuration form of every binding in order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.bindings))
	for i, b := range t.bindings {
		out[i] = EntryFor(b)
	}
	return out
}
