package keymap

import (
	"fmt"

	"github.com/dshills/keycore/internal/command"
	"github.com/dshills/keycore/internal/input/key"
	"github.com/dshills/keycore/internal/input/mode"
)

// Table is an ordered sequence of bindings. Declaration order is the only
// tie-break between bindings that match the same event.
//
// A Table is built before the run loop starts and is read-only afterwards.
type Table struct {
	// Name identifies the table in logs, e.g. "default" or a config path.
	Name string

	bindings []Binding
}

// NewTable creates a table holding bindings in the given order.
func NewTable(name string, bindings ...Binding) *Table {
	t := &Table{Name: name, bindings: make([]Binding, 0, len(bindings))}
	for _, b := range bindings {
		t.Add(b)
	}
	return t
}

// Add appends a binding to the end of the table.
func (t *Table) Add(b Binding) *Table {
	b.Key = b.Key.Normalize()
	t.bindings = append(t.bindings, b)
	return t
}

// Bind appends a binding for ev with an optional guard.
func (t *Table) Bind(ev key.Event, when *Guard, cmd command.Command) *Table {
	return t.Add(NewBinding(ev, cmd).WithWhen(when))
}

// Len returns the number of bindings.
func (t *Table) Len() int {
	return len(t.bindings)
}

// Bindings returns a copy of the bindings in declaration order.
func (t *Table) Bindings() []Binding {
	out := make([]Binding, len(t.bindings))
	copy(out, t.bindings)
	return out
}

// Concat returns a new table containing t's bindings followed by other's.
func (t *Table) Concat(name string, other *Table) *Table {
	out := &Table{Name: name, bindings: make([]Binding, 0, t.Len()+other.Len())}
	out.bindings = append(out.bindings, t.bindings...)
	out.bindings = append(out.bindings, other.bindings...)
	return out
}

// Resolve returns the command of the first binding that matches ev in mode
// m. The boolean is false when no binding matches.
func (t *Table) Resolve(m mode.Mode, ev key.Event) (command.Command, bool) {
	b, _, ok := t.Lookup(m, ev)
	if !ok {
		return command.Command{}, false
	}
	return b.Command, true
}

// Lookup is like Resolve but returns the matching binding and its index.
func (t *Table) Lookup(m mode.Mode, ev key.Event) (Binding, int, bool) {
	for i, b := range t.bindings {
		if b.Matches(m, ev) {
			return b, i, true
		}
	}
	return Binding{}, -1, false
}

// Validate checks that every binding has a key and a valid command.
func (t *Table) Validate() error {
	for i, b := range t.bindings {
		if b.Key.Key == key.KeyNone {
			return fmt.Errorf("binding %d: empty key", i)
		}
		if !b.Command.Kind.Valid() {
			return fmt.Errorf("binding %d (%s): invalid command", i, b.Key)
		}
	}
	return nil
}
