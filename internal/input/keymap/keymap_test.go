package keymap

import (
	"testing"

	"github.com/dshills/keycore/internal/command"
	"github.com/dshills/keycore/internal/input/key"
	"github.com/dshills/keycore/internal/input/mode"
)

func TestResolveExactModifiers(t *testing.T) {
	table := NewTable("test").
		Bind(key.NewRuneEvent('q', key.ModCtrl), nil, command.Quit()).
		Bind(key.NewRuneEvent('q', key.ModNone), nil, command.InsertChar('Q'))

	tests := []struct {
		name string
		ev   key.Event
		want command.Command
		ok   bool
	}{
		{"ctrl present", key.NewRuneEvent('q', key.ModCtrl), command.Quit(), true},
		{"ctrl uppercase", key.NewRuneEvent('Q', key.ModCtrl), command.Quit(), true},
		{"modifier absent", key.NewRuneEvent('q', key.ModNone), command.InsertChar('Q'), true},
		{"extra modifier", key.NewRuneEvent('q', key.ModCtrl|key.ModAlt), command.Command{}, false},
		{"alt only", key.NewRuneEvent('q', key.ModAlt), command.Command{}, false},
		{"other key", key.NewRuneEvent('w', key.ModCtrl), command.Command{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Resolve(mode.Normal, tt.ev)
			if ok != tt.ok {
				t.Fatalf("Resolve(%v) ok = %v, want %v", tt.ev, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Resolve(%v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestResolveShiftFolded(t *testing.T) {
	table := NewTable("test").Bind(key.NewRuneEvent('G', key.ModNone), nil, command.MoveDown())

	if _, ok := table.Resolve(mode.Normal, key.Event{Key: key.KeyRune, Rune: 'g', Modifiers: key.ModShift}); !ok {
		t.Error("Shift+g should match a binding for G")
	}
	if _, ok := table.Resolve(mode.Normal, key.NewRuneEvent('g', key.ModNone)); ok {
		t.Error("g should not match a binding for G")
	}
}

func TestResolveSpecialKeyShift(t *testing.T) {
	table := NewTable("test").Bind(key.NewSpecialEvent(key.KeyTab, key.ModShift), nil, command.MoveLeft())

	if _, ok := table.Resolve(mode.Insert, key.NewSpecialEvent(key.KeyTab, key.ModShift)); !ok {
		t.Error("Shift+Tab should match")
	}
	if _, ok := table.Resolve(mode.Insert, key.NewSpecialEvent(key.KeyTab, key.ModNone)); ok {
		t.Error("Tab should not match Shift+Tab")
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	ev := key.NewRuneEvent('x', key.ModNone)
	normalFirst := NewBinding(ev, command.DeleteChar()).WithWhen(Equals(mode.Normal))
	anyMode := NewBinding(ev, command.BackspaceChar())

	tests := []struct {
		name  string
		order []Binding
		mode  mode.Mode
		want  command.Command
	}{
		{"guarded first, guard true", []Binding{normalFirst, anyMode}, mode.Normal, command.DeleteChar()},
		{"guarded first, guard false", []Binding{normalFirst, anyMode}, mode.Visual, command.BackspaceChar()},
		{"unguarded first, normal", []Binding{anyMode, normalFirst}, mode.Normal, command.BackspaceChar()},
		{"unguarded first, visual", []Binding{anyMode, normalFirst}, mode.Visual, command.BackspaceChar()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable("test", tt.order...)
			got, ok := table.Resolve(tt.mode, ev)
			if !ok || got != tt.want {
				t.Errorf("Resolve() = %v, %v; want %v", got, ok, tt.want)
			}
		})
	}
}

func TestResolveOverlappingGuards(t *testing.T) {
	ev := key.NewRuneEvent('k', key.ModNone)
	a := NewBinding(ev, command.MoveUp()).WithWhen(Or(Equals(mode.Normal), Equals(mode.Visual)))
	b := NewBinding(ev, command.MoveDown()).WithWhen(Equals(mode.Visual))

	ab := NewTable("ab", a, b)
	ba := NewTable("ba", b, a)

	if got, _ := ab.Resolve(mode.Visual, ev); got != command.MoveUp() {
		t.Errorf("ab visual = %v, want move_up", got)
	}
	if got, _ := ba.Resolve(mode.Visual, ev); got != command.MoveDown() {
		t.Errorf("ba visual = %v, want move_down", got)
	}
	if got, _ := ba.Resolve(mode.Normal, ev); got != command.MoveUp() {
		t.Errorf("ba normal = %v, want move_up", got)
	}
	if _, ok := ab.Resolve(mode.Insert, ev); ok {
		t.Error("insert should not match")
	}
}

func TestLookupIndex(t *testing.T) {
	table := DefaultTable()
	b, idx, ok := table.Lookup(mode.Insert, key.NewRuneEvent('q', key.ModCtrl))
	if !ok || idx != 0 || b.Command != command.Quit() {
		t.Errorf("Lookup(C-q) = %v, %d, %v", b.Command, idx, ok)
	}

	_, idx, ok = table.Lookup(mode.Insert, key.NewRuneEvent('z', key.ModNone))
	if ok || idx != -1 {
		t.Errorf("Lookup(z) = %d, %v; want -1, false", idx, ok)
	}
}

func TestTableBindingsCopy(t *testing.T) {
	table := NewTable("test").Bind(key.NewRuneEvent('a', key.ModNone), nil, command.Quit())
	bs := table.Bindings()
	bs[0].Command = command.MoveUp()

	if got, _ := table.Resolve(mode.Insert, key.NewRuneEvent('a', key.ModNone)); got != command.Quit() {
		t.Error("Bindings() should return a copy")
	}
}

func TestTableConcat(t *testing.T) {
	ev := key.NewRuneEvent('q', key.ModCtrl)
	user := NewTable("user").Bind(ev, nil, command.Reserved(command.KindSave))
	merged := user.Concat("merged", DefaultTable())

	if merged.Len() != user.Len()+DefaultTable().Len() {
		t.Errorf("Len() = %d", merged.Len())
	}
	if got, _ := merged.Resolve(mode.Insert, ev); got.Kind != command.KindSave {
		t.Errorf("user binding should shadow default, got %v", got)
	}
}

func TestTableValidate(t *testing.T) {
	if err := DefaultTable().Validate(); err != nil {
		t.Errorf("DefaultTable().Validate() = %v", err)
	}

	bad := NewTable("bad").Add(Binding{Key: key.NewRuneEvent('a', key.ModNone)})
	if err := bad.Validate(); err == nil {
		t.Error("expected error for missing command")
	}

	noKey := NewTable("bad").Add(Binding{Command: command.Quit()})
	if err := noKey.Validate(); err == nil {
		t.Error("expected error for missing key")
	}
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()

	tests := []struct {
		name string
		mode mode.Mode
		spec string
		want command.Command
		ok   bool
	}{
		{"quit from insert", mode.Insert, "<C-q>", command.Quit(), true},
		{"quit from normal", mode.Normal, "Ctrl+Q", command.Quit(), true},
		{"esc from insert", mode.Insert, "<Esc>", command.SwitchMode(mode.Normal), true},
		{"esc from visual", mode.Visual, "Esc", command.SwitchMode(mode.Normal), true},
		{"i in normal", mode.Normal, "i", command.SwitchMode(mode.Insert), true},
		{"i in insert", mode.Insert, "i", command.Command{}, false},
		{"v in normal", mode.Normal, "v", command.SwitchMode(mode.Visual), true},
		{"v in visual", mode.Visual, "v", command.SwitchMode(mode.Normal), true},
		{"j in normal", mode.Normal, "j", command.MoveDown(), true},
		{"j in visual", mode.Visual, "j", command.MoveDown(), true},
		{"j in insert", mode.Insert, "j", command.Command{}, false},
		{"arrow in insert", mode.Insert, "<Up>", command.MoveUp(), true},
		{"enter in insert", mode.Insert, "<CR>", command.InsertLine(), true},
		{"enter in normal", mode.Normal, "<CR>", command.Command{}, false},
		{"backspace in insert", mode.Insert, "<BS>", command.BackspaceChar(), true},
		{"delete anywhere", mode.Visual, "<Del>", command.DeleteChar(), true},
		{"x in normal", mode.Normal, "x", command.DeleteChar(), true},
		{"x in visual", mode.Visual, "x", command.Command{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := table.Resolve(tt.mode, key.MustParse(tt.spec))
			if ok != tt.ok || got != tt.want {
				t.Errorf("Resolve(%s, %q) = %v, %v; want %v, %v", tt.mode, tt.spec, got, ok, tt.want, tt.ok)
			}
		})
	}
}
