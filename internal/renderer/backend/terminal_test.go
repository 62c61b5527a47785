package backend

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keycore/internal/engine/buffer"
	"github.com/dshills/keycore/internal/input/key"
	"github.com/dshills/keycore/internal/input/mode"
)

func newSimTerminal(t *testing.T, width, height int) (*TcellTerminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term, err := NewTcellTerminalWithScreen(screen)
	if err != nil {
		t.Fatalf("NewTcellTerminalWithScreen() error = %v", err)
	}
	screen.SetSize(width, height)
	t.Cleanup(func() { _ = term.Teardown() })
	return term, screen
}

func screenRow(screen tcell.SimulationScreen, y int) string {
	cells, width, _ := screen.GetContents()
	var sb strings.Builder
	for x := 0; x < width; x++ {
		cell := cells[y*width+x]
		if len(cell.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(cell.Runes[0])
	}
	return strings.TrimRight(sb.String(), " ")
}

func pollKey(t *testing.T, term *TcellTerminal) (key.Event, error) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		ev, ok, err := term.Poll(50 * time.Millisecond)
		if err != nil || ok {
			return ev, err
		}
	}
	t.Fatal("no key event before deadline")
	return key.Event{}, nil
}

func TestTcellTerminalRender(t *testing.T) {
	term, screen := newSimTerminal(t, 20, 4)

	v := View{
		Lines:  []string{"hello", "world"},
		Cursor: buffer.Cursor{Row: 1, Col: 3},
		Mode:   mode.Insert,
	}
	if err := term.Render(v); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if got := screenRow(screen, 0); got != "hello" {
		t.Errorf("row 0 = %q", got)
	}
	if got := screenRow(screen, 1); got != "world" {
		t.Errorf("row 1 = %q", got)
	}
	if got := screenRow(screen, 3); got != "-- INSERT --" {
		t.Errorf("status row = %q", got)
	}

	x, y, visible := screen.GetCursor()
	if x != 3 || y != 1 || !visible {
		t.Errorf("cursor = (%d,%d,%v), want (3,1,true)", x, y, visible)
	}
}

func TestTcellTerminalPollKey(t *testing.T) {
	term, screen := newSimTerminal(t, 20, 4)

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	ev, err := pollKey(t, term)
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if !ev.Equals(key.NewRuneEvent('x', key.ModNone)) {
		t.Errorf("Poll() = %v, want x", ev)
	}

	screen.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	ev, err = pollKey(t, term)
	if err != nil {
		t.Fatalf("Poll() error = %v", err)
	}
	if !ev.Equals(key.NewRuneEvent('q', key.ModCtrl)) {
		t.Errorf("Poll() = %v, want <C-q>", ev)
	}
}

func TestTcellTerminalPollUnsupported(t *testing.T) {
	term, screen := newSimTerminal(t, 20, 4)

	screen.InjectKey(tcell.KeyClear, 0, tcell.ModNone)
	_, err := pollKey(t, term)
	if !errors.Is(err, ErrUnsupportedKey) {
		t.Errorf("Poll() error = %v, want ErrUnsupportedKey", err)
	}
}

func TestTcellTerminalPollTimeout(t *testing.T) {
	term, _ := newSimTerminal(t, 20, 4)

	// Drain any startup events (the initial resize).
	for {
		_, ok, err := term.Poll(20 * time.Millisecond)
		if err != nil {
			t.Fatalf("Poll() error = %v", err)
		}
		if !ok {
			break
		}
	}

	_, ok, err := term.Poll(30 * time.Millisecond)
	if ok || err != nil {
		t.Errorf("Poll() = %v, %v; want timeout", ok, err)
	}
}

func TestTcellTerminalSetCursorStyle(t *testing.T) {
	term, _ := newSimTerminal(t, 20, 4)

	for _, m := range mode.All() {
		if err := term.SetCursorStyle(m.CursorStyle()); err != nil {
			t.Errorf("SetCursorStyle(%v) error = %v", m.CursorStyle(), err)
		}
	}
	if err := term.SetCursorStyle(mode.CursorStyle(99)); err == nil {
		t.Error("expected error for unknown cursor style")
	}
}

func TestTcellTerminalTeardownIdempotent(t *testing.T) {
	term, _ := newSimTerminal(t, 20, 4)

	if err := term.Teardown(); err != nil {
		t.Fatalf("Teardown() error = %v", err)
	}
	if err := term.Teardown(); err != nil {
		t.Errorf("second Teardown() error = %v", err)
	}
	if err := term.Render(View{}); !errors.Is(err, ErrClosed) {
		t.Errorf("Render after teardown = %v", err)
	}
	if _, _, err := term.Poll(time.Millisecond); !errors.Is(err, ErrClosed) {
		t.Errorf("Poll after teardown = %v", err)
	}
}

func TestTcellCursorStyleMapping(t *testing.T) {
	tests := []struct {
		in   mode.CursorStyle
		want tcell.CursorStyle
	}{
		{mode.CursorDefault, tcell.CursorStyleDefault},
		{mode.CursorBlinkingBlock, tcell.CursorStyleBlinkingBlock},
		{mode.CursorSteadyBlock, tcell.CursorStyleSteadyBlock},
		{mode.CursorBlinkingUnderline, tcell.CursorStyleBlinkingUnderline},
		{mode.CursorSteadyUnderline, tcell.CursorStyleSteadyUnderline},
		{mode.CursorBlinkingBar, tcell.CursorStyleBlinkingBar},
		{mode.CursorSteadyBar, tcell.CursorStyleSteadyBar},
	}
	for _, tt := range tests {
		got, err := tcellCursorStyle(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("tcellCursorStyle(%v) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestNewTcellTerminalNilScreen(t *testing.T) {
	if _, err := NewTcellTerminalWithScreen(nil); err == nil {
		t.Error("expected error for nil screen")
	}
}
