package backend

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keycore/internal/input/key"
	"github.com/dshills/keycore/internal/input/mode"
)

// TcellTerminal implements Terminal using tcell.
//
// A background goroutine relays tcell events into a channel so that Poll
// can wait with a timeout. All other methods must be called from the
// goroutine that owns the editor.
type TcellTerminal struct {
	screen   tcell.Screen
	events   chan tcell.Event
	quit     chan struct{}
	viewport Viewport
	closed   bool
}

// NewTcellTerminal opens the controlling terminal and enters raw mode.
func NewTcellTerminal() (*TcellTerminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return NewTcellTerminalWithScreen(screen)
}

// NewTcellTerminalWithScreen initializes screen and starts reading events
// from it. Tests pass a tcell simulation screen.
func NewTcellTerminalWithScreen(screen tcell.Screen) (*TcellTerminal, error) {
	if screen == nil {
		return nil, errors.New("backend: nil screen")
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.Clear()

	t := &TcellTerminal{
		screen: screen,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
	go t.readEvents()
	return t, nil
}

// readEvents relays screen events until the screen is finalized.
// PollEvent returns nil once Fini has been called.
func (t *TcellTerminal) readEvents() {
	defer close(t.events)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

// Render paints v and positions the hardware cursor.
func (t *TcellTerminal) Render(v View) error {
	if t.closed {
		return ErrClosed
	}

	width, height := t.screen.Size()
	f := Compose(v, &t.viewport, width, height)

	text := tcell.StyleDefault
	status := tcell.StyleDefault.Reverse(true)

	t.screen.Clear()
	for y, row := range f.Rows {
		style := text
		if y == f.Height-1 {
			style = status
		}
		for x, r := range row {
			t.screen.SetContent(x, y, r, nil, style)
		}
	}
	if f.Height > 1 {
		t.screen.ShowCursor(f.CursorX, f.CursorY)
	} else {
		t.screen.HideCursor()
	}
	t.screen.Show()
	return nil
}

// SetCursorStyle changes the hardware cursor presentation.
func (t *TcellTerminal) SetCursorStyle(style mode.CursorStyle) error {
	if t.closed {
		return ErrClosed
	}
	cs, err := tcellCursorStyle(style)
	if err != nil {
		return err
	}
	t.screen.SetCursorStyle(cs)
	t.screen.Show()
	return nil
}

// Poll waits at most timeout for the next key event.
func (t *TcellTerminal) Poll(timeout time.Duration) (key.Event, bool, error) {
	if t.closed {
		return key.Event{}, false, ErrClosed
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-t.events:
		if !ok {
			return key.Event{}, false, ErrClosed
		}
		switch e := ev.(type) {
		case *tcell.EventKey:
			kev, err := translateKey(e)
			if err != nil {
				return key.Event{}, false, err
			}
			return kev, true, nil
		case *tcell.EventResize:
			t.screen.Sync()
		}
		return key.Event{}, false, nil

	case <-timer.C:
		return key.Event{}, false, nil
	}
}

// Teardown restores the default cursor and leaves raw mode.
func (t *TcellTerminal) Teardown() error {
	if t.closed {
		return nil
	}
	t.closed = true
	close(t.quit)

	t.screen.SetCursorStyle(tcell.CursorStyleDefault)
	t.screen.ShowCursor(0, 0)
	t.screen.Fini()
	return nil
}

// tcellCursorStyle maps a cursor presentation to tcell's style.
func tcellCursorStyle(style mode.CursorStyle) (tcell.CursorStyle, error) {
	switch style {
	case mode.CursorDefault:
		return tcell.CursorStyleDefault, nil
	case mode.CursorBlinkingBlock:
		return tcell.CursorStyleBlinkingBlock, nil
	case mode.CursorSteadyBlock:
		return tcell.CursorStyleSteadyBlock, nil
	case mode.CursorBlinkingUnderline:
		return tcell.CursorStyleBlinkingUnderline, nil
	case mode.CursorSteadyUnderline:
		return tcell.CursorStyleSteadyUnderline, nil
	case mode.CursorBlinkingBar:
		return tcell.CursorStyleBlinkingBar, nil
	case mode.CursorSteadyBar:
		return tcell.CursorStyleSteadyBar, nil
	default:
		return tcell.CursorStyleDefault, fmt.Errorf("backend: unknown cursor style %d", style)
	}
}
