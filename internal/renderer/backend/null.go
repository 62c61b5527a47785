package backend

import (
	"time"

	"github.com/dshills/keycore/internal/input/key"
	"github.com/dshills/keycore/internal/input/mode"
)

// PollResult is one scripted outcome of NullTerminal.Poll.
type PollResult struct {
	Event key.Event
	OK    bool
	Err   error
}

// NullTerminal is an in-memory Terminal for testing. Poll replays scripted
// results in order; once the script is exhausted Poll reports a timeout, or
// calls OnIdle if set.
type NullTerminal struct {
	width, height int
	viewport      Viewport

	script []PollResult

	// OnIdle is called when Poll runs out of scripted results.
	OnIdle func()

	// TeardownErr is returned by the first Teardown call.
	TeardownErr error

	// RenderErr, when set, is returned by Render.
	RenderErr error

	frames    []Frame
	views     []View
	styles    []mode.CursorStyle
	polls     int
	teardowns int
}

// NewNullTerminal creates a null terminal with the given dimensions.
func NewNullTerminal(width, height int) *NullTerminal {
	return &NullTerminal{width: width, height: height}
}

// Script appends results that Poll will return in order.
func (t *NullTerminal) Script(results ...PollResult) *NullTerminal {
	t.script = append(t.script, results...)
	return t
}

// Keys appends key events to the script.
func (t *NullTerminal) Keys(events ...key.Event) *NullTerminal {
	for _, ev := range events {
		t.script = append(t.script, PollResult{Event: ev, OK: true})
	}
	return t
}

// Render records v and the frame it composes to.
func (t *NullTerminal) Render(v View) error {
	if t.teardowns > 0 {
		return ErrClosed
	}
	if t.RenderErr != nil {
		return t.RenderErr
	}
	lines := make([]string, len(v.Lines))
	copy(lines, v.Lines)
	v.Lines = lines
	t.views = append(t.views, v)
	t.frames = append(t.frames, Compose(v, &t.viewport, t.width, t.height))
	return nil
}

// SetCursorStyle records style.
func (t *NullTerminal) SetCursorStyle(style mode.CursorStyle) error {
	if t.teardowns > 0 {
		return ErrClosed
	}
	t.styles = append(t.styles, style)
	return nil
}

// Poll returns the next scripted result. The timeout is ignored.
func (t *NullTerminal) Poll(time.Duration) (key.Event, bool, error) {
	if t.teardowns > 0 {
		return key.Event{}, false, ErrClosed
	}
	t.polls++
	if len(t.script) == 0 {
		if t.OnIdle != nil {
			t.OnIdle()
		}
		return key.Event{}, false, nil
	}
	r := t.script[0]
	t.script = t.script[1:]
	return r.Event, r.OK, r.Err
}

// Teardown records the call. Only the first call returns TeardownErr.
func (t *NullTerminal) Teardown() error {
	t.teardowns++
	if t.teardowns == 1 {
		return t.TeardownErr
	}
	return nil
}

// Frames returns every composed frame in render order.
func (t *NullTerminal) Frames() []Frame { return t.frames }

// LastFrame returns the most recent frame.
func (t *NullTerminal) LastFrame() (Frame, bool) {
	if len(t.frames) == 0 {
		return Frame{}, false
	}
	return t.frames[len(t.frames)-1], true
}

// Views returns every rendered view in order.
func (t *NullTerminal) Views() []View { return t.views }

// Styles returns every cursor style set, in order.
func (t *NullTerminal) Styles() []mode.CursorStyle { return t.styles }

// Polls returns the number of Poll calls.
func (t *NullTerminal) Polls() int { return t.polls }

// Teardowns returns the number of Teardown calls.
func (t *NullTerminal) Teardowns() int { return t.teardowns }

// Pending returns the number of scripted results not yet consumed.
func (t *NullTerminal) Pending() int { return len(t.script) }
