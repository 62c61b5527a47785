package mode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned when a mode name or value is not recognized.
var ErrUnknownMode = errors.New("unknown mode")

// Mode identifies one of the editing modes.
type Mode uint8

const (
	// Normal is the navigation and command mode.
	Normal Mode = iota

	// Insert is the text entry mode.
	Insert

	// Visual is the selection mode.
	Visual
)

// Standard mode names.
const (
	ModeNormal = "normal"
	ModeInsert = "insert"
	ModeVisual = "visual"
)

// All returns every mode in declaration order.
func All() []Mode {
	return []Mode{Normal, Insert, Visual}
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m <= Visual
}

// String returns the mode identifier used in configuration ("normal", ...).
func (m Mode) String() string {
	switch m {
	case Normal:
		return ModeNormal
	case Insert:
		return ModeInsert
	case Visual:
		return ModeVisual
	default:
		return fmt.Sprintf("mode(%d)", m)
	}
}

// DisplayName returns a human-readable name for the status line.
func (m Mode) DisplayName() string {
	return strings.ToUpper(m.String())
}

// CursorStyle returns the cursor presentation for this mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case Insert:
		return CursorSteadyBar
	case Visual:
		return CursorSteadyUnderline
	default:
		return CursorSteadyBlock
	}
}

// Parse returns the mode with the given name (case-insensitive).
func Parse(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case ModeNormal:
		return Normal, nil
	case ModeInsert:
		return Insert, nil
	case ModeVisual:
		return Visual, nil
	default:
		return Normal, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// CursorStyle defines the visual appearance of the terminal cursor.
type CursorStyle uint8

const (
	// CursorDefault is the shape configured by the user's terminal.
	CursorDefault CursorStyle = iota

	// CursorBlinkingBlock is a blinking full-cell block.
	CursorBlinkingBlock

	// CursorSteadyBlock is a non-blinking full-cell block (normal mode).
	CursorSteadyBlock

	// CursorBlinkingUnderline is a blinking underscore.
	CursorBlinkingUnderline

	// CursorSteadyUnderline is a non-blinking underscore (visual mode).
	CursorSteadyUnderline

	// CursorBlinkingBar is a blinking vertical bar.
	CursorBlinkingBar

	// CursorSteadyBar is a non-blinking vertical bar (insert mode).
	CursorSteadyBar
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorBlinkingBlock:
		return "blinking-block"
	case CursorSteadyBlock:
		return "block"
	case CursorBlinkingUnderline:
		return "blinking-underline"
	case CursorSteadyUnderline:
		return "underline"
	case CursorBlinkingBar:
		return "blinking-bar"
	case CursorSteadyBar:
		return "bar"
	default:
		return "unknown"
	}
}
