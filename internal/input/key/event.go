package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single key press event. Events are values and are
// never mutated after construction.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewEvent creates a normalized key event.
func NewEvent(key Key, r rune, mods Modifier) Event {
	return Event{Key: key, Rune: r, Modifiers: mods}.Normalize()
}

// NewRuneEvent creates a normalized key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return NewEvent(KeyRune, r, mods)
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// Normalize folds Shift into the character of rune events and lowercases
// letters in Ctrl chords. Special keys are returned unchanged.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		return e
	}
	if e.Modifiers.HasShift() {
		e.Rune = unicode.ToUpper(e.Rune)
		e.Modifiers = e.Modifiers.Without(ModShift)
	}
	if e.Modifiers.HasCtrl() {
		e.Rune = unicode.ToLower(e.Rune)
	}
	return e
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&commandMods != 0
	}
	return e.Modifiers != ModNone
}

// IsPlainChar returns true for a printable character typed without any
// command modifier. These are the events that insert text.
func (e Event) IsPlainChar() bool {
	return e.IsChar() && !e.IsModified()
}

// String returns the canonical Vim-style representation.
// Examples: "a", "A", "<C-q>", "<CR>", "<F5>", "<S-Tab>"
func (e Event) String() string {
	if e.IsRune() && !e.IsModified() {
		if e.Rune == ' ' {
			return "<Space>"
		}
		return string(e.Rune)
	}

	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.Has(ModSuper) {
		parts = append(parts, "D")
	}
	if e.Modifiers.Has(ModHyper) {
		parts = append(parts, "H")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "M")
	}
	if e.Modifiers.HasShift() && !e.IsRune() {
		parts = append(parts, "S")
	}

	var keyName string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			keyName = "Space"
		} else {
			keyName = string(e.Rune)
		}
	case KeyEscape:
		keyName = "Esc"
	case KeyEnter:
		keyName = "CR"
	case KeyBackspace:
		keyName = "BS"
	case KeyDelete:
		keyName = "Del"
	case KeyInsert:
		keyName = "Ins"
	default:
		keyName = e.Key.String()
	}

	parts = append(parts, keyName)
	return "<" + strings.Join(parts, "-") + ">"
}

// Equals returns true if two events represent the same key press.
// Both events are compared in normalized form.
func (e Event) Equals(other Event) bool {
	a, b := e.Normalize(), other.Normalize()
	return a.Key == b.Key && a.Rune == b.Rune && a.Modifiers == b.Modifiers
}

// SameKey returns true if two events use the same key code, ignoring
// modifiers.
func (e Event) SameKey(other Event) bool {
	a, b := e.Normalize(), other.Normalize()
	if a.Key != b.Key {
		return false
	}
	return a.Key != KeyRune || a.Rune == b.Rune
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
