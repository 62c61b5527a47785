package key

import (
	"fmt"
	"strconv"
	"strings"
)

// Key represents a keyboard key.
// For character keys, use KeyRune and set the Rune field in Event.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// KeyRune is used for character keys (letters, numbers, punctuation, space).
	// The actual character is stored in Event.Rune.
	KeyRune

	// Editing keys
	KeyEnter
	KeyBackspace
	KeyDelete
	KeyTab
	KeyEscape
	KeyInsert

	// Navigation keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Lock and system keys
	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause
	KeyMenu

	// KeyNull is the NUL key reported by some terminals.
	KeyNull

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// MaxFunctionKey is the highest function key index the model represents.
const MaxFunctionKey = 12

var keyNames = map[Key]string{
	KeyNone:        "None",
	KeyRune:        "Rune",
	KeyEnter:       "Enter",
	KeyBackspace:   "Backspace",
	KeyDelete:      "Delete",
	KeyTab:         "Tab",
	KeyEscape:      "Escape",
	KeyInsert:      "Insert",
	KeyUp:          "Up",
	KeyDown:        "Down",
	KeyLeft:        "Left",
	KeyRight:       "Right",
	KeyHome:        "Home",
	KeyEnd:         "End",
	KeyPageUp:      "PageUp",
	KeyPageDown:    "PageDown",
	KeyCapsLock:    "CapsLock",
	KeyScrollLock:  "ScrollLock",
	KeyNumLock:     "NumLock",
	KeyPrintScreen: "PrintScreen",
	KeyPause:       "Pause",
	KeyMenu:        "Menu",
	KeyNull:        "Null",
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	if n, ok := k.FunctionIndex(); ok {
		return fmt.Sprintf("F%d", n)
	}
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", k)
}

// FunctionKey returns the key for function key index n (1-based).
func FunctionKey(n int) (Key, bool) {
	if n < 1 || n > MaxFunctionKey {
		return KeyNone, false
	}
	return KeyF1 + Key(n-1), true
}

// FunctionIndex returns the 1-based index of a function key.
func (k Key) FunctionIndex() (int, bool) {
	if !k.IsFunctionKey() {
		return 0, false
	}
	return int(k-KeyF1) + 1, true
}

// IsSpecial returns true if this is a special (non-character) key.
func (k Key) IsSpecial() bool {
	return k != KeyNone && k != KeyRune
}

// IsFunctionKey returns true if this is a function key (F1-F12).
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true if this is an arrow key.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// IsNavigationKey returns true if this is a navigation key.
func (k Key) IsNavigationKey() bool {
	return k >= KeyUp && k <= KeyPageDown
}

// keyNameMap maps key names (lowercase) to Key values.
var keyNameMap = map[string]Key{
	"none":        KeyNone,
	"escape":      KeyEscape,
	"esc":         KeyEscape,
	"enter":       KeyEnter,
	"return":      KeyEnter,
	"cr":          KeyEnter,
	"tab":         KeyTab,
	"backspace":   KeyBackspace,
	"bs":          KeyBackspace,
	"delete":      KeyDelete,
	"del":         KeyDelete,
	"insert":      KeyInsert,
	"ins":         KeyInsert,
	"home":        KeyHome,
	"end":         KeyEnd,
	"pageup":      KeyPageUp,
	"pgup":        KeyPageUp,
	"pagedown":    KeyPageDown,
	"pgdn":        KeyPageDown,
	"up":          KeyUp,
	"down":        KeyDown,
	"left":        KeyLeft,
	"right":       KeyRight,
	"capslock":    KeyCapsLock,
	"scrolllock":  KeyScrollLock,
	"numlock":     KeyNumLock,
	"printscreen": KeyPrintScreen,
	"pause":       KeyPause,
	"menu":        KeyMenu,
	"null":        KeyNull,
	"nul":         KeyNull,
}

// KeyFromName returns the Key for a given name (case-insensitive).
// Function keys are accepted as "f1" through "f12".
// Returns KeyNone if the name is not recognized.
func KeyFromName(name string) Key {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := keyNameMap[name]; ok {
		return k
	}
	if len(name) >= 2 && name[0] == 'f' {
		if n, err := strconv.Atoi(name[1:]); err == nil {
			if k, ok := FunctionKey(n); ok {
				return k
			}
		}
	}
	return KeyNone
}
