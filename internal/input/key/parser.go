package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into a normalized Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Named keys: "Enter", "Escape", "Tab", "Backspace", "Space", "F5"
//   - With modifiers: "Ctrl+Q", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-q>", "<A-f>", "<S-Tab>", "<CR>", "<Esc>"
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseVimStyle(spec[1 : len(spec)-1])
	}

	if len(spec) > 1 && strings.Contains(spec, "+") {
		return parseModifierStyle(spec)
	}

	return parseKeyWithModifiers(spec, ModNone)
}

// parseVimStyle parses Vim-style notation like "C-s", "A-F4", "CR", "Esc".
func parseVimStyle(inner string) (Event, error) {
	inner = strings.TrimSpace(inner)
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	// "<C-->" binds Ctrl and the minus key.
	var keyPart string
	var modParts []string
	if strings.HasSuffix(inner, "--") {
		keyPart = "-"
		modParts = strings.Split(strings.TrimSuffix(inner, "--"), "-")
	} else {
		parts := strings.Split(inner, "-")
		keyPart = parts[len(parts)-1]
		modParts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range modParts {
		p = strings.ToLower(strings.TrimSpace(p))
		if len(p) != 1 {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mod, ok := ModifierFromName(p)
		if !ok {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, p)
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseModifierStyle parses "Ctrl+S" style notation.
func parseModifierStyle(spec string) (Event, error) {
	// "Ctrl++" binds Ctrl and the plus key.
	var keyPart string
	var modParts []string
	if strings.HasSuffix(spec, "++") {
		keyPart = "+"
		modParts = strings.Split(strings.TrimSuffix(spec, "++"), "+")
	} else {
		parts := strings.Split(spec, "+")
		keyPart = parts[len(parts)-1]
		modParts = parts[:len(parts)-1]
	}

	var mods Modifier
	for _, p := range modParts {
		mod, ok := ModifierFromName(p)
		if !ok || mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, strings.TrimSpace(p))
		}
		mods = mods.With(mod)
	}

	return parseKeyWithModifiers(keyPart, mods)
}

// parseKeyWithModifiers parses a key part with already-known modifiers.
func parseKeyWithModifiers(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	runes := []rune(keyPart)
	if len(runes) == 1 {
		return NewRuneEvent(runes[0], mods), nil
	}

	switch strings.ToLower(keyPart) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	case "bar":
		return NewRuneEvent('|', mods), nil
	case "bslash":
		return NewRuneEvent('\\', mods), nil
	case "minus":
		return NewRuneEvent('-', mods), nil
	case "plus":
		return NewRuneEvent('+', mods), nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// NormalizeSpec parses and re-formats a key specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	event, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return event.String(), nil
}
