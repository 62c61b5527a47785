package key

import "strings"

// Modifier represents keyboard modifier keys as a bit set.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << (iota - 1)

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModSuper indicates the Super key (Cmd on macOS, Win on Windows).
	ModSuper

	// ModHyper indicates the Hyper key.
	ModHyper

	// ModMeta indicates the Meta key.
	ModMeta
)

// commandMods are the modifiers that turn a character into a chord.
const commandMods = ModCtrl | ModAlt | ModSuper | ModHyper | ModMeta

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool {
	return m.Has(ModMeta)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

var modifierOrder = []struct {
	mod   Modifier
	long  string
	short string
}{
	{ModCtrl, "Ctrl", "C"},
	{ModAlt, "Alt", "A"},
	{ModShift, "Shift", "S"},
	{ModSuper, "Super", "D"},
	{ModHyper, "Hyper", "H"},
	{ModMeta, "Meta", "M"},
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	var parts []string
	for _, o := range modifierOrder {
		if m.Has(o.mod) {
			parts = append(parts, o.long)
		}
	}
	return strings.Join(parts, "+")
}

// ShortString returns a compact representation like "C-A".
func (m Modifier) ShortString() string {
	var parts []string
	for _, o := range modifierOrder {
		if m.Has(o.mod) {
			parts = append(parts, o.short)
		}
	}
	return strings.Join(parts, "-")
}

// modifierNameMap maps modifier names (lowercase) to Modifier values.
var modifierNameMap = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"c":       ModCtrl,
	"alt":     ModAlt,
	"a":       ModAlt,
	"option":  ModAlt,
	"opt":     ModAlt,
	"shift":   ModShift,
	"s":       ModShift,
	"super":   ModSuper,
	"cmd":     ModSuper,
	"command": ModSuper,
	"win":     ModSuper,
	"d":       ModSuper, // Vim uses D for command
	"hyper":   ModHyper,
	"h":       ModHyper,
	"meta":    ModMeta,
	"m":       ModMeta,
	"none":    ModNone,
}

// ModifierFromName returns the Modifier for a given name (case-insensitive).
// The second result is false if the name is not recognized.
func ModifierFromName(name string) (Modifier, bool) {
	m, ok := modifierNameMap[strings.ToLower(strings.TrimSpace(name))]
	return m, ok
}

// ParseModifiers combines a list of modifier names into a set.
// Unknown names are reported in the error.
func ParseModifiers(names []string) (Modifier, error) {
	var result Modifier
	for _, name := range names {
		mod, ok := ModifierFromName(name)
		if !ok {
			return ModNone, &UnknownModifierError{Name: name}
		}
		result = result.With(mod)
	}
	return result, nil
}

// UnknownModifierError reports a modifier name that could not be parsed.
type UnknownModifierError struct {
	Name string
}

func (e *UnknownModifierError) Error() string {
	return "unknown modifier " + `"` + e.Name + `"`
}

// Is lets errors.Is match ErrInvalidSpec.
func (e *UnknownModifierError) Is(target error) bool {
	return target == ErrInvalidSpec
}
