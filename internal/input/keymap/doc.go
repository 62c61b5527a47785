// Package keymap resolves key events to editor commands.
//
// A Table is an ordered list of bindings. Each Binding pairs a key event
// with a command and an optional mode guard. Resolution scans the table in
// declaration order and returns the first binding that matches; order is
// the only tie-break.
//
// # Matching
//
// A binding matches an event when:
//
//  1. the key codes are equal (same named key, or the same rune),
//  2. the modifier sets are exactly equal, and
//  3. the guard, if any, is true for the live mode.
//
// Both sides are normalized first: Shift is folded into the character of
// rune events ("Shift+a" is "A") and letters in Ctrl chords are lowercased
// ("Ctrl+Q" is "Ctrl+q"). After normalization a plain "q" never matches a
// "Ctrl+q" binding, and vice versa.
//
// # Guards
//
// Guards are expression trees built from Equals, Not, And and Or, or parsed
// from text:
//
//	mode == normal
//	mode != insert
//	normal || visual
//	mode == normal && !(mode == visual)
//
// # Usage
//
//	table := keymap.DefaultTable()
//	cmd, ok := table.Resolve(mode.Normal, key.MustParse("<C-q>"))
//	if ok {
//	    // execute cmd
//	}
//
// Tables loaded from configuration are built with Compile from a list of
// Entry values.
package keymap
