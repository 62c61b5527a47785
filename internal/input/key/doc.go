// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (named keys, function keys, or runes)
//   - Modifier: Represents the modifier set (Shift, Ctrl, Alt, Super, Hyper, Meta)
//   - Event: A single key press with its modifiers
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape", "F5"
//   - With modifiers: "Ctrl+Q", "Alt+F4", "Ctrl+Shift+P"
//   - Vim-style: "<C-q>", "<A-f>", "<CR>", "<Esc>"
//
// # Normalization
//
// For rune keys Shift is folded into the character: "S-a" and "A" both
// describe the event {KeyRune, 'A', ModNone}. Ctrl chords use the lowercase
// letter, so "C-Q" and "C-q" are the same event. Parsed specifications and
// terminal events are normalized the same way, which makes exact equality
// of the modifier set a well defined matching rule.
package key
