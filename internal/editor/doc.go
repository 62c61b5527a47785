// Package editor is the editor core: it owns the document, the mode state
// machine and the keymap table, executes commands against them and drives
// the run loop.
//
// An Editor is a single aggregate owned by one goroutine. It holds no
// package-level state and performs no locking.
//
// The run loop, per iteration:
//
//  1. render the document, cursor and mode
//  2. poll the terminal for a key, with a bounded timeout
//  3. resolve the key against the keymap (or apply the insert fallback)
//  4. execute the resulting command
//
// The loop ends when a Quit command is executed (Run returns ErrQuit),
// when the context is cancelled, or on a terminal failure. The terminal is
// torn down on every exit path.
package editor
