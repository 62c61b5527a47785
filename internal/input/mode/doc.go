// Package mode implements the editor's modal state machine.
//
// There are exactly three modes:
//
//   - Normal: navigation and commands, block cursor
//   - Insert: text entry, bar cursor (the initial mode)
//   - Visual: selection, underline cursor
//
// Every transition between modes is legal. A transition happens only through
// Manager.Switch, and each one asks the Presenter (the terminal layer) to
// change the cursor presentation to match the new mode.
//
// The Manager is owned by a single goroutine and performs no locking.
package mode
