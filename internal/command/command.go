package command

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dshills/keycore/internal/input/mode"
)

// Parse errors.
var (
	// ErrUnknownCommand indicates the command name is not recognized.
	ErrUnknownCommand = errors.New("command: unknown command")

	// ErrInvalidArgument indicates the command argument is missing or malformed.
	ErrInvalidArgument = errors.New("command: invalid argument")
)

// Kind identifies a command.
type Kind uint8

const (
	// KindNone is the zero value and never a valid command.
	KindNone Kind = iota

	KindInsertChar
	KindInsertLine
	KindDeleteChar
	KindBackspaceChar
	KindMoveLeft
	KindMoveRight
	KindMoveUp
	KindMoveDown
	KindMode
	KindQuit

	// Reserved kinds. They are part of the command set but have no behavior.
	KindSave
	KindOpen
	KindFind
	KindFindNext
	KindFindPrev
	KindUndo
	KindRedo
	KindMoveStart
	KindMoveEnd
	KindPageUp
	KindPageDown
	KindWordForward
	KindWordBackward

	kindCount
)

var kindNames = [kindCount]string{
	KindNone:          "none",
	KindInsertChar:    "insert_char",
	KindInsertLine:    "insert_line",
	KindDeleteChar:    "delete_char",
	KindBackspaceChar: "backspace_char",
	KindMoveLeft:      "move_left",
	KindMoveRight:     "move_right",
	KindMoveUp:        "move_up",
	KindMoveDown:      "move_down",
	KindMode:          "mode",
	KindQuit:          "quit",
	KindSave:          "save",
	KindOpen:          "open",
	KindFind:          "find",
	KindFindNext:      "find_next",
	KindFindPrev:      "find_prev",
	KindUndo:          "undo",
	KindRedo:          "redo",
	KindMoveStart:     "move_start",
	KindMoveEnd:       "move_end",
	KindPageUp:        "page_up",
	KindPageDown:      "page_down",
	KindWordForward:   "word_forward",
	KindWordBackward:  "word_backward",
}

// String returns the configuration name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsReserved reports whether the kind is reserved (bindable, no behavior).
func (k Kind) IsReserved() bool {
	return k >= KindSave && k < kindCount
}

// Valid reports whether k names a command.
func (k Kind) Valid() bool {
	return k > KindNone && k < kindCount
}

// KindFromName returns the kind for a configuration name.
func KindFromName(name string) (Kind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := KindInsertChar; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return KindNone, false
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := KindInsertChar; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Command is a single editor command.
type Command struct {
	// Kind identifies the command.
	Kind Kind

	// Char is the character for KindInsertChar.
	Char rune

	// Mode is the target mode for KindMode.
	Mode mode.Mode
}

// Constructors for the implemented commands.

// InsertChar returns a command inserting r at the cursor.
func InsertChar(r rune) Command { return Command{Kind: KindInsertChar, Char: r} }

// InsertLine returns a command splitting the line at the cursor.
func InsertLine() Command { return Command{Kind: KindInsertLine} }

// DeleteChar returns a forward delete command.
func DeleteChar() Command { return Command{Kind: KindDeleteChar} }

// BackspaceChar returns a backward delete command.
func BackspaceChar() Command { return Command{Kind: KindBackspaceChar} }

// MoveLeft returns a command moving the cursor one column left.
func MoveLeft() Command { return Command{Kind: KindMoveLeft} }

// MoveRight returns a command moving the cursor one column right.
func MoveRight() Command { return Command{Kind: KindMoveRight} }

// MoveUp returns a command moving the cursor one row up.
func MoveUp() Command { return Command{Kind: KindMoveUp} }

// MoveDown returns a command moving the cursor one row down.
func MoveDown() Command { return Command{Kind: KindMoveDown} }

// SwitchMode returns a command switching to m.
func SwitchMode(m mode.Mode) Command { return Command{Kind: KindMode, Mode: m} }

// Quit returns the quit command.
func Quit() Command { return Command{Kind: KindQuit} }

// Reserved returns a reserved command of kind k.
func Reserved(k Kind) Command { return Command{Kind: k} }

// String returns the command in configuration form, e.g. "insert_char x"
// or "mode normal".
func (c Command) String() string {
	switch c.Kind {
	case KindInsertChar:
		return c.Kind.String() + " " + string(c.Char)
	case KindMode:
		return c.Kind.String() + " " + c.Mode.String()
	default:
		return c.Kind.String()
	}
}

// Arg returns the configuration argument of the command, or "" if the kind
// takes none.
func (c Command) Arg() string {
	switch c.Kind {
	case KindInsertChar:
		return string(c.Char)
	case KindMode:
		return c.Mode.String()
	default:
		return ""
	}
}

// Parse builds a command from its configuration name and argument.
// insert_char requires a single-rune argument and mode requires a mode
// name; all other commands take no argument.
func Parse(name, arg string) (Command, error) {
	kind, ok := KindFromName(name)
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	switch kind {
	case KindInsertChar:
		if utf8.RuneCountInString(arg) != 1 {
			return Command{}, fmt.Errorf("%w: %s needs exactly one character, got %q", ErrInvalidArgument, kind, arg)
		}
		r, _ := utf8.DecodeRuneInString(arg)
		if r == utf8.RuneError {
			return Command{}, fmt.Errorf("%w: %s: invalid UTF-8 %q", ErrInvalidArgument, kind, arg)
		}
		return InsertChar(r), nil

	case KindMode:
		m, err := mode.Parse(arg)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %s: %v", ErrInvalidArgument, kind, err)
		}
		return SwitchMode(m), nil

	default:
		if strings.TrimSpace(arg) != "" {
			return Command{}, fmt.Errorf("%w: %s takes no argument, got %q", ErrInvalidArgument, kind, arg)
		}
		return Command{Kind: kind}, nil
	}
}

// MustParse is like Parse but panics on error.
func MustParse(name, arg string) Command {
	c, err := Parse(name, arg)
	if err != nil {
		panic(err)
	}
	return c
}
