package buffer

import (
	"fmt"
	"strings"
)

// InvariantError reports a position that violates the cursor invariant.
// It is the panic value of edit primitives given an out-of-range position.
type InvariantError struct {
	Op        string
	At        Cursor
	LineCount int
	LineLen   int
}

// Error implements error.
func (e *InvariantError) Error() string {
	if e.At.Row < 0 || e.At.Row >= e.LineCount {
		return fmt.Sprintf("buffer: %s: row %d out of range [0,%d)", e.Op, e.At.Row, e.LineCount)
	}
	return fmt.Sprintf("buffer: %s: column %d out of range [0,%d] on row %d", e.Op, e.At.Col, e.LineLen, e.At.Row)
}

// Buffer is a document plus its cursor.
type Buffer struct {
	lines  [][]rune
	cursor Cursor
}

// New creates a buffer holding one empty line with the cursor at (0,0).
func New() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// NewFromLines creates a buffer holding lines. An empty slice yields a
// single empty line.
func NewFromLines(lines []string) *Buffer {
	b := New()
	b.SetLines(lines)
	return b
}

// NewFromString creates a buffer from text split on "\n". A "\r\n" or lone
// "\r" is treated as a line break.
func NewFromString(s string) *Buffer {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return NewFromLines(strings.Split(s, "\n"))
}

// SetLines replaces the document content and resets the cursor to (0,0).
func (b *Buffer) SetLines(lines []string) {
	if len(lines) == 0 {
		b.lines = [][]rune{{}}
	} else {
		b.lines = make([][]rune, len(lines))
		for i, l := range lines {
			b.lines[i] = []rune(l)
		}
	}
	b.cursor = Cursor{}
}

// LineCount returns the number of lines. It is always at least one.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineLen returns the length of line row in runes.
// Returns 0 if row is out of range.
func (b *Buffer) LineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

// Line returns the text of line row, or "" if row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// Lines returns a copy of every line.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = string(l)
	}
	return out
}

// String returns the document joined with "\n".
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Cursor returns the current cursor.
func (b *Buffer) Cursor() Cursor {
	return b.cursor
}

// SetCursor moves the cursor to c. Returns an *InvariantError if c is out
// of range; the cursor is left unchanged in that case.
func (b *Buffer) SetCursor(c Cursor) error {
	if err := b.check("set cursor", c); err != nil {
		return err
	}
	b.cursor = c
	return nil
}

// Valid reports whether c satisfies the cursor invariant for this document.
func (b *Buffer) Valid(c Cursor) bool {
	return b.check("", c) == nil
}

func (b *Buffer) check(op string, c Cursor) *InvariantError {
	if c.Row < 0 || c.Row >= len(b.lines) || c.Col < 0 || c.Col > len(b.lines[c.Row]) {
		return &InvariantError{Op: op, At: c, LineCount: len(b.lines), LineLen: b.LineLen(c.Row)}
	}
	return nil
}

// resolve returns the position an edit applies to, panicking if it is
// invalid.
func (b *Buffer) resolve(op string, at *Cursor) Cursor {
	c := b.cursor
	if at != nil {
		c = *at
	}
	if err := b.check(op, c); err != nil {
		panic(err)
	}
	return c
}
