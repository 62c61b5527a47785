package buffer

import "fmt"

// Cursor is a (row, column) position in a document. Rows and columns are
// zero-based; Col may equal the line length, addressing the position just
// after the last character.
type Cursor struct {
	Row int
	Col int
}

// String returns "(row,col)".
func (c Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Compare returns -1 if c is before other, 0 if equal, 1 if after.
func (c Cursor) Compare(other Cursor) int {
	switch {
	case c.Row < other.Row:
		return -1
	case c.Row > other.Row:
		return 1
	case c.Col < other.Col:
		return -1
	case c.Col > other.Col:
		return 1
	default:
		return 0
	}
}
