package buffer

// InsertChar inserts r before column at.Col on row at.Row and leaves the
// cursor just after it.
func (b *Buffer) InsertChar(r rune, at *Cursor) {
	c := b.resolve("insert char", at)

	line := b.lines[c.Row]
	line = append(line, 0)
	copy(line[c.Col+1:], line[c.Col:])
	line[c.Col] = r
	b.lines[c.Row] = line

	b.cursor = Cursor{Row: c.Row, Col: c.Col + 1}
}

// InsertLineBreak splits row at.Row at column at.Col. Text from the split
// point moves to a new line inserted after it; the cursor moves to the
// start of that line.
func (b *Buffer) InsertLineBreak(at *Cursor) {
	c := b.resolve("insert line break", at)

	line := b.lines[c.Row]
	tail := make([]rune, len(line)-c.Col)
	copy(tail, line[c.Col:])
	b.lines[c.Row] = line[:c.Col:c.Col]

	b.lines = append(b.lines, nil)
	copy(b.lines[c.Row+2:], b.lines[c.Row+1:])
	b.lines[c.Row+1] = tail

	b.cursor = Cursor{Row: c.Row + 1, Col: 0}
}

// DeleteForward removes the character at at.Col. At the end of a line that
// is not the last, the next line is joined onto it. At the end of the
// document it does nothing. The cursor is left at at.
func (b *Buffer) DeleteForward(at *Cursor) {
	c := b.resolve("delete forward", at)

	line := b.lines[c.Row]
	switch {
	case c.Col < len(line):
		b.lines[c.Row] = append(line[:c.Col], line[c.Col+1:]...)
	case c.Row < len(b.lines)-1:
		b.joinNext(c.Row)
	}

	b.cursor = c
}

// DeleteBackward removes the character before at.Col. At column zero of a
// line that is not the first, the line is joined onto the previous one and
// the cursor moves to the join point. At (0,0) it does nothing.
func (b *Buffer) DeleteBackward(at *Cursor) {
	c := b.resolve("delete backward", at)

	switch {
	case c.Col > 0:
		line := b.lines[c.Row]
		b.lines[c.Row] = append(line[:c.Col-1], line[c.Col:]...)
		c.Col--
	case c.Row > 0:
		prevLen := len(b.lines[c.Row-1])
		b.joinNext(c.Row - 1)
		c = Cursor{Row: c.Row - 1, Col: prevLen}
	}

	b.cursor = c
}

// joinNext appends line row+1 to line row and removes row+1.
func (b *Buffer) joinNext(row int) {
	b.lines[row] = append(b.lines[row], b.lines[row+1]...)
	copy(b.lines[row+1:], b.lines[row+2:])
	b.lines[len(b.lines)-1] = nil
	b.lines = b.lines[:len(b.lines)-1]
}

// MoveLeft moves the cursor one column left, stopping at column zero.
func (b *Buffer) MoveLeft() {
	if b.cursor.Col > 0 {
		b.cursor.Col--
	}
}

// MoveRight moves the cursor one column right, stopping at the end of the
// line.
func (b *Buffer) MoveRight() {
	if b.cursor.Col < len(b.lines[b.cursor.Row]) {
		b.cursor.Col++
	}
}

// MoveUp moves the cursor one row up, clamping the column to the new
// line's length. On the first row it does nothing.
func (b *Buffer) MoveUp() {
	if b.cursor.Row > 0 {
		b.cursor.Row--
		b.clampCol()
	}
}

// MoveDown moves the cursor one row down, clamping the column to the new
// line's length. On the last row it does nothing.
func (b *Buffer) MoveDown() {
	if b.cursor.Row < len(b.lines)-1 {
		b.cursor.Row++
		b.clampCol()
	}
}

func (b *Buffer) clampCol() {
	if n := len(b.lines[b.cursor.Row]); b.cursor.Col > n {
		b.cursor.Col = n
	}
}
