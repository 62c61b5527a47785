package backend

import "github.com/dshills/keycore/internal/engine/buffer"

// Viewport is the top-left document position shown at screen (0,0).
type Viewport struct {
	Top  int
	Left int
}

// Follow scrolls the viewport the minimum distance that keeps c inside a
// text area of width x height cells.
func (vp *Viewport) Follow(c buffer.Cursor, width, height int) {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}

	if c.Row < vp.Top {
		vp.Top = c.Row
	} else if c.Row >= vp.Top+height {
		vp.Top = c.Row - height + 1
	}

	if c.Col < vp.Left {
		vp.Left = c.Col
	} else if c.Col >= vp.Left+width {
		vp.Left = c.Col - width + 1
	}
}

// Frame is a composed screen: one rune slice per row plus the hardware
// cursor position. Every rune occupies one cell.
type Frame struct {
	Width   int
	Height  int
	Rows    [][]rune
	CursorX int
	CursorY int
}

// Row returns row y as a string with trailing blanks removed.
func (f Frame) Row(y int) string {
	if y < 0 || y >= len(f.Rows) {
		return ""
	}
	row := f.Rows[y]
	end := len(row)
	for end > 0 && row[end-1] == ' ' {
		end--
	}
	return string(row[:end])
}

// StatusText returns the status line text for v.
func StatusText(v View) string {
	return "-- " + v.Mode.DisplayName() + " --"
}

// Compose lays v out on a width x height screen. The last row carries the
// status line; the rows above show the document through vp, which is
// scrolled to keep the cursor visible.
func Compose(v View, vp *Viewport, width, height int) Frame {
	f := Frame{Width: width, Height: height}
	if width <= 0 || height <= 0 {
		return f
	}

	f.Rows = make([][]rune, height)
	for y := range f.Rows {
		row := make([]rune, width)
		for x := range row {
			row[x] = ' '
		}
		f.Rows[y] = row
	}

	textHeight := height - 1
	if textHeight > 0 {
		vp.Follow(v.Cursor, width, textHeight)
		for y := 0; y < textHeight; y++ {
			line := vp.Top + y
			if line >= len(v.Lines) {
				break
			}
			runes := []rune(v.Lines[line])
			if vp.Left < len(runes) {
				copy(f.Rows[y], runes[vp.Left:])
			}
		}
		f.CursorX = v.Cursor.Col - vp.Left
		f.CursorY = v.Cursor.Row - vp.Top
	}

	copy(f.Rows[height-1], []rune(StatusText(v)))
	return f
}
