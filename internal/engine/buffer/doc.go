// Package buffer provides the document model edited by the editor core: an
// ordered, never-empty sequence of lines and the cursor that addresses it.
//
// Lines are stored as rune slices. Columns count runes, not bytes or display
// cells; wide and combining characters occupy one column each.
//
// Basic usage:
//
//	buf := buffer.NewFromString("hello")
//	buf.SetCursor(buffer.Cursor{Row: 0, Col: 2})
//	buf.InsertLineBreak(nil) // ["he", "llo"], cursor (1,0)
//	buf.DeleteBackward(nil)  // ["hello"], cursor (0,2)
//
// Every edit primitive takes an optional explicit position. A nil position
// means the current cursor. After each primitive the cursor is left at the
// resulting edit point, so the invariant
//
//	0 <= Row < LineCount()
//	0 <= Col <= LineLen(Row)
//
// holds after every operation regardless of which position was edited.
//
// Passing a position that violates this invariant is a programming error:
// the primitive panics with an *InvariantError rather than clamping.
//
// The buffer is not safe for concurrent use. It is owned by a single
// goroutine, the editor's run loop.
package buffer
