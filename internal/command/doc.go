// Package command defines the closed set of editor commands.
//
// A Command is a value: a Kind plus the payload that kind requires (a rune
// for InsertChar, a target mode for Mode). Keymaps resolve key events to
// commands and the editor executes them.
//
// Commands are named in configuration by snake_case identifiers:
//
//	insert_char  <rune>     insert a character at the cursor
//	insert_line             split the line at the cursor
//	delete_char             delete the character under the cursor
//	backspace_char          delete the character before the cursor
//	move_left|move_right|move_up|move_down
//	mode         <mode>     switch to normal, insert or visual
//	quit
//
// The remaining names (save, open, find, find_next, find_prev, undo, redo,
// move_start, move_end, page_up, page_down, word_forward, word_backward) are
// reserved. They parse and can be bound, but the editor reports them as not
// implemented.
package command
