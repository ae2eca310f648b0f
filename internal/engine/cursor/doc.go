// Package cursor tracks a single edit position inside a text buffer.
//
// A Cursor keeps four synchronized coordinates, all measured in runes:
//
//   - Offset: absolute position in [0, Len()]
//   - Line: number of line breaks before Offset
//   - Column: runes between the start of the current line and Offset
//   - DesiredColumn: the sticky column vertical movement aims for
//
// Offset is canonical. Line and Column are a cached view of it, updated
// incrementally by every movement and edit so that readers get them without
// rescanning the buffer. Recompute derives the same view from scratch and
// Verify compares the two; both exist for testing and debug sessions.
//
// Movement Model:
//
// Horizontal moves and edits set DesiredColumn to the resulting Column.
// Vertical moves read DesiredColumn, clamp it to the destination line, and
// leave it untouched, so moving down through a short line and back up
// restores the original column.
//
// Boundaries never produce errors:
//
//   - MoveLeft at offset 0 and MoveRight at the end are no-ops
//   - MoveDown on the last line is a no-op
//   - MoveUp on line 0 moves to the start of the buffer
//   - DeleteBackward at offset 0 is a no-op
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("ab")
//	var c cursor.Cursor
//
//	c.MoveRight(buf)          // (0:1)
//	c.Insert(buf, 'X')        // "aXb", (0:2)
//	c.Insert(buf, '\n')       // "aX\nb", (1:0)
//	c.DeleteBackward(buf)     // "aXb", (0:2)
//
// The cursor does not keep a reference to the text between calls. Every
// operation receives the Text it works on, so a cursor can never observe a
// stale copy of the content.
//
// Thread Safety:
//
// Cursor is not safe for concurrent use and must be driven from the same
// goroutine that mutates the buffer.
package cursor
