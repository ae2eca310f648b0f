package cursor

import (
	"errors"
	"fmt"

	"github.com/dshills/rite/internal/engine/buffer"
)

// Point is an alias for buffer.Point for convenience.
type Point = buffer.Point

// ErrInconsistent indicates the cursor's cached line/column no longer match
// its offset.
var ErrInconsistent = errors.New("cursor coordinates inconsistent with offset")

// Text is the view of a buffer a cursor needs to move and edit.
// *buffer.Buffer satisfies it.
type Text interface {
	Len() int
	RuneAt(pos int) rune
	LineCount() int
	LineStart(line int) int
	LineLen(line int) int
	InsertAt(pos int, r rune)
	RemoveAt(pos int) rune
}

// Cursor is a single insertion point with a sticky desired column.
// The zero value is a cursor at the start of the buffer.
type Cursor struct {
	offset        int
	line          int
	column        int
	desiredColumn int
}

// Offset returns the cursor's absolute rune offset.
func (c *Cursor) Offset() int {
	return c.offset
}

// Line returns the 0-indexed line the cursor is on.
func (c *Cursor) Line() int {
	return c.line
}

// Column returns the cursor's rune offset within its line.
func (c *Cursor) Column() int {
	return c.column
}

// DesiredColumn returns the column vertical movement aims for.
func (c *Cursor) DesiredColumn() int {
	return c.desiredColumn
}

// Point returns the cursor's line/column position.
func (c *Cursor) Point() Point {
	return Point{Line: c.line, Column: c.column}
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor(%d %d:%d want=%d)", c.offset, c.line, c.column, c.desiredColumn)
}

// Horizontal movement

// MoveLeft moves one rune towards the start of the buffer. Moving left from
// column 0 lands at the end of the previous line.
func (c *Cursor) MoveLeft(t Text) {
	if c.offset == 0 {
		return
	}
	c.offset--
	if c.column == 0 {
		c.line--
		c.column = t.LineLen(c.line)
	} else {
		c.column--
	}
	c.desiredColumn = c.column
}

// MoveRight moves one rune towards the end of the buffer. Moving over a line
// break lands at column 0 of the next line.
func (c *Cursor) MoveRight(t Text) {
	if c.offset >= t.Len() {
		return
	}
	r := t.RuneAt(c.offset)
	c.offset++
	if r == '\n' {
		c.line++
		c.column = 0
	} else {
		c.column++
	}
	c.desiredColumn = c.column
}

// Vertical movement

// MoveDown moves to the next line, aiming for the desired column.
// On the last line it does nothing.
func (c *Cursor) MoveDown(t Text) {
	if c.line >= t.LineCount()-1 {
		return
	}
	c.moveToLine(t, c.line+1)
}

// MoveUp moves to the previous line, aiming for the desired column.
// On line 0 it moves to the start of the buffer.
func (c *Cursor) MoveUp(t Text) {
	if c.line == 0 {
		c.offset = 0
		c.column = 0
		return
	}
	c.moveToLine(t, c.line-1)
}

// moveToLine places the cursor on line at the desired column clamped to the
// line's length. desiredColumn is left as is.
func (c *Cursor) moveToLine(t Text, line int) {
	c.column = min(c.desiredColumn, t.LineLen(line))
	c.offset = t.LineStart(line) + c.column
	c.line = line
}

// MoveTo places the cursor at p, clamping the line to the text and the column
// to the line's length. It counts as a horizontal move.
func (c *Cursor) MoveTo(t Text, p Point) {
	line := min(max(p.Line, 0), t.LineCount()-1)
	c.line = line
	c.column = min(max(p.Column, 0), t.LineLen(line))
	c.offset = t.LineStart(line) + c.column
	c.desiredColumn = c.column
}

// Editing

// Insert inserts r at the cursor and leaves the cursor after it.
// Inserting '\n' moves the cursor to column 0 of the new line.
func (c *Cursor) Insert(t Text, r rune) {
	t.InsertAt(c.offset, r)
	c.MoveRight(t)
}

// DeleteBackward removes the rune before the cursor and returns it.
// At offset 0 nothing is removed and ok is false.
func (c *Cursor) DeleteBackward(t Text) (r rune, ok bool) {
	if c.offset == 0 {
		return 0, false
	}
	c.MoveLeft(t)
	return t.RemoveAt(c.offset), true
}

// Verification

// Recompute derives the line/column of offset by scanning t from the start.
// It is linear in offset and intended for verification only.
func Recompute(t Text, offset int) Point {
	var p Point
	for i := 0; i < offset; i++ {
		if t.RuneAt(i) == '\n' {
			p.Line++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	return p
}

// InconsistencyError reports a cursor whose cached coordinates drifted from
// the ones derived from its offset.
type InconsistencyError struct {
	Offset int
	Len    int
	Cached Point
	Actual Point
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("cursor at %d (len %d): cached %v, actual %v", e.Offset, e.Len, e.Cached, e.Actual)
}

func (e *InconsistencyError) Unwrap() error {
	return ErrInconsistent
}

// Verify checks that the cursor lies within t and that its cached line and
// column equal the ones recomputed from its offset.
func (c *Cursor) Verify(t Text) error {
	n := t.Len()
	if c.offset < 0 || c.offset > n {
		return &InconsistencyError{Offset: c.offset, Len: n, Cached: c.Point(), Actual: Point{Line: -1, Column: -1}}
	}
	actual := Recompute(t, c.offset)
	if actual != c.Point() {
		return &InconsistencyError{Offset: c.offset, Len: n, Cached: c.Point(), Actual: actual}
	}
	if c.column > t.LineLen(c.line) {
		return &InconsistencyError{Offset: c.offset, Len: n, Cached: c.Point(), Actual: actual}
	}
	return nil
}
