package engine

import (
	"github.com/dshills/rite/internal/engine/buffer"
	"github.com/dshills/rite/internal/engine/cursor"
)

// Re-export commonly used types for convenience.
type (
	// Point represents a line/column position.
	Point = buffer.Point

	// RevisionID identifies a buffer revision.
	RevisionID = buffer.RevisionID
)

// Session is one editing session: a buffer, the cursor inside it, and the
// commands that change them.
type Session struct {
	buf    *buffer.Buffer
	cur    cursor.Cursor
	verify bool

	initContent string
}

// New creates a new Session with the given options.
// The cursor starts at the beginning of the buffer.
func New(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	s.buf = buffer.NewBufferFromString(s.initContent)
	s.initContent = ""
	return s
}

// ============================================================================
// Commands
// ============================================================================

// Apply applies a single command. It never fails.
func (s *Session) Apply(cmd Command) {
	switch cmd.Kind {
	case CmdInsertChar:
		s.cur.Insert(s.buf, cmd.Rune)
	case CmdInsertNewline:
		s.cur.Insert(s.buf, '\n')
	case CmdDeleteBackward:
		s.cur.DeleteBackward(s.buf)
	case CmdMoveLeft:
		s.cur.MoveLeft(s.buf)
	case CmdMoveRight:
		s.cur.MoveRight(s.buf)
	case CmdMoveUp:
		s.cur.MoveUp(s.buf)
	case CmdMoveDown:
		s.cur.MoveDown(s.buf)
	case CmdNone:
		return
	}
	s.check()
}

// check panics if verification is enabled and the cursor drifted.
func (s *Session) check() {
	if !s.verify {
		return
	}
	if err := s.cur.Verify(s.buf); err != nil {
		panic(err)
	}
}

// InsertChar inserts r at the cursor.
func (s *Session) InsertChar(r rune) { s.Apply(InsertChar(r)) }

// InsertNewline inserts a line break at the cursor.
func (s *Session) InsertNewline() { s.Apply(InsertNewline()) }

// DeleteBackward removes the rune before the cursor, if any.
func (s *Session) DeleteBackward() { s.Apply(DeleteBackward()) }

// MoveLeft moves the cursor one rune left.
func (s *Session) MoveLeft() { s.Apply(MoveLeft()) }

// MoveRight moves the cursor one rune right.
func (s *Session) MoveRight() { s.Apply(MoveRight()) }

// MoveUp moves the cursor one line up.
func (s *Session) MoveUp() { s.Apply(MoveUp()) }

// MoveDown moves the cursor one line down.
func (s *Session) MoveDown() { s.Apply(MoveDown()) }

// InsertString inserts s rune by rune, the way typed text arrives.
// Line breaks go through InsertNewline.
func (s *Session) InsertString(text string) {
	for _, r := range text {
		if r == '\n' {
			s.InsertNewline()
			continue
		}
		s.InsertChar(r)
	}
}

// MoveTo places the cursor at p, clamped to the document.
func (s *Session) MoveTo(p Point) {
	s.cur.MoveTo(s.buf, p)
	s.check()
}

// ============================================================================
// Read Operations
// ============================================================================

// Content returns a copy of the whole document.
func (s *Session) Content() []rune {
	return s.buf.Runes()
}

// Text returns the whole document as a string.
func (s *Session) Text() string {
	return s.buf.Text()
}

// Len returns the document length in runes.
func (s *Session) Len() int {
	return s.buf.Len()
}

// LineCount returns the number of lines.
func (s *Session) LineCount() int {
	return s.buf.LineCount()
}

// Line returns a copy of the given line without its line break.
func (s *Session) Line(n int) []rune {
	return s.buf.Line(n)
}

// CursorPosition returns the cursor's line and column.
func (s *Session) CursorPosition() (line, column int) {
	return s.cur.Line(), s.cur.Column()
}

// CursorOffset returns the cursor's absolute rune offset.
func (s *Session) CursorOffset() int {
	return s.cur.Offset()
}

// DesiredColumn returns the column vertical movement aims for.
func (s *Session) DesiredColumn() int {
	return s.cur.DesiredColumn()
}

// Revision returns the buffer revision. It changes whenever an edit
// command modifies the document.
func (s *Session) Revision() RevisionID {
	return s.buf.Revision()
}

// Verify checks the cursor against a from-scratch recomputation.
func (s *Session) Verify() error {
	return s.cur.Verify(s.buf)
}
