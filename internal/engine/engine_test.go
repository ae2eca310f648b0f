package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// ============================================================================
// Basic Operations
// ============================================================================

func TestNew(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.Text())
	assert.Equal(t, 1, s.LineCount())

	line, col := s.CursorPosition()
	assert.Equal(t, 0, line)
	assert.Equal(t, 0, col)
}

func TestNewWithContent(t *testing.T) {
	s := New(WithContent("héllo\nwörld"))
	assert.Equal(t, "héllo\nwörld", s.Text())
	assert.Equal(t, 11, s.Len())
	assert.Equal(t, 2, s.LineCount())
	assert.Equal(t, []rune("wörld"), s.Line(1))
	assert.Equal(t, 0, s.CursorOffset())
}

func TestContentIsReadOnlyView(t *testing.T) {
	s := New(WithContent("abc"))
	content := s.Content()
	content[0] = 'z'
	assert.Equal(t, "abc", s.Text())
}

func TestReadsDoNotMutate(t *testing.T) {
	s := New(WithContent("ab\ncd"), WithVerify())
	s.MoveDown()
	rev := s.Revision()

	_ = s.Content()
	_ = s.Text()
	_ = s.Line(1)
	_, _ = s.CursorPosition()

	assert.Equal(t, rev, s.Revision())
	assert.Equal(t, 3, s.CursorOffset())
}

// ============================================================================
// Commands
// ============================================================================

func TestInsertShiftsCoordinates(t *testing.T) {
	s := New(WithContent("ab"), WithVerify())
	s.MoveRight()

	s.InsertChar('X')
	assert.Equal(t, "aXb", s.Text())
	assert.Equal(t, 2, s.CursorOffset())
	assertPosition(t, s, 0, 2)

	s.InsertNewline()
	assert.Equal(t, "aX\nb", s.Text())
	assert.Equal(t, 3, s.CursorOffset())
	assertPosition(t, s, 1, 0)
}

func TestDeleteBackwardUntilEmpty(t *testing.T) {
	s := New(WithContent("abc"), WithVerify())
	for range 3 {
		s.MoveRight()
	}

	s.DeleteBackward()
	assert.Equal(t, "ab", s.Text())
	assert.Equal(t, 2, s.CursorOffset())
	assertPosition(t, s, 0, 2)

	require.NotPanics(t, func() {
		for range 5 {
			s.DeleteBackward()
		}
	})
	assert.Equal(t, "", s.Text())
	assert.Equal(t, 0, s.CursorOffset())
}

func TestStickyColumn(t *testing.T) {
	s := New(WithContent("abcdef\nab\nabcdef"), WithVerify())
	for range 5 {
		s.MoveRight()
	}

	s.MoveDown()
	assertPosition(t, s, 1, 2)
	s.MoveDown()
	assertPosition(t, s, 2, 5)
	s.MoveUp()
	s.MoveUp()
	assertPosition(t, s, 0, 5)
	assert.Equal(t, 5, s.DesiredColumn())
}

func TestBoundaryCommands(t *testing.T) {
	s := New(WithContent("ab\ncd"), WithVerify())

	s.MoveLeft()
	assert.Equal(t, 0, s.CursorOffset())

	s.MoveUp()
	assert.Equal(t, 0, s.CursorOffset())

	s.MoveDown()
	s.MoveDown()
	assertPosition(t, s, 1, 0)

	for range 5 {
		s.MoveRight()
	}
	assert.Equal(t, 5, s.CursorOffset())
	assertPosition(t, s, 1, 2)
}

func TestMoveUpFromFirstLineJumpsToStart(t *testing.T) {
	s := New(WithContent("abcdef"), WithVerify())
	for range 4 {
		s.MoveRight()
	}
	s.MoveUp()
	assert.Equal(t, 0, s.CursorOffset())
	assertPosition(t, s, 0, 0)
}

func TestApplyNone(t *testing.T) {
	s := New(WithContent("ab"))
	rev := s.Revision()
	s.Apply(Command{})
	assert.Equal(t, rev, s.Revision())
	assert.Equal(t, 0, s.CursorOffset())
}

func TestInsertString(t *testing.T) {
	s := New(WithVerify())
	s.InsertString("fn main() {\n\treturn\n}")
	assert.Equal(t, "fn main() {\n\treturn\n}", s.Text())
	assertPosition(t, s, 2, 1)
}

func TestMoveTo(t *testing.T) {
	s := New(WithContent("abc\nde"), WithVerify())
	s.MoveTo(Point{Line: 1, Column: 10})
	assertPosition(t, s, 1, 2)
	assert.Equal(t, 6, s.CursorOffset())
	assert.Equal(t, 2, s.DesiredColumn())
}

func TestVerifyPanicsOnDrift(t *testing.T) {
	s := New(WithContent("ab"), WithVerify())
	s.MoveRight()
	// Mutate the buffer without going through the cursor.
	s.buf.InsertAt(0, '\n')

	assert.Panics(t, func() { s.MoveRight() })
	assert.Error(t, s.Verify())
}

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{InsertChar('x'), `insert_char('x')`},
		{InsertNewline(), "insert_newline"},
		{DeleteBackward(), "delete_backward"},
		{MoveLeft(), "move_left"},
		{MoveRight(), "move_right"},
		{MoveUp(), "move_up"},
		{MoveDown(), "move_down"},
		{Command{Kind: 99}, "CommandKind(99)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cmd.String())
	}

	assert.True(t, CmdDeleteBackward.IsEdit())
	assert.False(t, CmdMoveUp.IsEdit())
}

func TestPropertyCommandsKeepSessionConsistent(t *testing.T) {
	commands := []Command{
		InsertChar('a'), InsertChar('ß'), InsertNewline(), DeleteBackward(),
		MoveLeft(), MoveRight(), MoveUp(), MoveDown(),
	}

	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[xy\n]{0,16}`).Draw(t, "text")
		s := New(WithContent(text), WithVerify())

		seq := rapid.SliceOfN(rapid.SampledFrom(commands), 1, 50).Draw(t, "commands")
		for _, cmd := range seq {
			s.Apply(cmd)
		}

		line, col := s.CursorPosition()
		if line < 0 || line >= s.LineCount() || col < 0 || col > len(s.Line(line)) {
			t.Fatalf("cursor (%d:%d) out of bounds for %q", line, col, s.Text())
		}
	})
}

func assertPosition(t *testing.T, s *Session, line, col int) {
	t.Helper()
	gotLine, gotCol := s.CursorPosition()
	assert.Equal(t, Point{Line: line, Column: col}, Point{Line: gotLine, Column: gotCol})
}
