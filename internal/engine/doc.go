// Package engine provides the editing session at the core of rite.
//
// A Session owns exactly one text buffer and one cursor and applies editing
// commands to them. It is the only way the rest of the editor mutates the
// document: input handling turns key presses into Commands, the session
// applies them, and the renderer reads the result through the session's
// read-only accessors between commands.
//
// # Architecture
//
// The engine is built on two sub-packages:
//
//   - buffer: rune-addressed text storage with an incremental line index
//   - cursor: a single cursor with offset, line, column, and sticky column
//
// # Commands
//
// The command set is fixed:
//
//	insert_char(r)   InsertChar(r)
//	insert_newline   InsertNewline()
//	delete_backward  DeleteBackward()
//	move_left        MoveLeft()
//	move_right       MoveRight()
//	move_up          MoveUp()
//	move_down        MoveDown()
//
// Commands never fail. Boundary conditions (moving past either end, deleting
// at the start) are defined no-ops.
//
// # Basic Usage
//
//	s := engine.New(engine.WithContent("ab"))
//
//	s.MoveRight()
//	s.InsertChar('X')   // "aXb", cursor (0:2)
//	s.InsertNewline()   // "aX\nb", cursor (1:0)
//
//	line, col := s.CursorPosition()
//
// # Verification
//
// WithVerify makes the session re-derive the cursor's line and column from
// scratch after every command and panic on any mismatch. It is meant for tests
// and debug runs; the check is linear in the document size.
//
// # Thread Safety
//
// Session is not safe for concurrent use. One goroutine applies commands and
// reads state; rendering must happen between commands, never during one.
package engine
