package engine

import "fmt"

// CommandKind identifies one of the editing commands a Session accepts.
type CommandKind uint8

const (
	// CmdNone is the zero command and does nothing.
	CmdNone CommandKind = iota
	// CmdInsertChar inserts Command.Rune at the cursor.
	CmdInsertChar
	// CmdInsertNewline inserts a line break at the cursor.
	CmdInsertNewline
	// CmdDeleteBackward removes the rune before the cursor.
	CmdDeleteBackward
	// CmdMoveLeft moves the cursor one rune left.
	CmdMoveLeft
	// CmdMoveRight moves the cursor one rune right.
	CmdMoveRight
	// CmdMoveUp moves the cursor one line up.
	CmdMoveUp
	// CmdMoveDown moves the cursor one line down.
	CmdMoveDown
)

var commandNames = [...]string{
	CmdNone:           "none",
	CmdInsertChar:     "insert_char",
	CmdInsertNewline:  "insert_newline",
	CmdDeleteBackward: "delete_backward",
	CmdMoveLeft:       "move_left",
	CmdMoveRight:      "move_right",
	CmdMoveUp:         "move_up",
	CmdMoveDown:       "move_down",
}

// String returns the command's name.
func (k CommandKind) String() string {
	if int(k) < len(commandNames) {
		return commandNames[k]
	}
	return fmt.Sprintf("CommandKind(%d)", k)
}

// IsEdit returns true if the command mutates the buffer.
func (k CommandKind) IsEdit() bool {
	switch k {
	case CmdInsertChar, CmdInsertNewline, CmdDeleteBackward:
		return true
	default:
		return false
	}
}

// Command is a single editing request. Rune is used only by CmdInsertChar.
type Command struct {
	Kind CommandKind
	Rune rune
}

// String returns a human-readable representation of the command.
func (c Command) String() string {
	if c.Kind == CmdInsertChar {
		return fmt.Sprintf("%s(%q)", c.Kind, c.Rune)
	}
	return c.Kind.String()
}

// InsertChar returns a command inserting r.
func InsertChar(r rune) Command { return Command{Kind: CmdInsertChar, Rune: r} }

// InsertNewline returns a command inserting a line break.
func InsertNewline() Command { return Command{Kind: CmdInsertNewline} }

// DeleteBackward returns a command deleting the rune before the cursor.
func DeleteBackward() Command { return Command{Kind: CmdDeleteBackward} }

// MoveLeft returns a command moving the cursor left.
func MoveLeft() Command { return Command{Kind: CmdMoveLeft} }

// MoveRight returns a command moving the cursor right.
func MoveRight() Command { return Command{Kind: CmdMoveRight} }

// MoveUp returns a command moving the cursor up.
func MoveUp() Command { return Command{Kind: CmdMoveUp} }

// MoveDown returns a command moving the cursor down.
func MoveDown() Command { return Command{Kind: CmdMoveDown} }
