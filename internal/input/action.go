package input

import (
	"fmt"

	"github.com/dshills/rite/internal/engine"
)

// ActionKind categorizes what an input event asks the editor to do.
type ActionKind uint8

const (
	// ActionNone means the event is ignored.
	ActionNone ActionKind = iota
	// ActionEdit carries an engine command.
	ActionEdit
	// ActionSave writes the document to disk.
	ActionSave
	// ActionQuit exits the editor.
	ActionQuit
)

// String returns a string representation of the action kind.
func (k ActionKind) String() string {
	switch k {
	case ActionEdit:
		return "edit"
	case ActionSave:
		return "save"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Action is the result of resolving a key event.
type Action struct {
	Kind    ActionKind
	Command engine.Command // set when Kind is ActionEdit
}

// String returns a human-readable representation of the action.
func (a Action) String() string {
	if a.Kind == ActionEdit {
		return fmt.Sprintf("edit:%s", a.Command)
	}
	return a.Kind.String()
}

func edit(cmd engine.Command) Action {
	return Action{Kind: ActionEdit, Command: cmd}
}
