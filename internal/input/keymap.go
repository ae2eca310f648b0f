package input

import (
	"fmt"

	"github.com/dshills/rite/internal/engine"
	"github.com/dshills/rite/internal/input/key"
)

// Bindings lists the key specifications for application actions.
// Each field accepts anything key.Parse understands.
type Bindings struct {
	Save []string
	Quit []string
}

// DefaultBindings returns the default application key bindings.
func DefaultBindings() Bindings {
	return Bindings{
		Save: []string{"<C-s>"},
		Quit: []string{"<C-q>"},
	}
}

// Keymap resolves key events to actions.
type Keymap struct {
	app map[key.Event]ActionKind
}

// NewKeymap builds a keymap from application bindings.
func NewKeymap(b Bindings) (*Keymap, error) {
	km := &Keymap{app: make(map[key.Event]ActionKind)}
	if err := km.bind(ActionSave, b.Save); err != nil {
		return nil, err
	}
	if err := km.bind(ActionQuit, b.Quit); err != nil {
		return nil, err
	}
	return km, nil
}

func (km *Keymap) bind(kind ActionKind, specs []string) error {
	for _, spec := range specs {
		ev, err := key.Parse(spec)
		if err != nil {
			return fmt.Errorf("binding %s to %q: %w", kind, spec, err)
		}
		if prev, ok := km.app[ev]; ok && prev != kind {
			return fmt.Errorf("binding %s to %q: already bound to %s", kind, spec, prev)
		}
		km.app[ev] = kind
	}
	return nil
}

// Resolve maps a key event to an action. Application bindings take
// precedence over editing keys.
func (km *Keymap) Resolve(ev key.Event) Action {
	if kind, ok := km.app[ev]; ok {
		return Action{Kind: kind}
	}

	switch ev.Key {
	case key.KeyLeft:
		return edit(engine.MoveLeft())
	case key.KeyRight:
		return edit(engine.MoveRight())
	case key.KeyUp:
		return edit(engine.MoveUp())
	case key.KeyDown:
		return edit(engine.MoveDown())
	case key.KeyBackspace:
		return edit(engine.DeleteBackward())
	case key.KeyEnter:
		return edit(engine.InsertNewline())
	case key.KeyTab:
		return edit(engine.InsertChar('\t'))
	case key.KeyRune:
		if ev.IsChar() && !ev.IsModified() {
			return edit(engine.InsertChar(ev.Rune))
		}
	}
	return Action{}
}

// ResolveAll resolves a sequence of events, dropping those that map to
// nothing.
func (km *Keymap) ResolveAll(events []key.Event) []Action {
	actions := make([]Action, 0, len(events))
	for _, ev := range events {
		if a := km.Resolve(ev); a.Kind != ActionNone {
			actions = append(actions, a)
		}
	}
	return actions
}
