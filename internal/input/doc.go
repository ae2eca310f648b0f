// Package input turns key presses into editor actions.
//
// Terminal key events are first normalized into key.Event values by
// FromTcell, then a Keymap resolves each event to an Action: either one of
// the engine's editing commands or an application action such as save or
// quit. The mapping for editing keys is fixed; the application bindings are
// configurable through key specifications like "<C-s>".
//
//	km, err := input.NewKeymap(input.DefaultBindings())
//	action := km.Resolve(input.FromTcell(ev))
//	if action.Kind == input.ActionEdit {
//	    session.Apply(action.Command)
//	}
package input
