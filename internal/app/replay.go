package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/dshills/rite/internal/input/key"
)

// Replay feeds a key script to the document without a terminal, then
// writes the resulting text followed by a line with the 1-based cursor
// position and the rune count:
//
//	hello
//	world
//	-- 2:3 (11 chars)
//
// Scripts use key notation: literal characters plus tokens such as <Left>,
// <CR>, <BS> and <C-s>. A quit binding ends the script early.
func (app *Application) Replay(script string, w io.Writer) error {
	events, err := key.ParseScript(script)
	if err != nil {
		return NewOperationError("replay", "", err)
	}
	app.logger.Debug("replaying %d keys", len(events))

	for _, a := range app.keymap.ResolveAll(events) {
		if err := app.apply(a); err != nil {
			if errors.Is(err, ErrQuit) {
				break
			}
			return err
		}
	}

	s := app.doc.Session
	line, col := s.CursorPosition()
	_, err = fmt.Fprintf(w, "%s\n-- %d:%d (%d chars)\n", s.Text(), line+1, col+1, s.Len())
	return err
}
