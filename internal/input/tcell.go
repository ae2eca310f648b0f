package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/rite/internal/input/key"
)

// FromTcell converts a tcell key event into a key.Event.
// Control characters reported as dedicated tcell keys (KeyCtrlA..KeyCtrlZ)
// come back as Ctrl-modified rune events so bindings like "<C-s>" match
// regardless of how the terminal encoded them.
func FromTcell(ev *tcell.EventKey) key.Event {
	mods := convertMod(ev.Modifiers())

	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		r := ev.Rune()
		if mods.HasCtrl() {
			r = unicode.ToLower(r)
		}
		return key.NewRuneEvent(r, mods)
	case k == tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods)
	case k == tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods)
	case k == tcell.KeyBackspace, k == tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods)
	case k == tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods)
	case k == tcell.KeyDelete:
		return key.NewSpecialEvent(key.KeyDelete, mods)
	case k == tcell.KeyHome:
		return key.NewSpecialEvent(key.KeyHome, mods)
	case k == tcell.KeyEnd:
		return key.NewSpecialEvent(key.KeyEnd, mods)
	case k == tcell.KeyUp:
		return key.NewSpecialEvent(key.KeyUp, mods)
	case k == tcell.KeyDown:
		return key.NewSpecialEvent(key.KeyDown, mods)
	case k == tcell.KeyLeft:
		return key.NewSpecialEvent(key.KeyLeft, mods)
	case k == tcell.KeyRight:
		return key.NewSpecialEvent(key.KeyRight, mods)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl))
	}

	return key.Event{}
}

// convertMod converts tcell modifiers to key modifiers.
func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	return mods
}
