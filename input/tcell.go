package input

import "github.com/gdamore/tcell/v2"

var tcellKeys = map[tcell.Key]Key{
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyCtrlC:      KeyCtrlC,
}

// FromTcell translates a tcell key event; unmapped keys become KeyNone
func FromTcell(ev *tcell.EventKey) KeyEvent {
	out := KeyEvent{Mod: fromTcellMod(ev.Modifiers())}

	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			out.Key = KeySpace
			return out
		}
		out.Key = KeyRune
		out.Rune = ev.Rune()
		return out
	}

	if k, ok := tcellKeys[ev.Key()]; ok {
		out.Key = k
	}
	return out
}

func fromTcellMod(m tcell.ModMask) Modifier {
	var out Modifier
	if m&tcell.ModShift != 0 {
		out |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= ModMeta
	}
	return out
}
