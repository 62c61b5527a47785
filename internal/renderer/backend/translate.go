package backend

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keycore/internal/input/key"
)

// namedKeys maps tcell keys that have a direct key.Key equivalent.
var namedKeys = map[tcell.Key]key.Key{
	tcell.KeyInsert: key.KeyInsert,
	tcell.KeyDelete: key.KeyDelete,
	tcell.KeyHome:   key.KeyHome,
	tcell.KeyEnd:    key.KeyEnd,
	tcell.KeyPgUp:   key.KeyPageUp,
	tcell.KeyPgDn:   key.KeyPageDown,
	tcell.KeyUp:     key.KeyUp,
	tcell.KeyDown:   key.KeyDown,
	tcell.KeyLeft:   key.KeyLeft,
	tcell.KeyRight:  key.KeyRight,
	tcell.KeyPrint:  key.KeyPrintScreen,
	tcell.KeyPause:  key.KeyPause,
}

// translateKey converts a tcell key event into a key.Event.
//
// Enter, Tab, Backspace and Escape share codes with Ctrl+M, Ctrl+I, Ctrl+H
// and Ctrl+[ in tcell; they are translated as the named keys. Keys with no
// equivalent yield an *UnsupportedKeyError.
func translateKey(ev *tcell.EventKey) (key.Event, error) {
	mods := translateMods(ev.Modifiers())
	k := ev.Key()

	switch k {
	case tcell.KeyRune:
		return key.NewRuneEvent(ev.Rune(), mods), nil
	case tcell.KeyEnter:
		return key.NewSpecialEvent(key.KeyEnter, mods.Without(key.ModCtrl)), nil
	case tcell.KeyTab:
		return key.NewSpecialEvent(key.KeyTab, mods.Without(key.ModCtrl)), nil
	case tcell.KeyBacktab:
		return key.NewSpecialEvent(key.KeyTab, mods.With(key.ModShift)), nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return key.NewSpecialEvent(key.KeyBackspace, mods.Without(key.ModCtrl)), nil
	case tcell.KeyEscape:
		return key.NewSpecialEvent(key.KeyEscape, mods.Without(key.ModCtrl)), nil
	case tcell.KeyCtrlSpace:
		return key.NewRuneEvent(' ', mods.With(key.ModCtrl)), nil
	}

	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		r := 'a' + rune(k-tcell.KeyCtrlA)
		return key.NewRuneEvent(r, mods.With(key.ModCtrl)), nil
	}

	if k >= tcell.KeyF1 && k <= tcell.KeyF64 {
		if fk, ok := key.FunctionKey(int(k-tcell.KeyF1) + 1); ok {
			return key.NewSpecialEvent(fk, mods), nil
		}
	}

	if named, ok := namedKeys[k]; ok {
		return key.NewSpecialEvent(named, mods), nil
	}

	return key.Event{}, &UnsupportedKeyError{Name: ev.Name(), Code: int(k)}
}

// translateMods converts a tcell modifier mask.
func translateMods(m tcell.ModMask) key.Modifier {
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
