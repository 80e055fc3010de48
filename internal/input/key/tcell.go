package key

import (
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// FromTcell converts a terminal key event into engine events.
// A rune outside ASCII yields one event per UTF-8 byte. Keys with no byte
// form (arrows, function keys) yield nil.
func FromTcell(ev *tcell.EventKey) []Event {
	if ev == nil {
		return nil
	}
	mods := convertMod(ev.Modifiers())

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		r := ev.Rune()
		if r < utf8.RuneSelf {
			k := byte(r)
			if mods.HasCtrl() && k >= 'A' && k <= 'Z' {
				k += 'a' - 'A'
			}
			return []Event{{Key: k, Modifiers: mods.Without(ModShift)}}
		}
		buf := make([]byte, utf8.RuneLen(r))
		utf8.EncodeRune(buf, r)
		events := make([]Event, len(buf))
		for i, b := range buf {
			events[i] = Event{Key: b}
		}
		return events
	case tcell.KeyEscape:
		return []Event{{Key: KeyEscape}}
	case tcell.KeyEnter:
		return []Event{{Key: KeyEnter}}
	case tcell.KeyTab:
		return []Event{{Key: KeyTab}}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return []Event{{Key: KeyBackspace}}
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			letter := byte('a' + (k - tcell.KeyCtrlA))
			return []Event{{Key: letter, Modifiers: mods.With(ModCtrl).Without(ModShift)}}
		}
		if k == tcell.KeyCtrlRightSq {
			return []Event{{Key: ']', Modifiers: ModCtrl}}
		}
	}
	return nil
}

// convertMod converts tcell modifiers to Modifier.
func convertMod(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods = mods.With(ModShift)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(ModCtrl)
	}
	if m&tcell.ModAlt != 0 {
		mods = mods.With(ModAlt)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(ModSuper)
	}
	return mods
}
