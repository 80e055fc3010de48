package mode

import (
	"github.com/samber/mo"

	"github.com/dshills/modal/internal/input/key"
)

// handleInsert covers insert and replace mode. Only Escape is consumed;
// every other key goes back to the caller to insert or overwrite.
func handleInsert(s *State, k byte, mods key.Modifier) KeyResult {
	if s.changeActive {
		s.lastChange = append(s.lastChange, key.Event{Key: k, Modifiers: mods})
	}

	if key.IsEscape(k, mods) {
		s.changeActive = false
		return KeyResult{Handled: true, Action: ActionEnterNormal, NewMode: mo.Some(ModeNormal)}
	}
	return KeyResult{Char: mo.Some(k)}
}
