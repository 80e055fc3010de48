package mode

import (
	"github.com/rivo/uniseg"
	"github.com/samber/mo"

	"github.com/dshills/modal/internal/input/key"
)

// exCommands maps the supported command lines to actions.
var exCommands = map[string]Action{
	"w":  ActionSave,
	"q":  ActionQuit,
	"wq": ActionSaveQuit,
	"x":  ActionSaveQuit,
	"q!": ActionForceQuit,
}

func handleCommand(s *State, k byte, mods key.Modifier) KeyResult {
	switch {
	case key.IsEscape(k, mods):
		return KeyResult{Handled: true, Action: ActionEnterNormal, NewMode: mo.Some(ModeNormal)}

	case key.IsEnter(k):
		return executeCommandLine(s)

	case key.IsBackspace(k):
		if len(s.commandBuffer) == 0 {
			return KeyResult{Handled: true, Action: ActionEnterNormal, NewMode: mo.Some(ModeNormal)}
		}
		s.commandBuffer = trimLastGrapheme(s.commandBuffer)
		return handled()

	case mods.HasCtrl():
		if k == 'u' {
			s.commandBuffer = s.commandBuffer[:0]
			return handled()
		}
		return notHandled()

	case key.IsPrintable(k):
		s.commandBuffer = append(s.commandBuffer, k)
		return handled()
	}
	return notHandled()
}

// executeCommandLine runs the typed line and returns to normal mode.
func executeCommandLine(s *State) KeyResult {
	line := string(s.commandBuffer)
	r := KeyResult{Handled: true, NewMode: mo.Some(ModeNormal), Count: 1}
	if line == "" {
		return r
	}

	s.Registers.SetLastCommand(line)
	if a, ok := exCommands[line]; ok {
		r.Action = a
		return r
	}
	r.ErrorMsg = mo.Some("not an editor command: " + line)
	return r
}

// trimLastGrapheme removes the last user-perceived character from b.
func trimLastGrapheme(b []byte) []byte {
	var last, pos int
	rest := b
	state := -1
	for len(rest) > 0 {
		var cluster []byte
		cluster, rest, _, state = uniseg.FirstGraphemeCluster(rest, state)
		last = pos
		pos += len(cluster)
	}
	return b[:last]
}
