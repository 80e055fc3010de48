package mode

import (
	"github.com/samber/mo"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/vim"
)

// visualOperators maps keys that apply an operator to the selection.
var visualOperators = map[byte]vim.Operator{
	'd': vim.OpDelete,
	'x': vim.OpDelete,
	'c': vim.OpChange,
	's': vim.OpChange,
	'y': vim.OpYank,
	'>': vim.OpIndentRight,
	'<': vim.OpIndentLeft,
	'=': vim.OpFormat,
	'!': vim.OpFilter,
	'u': vim.OpLowercase,
	'U': vim.OpUppercase,
	'~': vim.OpSwapCase,
}

// visualToggles maps the keys that switch between visual sub-modes.
var visualToggles = map[byte]struct {
	mode   Mode
	action Action
}{
	'v': {ModeVisual, ActionEnterVisual},
	'V': {ModeVisualLine, ActionEnterVisualLine},
}

func handleVisual(s *State, k byte, mods key.Modifier) KeyResult {
	if key.IsEscape(k, mods) {
		return exitVisual(s)
	}

	if mods.IsModified() {
		if k == 'v' && ctrlOnly(mods) {
			return toggleVisual(s, ModeVisualBlock, ActionEnterVisualBlock)
		}
		s.ResetOperator()
		return notHandled()
	}

	if accumulateCount(&s.count, k) {
		return handled()
	}

	if t, ok := visualToggles[k]; ok {
		return toggleVisual(s, t.mode, t.action)
	}

	switch k {
	case '"':
		return awaiting(AwaitRegister, k)
	case 'i', 'a':
		return awaiting(AwaitTextObject, k)
	case 'g':
		return awaiting(AwaitGPrefix, k)
	case 'z':
		return awaiting(AwaitZPrefix, k)
	case ';':
		return repeatFind(s, false)
	case ',':
		return repeatFind(s, true)
	case ':':
		return s.finish(KeyResult{Action: ActionEnterCommand, NewMode: mo.Some(ModeCommand)})
	case 'J':
		return s.finish(KeyResult{Action: ActionJoinLines, NewMode: mo.Some(ModeNormal)})
	case 'p':
		return s.finish(KeyResult{Action: ActionPutAfter, NewMode: mo.Some(ModeNormal)})
	case 'P':
		return s.finish(KeyResult{Action: ActionPutBefore, NewMode: mo.Some(ModeNormal)})
	}

	if m, ok := vim.MotionFromChar(k); ok {
		return normalMotion(s, m, k)
	}

	if op, ok := visualOperators[k]; ok {
		return visualOperator(s, op)
	}

	s.ResetOperator()
	return notHandled()
}

// visualOperator applies op to the selection and leaves visual mode.
func visualOperator(s *State, op vim.Operator) KeyResult {
	next := ModeNormal
	if op.EntersInsert() {
		next = ModeInsert
	}
	return s.finish(KeyResult{
		Action:   ActionForOperator(op),
		Operator: mo.Some(op),
		NewMode:  mo.Some(next),
	})
}

// toggleVisual leaves visual mode if already in m, otherwise switches to m.
func toggleVisual(s *State, m Mode, a Action) KeyResult {
	if s.mode == m {
		return exitVisual(s)
	}
	return s.finish(KeyResult{Action: a, NewMode: mo.Some(m)})
}

func exitVisual(s *State) KeyResult {
	s.ResetOperator()
	return KeyResult{Handled: true, Action: ActionEnterNormal, NewMode: mo.Some(ModeNormal)}
}
