package mode

import (
	"github.com/samber/mo"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/vim"
)

func handleOperatorPending(s *State, k byte, mods key.Modifier) KeyResult {
	if key.IsEscape(k, mods) {
		s.ResetOperator()
		return KeyResult{Handled: true, NewMode: mo.Some(ModeNormal)}
	}
	if mods.IsModified() {
		s.ResetOperator()
		return notHandled()
	}

	if s.textObjectPrefix != vim.PrefixNone {
		obj, ok := vim.TextObjectFromChars(s.textObjectPrefix, k)
		if !ok {
			s.ResetOperator()
			return notHandled()
		}
		return completeOperator(s, KeyResult{TextObject: mo.Some(obj)})
	}

	if accumulateCount(&s.count2, k) {
		return handled()
	}

	if k == s.operator.DoubleKey() {
		return completeOperator(s, KeyResult{Motion: mo.Some(vim.MotionCurrentLine)})
	}

	if prefix, ok := vim.TextObjectPrefixFromChar(k); ok {
		s.textObjectPrefix = prefix
		return handled()
	}

	if m, ok := vim.MotionFromChar(k); ok {
		return normalMotion(s, m, k)
	}
	if m, ok := vim.SearchMotionFromChar(k); ok {
		return completeOperator(s, KeyResult{Motion: mo.Some(m)})
	}

	switch k {
	case ';':
		return repeatFind(s, false)
	case ',':
		return repeatFind(s, true)
	case 'g':
		return awaiting(AwaitGPrefix, k)
	}

	s.ResetOperator()
	return notHandled()
}
