package mode

import (
	"github.com/samber/mo"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/vim"
)

// normalCtrl maps Ctrl combinations in normal mode to actions.
var normalCtrl = map[byte]Action{
	'r': ActionRedo,
	'e': ActionScrollLineDown,
	'y': ActionScrollLineUp,
	'd': ActionScrollHalfPageDown,
	'u': ActionScrollHalfPageUp,
	'f': ActionScrollPageDown,
	'b': ActionScrollPageUp,
	'o': ActionJumpBack,
	'i': ActionJumpForward,
	'v': ActionEnterVisualBlock,
}

// normalSimple maps keys that complete a command on their own.
var normalSimple = map[byte]Action{
	'i': ActionEnterInsert,
	'a': ActionAppend,
	'I': ActionInsertLineStart,
	'A': ActionAppendLineEnd,
	'o': ActionOpenLineBelow,
	'O': ActionOpenLineAbove,
	'v': ActionEnterVisual,
	'V': ActionEnterVisualLine,
	':': ActionEnterCommand,
	'R': ActionEnterReplace,
	'p': ActionPutAfter,
	'P': ActionPutBefore,
	'u': ActionUndo,
	'J': ActionJoinLines,
	'.': ActionRepeatLast,
	'/': ActionSearchForward,
	'?': ActionSearchBackward,
	'n': ActionSearchNext,
	'N': ActionSearchPrev,
	'*': ActionSearchWordForward,
	'#': ActionSearchWordBackward,

	key.KeyTab: ActionJumpForward,
}

// normalShorthand maps keys that stand for an operator over a fixed motion.
var normalShorthand = map[byte]struct {
	op     vim.Operator
	motion vim.Motion
}{
	'x': {vim.OpDelete, vim.MotionCharRight},
	'X': {vim.OpDelete, vim.MotionCharLeft},
	's': {vim.OpChange, vim.MotionCharRight},
	'S': {vim.OpChange, vim.MotionCurrentLine},
	'D': {vim.OpDelete, vim.MotionLineEnd},
	'C': {vim.OpChange, vim.MotionLineEnd},
	'Y': {vim.OpYank, vim.MotionCurrentLine},
}

// normalAwait maps keys that take one more key.
var normalAwait = map[byte]AwaitKind{
	'"': AwaitRegister,
	'@': AwaitMacroPlay,
	'm': AwaitMarkSet,
	'r': AwaitReplaceChar,
	'g': AwaitGPrefix,
	'z': AwaitZPrefix,
}

func handleNormal(s *State, k byte, mods key.Modifier) KeyResult {
	if key.IsEscape(k, mods) {
		s.ResetOperator()
		return handled()
	}

	if mods.IsModified() {
		if a, ok := normalCtrl[k]; ok && ctrlOnly(mods) {
			return s.finish(KeyResult{Action: a})
		}
		s.ResetOperator()
		return notHandled()
	}

	if accumulateCount(&s.count, k) {
		return handled()
	}

	if kind, ok := normalAwait[k]; ok {
		return awaiting(kind, k)
	}

	if m, ok := vim.MotionFromChar(k); ok {
		return normalMotion(s, m, k)
	}
	switch k {
	case ';':
		return repeatFind(s, false)
	case ',':
		return repeatFind(s, true)
	}

	// Doubling ("dd") completes in operator-pending mode.
	if op, ok := vim.OperatorFromChar(k); ok {
		s.EnterOperatorPending(op)
		return handled()
	}

	if sh, ok := normalShorthand[k]; ok {
		return operatorResult(s, sh.op, sh.motion)
	}

	if k == 'q' {
		if r, ok := s.Macros.Recording(); ok {
			return s.finish(KeyResult{Action: ActionRecordMacro, Register: mo.Some(r)})
		}
		return awaiting(AwaitMacroRecord, k)
	}

	if a, ok := normalSimple[k]; ok {
		return s.finish(KeyResult{Action: a})
	}

	s.ResetOperator()
	return notHandled()
}

// ctrlOnly reports whether Ctrl is held without Alt or Super.
func ctrlOnly(mods key.Modifier) bool {
	return mods.HasCtrl() && !mods.Has(key.ModAlt|key.ModSuper)
}

// normalMotion handles a motion key in normal or operator-pending mode.
func normalMotion(s *State, m vim.Motion, k byte) KeyResult {
	switch {
	case m.IsFindChar():
		return awaiting(AwaitFindChar, k)
	case m.IsMark():
		return awaiting(AwaitMarkJump, k)
	}
	return motionResult(s, m, mo.None[byte]())
}
