package mode

import (
	"fmt"

	"github.com/samber/mo"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/macro"
	"github.com/dshills/modal/internal/input/vim"
)

// Resolve completes a two-step command with the key that follows it.
// Escape cancels the command being composed.
func Resolve(s *State, await Await, k byte, mods key.Modifier) KeyResult {
	if await.IsZero() {
		return ProcessKey(s, k, mods)
	}
	if s.mode == ModeNormal || s.mode == ModeOperatorPending {
		s.trackKey(k, mods)
	}

	if key.IsEscape(k, mods) {
		s.ResetOperator()
		return handled()
	}

	switch await.Kind {
	case AwaitRegister:
		if !s.SelectRegister(k) {
			return invalid(s, fmt.Sprintf("invalid register: %q", k))
		}
		return KeyResult{Handled: true, Register: s.register, RegisterAppend: s.registerAppend}

	case AwaitFindChar:
		m, _ := vim.MotionFromChar(await.Key)
		forward, before := m.FindDirection()
		s.setFind(k, forward, before)
		return motionResult(s, m, mo.Some(k))

	case AwaitMarkJump:
		m, _ := vim.MotionFromChar(await.Key)
		return motionResult(s, m, mo.Some(k))

	case AwaitMarkSet:
		return s.finish(KeyResult{Action: ActionSetMark, Char: mo.Some(k)})

	case AwaitMacroRecord:
		r, ok := vim.RegisterFromChar(k)
		if !ok || !macro.IsValidRegister(r) {
			return invalid(s, fmt.Sprintf("invalid macro register: %q", k))
		}
		return s.finish(KeyResult{
			Action:         ActionRecordMacro,
			Register:       mo.Some(r),
			RegisterAppend: vim.IsAppendChar(k),
		})

	case AwaitMacroPlay:
		return resolveMacroPlay(s, k)

	case AwaitReplaceChar:
		return s.finish(KeyResult{Action: ActionReplaceChar, Char: mo.Some(k)})

	case AwaitGPrefix:
		return resolveG(s, k)

	case AwaitZPrefix:
		return resolveZ(s, k)

	case AwaitTextObject:
		prefix, _ := vim.TextObjectPrefixFromChar(await.Key)
		obj, ok := vim.TextObjectFromChars(prefix, k)
		if !ok {
			s.ResetOperator()
			return notHandled()
		}
		return s.finish(KeyResult{Action: ActionSelectTextObject, TextObject: mo.Some(obj)})
	}

	s.ResetOperator()
	return notHandled()
}

// ResolveEvent is Resolve for a key.Event.
func ResolveEvent(s *State, await Await, ev key.Event) KeyResult {
	return Resolve(s, await, ev.Key, ev.Modifiers)
}

func resolveMacroPlay(s *State, k byte) KeyResult {
	if k == '@' {
		r, ok := s.Macros.LastPlayed()
		if !ok {
			return invalid(s, "no previously used register")
		}
		return s.finish(KeyResult{Action: ActionPlayMacro, Register: mo.Some(r)})
	}

	r, ok := vim.RegisterFromChar(k)
	if !ok || !macro.IsValidRegister(r) {
		return invalid(s, fmt.Sprintf("invalid macro register: %q", k))
	}
	return s.finish(KeyResult{Action: ActionPlayMacro, Register: mo.Some(r)})
}

// resolveG handles the key after g: motions (gg, ge, g_), operators
// (gu, gU, g~, gc) and their line-wise doubling (gugu).
func resolveG(s *State, k byte) KeyResult {
	if m, ok := vim.GMotionFromChar(k); ok {
		return motionResult(s, m, mo.None[byte]())
	}

	if op, ok := vim.GOperatorFromChar(k); ok {
		switch {
		case s.mode == ModeOperatorPending && op == s.operator:
			return completeOperator(s, KeyResult{Motion: mo.Some(vim.MotionCurrentLine)})
		case s.mode == ModeNormal:
			s.EnterOperatorPending(op)
			return handled()
		case s.mode.IsVisual():
			return visualOperator(s, op)
		}
	}

	s.ResetOperator()
	return notHandled()
}

// resolveZ handles the key after z: scrolling and the fold operator.
func resolveZ(s *State, k byte) KeyResult {
	switch k {
	case 'z', '.':
		return s.finish(KeyResult{Action: ActionScrollCenter})
	case 't', key.KeyEnter:
		return s.finish(KeyResult{Action: ActionScrollTop})
	case 'b', '-':
		return s.finish(KeyResult{Action: ActionScrollBottom})
	}

	if op, ok := vim.ZOperatorFromChar(k); ok {
		switch {
		case s.mode == ModeNormal:
			s.EnterOperatorPending(op)
			return handled()
		case s.mode.IsVisual():
			return visualOperator(s, op)
		}
	}

	s.ResetOperator()
	return notHandled()
}

// invalid aborts the command with a diagnostic.
func invalid(s *State, msg string) KeyResult {
	s.ResetOperator()
	return KeyResult{Handled: true, ErrorMsg: mo.Some(msg)}
}
