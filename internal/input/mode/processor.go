package mode

import (
	"github.com/samber/mo"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/vim"
)

// ProcessKey feeds one key to the engine and returns the resulting intent.
func ProcessKey(s *State, k byte, mods key.Modifier) KeyResult {
	switch s.mode {
	case ModeNormal:
		s.trackKey(k, mods)
		return handleNormal(s, k, mods)
	case ModeOperatorPending:
		s.trackKey(k, mods)
		return handleOperatorPending(s, k, mods)
	case ModeVisual, ModeVisualLine, ModeVisualBlock:
		return handleVisual(s, k, mods)
	case ModeCommand:
		return handleCommand(s, k, mods)
	case ModeInsert, ModeReplace:
		return handleInsert(s, k, mods)
	}
	return notHandled()
}

// ProcessEvent is ProcessKey for a key.Event.
func ProcessEvent(s *State, ev key.Event) KeyResult {
	return ProcessKey(s, ev.Key, ev.Modifiers)
}

// motionResult completes a motion: a cursor move, or the pending operator
// applied over it.
func motionResult(s *State, m vim.Motion, arg mo.Option[byte]) KeyResult {
	r := KeyResult{Motion: mo.Some(m), Char: arg}
	if s.mode == ModeOperatorPending {
		return completeOperator(s, r)
	}
	r.Action = ActionMoveCursor
	return s.finish(r)
}

// completeOperator applies the pending operator over r's motion or text
// object and resets composition.
func completeOperator(s *State, r KeyResult) KeyResult {
	op := s.operator
	r.Action = ActionForOperator(op)
	r.Operator = mo.Some(op)
	return s.finish(r)
}

// operatorResult is a shorthand command (x, D, Y, ...) acting like op
// over m.
func operatorResult(s *State, op vim.Operator, m vim.Motion) KeyResult {
	return s.finish(KeyResult{
		Action:   ActionForOperator(op),
		Operator: mo.Some(op),
		Motion:   mo.Some(m),
	})
}

// repeatFind replays the remembered find-char motion; reverse flips its
// direction (,).
func repeatFind(s *State, reverse bool) KeyResult {
	c, forward, before, ok := s.LastFind()
	if !ok {
		s.ResetOperator()
		return handled()
	}
	if reverse {
		forward = !forward
	}
	return motionResult(s, vim.FindMotion(forward, before), mo.Some(c))
}

// accumulateCount adds a digit to the count typed before or after the
// operator.
func accumulateCount(n *int, c byte) bool {
	if c == '0' && *n == 0 {
		return false
	}
	next, ok := vim.AccumulateDigit(*n, c)
	if ok {
		*n = next
	}
	return ok
}
