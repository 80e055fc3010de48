package mode

// actionTransitions maps actions that imply a mode to the transition
// entering it.
var actionTransitions = map[Action]func(*State){
	ActionEnterNormal:      (*State).EnterNormal,
	ActionEnterInsert:      (*State).EnterInsert,
	ActionAppend:           (*State).EnterInsert,
	ActionInsertLineStart:  (*State).EnterInsert,
	ActionAppendLineEnd:    (*State).EnterInsert,
	ActionOpenLineBelow:    (*State).EnterInsert,
	ActionOpenLineAbove:    (*State).EnterInsert,
	ActionChange:           (*State).EnterInsert,
	ActionEnterVisual:      (*State).EnterVisual,
	ActionEnterVisualLine:  (*State).EnterVisualLine,
	ActionEnterVisualBlock: (*State).EnterVisualBlock,
	ActionEnterCommand:     (*State).EnterCommand,
	ActionEnterReplace:     (*State).EnterReplace,
	ActionSave:             (*State).EnterNormal,
	ActionQuit:             (*State).EnterNormal,
	ActionSaveQuit:         (*State).EnterNormal,
	ActionForceQuit:        (*State).EnterNormal,
}

// Apply performs the mode transition a result calls for. An explicit
// NewMode wins; otherwise the action's implied mode, if any, is entered.
func (s *State) Apply(r KeyResult) {
	if m, ok := r.NewMode.Get(); ok {
		s.EnterMode(m)
		return
	}
	if enter, ok := actionTransitions[r.Action]; ok {
		enter(s)
	}
}

// EnterMode runs the transition for m. Operator-pending mode is only
// entered through EnterOperatorPending and is ignored here.
func (s *State) EnterMode(m Mode) {
	switch m {
	case ModeNormal:
		s.EnterNormal()
	case ModeInsert:
		s.EnterInsert()
	case ModeVisual:
		s.EnterVisual()
	case ModeVisualLine:
		s.EnterVisualLine()
	case ModeVisualBlock:
		s.EnterVisualBlock()
	case ModeCommand:
		s.EnterCommand()
	case ModeReplace:
		s.EnterReplace()
	case ModeOperatorPending:
	}
}
