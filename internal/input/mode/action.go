package mode

import "github.com/dshills/modal/internal/input/vim"

// Action is an intent the caller executes against its buffer or session.
type Action uint8

// Actions.
const (
	ActionNone Action = iota
	ActionMoveCursor

	// Mode entry
	ActionEnterNormal
	ActionEnterInsert
	ActionAppend
	ActionInsertLineStart
	ActionAppendLineEnd
	ActionOpenLineBelow
	ActionOpenLineAbove
	ActionEnterVisual
	ActionEnterVisualLine
	ActionEnterVisualBlock
	ActionEnterCommand
	ActionEnterReplace

	// Editing
	ActionDelete
	ActionChange
	ActionYank
	ActionPutAfter
	ActionPutBefore
	ActionUndo
	ActionRedo
	ActionRepeatLast
	ActionIndentRight
	ActionIndentLeft
	ActionJoinLines
	ActionReplaceChar

	// Search
	ActionSearchForward
	ActionSearchBackward
	ActionSearchNext
	ActionSearchPrev
	ActionSearchWordForward
	ActionSearchWordBackward

	// Scrolling
	ActionScrollLineUp
	ActionScrollLineDown
	ActionScrollHalfPageUp
	ActionScrollHalfPageDown
	ActionScrollPageUp
	ActionScrollPageDown
	ActionScrollCenter
	ActionScrollTop
	ActionScrollBottom

	// Jumps and marks
	ActionJumpBack
	ActionJumpForward
	ActionSetMark
	ActionSelectTextObject

	// File commands
	ActionSave
	ActionQuit
	ActionSaveQuit
	ActionForceQuit

	// Macros
	ActionRecordMacro
	ActionPlayMacro

	actionCount
)

var actionNames = [actionCount]string{
	ActionNone:               "none",
	ActionMoveCursor:         "move_cursor",
	ActionEnterNormal:        "enter_normal",
	ActionEnterInsert:        "enter_insert",
	ActionAppend:             "append",
	ActionInsertLineStart:    "insert_line_start",
	ActionAppendLineEnd:      "append_line_end",
	ActionOpenLineBelow:      "open_line_below",
	ActionOpenLineAbove:      "open_line_above",
	ActionEnterVisual:        "enter_visual",
	ActionEnterVisualLine:    "enter_visual_line",
	ActionEnterVisualBlock:   "enter_visual_block",
	ActionEnterCommand:       "enter_command",
	ActionEnterReplace:       "enter_replace",
	ActionDelete:             "delete",
	ActionChange:             "change",
	ActionYank:               "yank",
	ActionPutAfter:           "put_after",
	ActionPutBefore:          "put_before",
	ActionUndo:               "undo",
	ActionRedo:               "redo",
	ActionRepeatLast:         "repeat_last",
	ActionIndentRight:        "indent_right",
	ActionIndentLeft:         "indent_left",
	ActionJoinLines:          "join_lines",
	ActionReplaceChar:        "replace_char",
	ActionSearchForward:      "search_forward",
	ActionSearchBackward:     "search_backward",
	ActionSearchNext:         "search_next",
	ActionSearchPrev:         "search_prev",
	ActionSearchWordForward:  "search_word_forward",
	ActionSearchWordBackward: "search_word_backward",
	ActionScrollLineUp:       "scroll_line_up",
	ActionScrollLineDown:     "scroll_line_down",
	ActionScrollHalfPageUp:   "scroll_half_page_up",
	ActionScrollHalfPageDown: "scroll_half_page_down",
	ActionScrollPageUp:       "scroll_page_up",
	ActionScrollPageDown:     "scroll_page_down",
	ActionScrollCenter:       "scroll_center",
	ActionScrollTop:          "scroll_top",
	ActionScrollBottom:       "scroll_bottom",
	ActionJumpBack:           "jump_back",
	ActionJumpForward:        "jump_forward",
	ActionSetMark:            "set_mark",
	ActionSelectTextObject:   "select_text_object",
	ActionSave:               "save",
	ActionQuit:               "quit",
	ActionSaveQuit:           "save_quit",
	ActionForceQuit:          "force_quit",
	ActionRecordMacro:        "record_macro",
	ActionPlayMacro:          "play_macro",
}

// String returns the action identifier.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "unknown"
}

// ActionForOperator maps an operator to the action that executes it.
// Operators without a dedicated action map to ActionNone; callers read
// them from KeyResult.Operator.
func ActionForOperator(op vim.Operator) Action {
	switch op {
	case vim.OpDelete:
		return ActionDelete
	case vim.OpChange:
		return ActionChange
	case vim.OpYank:
		return ActionYank
	case vim.OpIndentRight:
		return ActionIndentRight
	case vim.OpIndentLeft:
		return ActionIndentLeft
	}
	return ActionNone
}

// EntersInsert returns true if executing the action leaves the caller in
// insert or replace mode.
func (a Action) EntersInsert() bool {
	switch a {
	case ActionEnterInsert, ActionAppend, ActionInsertLineStart, ActionAppendLineEnd,
		ActionOpenLineBelow, ActionOpenLineAbove, ActionEnterReplace, ActionChange:
		return true
	}
	return false
}

// ModifiesBuffer returns true if the action changes buffer text.
func (a Action) ModifiesBuffer() bool {
	if a.EntersInsert() {
		return true
	}
	switch a {
	case ActionDelete, ActionPutAfter, ActionPutBefore, ActionIndentRight,
		ActionIndentLeft, ActionJoinLines, ActionReplaceChar:
		return true
	}
	return false
}

// IsFileCommand returns true for the ex commands :w, :q, :wq and :q!.
func (a Action) IsFileCommand() bool {
	return a >= ActionSave && a <= ActionForceQuit
}
