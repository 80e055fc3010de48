package mode

// Mode identifies an editing mode.
type Mode uint8

// Editing modes.
const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeVisualLine
	ModeVisualBlock
	ModeCommand
	ModeReplace
	ModeOperatorPending
)

// String returns the mode identifier (e.g., "normal", "visual_line").
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInsert:
		return "insert"
	case ModeVisual:
		return "visual"
	case ModeVisualLine:
		return "visual_line"
	case ModeVisualBlock:
		return "visual_block"
	case ModeCommand:
		return "command"
	case ModeReplace:
		return "replace"
	case ModeOperatorPending:
		return "operator_pending"
	default:
		return "unknown"
	}
}

// DisplayName returns the human-readable mode name for a status line.
func (m Mode) DisplayName() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeVisualLine:
		return "VISUAL LINE"
	case ModeVisualBlock:
		return "VISUAL BLOCK"
	case ModeCommand:
		return "COMMAND"
	case ModeReplace:
		return "REPLACE"
	case ModeOperatorPending:
		return "O-PENDING"
	default:
		return ""
	}
}

// IsVisual returns true for the three visual sub-modes.
func (m Mode) IsVisual() bool {
	return m == ModeVisual || m == ModeVisualLine || m == ModeVisualBlock
}

// CursorStyle returns the cursor style for the mode.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case ModeInsert, ModeCommand:
		return CursorBar
	case ModeReplace, ModeOperatorPending:
		return CursorUnderline
	default:
		return CursorBlock
	}
}

// CursorStyle defines the visual appearance of the cursor.
type CursorStyle uint8

const (
	// CursorBlock is a full-cell block cursor (normal mode).
	CursorBlock CursorStyle = iota

	// CursorBar is a thin vertical bar cursor (insert mode).
	CursorBar

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns a human-readable cursor style name.
func (c CursorStyle) String() string {
	switch c {
	case CursorBlock:
		return "block"
	case CursorBar:
		return "bar"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}
