// Package statusline provides the mode line and command line of the trace view.
package statusline

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/modal/internal/input/mode"
	"github.com/dshills/modal/internal/renderer/backend"
)

// StatusLine renders the bottom status line including mode display and command input.
type StatusLine struct {
	mode      mode.Mode
	pending   string // keys of an unfinished command, e.g. "2d"
	recording string // register of the macro being recorded

	commandLine string

	message     string
	messageType MessageType

	modeStyles map[mode.Mode]backend.Style

	width int
}

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageError
)

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		mode:       mode.ModeNormal,
		modeStyles: defaultModeStyles(),
	}
}

func defaultModeStyles() map[mode.Mode]backend.Style {
	bold := backend.DefaultStyle().WithBold()
	visual := bold.WithBackground(backend.ColorMagenta).WithForeground(backend.ColorWhite)
	return map[mode.Mode]backend.Style{
		mode.ModeNormal:          bold.WithBackground(backend.ColorBlue).WithForeground(backend.ColorWhite),
		mode.ModeInsert:          bold.WithBackground(backend.ColorGreen).WithForeground(backend.ColorBlack),
		mode.ModeVisual:          visual,
		mode.ModeVisualLine:      visual,
		mode.ModeVisualBlock:     visual,
		mode.ModeCommand:         bold.WithBackground(backend.ColorYellow).WithForeground(backend.ColorBlack),
		mode.ModeReplace:         bold.WithBackground(backend.ColorRed).WithForeground(backend.ColorWhite),
		mode.ModeOperatorPending: bold.WithBackground(backend.ColorCyan).WithForeground(backend.ColorBlack),
	}
}

// SetMode updates the displayed mode.
func (s *StatusLine) SetMode(m mode.Mode) {
	s.mode = m
}

// SetPending shows the keys of an unfinished command.
func (s *StatusLine) SetPending(keys string) {
	s.pending = keys
}

// SetRecording shows the macro register being recorded; empty hides it.
func (s *StatusLine) SetRecording(register string) {
	s.recording = register
}

// SetCommandLine updates the text typed after ":".
func (s *StatusLine) SetCommandLine(text string) {
	s.commandLine = text
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Height returns the number of rows the status line uses.
func (s *StatusLine) Height() int {
	if s.mode == mode.ModeCommand || s.message != "" {
		return 2
	}
	return 1
}

// Render draws the status line with its last row at row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	switch {
	case s.mode == mode.ModeCommand:
		s.renderStatusBar(b, row-1)
		s.renderCommandLine(b, row)
	case s.message != "":
		s.renderStatusBar(b, row-1)
		s.renderMessage(b, row)
	default:
		s.renderStatusBar(b, row)
	}
}

// renderStatusBar renders the mode indicator, recording state and
// pending keys.
func (s *StatusLine) renderStatusBar(b backend.Backend, row int) {
	modeStyle, ok := s.modeStyles[s.mode]
	if !ok {
		modeStyle = backend.DefaultStyle().WithBold()
	}
	barStyle := backend.DefaultStyle().WithBackground(backend.ColorBlack).WithForeground(backend.ColorWhite)

	b.ClearLine(row, barStyle)

	col := b.SetText(0, row, " "+s.mode.DisplayName()+" ", modeStyle)
	if s.recording != "" {
		col += b.SetText(col, row, " recording @"+s.recording, barStyle)
	}

	if s.pending != "" {
		start := s.width - uniseg.StringWidth(s.pending) - 1
		if start > col {
			b.SetText(start, row, s.pending, barStyle)
		}
	}
	b.SetCursorStyle(s.mode.CursorStyle())
}

// renderCommandLine renders the command input line.
func (s *StatusLine) renderCommandLine(b backend.Backend, row int) {
	cmdStyle := backend.DefaultStyle()
	b.ClearLine(row, cmdStyle)

	n := b.SetText(0, row, ":", cmdStyle)
	n += b.SetText(n, row, s.commandLine, cmdStyle)
	b.ShowCursor(n, row)
}

// renderMessage renders a status message.
func (s *StatusLine) renderMessage(b backend.Backend, row int) {
	msgStyle := backend.DefaultStyle()
	if s.messageType == MessageError {
		msgStyle = msgStyle.WithForeground(backend.ColorRed).WithBold()
	}

	b.ClearLine(row, backend.DefaultStyle())
	b.SetText(0, row, s.message, msgStyle)
}
