package statusline

import (
	"strings"
	"testing"

	"github.com/dshills/modal/internal/input/mode"
	"github.com/dshills/modal/internal/renderer/backend"
)

func newStatusLine(width int) *StatusLine {
	s := New()
	s.Resize(width)
	return s
}

func TestStatusBar(t *testing.T) {
	tests := []struct {
		name string
		mode mode.Mode
		want string
	}{
		{"normal", mode.ModeNormal, " NORMAL"},
		{"insert", mode.ModeInsert, " INSERT"},
		{"visual line", mode.ModeVisualLine, " VISUAL LINE"},
		{"operator pending", mode.ModeOperatorPending, " O-PENDING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := backend.NewNullBackend(40, 3)
			s := newStatusLine(40)
			s.SetMode(tt.mode)
			s.Render(b, 2)

			if got := b.Line(2); got != tt.want {
				t.Errorf("status bar = %q, want %q", got, tt.want)
			}
			if b.CursorStyle() != tt.mode.CursorStyle() {
				t.Errorf("cursor style = %v, want %v", b.CursorStyle(), tt.mode.CursorStyle())
			}
			if s.Height() != 1 {
				t.Errorf("height = %d, want 1", s.Height())
			}
		})
	}
}

func TestStatusBarModeStyle(t *testing.T) {
	b := backend.NewNullBackend(20, 1)
	s := newStatusLine(20)
	s.SetMode(mode.ModeInsert)
	s.Render(b, 0)

	if got := b.StyleAt(1, 0); got.Background != backend.ColorGreen || !got.Bold {
		t.Errorf("mode style = %+v", got)
	}
	if got := b.StyleAt(15, 0); got.Background != backend.ColorBlack {
		t.Errorf("bar style = %+v", got)
	}
}

func TestStatusBarRecordingAndPending(t *testing.T) {
	b := backend.NewNullBackend(40, 1)
	s := newStatusLine(40)
	s.SetRecording("q")
	s.SetPending("2d")
	s.Render(b, 0)

	line := b.Line(0)
	if !strings.HasPrefix(line, " NORMAL  recording @q") {
		t.Errorf("status bar = %q", line)
	}
	if !strings.HasSuffix(line, "2d") {
		t.Errorf("pending keys missing: %q", line)
	}
	if idx := strings.Index(line, "2d"); idx != 37 {
		t.Errorf("pending at column %d, want 37", idx)
	}

	s.SetRecording("")
	s.SetPending("")
	s.Render(b, 0)
	if got := b.Line(0); got != " NORMAL" {
		t.Errorf("status bar = %q", got)
	}
}

func TestCommandLine(t *testing.T) {
	b := backend.NewNullBackend(30, 4)
	s := newStatusLine(30)
	s.SetMode(mode.ModeCommand)
	s.SetCommandLine("wq")

	if s.Height() != 2 {
		t.Errorf("height = %d, want 2", s.Height())
	}
	s.Render(b, 3)

	if got := b.Line(2); got != " COMMAND" {
		t.Errorf("status bar = %q", got)
	}
	if got := b.Line(3); got != ":wq" {
		t.Errorf("command line = %q", got)
	}
	x, y, visible := b.Cursor()
	if x != 3 || y != 3 || !visible {
		t.Errorf("cursor = (%d, %d, %v), want (3, 3, true)", x, y, visible)
	}
}

func TestMessage(t *testing.T) {
	b := backend.NewNullBackend(40, 2)
	s := newStatusLine(40)
	s.SetMessage("not an editor command: foo", MessageError)
	s.Render(b, 1)

	if got := b.Line(0); got != " NORMAL" {
		t.Errorf("status bar = %q", got)
	}
	if got := b.Line(1); got != "not an editor command: foo" {
		t.Errorf("message = %q", got)
	}
	if got := b.StyleAt(0, 1); got.Foreground != backend.ColorRed {
		t.Errorf("message style = %+v", got)
	}

	s.ClearMessage()
	if s.Height() != 1 {
		t.Errorf("height after ClearMessage = %d", s.Height())
	}
}
