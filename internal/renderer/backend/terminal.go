package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/mode"
)

// Terminal implements Backend using tcell.
type Terminal struct {
	screen        tcell.Screen
	resizeHandler func(width, height int)
	mu            sync.Mutex
}

// NewTerminal creates a terminal backend on the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{screen: screen}, nil
}

// NewTerminalWithScreen wraps an existing screen, such as a
// tcell.SimulationScreen.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.screen.EnablePaste()
	return nil
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Fini()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

// OnResize registers a callback run from PollEvent on resize.
func (t *Terminal) OnResize(callback func(width, height int)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.resizeHandler = callback
}

func (t *Terminal) SetText(x, y int, text string, style Style) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	ts := convertStyle(style)
	width, height := t.screen.Size()
	if y < 0 || y >= height {
		return 0
	}

	start := x
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := g.Width()
		if x+w > width {
			break
		}
		runes := g.Runes()
		if x >= 0 {
			t.screen.SetContent(x, y, runes[0], runes[1:], ts)
		}
		x += w
	}
	return x - start
}

func (t *Terminal) ClearLine(y int, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ts := convertStyle(style)
	width, _ := t.screen.Size()
	for x := 0; x < width; x++ {
		t.screen.SetContent(x, y, ' ', nil, ts)
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.HideCursor()
}

func (t *Terminal) SetCursorStyle(style mode.CursorStyle) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var tcellStyle tcell.CursorStyle
	switch style {
	case mode.CursorBar:
		tcellStyle = tcell.CursorStyleSteadyBar
	case mode.CursorUnderline:
		tcellStyle = tcell.CursorStyleSteadyUnderline
	default:
		tcellStyle = tcell.CursorStyleSteadyBlock
	}
	t.screen.SetCursorStyle(tcellStyle)
}

func (t *Terminal) PollEvent() Event {
	ev := t.screen.PollEvent()
	if ev == nil {
		return Event{Type: EventInterrupt}
	}
	return t.convertEvent(ev)
}

func (t *Terminal) Interrupt() {
	_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil)) // queue may be full
}

// convertEvent converts tcell events to our Event type.
func (t *Terminal) convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		keys := key.FromTcell(e)
		if len(keys) == 0 {
			return Event{Type: EventNone}
		}
		return Event{Type: EventKey, Keys: keys}

	case *tcell.EventResize:
		w, h := e.Size()
		t.mu.Lock()
		handler := t.resizeHandler
		t.mu.Unlock()
		if handler != nil {
			handler(w, h)
		}
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}
	}
	return Event{Type: EventNone}
}

// convertStyle converts our Style to tcell.Style.
func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault
	if s.Foreground != ColorDefault {
		style = style.Foreground(tcell.PaletteColor(int(s.Foreground)))
	}
	if s.Background != ColorDefault {
		style = style.Background(tcell.PaletteColor(int(s.Background)))
	}
	if s.Bold {
		style = style.Bold(true)
	}
	if s.Reverse {
		style = style.Reverse(true)
	}
	return style
}
