package backend

import (
	"strings"
	"sync"

	"github.com/rivo/uniseg"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/mode"
)

// NullBackend is an in-memory Backend for tests and headless runs. Keys
// are fed with PostKeys.
type NullBackend struct {
	mu            sync.Mutex
	width, height int
	cells         [][]string
	styles        [][]Style
	cursorX       int
	cursorY       int
	cursorVisible bool
	cursorStyle   mode.CursorStyle
	shows         int
	events        chan Event
	closed        bool
}

// NewNullBackend creates a blank width x height screen.
func NewNullBackend(width, height int) *NullBackend {
	b := &NullBackend{
		width:  width,
		height: height,
		events: make(chan Event, 64),
	}
	b.clear()
	return b
}

func (b *NullBackend) Init() error { return nil }

func (b *NullBackend) Shutdown() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.events)
	}
}

func (b *NullBackend) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *NullBackend) SetText(x, y int, text string, style Style) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y < 0 || y >= b.height {
		return 0
	}
	start := x
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := g.Width()
		if x+w > b.width {
			break
		}
		if x >= 0 {
			b.cells[y][x] = g.Str()
			b.styles[y][x] = style
			for i := 1; i < w; i++ {
				b.cells[y][x+i] = ""
			}
		}
		x += w
	}
	return x - start
}

func (b *NullBackend) ClearLine(y int, style Style) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y < 0 || y >= b.height {
		return
	}
	for x := range b.cells[y] {
		b.cells[y][x] = " "
		b.styles[y][x] = style
	}
}

func (b *NullBackend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.clear()
}

func (b *NullBackend) clear() {
	b.cells = make([][]string, b.height)
	b.styles = make([][]Style, b.height)
	for y := range b.cells {
		b.cells[y] = make([]string, b.width)
		b.styles[y] = make([]Style, b.width)
		for x := range b.cells[y] {
			b.cells[y][x] = " "
			b.styles[y][x] = DefaultStyle()
		}
	}
}

func (b *NullBackend) Show() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.shows++
}

func (b *NullBackend) ShowCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX, b.cursorY, b.cursorVisible = x, y, true
}

func (b *NullBackend) HideCursor() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorVisible = false
}

func (b *NullBackend) SetCursorStyle(style mode.CursorStyle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorStyle = style
}

func (b *NullBackend) PollEvent() Event {
	ev, ok := <-b.events
	if !ok {
		return Event{Type: EventInterrupt}
	}
	return ev
}

func (b *NullBackend) Interrupt() {
	b.post(Event{Type: EventInterrupt})
}

// PostKeys queues one key event per key.
func (b *NullBackend) PostKeys(keys ...key.Event) {
	for _, k := range keys {
		b.post(Event{Type: EventKey, Keys: []key.Event{k}})
	}
}

func (b *NullBackend) post(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.closed {
		b.events <- ev
	}
}

// Line returns row y with trailing blanks removed.
func (b *NullBackend) Line(y int) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y < 0 || y >= b.height {
		return ""
	}
	return strings.TrimRight(strings.Join(b.cells[y], ""), " ")
}

// StyleAt returns the style of the cell at x, y.
func (b *NullBackend) StyleAt(x, y int) Style {
	b.mu.Lock()
	defer b.mu.Unlock()

	if y < 0 || y >= b.height || x < 0 || x >= b.width {
		return DefaultStyle()
	}
	return b.styles[y][x]
}

// Cursor returns the cursor position and whether it is shown.
func (b *NullBackend) Cursor() (x, y int, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorX, b.cursorY, b.cursorVisible
}

// CursorStyle returns the last cursor style set.
func (b *NullBackend) CursorStyle() mode.CursorStyle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cursorStyle
}

// Shows returns how many times Show was called.
func (b *NullBackend) Shows() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.shows
}
