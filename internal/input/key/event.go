package key

import "fmt"

// Raw byte values for keys with dedicated handling in the engine.
const (
	KeyNone      byte = 0
	KeyBackspace byte = 127
	KeyCtrlH     byte = 8 // legacy terminals send ^H for backspace
	KeyTab       byte = '\t'
	KeyNewline   byte = '\n'
	KeyEnter     byte = '\r'
	KeyEscape    byte = 27
	KeySpace     byte = ' '
)

// Event is a single key press: one byte and the active modifiers.
type Event struct {
	// Key is the byte for the key. Ctrl combinations carry the plain
	// character ('r' for Ctrl-R) with ModCtrl set.
	Key byte

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewEvent creates a key event.
func NewEvent(k byte, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// Ctrl creates a Ctrl-modified key event.
func Ctrl(k byte) Event {
	return Event{Key: k, Modifiers: ModCtrl}
}

// IsEscape reports whether the event aborts composition: raw Escape,
// Ctrl-[ or Ctrl-C.
func (e Event) IsEscape() bool {
	return IsEscape(e.Key, e.Modifiers)
}

// IsEscape reports whether k with mods is Escape or an Escape equivalent.
func IsEscape(k byte, mods Modifier) bool {
	if k == KeyEscape {
		return true
	}
	return mods.HasCtrl() && (k == '[' || k == 'c')
}

// IsEnter reports whether k is a line terminator.
func IsEnter(k byte) bool {
	return k == KeyEnter || k == KeyNewline
}

// IsBackspace reports whether k erases the previous character.
func IsBackspace(k byte) bool {
	return k == KeyBackspace || k == KeyCtrlH
}

// IsPrintable reports whether k is text: ASCII graphic characters,
// space, or a byte belonging to a UTF-8 sequence.
func IsPrintable(k byte) bool {
	return (k >= 0x20 && k < 0x7f) || k >= 0x80
}

// IsModified returns true if Ctrl, Alt or Super is pressed.
// Shift alone is part of the character itself.
func (e Event) IsModified() bool {
	return e.Modifiers.IsModified()
}

// String returns the Vim notation for the event.
func (e Event) String() string {
	return Format([]Event{e})
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %q, Modifiers: %s}", e.Key, e.Modifiers.String())
}
