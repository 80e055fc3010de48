package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModSuper indicates the Super key (Cmd on macOS, Win on Windows).
	ModSuper
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasSuper returns true if Super is pressed.
func (m Modifier) HasSuper() bool {
	return m.Has(ModSuper)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// IsModified returns true if Ctrl, Alt or Super is set.
// Shift alone is part of the character itself.
func (m Modifier) IsModified() bool {
	return m.Has(ModCtrl | ModAlt | ModSuper)
}

// String returns a human-readable representation like "Ctrl+Alt".
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}

	var parts []string
	if m.HasCtrl() {
		parts = append(parts, "Ctrl")
	}
	if m.HasAlt() {
		parts = append(parts, "Alt")
	}
	if m.HasShift() {
		parts = append(parts, "Shift")
	}
	if m.HasSuper() {
		parts = append(parts, "Super")
	}
	return strings.Join(parts, "+")
}

// notationPrefix returns the Vim notation prefix such as "C-" or "C-A-".
func (m Modifier) notationPrefix() string {
	var b strings.Builder
	if m.HasCtrl() {
		b.WriteString("C-")
	}
	if m.HasAlt() {
		b.WriteString("A-")
	}
	if m.HasShift() {
		b.WriteString("S-")
	}
	if m.HasSuper() {
		b.WriteString("D-")
	}
	return b.String()
}

// modifierNotation maps single-letter notation names to modifiers.
var modifierNotation = map[string]Modifier{
	"c": ModCtrl,
	"a": ModAlt,
	"m": ModAlt,
	"s": ModShift,
	"d": ModSuper, // Vim uses D for command/super
}
