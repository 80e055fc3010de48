package key

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors
var (
	ErrEmptySpec        = errors.New("empty key specification")
	ErrInvalidSpec      = errors.New("invalid key specification")
	ErrUnmatchedBracket = errors.New("unmatched bracket in key specification")
)

// specialNames maps bracketed key names (lowercased) to raw bytes.
var specialNames = map[string]byte{
	"esc":       KeyEscape,
	"escape":    KeyEscape,
	"cr":        KeyEnter,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"nl":        KeyNewline,
	"bs":        KeyBackspace,
	"backspace": KeyBackspace,
	"tab":       KeyTab,
	"space":     KeySpace,
	"lt":        '<',
	"bar":       '|',
	"bslash":    '\\',
	"nul":       KeyNone,
}

// Parse parses a single key specification into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Vim-style: "<C-r>", "<A-x>", "<C-S-p>", "<CR>", "<Esc>", "<lt>"
func Parse(spec string) (Event, error) {
	if spec == "" {
		return Event{}, ErrEmptySpec
	}
	if len(spec) == 1 {
		return Event{Key: spec[0]}, nil
	}
	if strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseBracketed(spec[1 : len(spec)-1])
	}
	return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
}

// ParseSequence parses a key string such as "3d2w<Esc>" into events.
// A '<' that does not open a bracketed name is taken literally, so "d<"
// and "<<" parse as plain keys. A name that is well formed but unknown,
// such as "<Escp>", is an error.
func ParseSequence(spec string) ([]Event, error) {
	if spec == "" {
		return nil, ErrEmptySpec
	}

	events := make([]Event, 0, len(spec))
	for i := 0; i < len(spec); i++ {
		c := spec[i]
		if c != '<' {
			events = append(events, Event{Key: c})
			continue
		}

		end := strings.IndexByte(spec[i+1:], '>')
		if end < 0 {
			events = append(events, Event{Key: c})
			continue
		}
		inner := spec[i+1 : i+1+end]
		ev, err := parseBracketed(inner)
		if err != nil {
			if looksLikeKeyName(inner) {
				return nil, err
			}
			// Not a key name ("<<" or "<x y>"), keep the bracket literal.
			events = append(events, Event{Key: c})
			continue
		}
		events = append(events, ev)
		i += end + 1
	}
	return events, nil
}

// MustParseSequence is like ParseSequence but panics on error.
// Intended for tests and static tables.
func MustParseSequence(spec string) []Event {
	events, err := ParseSequence(spec)
	if err != nil {
		panic(err)
	}
	return events
}

// looksLikeKeyName reports whether inner is shaped like a key name:
// two or more letters, digits or '-'.
func looksLikeKeyName(inner string) bool {
	if len(inner) < 2 {
		return false
	}
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', c == '-':
		default:
			return false
		}
	}
	return true
}

// parseBracketed parses the inside of a <...> spec like "C-r" or "Esc".
func parseBracketed(inner string) (Event, error) {
	if inner == "" {
		return Event{}, ErrInvalidSpec
	}

	var mods Modifier
	keyPart := inner
	// Modifier prefixes are single letters followed by '-'.
	for len(keyPart) > 2 && keyPart[1] == '-' {
		mod, ok := modifierNotation[strings.ToLower(keyPart[:1])]
		if !ok {
			return Event{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidSpec, keyPart[:1])
		}
		mods = mods.With(mod)
		keyPart = keyPart[2:]
	}

	if len(keyPart) == 1 {
		if mods == ModNone {
			// "<x>" is not a key name.
			return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, inner)
		}
		k := keyPart[0]
		if mods.HasCtrl() && k >= 'A' && k <= 'Z' {
			k += 'a' - 'A'
		}
		return Event{Key: k, Modifiers: mods}, nil
	}

	k, ok := specialNames[strings.ToLower(keyPart)]
	if !ok {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}
	return Event{Key: k, Modifiers: mods}, nil
}

// Format renders events back into Vim notation. Plain printable keys are
// written as-is; everything else uses a bracketed name.
func Format(events []Event) string {
	var b strings.Builder
	for _, e := range events {
		prefix := e.Modifiers.Without(ModShift).notationPrefix()
		name := keyName(e.Key)
		if name == "" && e.Key >= 1 && e.Key <= 26 {
			// Raw control byte, written as its Ctrl letter.
			prefix = e.Modifiers.With(ModCtrl).Without(ModShift).notationPrefix()
			name = string(rune('a' + e.Key - 1))
		}
		switch {
		case prefix == "" && name == "":
			b.WriteByte(e.Key)
		case name == "":
			fmt.Fprintf(&b, "<%s%c>", prefix, e.Key)
		default:
			fmt.Fprintf(&b, "<%s%s>", prefix, name)
		}
	}
	return b.String()
}

// keyName returns the bracketed name for bytes that are not written
// literally, or "" for plain characters.
func keyName(k byte) string {
	switch k {
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "CR"
	case KeyNewline:
		return "NL"
	case KeyBackspace:
		return "BS"
	case KeyTab:
		return "Tab"
	case '<':
		return "lt"
	case KeyNone:
		return "Nul"
	}
	return ""
}
