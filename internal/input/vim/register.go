package vim

// Register identifies a storage slot for text.
type Register uint8

// Registers. Named (a-z) and numbered (0-9) registers are contiguous
// ranges starting at RegisterNamedA and RegisterNumbered0.
const (
	// RegisterUnnamed is the default register (").
	RegisterUnnamed Register = iota

	// RegisterSmallDelete is the small delete register (-).
	RegisterSmallDelete

	// RegisterClipboard is the system clipboard register (+ and *).
	RegisterClipboard

	// RegisterExpression is the expression register (=).
	RegisterExpression

	// RegisterBlackHole is the black hole register (_).
	RegisterBlackHole

	// RegisterLastInserted is the last inserted text register (.).
	RegisterLastInserted

	// RegisterFilename is the current file name register (%).
	RegisterFilename

	// RegisterAlternate is the alternate file name register (#).
	RegisterAlternate

	// RegisterCommand is the last command register (:).
	RegisterCommand

	// RegisterLastSearch is the last search pattern register (/).
	RegisterLastSearch

	// RegisterNamedA is the first of the 26 named registers.
	RegisterNamedA

	// RegisterNumbered0 is the yank register (0), first of the numbered registers.
	RegisterNumbered0 = RegisterNamedA + 26

	registerCount = RegisterNumbered0 + 10
)

// NamedRegister returns the named register for a letter (either case).
func NamedRegister(c byte) (Register, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return RegisterNamedA + Register(c-'a'), true
	case c >= 'A' && c <= 'Z':
		return RegisterNamedA + Register(c-'A'), true
	}
	return RegisterUnnamed, false
}

// NumberedRegister returns the numbered register 0-9.
func NumberedRegister(n int) (Register, bool) {
	if n < 0 || n > 9 {
		return RegisterUnnamed, false
	}
	return RegisterNumbered0 + Register(n), true
}

// RegisterFromChar returns the register named by c.
// Uppercase letters name the same register as lowercase; see IsAppendChar.
func RegisterFromChar(c byte) (Register, bool) {
	switch {
	case c == '"':
		return RegisterUnnamed, true
	case c >= '0' && c <= '9':
		return RegisterNumbered0 + Register(c-'0'), true
	case c == '-':
		return RegisterSmallDelete, true
	case c == '+', c == '*':
		return RegisterClipboard, true
	case c == '=':
		return RegisterExpression, true
	case c == '_':
		return RegisterBlackHole, true
	case c == '.':
		return RegisterLastInserted, true
	case c == '%':
		return RegisterFilename, true
	case c == '#':
		return RegisterAlternate, true
	case c == ':':
		return RegisterCommand, true
	case c == '/':
		return RegisterLastSearch, true
	}
	return NamedRegister(c)
}

// IsAppendChar returns true if c selects append mode for a named register.
func IsAppendChar(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

// Char returns the canonical key naming the register.
func (r Register) Char() byte {
	switch {
	case r.IsNamed():
		return 'a' + byte(r-RegisterNamedA)
	case r.IsNumbered():
		return '0' + byte(r-RegisterNumbered0)
	}
	switch r {
	case RegisterUnnamed:
		return '"'
	case RegisterSmallDelete:
		return '-'
	case RegisterClipboard:
		return '+'
	case RegisterExpression:
		return '='
	case RegisterBlackHole:
		return '_'
	case RegisterLastInserted:
		return '.'
	case RegisterFilename:
		return '%'
	case RegisterAlternate:
		return '#'
	case RegisterCommand:
		return ':'
	case RegisterLastSearch:
		return '/'
	}
	return 0
}

// String returns the register name as typed after ".
func (r Register) String() string {
	if c := r.Char(); c != 0 {
		return string(c)
	}
	return "?"
}

// IsNamed returns true for a-z.
func (r Register) IsNamed() bool {
	return r >= RegisterNamedA && r < RegisterNumbered0
}

// IsNumbered returns true for 0-9.
func (r Register) IsNumbered() bool {
	return r >= RegisterNumbered0 && r < registerCount
}

// IsReadOnly returns true for registers the user cannot write:
// last inserted, filename, alternate, command and last search.
func (r Register) IsReadOnly() bool {
	switch r {
	case RegisterLastInserted, RegisterFilename, RegisterAlternate,
		RegisterCommand, RegisterLastSearch:
		return true
	}
	return false
}

// IsValid returns true if r is a known register.
func (r Register) IsValid() bool {
	return r < registerCount
}
