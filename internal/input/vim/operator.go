package vim

// Operator represents a Vim operator command.
// Operators are commands that perform an action on a range of text
// defined by a motion or text object.
type Operator uint8

// Standard Vim operators.
const (
	OpNone Operator = iota
	OpDelete
	OpChange
	OpYank
	OpIndentRight
	OpIndentLeft
	OpFormat
	OpUppercase
	OpLowercase
	OpSwapCase
	OpFilter
	OpFold
	OpComment
)

var operatorNames = [...]string{
	OpNone:        "none",
	OpDelete:      "delete",
	OpChange:      "change",
	OpYank:        "yank",
	OpIndentRight: "indent_right",
	OpIndentLeft:  "indent_left",
	OpFormat:      "format",
	OpUppercase:   "uppercase",
	OpLowercase:   "lowercase",
	OpSwapCase:    "swap_case",
	OpFilter:      "filter",
	OpFold:        "fold",
	OpComment:     "comment",
}

// String returns the operator identifier.
func (o Operator) String() string {
	if int(o) < len(operatorNames) {
		return operatorNames[o]
	}
	return "unknown"
}

// OperatorFromChar returns the operator triggered by a single key.
// Only d c y > < = ! are single-key operators.
func OperatorFromChar(c byte) (Operator, bool) {
	switch c {
	case 'd':
		return OpDelete, true
	case 'c':
		return OpChange, true
	case 'y':
		return OpYank, true
	case '>':
		return OpIndentRight, true
	case '<':
		return OpIndentLeft, true
	case '=':
		return OpFormat, true
	case '!':
		return OpFilter, true
	}
	return OpNone, false
}

// GOperatorFromChar returns the operator for a g-prefixed key (gu, gU, g~, gc).
func GOperatorFromChar(c byte) (Operator, bool) {
	switch c {
	case 'u':
		return OpLowercase, true
	case 'U':
		return OpUppercase, true
	case '~':
		return OpSwapCase, true
	case 'c':
		return OpComment, true
	}
	return OpNone, false
}

// ZOperatorFromChar returns the operator for a z-prefixed key (zf).
func ZOperatorFromChar(c byte) (Operator, bool) {
	if c == 'f' {
		return OpFold, true
	}
	return OpNone, false
}

// DoubleKey returns the key that repeats the operator for its line-wise
// form: 'd' for dd, 'u' for guu. Fold has none since zf takes a motion.
func (o Operator) DoubleKey() byte {
	switch o {
	case OpDelete:
		return 'd'
	case OpChange:
		return 'c'
	case OpYank:
		return 'y'
	case OpIndentRight:
		return '>'
	case OpIndentLeft:
		return '<'
	case OpFormat:
		return '='
	case OpFilter:
		return '!'
	case OpLowercase:
		return 'u'
	case OpUppercase:
		return 'U'
	case OpSwapCase:
		return '~'
	case OpComment:
		return 'c'
	}
	return 0
}

// ChangesText returns true if the operator modifies the buffer.
func (o Operator) ChangesText() bool {
	return o != OpNone && o != OpYank && o != OpFold
}

// EntersInsert returns true if the operator enters insert mode after.
func (o Operator) EntersInsert() bool {
	return o == OpChange
}

// StoresText returns true if the operator writes the affected text to a register.
func (o Operator) StoresText() bool {
	return o == OpDelete || o == OpChange || o == OpYank
}
