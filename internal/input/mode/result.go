package mode

import (
	"github.com/samber/mo"

	"github.com/dshills/modal/internal/input/vim"
)

// KeyResult describes what the caller should do with one key.
type KeyResult struct {
	// Handled is false when the key was not consumed by the engine and
	// should go to the text buffer (e.g. printable keys in insert mode).
	Handled bool

	// NewMode is set when the result requires a specific mode.
	NewMode mo.Option[Mode]

	// Action is the intent to execute.
	Action Action

	// Motion is the motion an action or operator applies over.
	Motion mo.Option[vim.Motion]

	// TextObject is the text object an action or operator applies over.
	TextObject mo.Option[vim.TextObject]

	// Char is the key's byte for passthrough, or the argument of a
	// two-step command (find target, mark name, replacement character).
	Char mo.Option[byte]

	// ErrorMsg is a non-fatal diagnostic for the user.
	ErrorMsg mo.Option[string]

	// Operator is the operator that produced the action, if any.
	Operator mo.Option[vim.Operator]

	// Register is the register selected for the command.
	Register mo.Option[vim.Register]

	// RegisterAppend is set when the register was named in uppercase.
	RegisterAppend bool

	// Count is the effective repeat count, at least 1 for completed commands.
	Count int

	// Await is non-zero when the next key must go to Resolve.
	Await Await
}

// AwaitKind identifies what the next key will be interpreted as.
type AwaitKind uint8

// Await kinds.
const (
	AwaitNone AwaitKind = iota
	AwaitRegister
	AwaitFindChar
	AwaitMarkJump
	AwaitMarkSet
	AwaitMacroRecord
	AwaitMacroPlay
	AwaitReplaceChar
	AwaitGPrefix
	AwaitZPrefix
	AwaitTextObject
)

// String returns a human-readable kind name.
func (k AwaitKind) String() string {
	switch k {
	case AwaitNone:
		return "none"
	case AwaitRegister:
		return "register"
	case AwaitFindChar:
		return "find_char"
	case AwaitMarkJump:
		return "mark_jump"
	case AwaitMarkSet:
		return "mark_set"
	case AwaitMacroRecord:
		return "macro_record"
	case AwaitMacroPlay:
		return "macro_play"
	case AwaitReplaceChar:
		return "replace_char"
	case AwaitGPrefix:
		return "g_prefix"
	case AwaitZPrefix:
		return "z_prefix"
	case AwaitTextObject:
		return "text_object"
	default:
		return "unknown"
	}
}

// Await is a pending two-step command. Key is the key that started it
// (f, ', i, ...).
type Await struct {
	Kind AwaitKind
	Key  byte
}

// IsZero returns true if nothing is awaited.
func (a Await) IsZero() bool {
	return a.Kind == AwaitNone
}

// Pending returns true if the result asks for another key.
func (r KeyResult) Pending() bool {
	return !r.Await.IsZero()
}

func notHandled() KeyResult {
	return KeyResult{}
}

func handled() KeyResult {
	return KeyResult{Handled: true}
}

func awaiting(kind AwaitKind, k byte) KeyResult {
	return KeyResult{Handled: true, Await: Await{Kind: kind, Key: k}}
}
