package vim

// TextObject represents a Vim text object.
// Text objects select regions of text based on structure rather than motion.
// Each object kind has an inner and an around variant.
type TextObject uint8

// Standard Vim text objects.
const (
	TextObjectNone TextObject = iota
	InnerWord
	AroundWord
	InnerBigWord
	AroundBigWord
	InnerDoubleQuote
	AroundDoubleQuote
	InnerSingleQuote
	AroundSingleQuote
	InnerBacktick
	AroundBacktick
	InnerParen
	AroundParen
	InnerBracket
	AroundBracket
	InnerBrace
	AroundBrace
	InnerAngle
	AroundAngle
	InnerTag
	AroundTag
	InnerBlock
	AroundBlock
	InnerSentence
	AroundSentence
	InnerParagraph
	AroundParagraph
	InnerLine
	AroundLine

	textObjectCount
)

var textObjectKinds = [...]string{
	"word", "big_word", "double_quote", "single_quote", "backtick",
	"paren", "bracket", "brace", "angle", "tag", "block",
	"sentence", "paragraph", "line",
}

// String returns the text object identifier, e.g. "inner_word".
func (t TextObject) String() string {
	if t == TextObjectNone || t >= textObjectCount {
		return "none"
	}
	if t.IsInner() {
		return "inner_" + t.Kind()
	}
	return "around_" + t.Kind()
}

// Kind returns the object kind without its inner/around variant.
func (t TextObject) Kind() string {
	if t == TextObjectNone || t >= textObjectCount {
		return ""
	}
	return textObjectKinds[(t-1)/2]
}

// IsInner returns true for inner variants.
func (t TextObject) IsInner() bool {
	return t != TextObjectNone && t < textObjectCount && t%2 == 1
}

// IsAround returns true for around variants.
func (t TextObject) IsAround() bool {
	return t != TextObjectNone && t < textObjectCount && t%2 == 0
}

// IsLinewise returns true if the selected range is whole lines.
func (t TextObject) IsLinewise() bool {
	switch t {
	case InnerParagraph, AroundParagraph, InnerLine, AroundLine:
		return true
	}
	return false
}

// innerObjects maps object keys to their inner variant. Paired delimiters
// collapse: both ( and ) select the parenthesis object.
var innerObjects = map[byte]TextObject{
	'w':  InnerWord,
	'W':  InnerBigWord,
	'"':  InnerDoubleQuote,
	'\'': InnerSingleQuote,
	'`':  InnerBacktick,
	'(':  InnerParen,
	')':  InnerParen,
	'[':  InnerBracket,
	']':  InnerBracket,
	'{':  InnerBrace,
	'}':  InnerBrace,
	'B':  InnerBrace,
	'<':  InnerAngle,
	'>':  InnerAngle,
	't':  InnerTag,
	'b':  InnerBlock,
	's':  InnerSentence,
	'p':  InnerParagraph,
	'l':  InnerLine,
}

// TextObjectFromChars builds a text object from a prefix and an object key.
func TextObjectFromChars(prefix TextObjectPrefix, c byte) (TextObject, bool) {
	inner, ok := innerObjects[c]
	if !ok {
		return TextObjectNone, false
	}
	switch prefix {
	case PrefixInner:
		return inner, true
	case PrefixAround:
		return inner + 1, true
	}
	return TextObjectNone, false
}

// IsTextObjectKey returns true if c names a text object.
func IsTextObjectKey(c byte) bool {
	_, ok := innerObjects[c]
	return ok
}

// TextObjectPrefix represents the prefix for text object selection.
type TextObjectPrefix uint8

const (
	// PrefixNone indicates no text object prefix.
	PrefixNone TextObjectPrefix = iota

	// PrefixInner indicates "inner" selection (i).
	PrefixInner

	// PrefixAround indicates "around" selection (a).
	PrefixAround
)

// String returns a string representation of the prefix.
func (p TextObjectPrefix) String() string {
	switch p {
	case PrefixInner:
		return "inner"
	case PrefixAround:
		return "around"
	default:
		return "none"
	}
}

// TextObjectPrefixFromChar returns the prefix for 'i' or 'a'.
func TextObjectPrefixFromChar(c byte) (TextObjectPrefix, bool) {
	switch c {
	case 'i':
		return PrefixInner, true
	case 'a':
		return PrefixAround, true
	default:
		return PrefixNone, false
	}
}
