package vim

// Motion represents a Vim motion command.
// Motions define how the cursor moves and what range an operator affects.
type Motion uint8

// Standard Vim motions.
const (
	MotionNone Motion = iota

	// Character motions
	MotionCharLeft
	MotionCharRight
	MotionCharUp
	MotionCharDown

	// Word motions
	MotionWordForward
	MotionWordBackward
	MotionWordEnd
	MotionWordEndBackward

	// WORD motions (whitespace-delimited)
	MotionBigWordForward
	MotionBigWordBackward
	MotionBigWordEnd
	MotionBigWordEndBackward

	// Line motions
	MotionLineStart
	MotionLineFirstNonBlank
	MotionLineEnd
	MotionLineLastNonBlank
	MotionNextLineStart
	MotionPrevLineStart
	MotionCurrentLine
	MotionColumn

	// Screen line motions (for wrapped lines)
	MotionScreenLineStart
	MotionScreenLineEnd
	MotionScreenLineDown
	MotionScreenLineUp

	// Paragraph and sentence motions
	MotionParagraphForward
	MotionParagraphBackward
	MotionSentenceForward
	MotionSentenceBackward

	// Screen motions
	MotionScreenTop
	MotionScreenMiddle
	MotionScreenBottom

	// Document motions
	MotionDocumentStart
	MotionDocumentEnd
	MotionMatchPair

	// Character search motions
	MotionFindChar
	MotionFindCharBackward
	MotionTillChar
	MotionTillCharBackward

	// Search motions
	MotionSearchNext
	MotionSearchPrev

	// Mark motions
	MotionMarkLine
	MotionMarkExact

	motionCount
)

// motionInfo holds the static classification of a motion.
type motionInfo struct {
	name      string
	linewise  bool
	inclusive bool
	jump      bool
}

var motionTable = [motionCount]motionInfo{
	MotionNone:               {name: "none"},
	MotionCharLeft:           {name: "char_left"},
	MotionCharRight:          {name: "char_right"},
	MotionCharUp:             {name: "char_up", linewise: true},
	MotionCharDown:           {name: "char_down", linewise: true},
	MotionWordForward:        {name: "word_forward"},
	MotionWordBackward:       {name: "word_backward"},
	MotionWordEnd:            {name: "word_end", inclusive: true},
	MotionWordEndBackward:    {name: "word_end_backward", inclusive: true},
	MotionBigWordForward:     {name: "big_word_forward"},
	MotionBigWordBackward:    {name: "big_word_backward"},
	MotionBigWordEnd:         {name: "big_word_end", inclusive: true},
	MotionBigWordEndBackward: {name: "big_word_end_backward", inclusive: true},
	MotionLineStart:          {name: "line_start"},
	MotionLineFirstNonBlank:  {name: "line_first_non_blank"},
	MotionLineEnd:            {name: "line_end", inclusive: true},
	MotionLineLastNonBlank:   {name: "line_last_non_blank", inclusive: true},
	MotionNextLineStart:      {name: "next_line_start", linewise: true},
	MotionPrevLineStart:      {name: "prev_line_start", linewise: true},
	MotionCurrentLine:        {name: "current_line", linewise: true},
	MotionColumn:             {name: "column"},
	MotionScreenLineStart:    {name: "screen_line_start"},
	MotionScreenLineEnd:      {name: "screen_line_end", inclusive: true},
	MotionScreenLineDown:     {name: "screen_line_down"},
	MotionScreenLineUp:       {name: "screen_line_up"},
	MotionParagraphForward:   {name: "paragraph_forward", linewise: true, jump: true},
	MotionParagraphBackward:  {name: "paragraph_backward", linewise: true, jump: true},
	MotionSentenceForward:    {name: "sentence_forward", jump: true},
	MotionSentenceBackward:   {name: "sentence_backward", jump: true},
	MotionScreenTop:          {name: "screen_top", linewise: true, jump: true},
	MotionScreenMiddle:       {name: "screen_middle", linewise: true, jump: true},
	MotionScreenBottom:       {name: "screen_bottom", linewise: true, jump: true},
	MotionDocumentStart:      {name: "document_start", linewise: true, jump: true},
	MotionDocumentEnd:        {name: "document_end", linewise: true, jump: true},
	MotionMatchPair:          {name: "match_pair", inclusive: true, jump: true},
	MotionFindChar:           {name: "find_char", inclusive: true},
	MotionFindCharBackward:   {name: "find_char_backward"},
	MotionTillChar:           {name: "till_char", inclusive: true},
	MotionTillCharBackward:   {name: "till_char_backward"},
	MotionSearchNext:         {name: "search_next", jump: true},
	MotionSearchPrev:         {name: "search_prev", jump: true},
	MotionMarkLine:           {name: "mark_line", linewise: true, jump: true},
	MotionMarkExact:          {name: "mark_exact", jump: true},
}

// String returns the motion identifier.
func (m Motion) String() string {
	if m < motionCount {
		return motionTable[m].name
	}
	return "unknown"
}

// IsLinewise returns true if an operator applied over the motion
// covers whole lines.
func (m Motion) IsLinewise() bool {
	return m < motionCount && motionTable[m].linewise
}

// IsInclusive returns true if the character at the end position is part
// of the range. e.g., 'e' is inclusive, 'w' is exclusive.
func (m Motion) IsInclusive() bool {
	return m < motionCount && motionTable[m].inclusive
}

// IsJump returns true if the motion is recorded in the jump list.
func (m Motion) IsJump() bool {
	return m < motionCount && motionTable[m].jump
}

// IsFindChar returns true for f, F, t and T, which take a character argument.
func (m Motion) IsFindChar() bool {
	return m >= MotionFindChar && m <= MotionTillCharBackward
}

// IsMark returns true for the ' and ` motions, which take a mark name.
func (m Motion) IsMark() bool {
	return m == MotionMarkLine || m == MotionMarkExact
}

// NeedsArgument returns true if the motion waits for one more key.
func (m Motion) NeedsArgument() bool {
	return m.IsFindChar() || m.IsMark()
}

// MotionFromChar returns the motion for a single key.
// Search motions (n, N) are not included since they are actions in
// normal mode; see SearchMotionFromChar.
func MotionFromChar(c byte) (Motion, bool) {
	switch c {
	case 'h':
		return MotionCharLeft, true
	case 'l', ' ':
		return MotionCharRight, true
	case 'k':
		return MotionCharUp, true
	case 'j':
		return MotionCharDown, true
	case 'w':
		return MotionWordForward, true
	case 'b':
		return MotionWordBackward, true
	case 'e':
		return MotionWordEnd, true
	case 'W':
		return MotionBigWordForward, true
	case 'B':
		return MotionBigWordBackward, true
	case 'E':
		return MotionBigWordEnd, true
	case '0':
		return MotionLineStart, true
	case '^':
		return MotionLineFirstNonBlank, true
	case '$':
		return MotionLineEnd, true
	case '+':
		return MotionNextLineStart, true
	case '-':
		return MotionPrevLineStart, true
	case '|':
		return MotionColumn, true
	case '}':
		return MotionParagraphForward, true
	case '{':
		return MotionParagraphBackward, true
	case ')':
		return MotionSentenceForward, true
	case '(':
		return MotionSentenceBackward, true
	case 'H':
		return MotionScreenTop, true
	case 'M':
		return MotionScreenMiddle, true
	case 'L':
		return MotionScreenBottom, true
	case 'G':
		return MotionDocumentEnd, true
	case '%':
		return MotionMatchPair, true
	case 'f':
		return MotionFindChar, true
	case 'F':
		return MotionFindCharBackward, true
	case 't':
		return MotionTillChar, true
	case 'T':
		return MotionTillCharBackward, true
	case '\'':
		return MotionMarkLine, true
	case '`':
		return MotionMarkExact, true
	}
	return MotionNone, false
}

// GMotionFromChar returns the motion for a g-prefixed key.
func GMotionFromChar(c byte) (Motion, bool) {
	switch c {
	case 'g':
		return MotionDocumentStart, true
	case 'e':
		return MotionWordEndBackward, true
	case 'E':
		return MotionBigWordEndBackward, true
	case '0':
		return MotionScreenLineStart, true
	case '$':
		return MotionScreenLineEnd, true
	case 'j':
		return MotionScreenLineDown, true
	case 'k':
		return MotionScreenLineUp, true
	case '_':
		return MotionLineLastNonBlank, true
	}
	return MotionNone, false
}

// SearchMotionFromChar returns the search motion for n or N.
func SearchMotionFromChar(c byte) (Motion, bool) {
	switch c {
	case 'n':
		return MotionSearchNext, true
	case 'N':
		return MotionSearchPrev, true
	}
	return MotionNone, false
}

// FindMotion returns the find-char motion for a direction and target.
// forward selects f/t over F/T; before selects t/T over f/F.
func FindMotion(forward, before bool) Motion {
	switch {
	case forward && before:
		return MotionTillChar
	case forward:
		return MotionFindChar
	case before:
		return MotionTillCharBackward
	default:
		return MotionFindCharBackward
	}
}

// FindDirection returns the direction and target flags of a find-char motion.
func (m Motion) FindDirection() (forward, before bool) {
	switch m {
	case MotionFindChar:
		return true, false
	case MotionTillChar:
		return true, true
	case MotionFindCharBackward:
		return false, false
	case MotionTillCharBackward:
		return false, true
	}
	return false, false
}
