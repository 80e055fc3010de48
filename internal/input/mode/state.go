package mode

import (
	"slices"

	"github.com/samber/mo"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/macro"
	"github.com/dshills/modal/internal/input/mark"
	"github.com/dshills/modal/internal/input/vim"
)

// ModeChangeCallback is called when the mode changes.
type ModeChangeCallback func(from, to Mode)

// Option configures a State.
type Option func(*State)

// WithJumpCapacity sets the jump list capacity.
func WithJumpCapacity(n int) Option {
	return func(s *State) {
		s.Jumps = mark.NewRing(n)
	}
}

// WithChangeCapacity sets the change list capacity.
func WithChangeCapacity(n int) Option {
	return func(s *State) {
		s.Changes = mark.NewRing(n)
	}
}

// WithClipboard connects the + and * registers to a system clipboard.
func WithClipboard(p vim.ClipboardProvider) Option {
	return func(s *State) {
		s.Registers.SetClipboard(p)
	}
}

// State is the engine state for one editing session.
//
// The mode is only changed through the Enter* transitions and Apply.
// State does no locking.
type State struct {
	mode     Mode
	operator vim.Operator
	count    int
	count2   int

	register       mo.Option[vim.Register]
	registerAppend bool

	textObjectPrefix vim.TextObjectPrefix

	// find-char memory for ; and ,
	findChar    byte
	findForward bool
	findBefore  bool
	hasFind     bool

	commandBuffer []byte

	// keys of the command being composed, and of the last completed change
	pendingKeys  []key.Event
	lastChange   []key.Event
	changeActive bool

	callbacks []ModeChangeCallback

	Registers *vim.RegisterStore
	Marks     *mark.Store
	Macros    *macro.Store
	Jumps     *mark.Ring
	Changes   *mark.Ring
}

// NewState creates a state in normal mode with empty stores.
func NewState(opts ...Option) *State {
	s := &State{
		mode:          ModeNormal,
		commandBuffer: make([]byte, 0, 64),
		Registers:     vim.NewRegisterStore(),
		Marks:         mark.NewStore(),
		Macros:        macro.NewStore(),
		Jumps:         mark.NewRing(mark.DefaultCapacity),
		Changes:       mark.NewRing(mark.DefaultCapacity),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the current mode.
func (s *State) Mode() Mode {
	return s.mode
}

// OnModeChange registers a callback for mode changes.
func (s *State) OnModeChange(cb ModeChangeCallback) {
	s.callbacks = append(s.callbacks, cb)
}

// EnterNormal switches to normal mode.
func (s *State) EnterNormal() { s.enter(ModeNormal) }

// EnterInsert switches to insert mode.
func (s *State) EnterInsert() { s.enter(ModeInsert) }

// EnterVisual switches to character-wise visual mode.
func (s *State) EnterVisual() { s.enter(ModeVisual) }

// EnterVisualLine switches to line-wise visual mode.
func (s *State) EnterVisualLine() { s.enter(ModeVisualLine) }

// EnterVisualBlock switches to block-wise visual mode.
func (s *State) EnterVisualBlock() { s.enter(ModeVisualBlock) }

// EnterCommand switches to command-line mode with an empty line.
func (s *State) EnterCommand() { s.enter(ModeCommand) }

// EnterReplace switches to replace mode.
func (s *State) EnterReplace() { s.enter(ModeReplace) }

// EnterOperatorPending stashes op and waits for its motion or text object.
// Count and register selection are kept.
func (s *State) EnterOperatorPending(op vim.Operator) {
	s.operator = op
	s.count2 = 0
	s.textObjectPrefix = vim.PrefixNone
	s.setMode(ModeOperatorPending)
}

// ResetOperator aborts the command being composed: it clears the pending
// operator, counts, register selection and text object prefix, and
// returns operator-pending mode to normal.
func (s *State) ResetOperator() {
	s.clearComposition()
	s.pendingKeys = s.pendingKeys[:0]
	if s.mode == ModeOperatorPending {
		s.setMode(ModeNormal)
	}
}

// Count returns the effective repeat count: max(count,1) * max(count2,1).
func (s *State) Count() int {
	return vim.CombineCounts(s.count, s.count2)
}

// Operator returns the pending operator.
func (s *State) Operator() vim.Operator {
	return s.operator
}

// RawCounts returns the count typed before the operator and the count
// typed after it. Zero means none was typed.
func (s *State) RawCounts() (count, count2 int) {
	return s.count, s.count2
}

// Register returns the register selected with the " prefix.
func (s *State) Register() mo.Option[vim.Register] {
	return s.register
}

// SelectRegister selects the register named by c for the next command.
func (s *State) SelectRegister(c byte) bool {
	r, ok := vim.RegisterFromChar(c)
	if !ok {
		return false
	}
	s.register = mo.Some(r)
	s.registerAppend = vim.IsAppendChar(c)
	return true
}

// TextObjectPrefix returns the pending i/a prefix in operator-pending mode.
func (s *State) TextObjectPrefix() vim.TextObjectPrefix {
	return s.textObjectPrefix
}

// LastFind returns the memory of the last f, F, t or T.
func (s *State) LastFind() (c byte, forward, before, ok bool) {
	return s.findChar, s.findForward, s.findBefore, s.hasFind
}

func (s *State) setFind(c byte, forward, before bool) {
	s.findChar, s.findForward, s.findBefore, s.hasFind = c, forward, before, true
}

// CommandLine returns the text typed after ":".
func (s *State) CommandLine() string {
	return string(s.commandBuffer)
}

// LastChange returns the keys of the last buffer change, for ".".
func (s *State) LastChange() []key.Event {
	return slices.Clone(s.lastChange)
}

// PendingKeys returns the keys of the command being composed, such as
// "2d" before its motion arrives.
func (s *State) PendingKeys() []key.Event {
	return slices.Clone(s.pendingKeys)
}

// RecordingMacro returns the register a macro is being recorded to.
func (s *State) RecordingMacro() mo.Option[vim.Register] {
	if r, ok := s.Macros.Recording(); ok {
		return mo.Some(r)
	}
	return mo.None[vim.Register]()
}

// Close releases all register, mark, macro and history contents.
func (s *State) Close() {
	s.Registers.Clear()
	s.Marks.Clear()
	s.Macros.ClearAll()
	s.Jumps.Clear()
	s.Changes.Clear()
	s.lastChange = nil
}

func (s *State) enter(m Mode) {
	s.clearComposition()
	s.commandBuffer = s.commandBuffer[:0]
	s.setMode(m)
}

func (s *State) setMode(m Mode) {
	if s.mode == m {
		return
	}
	from := s.mode
	s.mode = m
	for _, cb := range s.callbacks {
		cb(from, m)
	}
}

func (s *State) clearComposition() {
	s.operator = vim.OpNone
	s.count = 0
	s.count2 = 0
	s.register = mo.None[vim.Register]()
	s.registerAppend = false
	s.textObjectPrefix = vim.PrefixNone
}

// trackKey remembers a key of the command being composed.
func (s *State) trackKey(k byte, mods key.Modifier) {
	s.pendingKeys = append(s.pendingKeys, key.Event{Key: k, Modifiers: mods})
}

// finish completes a command: it fills in the count and register, records
// the keys for "." when the command changes the buffer, then resets the
// composition state.
func (s *State) finish(r KeyResult) KeyResult {
	r.Handled = true
	r.Count = s.Count()
	if !r.Register.IsPresent() && s.register.IsPresent() {
		r.Register = s.register
		r.RegisterAppend = s.registerAppend
	}

	if !s.mode.IsVisual() && isChange(r) {
		s.lastChange = slices.Clone(s.pendingKeys)
		s.changeActive = r.Action.EntersInsert()
	}

	s.ResetOperator()
	return r
}

func isChange(r KeyResult) bool {
	if r.Action.ModifiesBuffer() {
		return true
	}
	op, ok := r.Operator.Get()
	return ok && r.Action == ActionNone && op.ChangesText()
}
