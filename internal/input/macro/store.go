package macro

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/vim"
)

// Store errors
var (
	ErrInvalidRegister  = errors.New("invalid macro register")
	ErrAlreadyRecording = errors.New("already recording")
	ErrEmptyRegister    = errors.New("empty register")
	ErrNoLastPlayed     = errors.New("no macro has been played")
)

// IsValidRegister returns true if r can hold a macro.
// Valid registers are the named (a-z) and numbered (0-9) registers.
func IsValidRegister(r vim.Register) bool {
	return r.IsNamed() || r.IsNumbered()
}

// Store records key sequences and keeps them by register.
type Store struct {
	recording  bool
	appending  bool
	register   vim.Register
	events     []key.Event
	macros     map[vim.Register][]key.Event
	lastPlayed vim.Register
	hasPlayed  bool
}

// NewStore creates a new macro store with empty registers.
func NewStore() *Store {
	return &Store{
		macros: make(map[vim.Register][]key.Event),
	}
}

// StartRecording begins recording to the specified register.
// With appendMode the recording is added to the register's existing macro.
func (s *Store) StartRecording(r vim.Register, appendMode bool) error {
	if !IsValidRegister(r) {
		return fmt.Errorf("%w: %v", ErrInvalidRegister, r)
	}
	if s.recording {
		return fmt.Errorf("%w to register %v", ErrAlreadyRecording, s.register)
	}

	s.recording = true
	s.appending = appendMode
	s.register = r
	s.events = nil
	return nil
}

// StopRecording ends the current recording and saves it to the register.
// Returns the recorded events, or nil if not recording. An empty recording
// clears the register unless appending.
func (s *Store) StopRecording() []key.Event {
	if !s.recording {
		return nil
	}

	s.recording = false
	recorded := s.events
	s.events = nil

	if s.appending {
		s.macros[s.register] = append(s.macros[s.register], recorded...)
	} else if len(recorded) > 0 {
		s.macros[s.register] = slices.Clone(recorded)
	} else {
		delete(s.macros, s.register)
	}
	return recorded
}

// IsRecording returns true if currently recording.
func (s *Store) IsRecording() bool {
	return s.recording
}

// Recording returns the register being recorded to.
func (s *Store) Recording() (vim.Register, bool) {
	return s.register, s.recording
}

// Record adds a key event to the current recording.
// Does nothing if not recording.
func (s *Store) Record(ev key.Event) {
	if s.recording {
		s.events = append(s.events, ev)
	}
}

// Get retrieves a copy of the macro stored in a register.
func (s *Store) Get(r vim.Register) []key.Event {
	return slices.Clone(s.macros[r])
}

// Set stores a macro in a register, replacing any existing content.
// An empty macro clears the register.
func (s *Store) Set(r vim.Register, events []key.Event) error {
	if !IsValidRegister(r) {
		return fmt.Errorf("%w: %v", ErrInvalidRegister, r)
	}
	if len(events) == 0 {
		delete(s.macros, r)
		return nil
	}
	s.macros[r] = slices.Clone(events)
	return nil
}

// Clear removes the macro in a register.
func (s *Store) Clear(r vim.Register) {
	delete(s.macros, r)
}

// ClearAll removes all macros.
func (s *Store) ClearAll() {
	clear(s.macros)
	s.hasPlayed = false
}

// HasMacro returns true if the register contains a macro.
func (s *Store) HasMacro(r vim.Register) bool {
	return len(s.macros[r]) > 0
}

// Registers returns the registers that contain macros, in register order.
func (s *Store) Registers() []vim.Register {
	result := make([]vim.Register, 0, len(s.macros))
	for r, events := range s.macros {
		if len(events) > 0 {
			result = append(result, r)
		}
	}
	slices.Sort(result)
	return result
}

// SetLastPlayed sets the last played register (for @@ support).
func (s *Store) SetLastPlayed(r vim.Register) {
	s.lastPlayed = r
	s.hasPlayed = true
}

// LastPlayed returns the last played register (for @@ support).
func (s *Store) LastPlayed() (vim.Register, bool) {
	return s.lastPlayed, s.hasPlayed
}
