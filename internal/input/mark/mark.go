package mark

import "fmt"

// Position is a saved cursor location.
type Position struct {
	// Line is the zero-based line number.
	Line uint32

	// Column is the zero-based byte column.
	Column uint32

	// File is the file the position belongs to. Empty means the current buffer.
	File string
}

// String returns a human-readable representation like "main.go:3:7".
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line+1, p.Column+1)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line+1, p.Column+1)
}

// Store holds named marks.
type Store struct {
	marks map[byte]Position
}

// NewStore creates an empty mark store.
func NewStore() *Store {
	return &Store{marks: make(map[byte]Position)}
}

// Set stores pos under name, replacing any previous mark.
func (s *Store) Set(name byte, pos Position) {
	s.marks[name] = pos
}

// Get returns the mark stored under name.
func (s *Store) Get(name byte) (Position, bool) {
	pos, ok := s.marks[name]
	return pos, ok
}

// Delete removes a mark.
func (s *Store) Delete(name byte) {
	delete(s.marks, name)
}

// Len returns the number of marks.
func (s *Store) Len() int {
	return len(s.marks)
}

// Names returns the names of all marks in ascending order.
func (s *Store) Names() []byte {
	names := make([]byte, 0, len(s.marks))
	for c := 0; c < 256; c++ {
		if _, ok := s.marks[byte(c)]; ok {
			names = append(names, byte(c))
		}
	}
	return names
}

// Clear removes all marks.
func (s *Store) Clear() {
	clear(s.marks)
}
