package vim

import "bytes"

// RegisterContent is the text held by a register.
type RegisterContent struct {
	// Text is the register's content.
	Text []byte

	// Linewise indicates if the content is line-oriented.
	Linewise bool

	// Blockwise indicates if the content is block-oriented.
	Blockwise bool
}

func (c RegisterContent) clone() RegisterContent {
	c.Text = bytes.Clone(c.Text)
	return c
}

// ClipboardProvider abstracts system clipboard access.
type ClipboardProvider interface {
	// Get returns the current clipboard content.
	Get() (string, error)

	// Set sets the clipboard content.
	Set(content string) error
}

// RegisterStore manages all registers.
//
// The store copies text on every write and every read, so callers never
// share a buffer with it. It does no locking; callers serialize access.
type RegisterStore struct {
	registers [registerCount]RegisterContent
	set       [registerCount]bool

	// clipboard provides system clipboard access.
	clipboard ClipboardProvider
}

// NewRegisterStore creates a new register store.
func NewRegisterStore() *RegisterStore {
	return &RegisterStore{}
}

// SetClipboard sets the clipboard provider for system clipboard integration.
func (rs *RegisterStore) SetClipboard(clipboard ClipboardProvider) {
	rs.clipboard = clipboard
}

// Get returns the content of a register.
// The black hole register is never readable.
func (rs *RegisterStore) Get(r Register) (RegisterContent, bool) {
	if !r.IsValid() || r == RegisterBlackHole {
		return RegisterContent{}, false
	}

	if r == RegisterClipboard && rs.clipboard != nil {
		if text, err := rs.clipboard.Get(); err == nil {
			linewise := rs.set[r] && rs.registers[r].Linewise && string(rs.registers[r].Text) == text
			return RegisterContent{Text: []byte(text), Linewise: linewise}, true
		}
	}

	if !rs.set[r] {
		return RegisterContent{}, false
	}
	return rs.registers[r].clone(), true
}

// Set stores text in a register.
//
// Writes to read-only registers are ignored, and writes to the black hole
// register are discarded. Any other write also mirrors into the unnamed
// register.
func (rs *RegisterStore) Set(r Register, text []byte, linewise bool) {
	rs.SetContent(r, RegisterContent{Text: text, Linewise: linewise})
}

// SetContent is like Set but also carries the blockwise flag.
func (rs *RegisterStore) SetContent(r Register, c RegisterContent) {
	if !r.IsValid() || r == RegisterBlackHole || r.IsReadOnly() {
		return
	}

	if r == RegisterClipboard && rs.clipboard != nil {
		// Local copy keeps the content available if the clipboard is unreachable.
		_ = rs.clipboard.Set(string(c.Text))
	}

	rs.store(r, c)
	if r != RegisterUnnamed {
		rs.store(RegisterUnnamed, c)
	}
}

// Append adds text to a named register (the "A-"Z form). For any other
// register it behaves like Set.
func (rs *RegisterStore) Append(r Register, text []byte, linewise bool) {
	if !r.IsNamed() || !rs.set[r] {
		rs.Set(r, text, linewise)
		return
	}

	prev := rs.registers[r]
	joined := make([]byte, 0, len(prev.Text)+len(text)+1)
	joined = append(joined, prev.Text...)
	if (prev.Linewise || linewise) && len(joined) > 0 && joined[len(joined)-1] != '\n' {
		joined = append(joined, '\n')
	}
	joined = append(joined, text...)

	rs.Set(r, joined, prev.Linewise || linewise)
}

// RecordYank stores an unaddressed yank in register 0 and the unnamed register.
func (rs *RegisterStore) RecordYank(text []byte, linewise bool) {
	rs.Set(RegisterNumbered0, text, linewise)
}

// RecordDelete stores an unaddressed delete.
//
// Deletes within one line go to the small delete register. Larger or
// linewise deletes shift registers 1-8 into 2-9 and land in register 1.
// Either way the unnamed register mirrors the text.
func (rs *RegisterStore) RecordDelete(text []byte, linewise bool) {
	if !linewise && bytes.IndexByte(text, '\n') < 0 {
		rs.Set(RegisterSmallDelete, text, false)
		return
	}

	for i := RegisterNumbered0 + 9; i > RegisterNumbered0+1; i-- {
		rs.registers[i] = rs.registers[i-1]
		rs.set[i] = rs.set[i-1]
	}
	rs.Set(RegisterNumbered0+1, text, linewise)
}

// SetLastInserted updates the last inserted text register.
func (rs *RegisterStore) SetLastInserted(text []byte) {
	rs.store(RegisterLastInserted, RegisterContent{Text: text})
}

// SetFilename updates the filename register.
func (rs *RegisterStore) SetFilename(name string) {
	rs.store(RegisterFilename, RegisterContent{Text: []byte(name)})
}

// SetAlternateFilename updates the alternate filename register.
func (rs *RegisterStore) SetAlternateFilename(name string) {
	rs.store(RegisterAlternate, RegisterContent{Text: []byte(name)})
}

// SetLastCommand updates the last command register.
func (rs *RegisterStore) SetLastCommand(cmd string) {
	rs.store(RegisterCommand, RegisterContent{Text: []byte(cmd)})
}

// SetLastSearch updates the last search pattern register.
func (rs *RegisterStore) SetLastSearch(pattern string) {
	rs.store(RegisterLastSearch, RegisterContent{Text: []byte(pattern)})
}

// Clear empties every register.
func (rs *RegisterStore) Clear() {
	*rs = RegisterStore{clipboard: rs.clipboard}
}

func (rs *RegisterStore) store(r Register, c RegisterContent) {
	rs.registers[r] = c.clone()
	rs.set[r] = true
}
