package app

import (
	"github.com/atotto/clipboard"
)

// SystemClipboard backs the + and * registers with the OS clipboard.
type SystemClipboard struct{}

// Get reads the clipboard text.
func (SystemClipboard) Get() (string, error) {
	return clipboard.ReadAll()
}

// Set replaces the clipboard text.
func (SystemClipboard) Set(text string) error {
	return clipboard.WriteAll(text)
}

// ClipboardAvailable reports whether a clipboard utility was found.
func ClipboardAvailable() bool {
	return !clipboard.Unsupported
}
