// Package backend provides the terminal abstraction the trace view draws on.
package backend

import (
	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/mode"
)

// Color is one of the eight basic terminal colors, or ColorDefault.
type Color int8

const (
	ColorDefault Color = iota - 1
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

// Style describes how text is drawn.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
	Reverse    bool
}

// DefaultStyle returns the terminal's default colors.
func DefaultStyle() Style {
	return Style{Foreground: ColorDefault, Background: ColorDefault}
}

// WithForeground returns s with the foreground set.
func (s Style) WithForeground(c Color) Style {
	s.Foreground = c
	return s
}

// WithBackground returns s with the background set.
func (s Style) WithBackground(c Color) Style {
	s.Background = c
	return s
}

// WithBold returns s drawn bold.
func (s Style) WithBold() Style {
	s.Bold = true
	return s
}

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Keys holds the engine keys for an EventKey. A non-ASCII rune
	// arrives as several byte keys.
	Keys []key.Event

	// Resize event fields
	Width, Height int
}

// Backend is a character-cell display with keyboard input.
type Backend interface {
	Init() error
	Shutdown()
	Size() (width, height int)

	// SetText draws text from column x of row y, clipped to the screen,
	// and returns the number of columns used.
	SetText(x, y int, text string, style Style) int

	// ClearLine fills row y with blanks in style.
	ClearLine(y int, style Style)
	Clear()
	Show()

	ShowCursor(x, y int)
	HideCursor()
	SetCursorStyle(style mode.CursorStyle)

	// PollEvent blocks for the next event. It returns EventInterrupt after
	// Interrupt or Shutdown.
	PollEvent() Event
	Interrupt()
}
