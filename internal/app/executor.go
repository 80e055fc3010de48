package app

import (
	"fmt"
	"strings"

	"github.com/samber/mo"

	"github.com/dshills/modal/internal/input/mark"
	"github.com/dshills/modal/internal/input/mode"
	"github.com/dshills/modal/internal/input/vim"
)

// Command is one editing action for an Executor, with everything the
// key sequence resolved.
//
// A command with ActionNone, no operator and a Char is a key typed in
// insert or replace mode; Mode tells which.
type Command struct {
	Action     mode.Action
	Mode       mode.Mode // mode the final key was pressed in
	Operator   mo.Option[vim.Operator]
	Motion     mo.Option[vim.Motion]
	TextObject mo.Option[vim.TextObject]
	Char       mo.Option[byte]
	Count      int
	Register   mo.Option[vim.Register]

	// Text and Linewise carry the register content for puts.
	Text     []byte
	Linewise bool

	// Target is the destination of mark motions and jump list moves.
	Target mo.Option[mark.Position]
}

// IsTyping returns true for a key typed in insert or replace mode.
func (c Command) IsTyping() bool {
	return c.Action == mode.ActionNone && !c.Operator.IsPresent() && c.Char.IsPresent()
}

// String renders the command on one line, for tracing.
func (c Command) String() string {
	if c.IsTyping() {
		return fmt.Sprintf("type %q (%s)", c.Char.MustGet(), c.Mode)
	}

	var b strings.Builder
	b.WriteString(c.Action.String())
	if op, ok := c.Operator.Get(); ok {
		fmt.Fprintf(&b, " op=%s", op)
	}
	if m, ok := c.Motion.Get(); ok {
		fmt.Fprintf(&b, " motion=%s", m)
	}
	if obj, ok := c.TextObject.Get(); ok {
		fmt.Fprintf(&b, " object=%s", obj)
	}
	if ch, ok := c.Char.Get(); ok {
		fmt.Fprintf(&b, " char=%q", ch)
	}
	if r, ok := c.Register.Get(); ok {
		fmt.Fprintf(&b, " register=%s", r)
	}
	if c.Count > 1 {
		fmt.Fprintf(&b, " count=%d", c.Count)
	}
	if c.Text != nil {
		fmt.Fprintf(&b, " text=%q", c.Text)
	}
	if pos, ok := c.Target.Get(); ok {
		fmt.Fprintf(&b, " target=%s", pos)
	}
	return b.String()
}

// Outcome reports what an executed command did to the buffer.
type Outcome struct {
	// Text is the text a delete, change or yank covered.
	Text     []byte
	Linewise bool
}

// Executor carries out commands against a buffer and view the session
// does not own.
type Executor interface {
	Execute(cmd Command) (Outcome, error)
	Cursor() mark.Position
}

// TraceExecutor records commands without editing anything. It follows
// line motions and targets so that marks and jumps have positions to
// work with.
type TraceExecutor struct {
	Commands []Command
	cursor   mark.Position
}

// NewTraceExecutor creates an executor with the cursor at the top of the
// file.
func NewTraceExecutor(file string) *TraceExecutor {
	return &TraceExecutor{cursor: mark.Position{File: file}}
}

// Execute records cmd and moves the cursor for line motions.
func (e *TraceExecutor) Execute(cmd Command) (Outcome, error) {
	e.Commands = append(e.Commands, cmd)

	if pos, ok := cmd.Target.Get(); ok {
		e.cursor = pos
		return Outcome{}, nil
	}

	n := uint32(max(cmd.Count, 1))
	switch cmd.Motion.OrEmpty() {
	case vim.MotionCharDown, vim.MotionNextLineStart:
		e.cursor.Line += n
	case vim.MotionCharUp, vim.MotionPrevLineStart:
		e.cursor.Line -= min(n, e.cursor.Line)
	case vim.MotionDocumentStart:
		e.cursor.Line, e.cursor.Column = 0, 0
	case vim.MotionCharRight, vim.MotionWordForward:
		e.cursor.Column += n
	case vim.MotionCharLeft, vim.MotionWordBackward:
		e.cursor.Column -= min(n, e.cursor.Column)
	case vim.MotionLineStart:
		e.cursor.Column = 0
	}
	return Outcome{}, nil
}

// Cursor returns the tracked position.
func (e *TraceExecutor) Cursor() mark.Position {
	return e.cursor
}

// Reset forgets the recorded commands.
func (e *TraceExecutor) Reset() {
	e.Commands = e.Commands[:0]
}
