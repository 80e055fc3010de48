package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/mo"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/macro"
	"github.com/dshills/modal/internal/input/mark"
	"github.com/dshills/modal/internal/input/mode"
	"github.com/dshills/modal/internal/input/vim"
)

// MessageHandler receives diagnostics meant for the user, such as
// "mark not set".
type MessageHandler func(msg string)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *Logger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

// WithEvaluator enables the = register.
func WithEvaluator(e Evaluator) SessionOption {
	return func(s *Session) {
		s.eval = e
	}
}

// WithStateOptions passes options through to the engine state.
func WithStateOptions(opts ...mode.Option) SessionOption {
	return func(s *Session) {
		s.stateOpts = append(s.stateOpts, opts...)
	}
}

// WithMessageHandler sets where user diagnostics go. By default they are
// logged at warn level.
func WithMessageHandler(h MessageHandler) SessionOption {
	return func(s *Session) {
		s.onMessage = h
	}
}

// WithMacroFile saves macros to path when the session closes.
func WithMacroFile(path string) SessionOption {
	return func(s *Session) {
		s.macroFile = path
	}
}

// Session is one modal editing session. It feeds keys to the engine,
// executes the resulting actions and maintains registers, marks, the jump
// and change lists and macros.
//
// Session is safe for concurrent use; keys are processed one at a time.
type Session struct {
	mu sync.Mutex

	id        uuid.UUID
	state     *mode.State
	stateOpts []mode.Option
	exec      Executor
	player    *macro.Player
	eval      Evaluator
	logger    *Logger
	onMessage MessageHandler
	macroFile string

	await      mode.Await
	exprSource string
	insertText []byte
	replaying  bool
	closed     bool
}

// NewSession creates a session in normal mode driving exec.
func NewSession(exec Executor, opts ...SessionOption) *Session {
	s := &Session{
		id:     uuid.New(),
		exec:   exec,
		logger: NullLogger,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.WithField("session", s.id.String()).WithComponent("session")
	s.state = mode.NewState(s.stateOpts...)
	s.player = macro.NewPlayer(s.state.Macros)
	s.state.OnModeChange(func(from, to mode.Mode) {
		s.logger.Debug("mode %s -> %s", from, to)
	})
	return s
}

// ID returns the session identifier used in log lines.
func (s *Session) ID() string {
	return s.id.String()
}

// HandleKey processes one key. It returns ErrQuit after a quit command
// and an *OperationError when the executor fails.
func (s *Session) HandleKey(ev key.Event) error {
	return s.HandleKeyContext(context.Background(), ev)
}

// HandleKeyContext is HandleKey with a context bounding macro playback
// and expression evaluation.
func (s *Session) HandleKeyContext(ctx context.Context, ev key.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	return s.handleKey(ctx, ev)
}

// HandleKeys parses keys in Vim notation ("3dw<Esc>") and processes them
// in order, stopping at the first error.
func (s *Session) HandleKeys(ctx context.Context, keys string) error {
	events, err := key.ParseSequence(keys)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}
	for _, ev := range events {
		if err := s.handleKey(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// Mode returns the current mode.
func (s *Session) Mode() mode.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Mode()
}

// Pending returns the two-step command waiting for its next key, if any.
func (s *Session) Pending() mode.Await {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.await
}

// CommandLine returns the text typed after ":".
func (s *Session) CommandLine() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.CommandLine()
}

// Status is a snapshot of what a status line shows.
type Status struct {
	Mode        mode.Mode
	PendingKeys string // unfinished command in key notation
	Recording   string // register of the macro being recorded, or ""
	CommandLine string
}

// Status returns the current status snapshot.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Mode:        s.state.Mode(),
		PendingKeys: key.Format(s.state.PendingKeys()),
		CommandLine: s.state.CommandLine(),
	}
	if r, ok := s.state.RecordingMacro().Get(); ok {
		st.Recording = r.String()
	}
	return st
}

// SetExpression sets the source evaluated when the = register is put.
func (s *Session) SetExpression(src string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.exprSource = src
}

// Register returns the content of the register named by c.
func (s *Session) Register(c byte) (vim.RegisterContent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := vim.RegisterFromChar(c)
	if !ok {
		return vim.RegisterContent{}, false
	}
	return s.state.Registers.Get(r)
}

// Inspect runs fn with exclusive access to the engine state.
func (s *Session) Inspect(fn func(st *mode.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.state)
}

// LoadMacros replaces the macros with those saved at path.
func (s *Session) LoadMacros(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := macro.Load(s.state.Macros, path); err != nil {
		return NewOperationError("load macros", path, err)
	}
	s.logger.Debug("loaded %d macros from %s", len(s.state.Macros.Registers()), path)
	return nil
}

// SaveMacros writes the macros to path.
func (s *Session) SaveMacros(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveMacros(path)
}

// Close saves macros when a macro file is configured and releases the
// session's registers, marks and history.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	var err error
	if s.macroFile != "" {
		err = s.saveMacros(s.macroFile)
	}
	s.state.Close()
	s.logger.Debug("session closed")
	return err
}

func (s *Session) saveMacros(path string) error {
	if err := macro.Save(s.state.Macros, path); err != nil {
		return NewOperationError("save macros", path, err)
	}
	return nil
}

// handleKey runs one key through the engine and its side effects. The
// caller holds s.mu; macro playback and "." re-enter here directly.
func (s *Session) handleKey(ctx context.Context, ev key.Event) error {
	wasRecording := s.state.Macros.IsRecording()
	from := s.state.Mode()

	r := mode.ResolveEvent(s.state, s.await, ev)
	s.await = r.Await

	err := s.perform(ctx, from, r)
	s.state.Apply(r)

	if wasRecording && s.state.Macros.IsRecording() && !s.player.IsPlaying() && !s.replaying {
		s.state.Macros.Record(ev)
	}
	return err
}

// perform carries out the side effects of a key result.
func (s *Session) perform(ctx context.Context, from mode.Mode, r mode.KeyResult) error {
	if msg, ok := r.ErrorMsg.Get(); ok {
		s.message(msg)
	}

	if !r.Handled {
		if c, ok := r.Char.Get(); ok && (from == mode.ModeInsert || from == mode.ModeReplace) {
			return s.typeChar(from, c)
		}
		return nil
	}
	if r.Pending() {
		return nil
	}

	if _, ok := r.Operator.Get(); ok {
		return s.runOperator(from, r)
	}

	switch r.Action {
	case mode.ActionNone:
		return nil
	case mode.ActionMoveCursor:
		return s.move(from, r)
	case mode.ActionPutAfter, mode.ActionPutBefore:
		return s.put(ctx, from, r)
	case mode.ActionSetMark:
		return s.setMark(r)
	case mode.ActionJumpBack:
		return s.jump(from, r, true)
	case mode.ActionJumpForward:
		return s.jump(from, r, false)
	case mode.ActionRecordMacro:
		return s.toggleRecording(r)
	case mode.ActionPlayMacro:
		return s.playMacro(ctx, r)
	case mode.ActionRepeatLast:
		return s.repeatLast(ctx)
	case mode.ActionSearchNext, mode.ActionSearchPrev,
		mode.ActionSearchWordForward, mode.ActionSearchWordBackward:
		s.state.Jumps.Push(s.exec.Cursor())
	case mode.ActionEnterNormal:
		if from == mode.ModeInsert || from == mode.ModeReplace {
			s.state.Registers.SetLastInserted(s.insertText)
		}
	}

	if r.Action.EntersInsert() {
		s.insertText = s.insertText[:0]
	}

	cmd := s.command(from, r)
	if err := s.execute(cmd); err != nil {
		return err
	}
	if r.Action.ModifiesBuffer() {
		s.state.Changes.Push(s.exec.Cursor())
	}

	switch r.Action {
	case mode.ActionQuit, mode.ActionSaveQuit, mode.ActionForceQuit:
		s.logger.Info("quit (%s)", r.Action)
		return ErrQuit
	}
	return nil
}

// command builds the executor command for r.
func (s *Session) command(from mode.Mode, r mode.KeyResult) Command {
	return Command{
		Action:     r.Action,
		Mode:       from,
		Operator:   r.Operator,
		Motion:     r.Motion,
		TextObject: r.TextObject,
		Char:       r.Char,
		Count:      max(r.Count, 1),
		Register:   r.Register,
	}
}

func (s *Session) execute(cmd Command) error {
	if _, err := s.exec.Execute(cmd); err != nil {
		return NewOperationError("execute", cmd.Action.String(), err)
	}
	return nil
}

// resolveTarget fills in the destination of a mark motion. ok is false
// when the mark is not set.
func (s *Session) resolveTarget(cmd *Command) bool {
	m, ok := cmd.Motion.Get()
	if !ok || !m.IsMark() {
		return true
	}

	name := cmd.Char.OrEmpty()
	pos, found := s.markPosition(name)
	if !found {
		s.message(fmt.Sprintf("%v: %q", ErrMarkNotSet, name))
		return false
	}
	cmd.Target = mo.Some(pos)
	return true
}

// markPosition looks up a mark. ' and ` name the position before the
// latest jump.
func (s *Session) markPosition(name byte) (mark.Position, bool) {
	if name == '\'' || name == '`' {
		entries := s.state.Jumps.Entries()
		if len(entries) == 0 {
			return mark.Position{}, false
		}
		return entries[len(entries)-1], true
	}
	return s.state.Marks.Get(name)
}

func (s *Session) move(from mode.Mode, r mode.KeyResult) error {
	cmd := s.command(from, r)
	if !s.resolveTarget(&cmd) {
		return nil
	}
	if r.Motion.OrEmpty().IsJump() {
		s.state.Jumps.Push(s.exec.Cursor())
	}
	return s.execute(cmd)
}

// runOperator applies an operator and stores the text it covered.
func (s *Session) runOperator(from mode.Mode, r mode.KeyResult) error {
	cmd := s.command(from, r)
	if !s.resolveTarget(&cmd) {
		return nil
	}

	out, err := s.exec.Execute(cmd)
	if err != nil {
		return NewOperationError("execute", cmd.Action.String(), err)
	}

	op := r.Operator.MustGet()
	if op.StoresText() {
		s.storeText(op, r, out)
	}
	if op.ChangesText() {
		s.state.Changes.Push(s.exec.Cursor())
	}
	if op.EntersInsert() {
		s.insertText = s.insertText[:0]
	}
	return nil
}

// storeText writes the text a delete, change or yank covered to the
// selected register, or to the numbered and small-delete registers when
// none was selected.
func (s *Session) storeText(op vim.Operator, r mode.KeyResult, out Outcome) {
	regs := s.state.Registers

	if reg, ok := r.Register.Get(); ok {
		switch {
		case reg == vim.RegisterBlackHole:
		case r.RegisterAppend:
			regs.Append(reg, out.Text, out.Linewise)
		default:
			regs.Set(reg, out.Text, out.Linewise)
		}
		return
	}

	if op == vim.OpYank {
		regs.RecordYank(out.Text, out.Linewise)
		return
	}
	regs.RecordDelete(out.Text, out.Linewise)
}

func (s *Session) put(ctx context.Context, from mode.Mode, r mode.KeyResult) error {
	reg := r.Register.OrElse(vim.RegisterUnnamed)

	var content vim.RegisterContent
	if reg == vim.RegisterExpression {
		text, err := s.evaluate(ctx)
		if err != nil {
			s.message(err.Error())
			return nil
		}
		content.Text = []byte(text)
	} else {
		c, ok := s.state.Registers.Get(reg)
		if !ok {
			s.message(fmt.Sprintf("nothing in register %s", reg))
			return nil
		}
		content = c
	}

	cmd := s.command(from, r)
	cmd.Text = content.Text
	cmd.Linewise = content.Linewise

	out, err := s.exec.Execute(cmd)
	if err != nil {
		return NewOperationError("execute", cmd.Action.String(), err)
	}
	// A put over a selection replaces it; the replaced text is a delete.
	if from.IsVisual() && len(out.Text) > 0 {
		s.state.Registers.RecordDelete(out.Text, out.Linewise)
	}
	s.state.Changes.Push(s.exec.Cursor())
	return nil
}

func (s *Session) evaluate(ctx context.Context) (string, error) {
	if s.eval == nil {
		return "", ErrExpressionUnavailable
	}
	if s.exprSource == "" {
		return "", ErrNoExpression
	}

	lookup := func(c byte) (string, bool) {
		r, ok := vim.RegisterFromChar(c)
		if !ok || r == vim.RegisterExpression {
			return "", false
		}
		content, ok := s.state.Registers.Get(r)
		return string(content.Text), ok
	}

	text, err := s.eval.Eval(ctx, s.exprSource, lookup)
	if err != nil {
		s.logger.Warn("expression %q: %v", s.exprSource, err)
		return "", err
	}
	return text, nil
}

func (s *Session) setMark(r mode.KeyResult) error {
	name := r.Char.OrEmpty()
	if !isMarkName(name) {
		s.message(fmt.Sprintf("invalid mark: %q", name))
		return nil
	}
	s.state.Marks.Set(name, s.exec.Cursor())
	return nil
}

func isMarkName(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// jump walks the jump list count steps. Leaving the newest end records
// the cursor first so that a forward jump can come back to it.
func (s *Session) jump(from mode.Mode, r mode.KeyResult, back bool) error {
	jumps := s.state.Jumps
	if back && jumps.Current() == jumps.Len() {
		jumps.Push(s.exec.Cursor())
		jumps.Back()
	}

	var target mark.Position
	moved := false
	for i := 0; i < max(r.Count, 1); i++ {
		var pos mark.Position
		var ok bool
		if back {
			pos, ok = jumps.Back()
		} else {
			pos, ok = jumps.Forward()
		}
		if !ok {
			break
		}
		target, moved = pos, true
	}
	if !moved {
		return nil
	}

	cmd := s.command(from, r)
	cmd.Target = mo.Some(target)
	return s.execute(cmd)
}

func (s *Session) toggleRecording(r mode.KeyResult) error {
	macros := s.state.Macros
	if reg, ok := macros.Recording(); ok {
		events := macros.StopRecording()
		s.logger.Info("recorded macro %s: %s", reg, key.Format(events))
		return nil
	}

	reg := r.Register.OrEmpty()
	if err := macros.StartRecording(reg, r.RegisterAppend); err != nil {
		s.message(err.Error())
		return nil
	}
	s.logger.Debug("recording macro %s", reg)
	return nil
}

func (s *Session) playMacro(ctx context.Context, r mode.KeyResult) error {
	reg := r.Register.OrEmpty()
	s.logger.Debug("playing macro %s x%d", reg, max(r.Count, 1))

	err := s.player.Play(ctx, reg, r.Count, func(ev key.Event) error {
		return s.handleKey(ctx, ev)
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, macro.ErrRecursionLimit) && s.player.IsPlaying():
		// Unwind every level of the recursion, not just the innermost.
		return err
	case errors.Is(err, macro.ErrRecursionLimit), errors.Is(err, macro.ErrEmptyRegister),
		errors.Is(err, macro.ErrInvalidRegister):
		s.message(err.Error())
		return nil
	}
	return err
}

// repeatLast replays the keys of the last change once.
func (s *Session) repeatLast(ctx context.Context) error {
	keys := s.state.LastChange()
	if len(keys) == 0 || s.replaying {
		return nil
	}

	s.replaying = true
	defer func() { s.replaying = false }()

	for _, ev := range keys {
		if err := s.handleKey(ctx, ev); err != nil {
			return err
		}
	}
	return nil
}

// typeChar passes a key typed in insert or replace mode to the executor.
func (s *Session) typeChar(from mode.Mode, c byte) error {
	if key.IsBackspace(c) {
		if n := len(s.insertText); n > 0 {
			s.insertText = s.insertText[:n-1]
		}
	} else {
		s.insertText = append(s.insertText, c)
	}

	return s.execute(Command{Mode: from, Char: mo.Some(c), Count: 1})
}

func (s *Session) message(msg string) {
	if s.onMessage != nil {
		s.onMessage(msg)
		return
	}
	s.logger.Warn("%s", msg)
}
