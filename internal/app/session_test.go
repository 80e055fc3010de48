package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/modal/internal/config"
	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/mark"
	"github.com/dshills/modal/internal/input/mode"
	"github.com/dshills/modal/internal/input/vim"
)

// fakeExecutor records commands. Operators report "wordN" or "lineN\n"
// as the text they covered, N counting operator commands.
type fakeExecutor struct {
	cmds   []Command
	cursor mark.Position
	ops    int
	err    error
}

func (f *fakeExecutor) Execute(cmd Command) (Outcome, error) {
	f.cmds = append(f.cmds, cmd)
	if f.err != nil {
		return Outcome{}, f.err
	}

	if pos, ok := cmd.Target.Get(); ok {
		f.cursor = pos
	}
	if cmd.Motion.OrEmpty() == vim.MotionDocumentEnd {
		f.cursor.Line = 99
	}

	if !cmd.Operator.IsPresent() {
		return Outcome{}, nil
	}
	f.ops++
	if cmd.Motion.OrEmpty().IsLinewise() {
		return Outcome{Text: []byte(fmt.Sprintf("line%d\n", f.ops)), Linewise: true}, nil
	}
	return Outcome{Text: []byte(fmt.Sprintf("word%d", f.ops))}, nil
}

func (f *fakeExecutor) Cursor() mark.Position {
	return f.cursor
}

func (f *fakeExecutor) actions() []mode.Action {
	out := make([]mode.Action, len(f.cmds))
	for i, c := range f.cmds {
		out[i] = c.Action
	}
	return out
}

func (f *fakeExecutor) count(a mode.Action) int {
	n := 0
	for _, c := range f.cmds {
		if c.Action == a && !c.IsTyping() {
			n++
		}
	}
	return n
}

func (f *fakeExecutor) typed() string {
	var b strings.Builder
	for _, c := range f.cmds {
		if c.IsTyping() {
			b.WriteByte(c.Char.MustGet())
		}
	}
	return b.String()
}

func (f *fakeExecutor) lastCmd() Command {
	return f.cmds[len(f.cmds)-1]
}

type messages struct {
	list []string
}

func (m *messages) handler() MessageHandler {
	return func(msg string) { m.list = append(m.list, msg) }
}

func (m *messages) last() string {
	if len(m.list) == 0 {
		return ""
	}
	return m.list[len(m.list)-1]
}

func newTestSession(t *testing.T, opts ...SessionOption) (*Session, *fakeExecutor, *messages) {
	t.Helper()
	exec := &fakeExecutor{}
	msgs := &messages{}
	opts = append([]SessionOption{WithMessageHandler(msgs.handler())}, opts...)
	s := NewSession(exec, opts...)
	t.Cleanup(func() { _ = s.Close() })
	return s, exec, msgs
}

func keys(t *testing.T, s *Session, notation string) {
	t.Helper()
	require.NoError(t, s.HandleKeys(context.Background(), notation))
}

func registerText(t *testing.T, s *Session, c byte) string {
	t.Helper()
	content, ok := s.Register(c)
	if !ok {
		return "<unset>"
	}
	return string(content.Text)
}

func TestSession_InsertRoundTrip(t *testing.T) {
	s, exec, _ := newTestSession(t)

	keys(t, s, "ihi<Esc>")

	assert.Equal(t, mode.ModeNormal, s.Mode())
	assert.Equal(t, "hi", exec.typed())
	assert.Equal(t, []mode.Action{
		mode.ActionEnterInsert,
		mode.ActionNone,
		mode.ActionNone,
		mode.ActionEnterNormal,
	}, exec.actions())
	assert.Equal(t, "hi", registerText(t, s, '.'))
}

func TestSession_InsertBackspace(t *testing.T) {
	s, exec, _ := newTestSession(t)

	keys(t, s, "abc<BS>d<Esc>")

	assert.Equal(t, "bc\x7fd", exec.typed())
	assert.Equal(t, "bd", registerText(t, s, '.'))
}

func TestSession_YankRegisters(t *testing.T) {
	s, _, _ := newTestSession(t)

	keys(t, s, "yw")
	assert.Equal(t, "word1", registerText(t, s, '0'))
	assert.Equal(t, "word1", registerText(t, s, '"'))

	keys(t, s, "\"ayy")
	content, ok := s.Register('a')
	require.True(t, ok)
	assert.Equal(t, "line2\n", string(content.Text))
	assert.True(t, content.Linewise)
	assert.Equal(t, "word1", registerText(t, s, '0'), "named yanks leave register 0 alone")
	assert.Equal(t, "line2\n", registerText(t, s, '"'))
}

func TestSession_DeleteRegisters(t *testing.T) {
	s, _, _ := newTestSession(t)

	keys(t, s, "dw")
	assert.Equal(t, "word1", registerText(t, s, '-'))
	assert.Equal(t, "<unset>", registerText(t, s, '1'))

	keys(t, s, "dddd")
	assert.Equal(t, "line3\n", registerText(t, s, '1'))
	assert.Equal(t, "line2\n", registerText(t, s, '2'))
	assert.Equal(t, "line3\n", registerText(t, s, '"'))
}

func TestSession_BlackHole(t *testing.T) {
	s, _, _ := newTestSession(t)

	keys(t, s, "yw\"_dd")
	assert.Equal(t, "word1", registerText(t, s, '"'))
	assert.Equal(t, "<unset>", registerText(t, s, '1'))
}

func TestSession_AppendRegister(t *testing.T) {
	s, _, _ := newTestSession(t)

	keys(t, s, "\"ayw\"Ayw")
	assert.Equal(t, "word1word2", registerText(t, s, 'a'))
}

func TestSession_Put(t *testing.T) {
	s, exec, msgs := newTestSession(t)

	keys(t, s, "\"ap")
	assert.Contains(t, msgs.last(), "nothing in register a")
	assert.Zero(t, exec.count(mode.ActionPutAfter))

	keys(t, s, "\"ayy\"aP")
	cmd := exec.lastCmd()
	assert.Equal(t, mode.ActionPutBefore, cmd.Action)
	assert.Equal(t, "line1\n", string(cmd.Text))
	assert.True(t, cmd.Linewise)
}

func TestSession_VisualPutKeepsRegisterWithoutReplacedText(t *testing.T) {
	s, _, _ := newTestSession(t)

	keys(t, s, "yw")
	keys(t, s, "vp")
	assert.Equal(t, mode.ModeNormal, s.Mode())
	assert.Equal(t, "word1", registerText(t, s, '"'))
}

func TestSession_ExpressionRegister(t *testing.T) {
	s, exec, msgs := newTestSession(t, WithEvaluator(NewLuaEvaluator(time.Second)))

	keys(t, s, "\"=p")
	assert.Contains(t, msgs.last(), ErrNoExpression.Error())

	s.SetExpression("1 + 2")
	keys(t, s, "\"=p")
	assert.Equal(t, "3", string(exec.lastCmd().Text))

	keys(t, s, "\"byw")
	s.SetExpression(`reg("b") .. "!"`)
	keys(t, s, "\"=p")
	assert.Equal(t, "word1!", string(exec.lastCmd().Text))
}

func TestSession_ExpressionUnavailable(t *testing.T) {
	s, exec, msgs := newTestSession(t)
	s.SetExpression("1")

	keys(t, s, "\"=p")
	assert.Equal(t, ErrExpressionUnavailable.Error(), msgs.last())
	assert.Zero(t, exec.count(mode.ActionPutAfter))
}

func TestSession_Marks(t *testing.T) {
	s, exec, msgs := newTestSession(t)

	exec.cursor = mark.Position{Line: 2, Column: 4}
	keys(t, s, "ma")
	exec.cursor = mark.Position{Line: 10}

	keys(t, s, "'a")
	cmd := exec.lastCmd()
	assert.Equal(t, vim.MotionMarkLine, cmd.Motion.MustGet())
	assert.Equal(t, mark.Position{Line: 2, Column: 4}, cmd.Target.MustGet())

	keys(t, s, "''")
	assert.Equal(t, mark.Position{Line: 10}, exec.lastCmd().Target.MustGet())

	n := len(exec.cmds)
	keys(t, s, "`z")
	assert.Len(t, exec.cmds, n, "unset marks do not move")
	assert.Contains(t, msgs.last(), "mark not set")

	keys(t, s, "m1")
	assert.Contains(t, msgs.last(), "invalid mark")
}

func TestSession_MarkWithOperator(t *testing.T) {
	s, exec, _ := newTestSession(t)

	keys(t, s, "mb")
	exec.cursor.Line = 4
	keys(t, s, "d'b")

	cmd := exec.lastCmd()
	assert.Equal(t, mode.ActionDelete, cmd.Action)
	assert.Equal(t, mark.Position{}, cmd.Target.MustGet())
}

func TestSession_JumpList(t *testing.T) {
	s, exec, _ := newTestSession(t)

	exec.cursor = mark.Position{Line: 3}
	keys(t, s, "G")
	require.Equal(t, uint32(99), exec.cursor.Line)

	keys(t, s, "<C-o>")
	assert.Equal(t, mark.Position{Line: 3}, exec.cursor)

	keys(t, s, "<C-i>")
	assert.Equal(t, mark.Position{Line: 99}, exec.cursor)

	n := len(exec.cmds)
	keys(t, s, "<C-i>")
	assert.Len(t, exec.cmds, n, "nothing newer to jump to")

	var jumps int
	s.Inspect(func(st *mode.State) { jumps = st.Jumps.Len() })
	assert.Equal(t, 2, jumps)
}

func TestSession_ChangeList(t *testing.T) {
	s, exec, _ := newTestSession(t)

	exec.cursor = mark.Position{Line: 1}
	keys(t, s, "dw")
	exec.cursor = mark.Position{Line: 7}
	keys(t, s, "jyy")

	var changes []mark.Position
	s.Inspect(func(st *mode.State) { changes = st.Changes.Entries() })
	assert.Equal(t, []mark.Position{{Line: 1}}, changes, "motions and yanks are not changes")
}

func TestSession_MacroRecordAndPlay(t *testing.T) {
	s, exec, _ := newTestSession(t)

	keys(t, s, "qadwq")

	var recorded string
	s.Inspect(func(st *mode.State) {
		recorded = key.Format(st.Macros.Get(vim.RegisterNamedA))
	})
	assert.Equal(t, "dw", recorded)
	assert.Equal(t, 1, exec.count(mode.ActionDelete))

	keys(t, s, "@a")
	assert.Equal(t, 2, exec.count(mode.ActionDelete))

	keys(t, s, "2@a")
	assert.Equal(t, 4, exec.count(mode.ActionDelete))

	keys(t, s, "@@")
	assert.Equal(t, 5, exec.count(mode.ActionDelete))
}

func TestSession_MacroKeysDuringPlaybackNotRecorded(t *testing.T) {
	s, _, _ := newTestSession(t)

	keys(t, s, "qaxq")
	keys(t, s, "qb@ajq")

	var recorded string
	s.Inspect(func(st *mode.State) {
		recorded = key.Format(st.Macros.Get(vim.RegisterNamedA + 1))
	})
	assert.Equal(t, "@aj", recorded)
}

func TestSession_MacroRecursionLimit(t *testing.T) {
	s, exec, msgs := newTestSession(t)

	s.Inspect(func(st *mode.State) {
		require.NoError(t, st.Macros.Set(vim.RegisterNamedA, key.MustParseSequence("x@a")))
	})

	keys(t, s, "@a")
	assert.Contains(t, msgs.last(), "recursion")
	assert.LessOrEqual(t, exec.count(mode.ActionDelete), 100)
	assert.Equal(t, mode.ModeNormal, s.Mode())
}

func TestSession_MacroEmpty(t *testing.T) {
	s, _, msgs := newTestSession(t)

	keys(t, s, "@q")
	assert.Contains(t, msgs.last(), "empty")

	keys(t, s, "@@")
	assert.NotEmpty(t, msgs.last())
}

func TestSession_RepeatLast(t *testing.T) {
	s, exec, _ := newTestSession(t)

	keys(t, s, "dw.")
	assert.Equal(t, 2, exec.count(mode.ActionDelete))

	keys(t, s, "ciwfoo<Esc>.")
	assert.Equal(t, 2, exec.count(mode.ActionChange))
	assert.Equal(t, "foofoo", exec.typed())
	assert.Equal(t, mode.ModeNormal, s.Mode())

	keys(t, s, "j.")
	assert.Equal(t, 3, exec.count(mode.ActionChange), "motions do not replace the last change")
}

func TestSession_RepeatNothing(t *testing.T) {
	s, exec, _ := newTestSession(t)

	keys(t, s, ".")
	assert.Empty(t, exec.cmds)
}

func TestSession_CommandLine(t *testing.T) {
	s, exec, msgs := newTestSession(t)

	keys(t, s, ":w<CR>")
	assert.Equal(t, mode.ActionSave, exec.lastCmd().Action)

	keys(t, s, ":nope<CR>")
	assert.Equal(t, "not an editor command: nope", msgs.last())

	err := s.HandleKeys(context.Background(), ":q<CR>")
	assert.ErrorIs(t, err, ErrQuit)
	assert.Equal(t, mode.ModeNormal, s.Mode())
	assert.Equal(t, "q", registerText(t, s, ':'))
}

func TestSession_ExecutorError(t *testing.T) {
	s, exec, _ := newTestSession(t)
	boom := errors.New("boom")
	exec.err = boom

	err := s.HandleKey(key.NewEvent('x', key.ModNone))
	var opErr *OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "execute", opErr.Op)
	assert.ErrorIs(t, err, boom)
}

func TestSession_Pending(t *testing.T) {
	s, _, _ := newTestSession(t)

	keys(t, s, "\"")
	assert.Equal(t, mode.AwaitRegister, s.Pending().Kind)

	keys(t, s, "a")
	assert.True(t, s.Pending().IsZero())
}

func TestSession_Status(t *testing.T) {
	s, _, _ := newTestSession(t)

	keys(t, s, "qw3d")
	st := s.Status()
	assert.Equal(t, mode.ModeOperatorPending, st.Mode)
	assert.Equal(t, "3d", st.PendingKeys)
	assert.Equal(t, "w", st.Recording)

	keys(t, s, "<Esc>q:wq")
	st = s.Status()
	assert.Equal(t, mode.ModeCommand, st.Mode)
	assert.Equal(t, "wq", st.CommandLine)
	assert.Empty(t, st.Recording)
	assert.Empty(t, st.PendingKeys)
}

func TestSession_Close(t *testing.T) {
	path := filepath.Join(t.TempDir(), "macros.json")
	s, _, _ := newTestSession(t, WithMacroFile(path))

	keys(t, s, "qaxq")
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "Close is idempotent")

	assert.ErrorIs(t, s.HandleKey(key.NewEvent('j', key.ModNone)), ErrSessionClosed)

	s2, exec, _ := newTestSession(t)
	require.NoError(t, s2.LoadMacros(path))
	keys(t, s2, "@a")
	assert.Equal(t, 1, exec.count(mode.ActionDelete))
}

func TestSession_InvalidNotation(t *testing.T) {
	s, _, _ := newTestSession(t)
	assert.Error(t, s.HandleKeys(context.Background(), "<Bogus>"))
}

func TestSession_Concurrent(t *testing.T) {
	s, exec, _ := newTestSession(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_ = s.HandleKey(key.NewEvent('j', key.ModNone))
			}
		}()
	}
	wg.Wait()

	s.Inspect(func(*mode.State) {
		assert.Len(t, exec.cmds, 200)
	})
}

func TestSession_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelDebug, Output: &buf})
	s, _, _ := newTestSession(t, WithLogger(logger))

	keys(t, s, "qajq")

	out := buf.String()
	assert.Contains(t, out, "session="+s.ID())
	assert.Contains(t, out, "recorded macro a: j")
	assert.Contains(t, out, "component=session")
}

func TestSession_MessagesLoggedByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: LogLevelWarn, Output: &buf})
	s := NewSession(&fakeExecutor{}, WithLogger(logger))
	defer s.Close()

	keys(t, s, ":bogus<CR>")
	assert.Contains(t, buf.String(), "not an editor command: bogus")
}

func TestNewSessionFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.History.JumpCapacity = 3
	cfg.History.ChangeCapacity = 4
	cfg.Macros.Persist = true
	cfg.Macros.File = filepath.Join(t.TempDir(), "macros.json")

	exec := &fakeExecutor{}
	s, err := NewSessionFromConfig(exec, cfg, nil)
	require.NoError(t, err)

	s.Inspect(func(st *mode.State) {
		assert.Equal(t, 3, st.Jumps.Cap())
		assert.Equal(t, 4, st.Changes.Cap())
	})

	s.SetExpression("6 * 7")
	keys(t, s, "\"=p")
	assert.Equal(t, "42", string(exec.lastCmd().Text))

	keys(t, s, "qcddq")
	require.NoError(t, s.Close())

	s2, err := NewSessionFromConfig(&fakeExecutor{}, cfg, nil)
	require.NoError(t, err)
	defer s2.Close()
	s2.Inspect(func(st *mode.State) {
		assert.True(t, st.Macros.HasMacro(vim.RegisterNamedA+2))
	})
}
