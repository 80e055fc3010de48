package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/modal/internal/app"
	"github.com/dshills/modal/internal/config"
	"github.com/dshills/modal/internal/input/mode"
	"github.com/dshills/modal/internal/renderer/backend"
	"github.com/dshills/modal/internal/renderer/statusline"
)

// maxTraceLines bounds the command log kept by the trace view.
const maxTraceLines = 1000

var errNotTerminal = errors.New("trace needs an interactive terminal")

func newTraceCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "trace",
		Short: "Type keys interactively and watch the commands they produce",
		Long: `Trace opens a full-screen view. Every key goes to a live session; the
commands it executes are listed above a Vim-like status line showing
the mode, pending keys and macro recording. Quit with :q.

Changes to the config file are reported while trace runs; they take
effect the next time it starts.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTrace(cmd.Context(), opts)
		},
	}
}

func runTrace(ctx context.Context, opts *rootOptions) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.logger
	if opts.cfg.Log.File == "" {
		// Log lines on stderr would corrupt the screen.
		logger = app.NullLogger
	}

	t, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("failed to create terminal: %w", err)
	}
	if err := t.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	defer t.Shutdown()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tr, err := newTracer(t, opts.cfg, logger)
	if err != nil {
		return err
	}

	if opts.resolvedPath != "" {
		w, err := config.Watch(opts.resolvedPath, tr.configReloaded)
		if err != nil {
			logger.Warn("config watch disabled: %v", err)
		} else {
			defer w.Close()
		}
	}

	go func() {
		<-ctx.Done()
		t.Interrupt()
	}()
	return tr.run(ctx)
}

// note is a message posted from outside the event loop.
type note struct {
	text  string
	isErr bool
}

// tracer is the interactive trace view: a log of executed commands above
// a status line.
type tracer struct {
	b      backend.Backend
	sess   *app.Session
	status *statusline.StatusLine
	lines  []string

	mu    sync.Mutex
	notes []note
}

// loggingExecutor appends each command to the trace log.
type loggingExecutor struct {
	*app.TraceExecutor
	t *tracer
}

func (e *loggingExecutor) Execute(cmd app.Command) (app.Outcome, error) {
	e.t.addLine(fmt.Sprintf("%4d  %s", len(e.Commands)+1, cmd))
	return e.TraceExecutor.Execute(cmd)
}

func newTracer(b backend.Backend, cfg config.Config, logger *app.Logger) (*tracer, error) {
	t := &tracer{b: b, status: statusline.New()}

	exec := &loggingExecutor{TraceExecutor: app.NewTraceExecutor(""), t: t}
	sess, err := app.NewSessionFromConfig(exec, cfg, logger, app.WithMessageHandler(func(msg string) {
		t.status.SetMessage(msg, statusline.MessageError)
	}))
	if err != nil {
		return nil, err
	}
	t.sess = sess
	return t, nil
}

// run processes events until :q, an interrupt with ctx done, or a
// terminal failure.
func (t *tracer) run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := t.sess.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	t.draw()
	for {
		done, err := t.handle(ctx, t.b.PollEvent())
		if done || err != nil {
			return err
		}
		t.draw()
	}
}

// handle processes one event. done is true when the view should close.
func (t *tracer) handle(ctx context.Context, ev backend.Event) (done bool, err error) {
	switch ev.Type {
	case backend.EventInterrupt:
		if ctx.Err() != nil {
			return true, nil
		}
		t.drainNotes()

	case backend.EventKey:
		t.status.ClearMessage()
		for _, k := range ev.Keys {
			err := t.sess.HandleKeyContext(ctx, k)
			switch {
			case errors.Is(err, app.ErrQuit):
				return true, nil
			case err != nil:
				t.status.SetMessage(err.Error(), statusline.MessageError)
			}
		}
	}
	return false, nil
}

func (t *tracer) addLine(line string) {
	t.lines = append(t.lines, line)
	if n := len(t.lines); n > maxTraceLines {
		t.lines = append(t.lines[:0], t.lines[n-maxTraceLines:]...)
	}
}

// configReloaded runs on the watcher goroutine.
func (t *tracer) configReloaded(cfg config.Config, err error) {
	n := note{text: "config reloaded (applies on restart)"}
	if err != nil {
		n = note{text: err.Error(), isErr: true}
	}
	t.post(n)
}

// post queues a note and wakes the event loop.
func (t *tracer) post(n note) {
	t.mu.Lock()
	t.notes = append(t.notes, n)
	t.mu.Unlock()
	t.b.Interrupt()
}

func (t *tracer) drainNotes() {
	t.mu.Lock()
	notes := t.notes
	t.notes = nil
	t.mu.Unlock()

	for _, n := range notes {
		kind := statusline.MessageInfo
		if n.isErr {
			kind = statusline.MessageError
		}
		t.status.SetMessage(n.text, kind)
	}
}

func (t *tracer) draw() {
	width, height := t.b.Size()
	st := t.sess.Status()

	t.status.Resize(width)
	t.status.SetMode(st.Mode)
	t.status.SetPending(st.PendingKeys)
	t.status.SetRecording(st.Recording)
	t.status.SetCommandLine(st.CommandLine)

	t.b.Clear()
	rows := max(height-t.status.Height(), 0)
	visible := t.lines[max(len(t.lines)-rows, 0):]
	for y, line := range visible {
		t.b.SetText(0, y, line, backend.DefaultStyle())
	}

	if st.Mode != mode.ModeCommand {
		t.b.ShowCursor(0, min(len(visible), max(rows-1, 0)))
	}
	t.status.Render(t.b, height-1)
	t.b.Show()
}
