package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dshills/modal/internal/app"
)

// registerOrder is the order registers are listed by --registers.
const registerOrder = "\"0123456789abcdefghijklmnopqrstuvwxyz-.:/"

func newReplayCmd(opts *rootOptions) *cobra.Command {
	var (
		file          string
		showRegisters bool
		expression    string
	)

	cmd := &cobra.Command{
		Use:   "replay <keys>...",
		Short: "Print the commands a key sequence produces",
		Long: `Replay feeds keys in Vim notation to a fresh session and prints every
command the session executes. Arguments are joined without spaces, so
"modal replay qa dw q 2@a" replays "qadwq2@a".`,
		Example: `  modal replay '3d2w'
  modal replay '"ayy"ap' --registers
  modal replay --expr '6 * 7' '"=p'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.Context(), cmd.OutOrStdout(), opts, replayOptions{
				keys:          strings.Join(args, ""),
				file:          file,
				expression:    expression,
				showRegisters: showRegisters,
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "file name recorded in mark and jump positions")
	cmd.Flags().BoolVarP(&showRegisters, "registers", "r", false, "list non-empty registers afterwards")
	cmd.Flags().StringVarP(&expression, "expr", "e", "", "expression evaluated when the = register is put")
	return cmd
}

type replayOptions struct {
	keys          string
	file          string
	expression    string
	showRegisters bool
}

// printingExecutor prints each command as it runs.
type printingExecutor struct {
	*app.TraceExecutor
	w io.Writer
}

func (p *printingExecutor) Execute(cmd app.Command) (app.Outcome, error) {
	fmt.Fprintf(p.w, "%4d  %s\n", len(p.Commands)+1, cmd)
	return p.TraceExecutor.Execute(cmd)
}

func runReplay(ctx context.Context, w io.Writer, opts *rootOptions, ro replayOptions) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	exec := &printingExecutor{TraceExecutor: app.NewTraceExecutor(ro.file), w: w}
	sess, err := app.NewSessionFromConfig(exec, opts.cfg, opts.logger,
		app.WithMessageHandler(func(msg string) {
			fmt.Fprintf(w, "      ! %s\n", msg)
		}))
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := sess.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if ro.expression != "" {
		sess.SetExpression(ro.expression)
	}

	err = sess.HandleKeys(ctx, ro.keys)
	quit := errors.Is(err, app.ErrQuit)
	if err != nil && !quit {
		return err
	}

	st := sess.Status()
	fmt.Fprintf(w, "mode: %s\n", st.Mode)
	if st.PendingKeys != "" {
		fmt.Fprintf(w, "pending: %s\n", st.PendingKeys)
	}
	if st.Recording != "" {
		fmt.Fprintf(w, "recording: @%s\n", st.Recording)
	}
	fmt.Fprintf(w, "cursor: %s\n", exec.Cursor())
	if quit {
		fmt.Fprintln(w, "quit")
	}

	if ro.showRegisters {
		writeRegisters(w, sess)
	}
	return nil
}

func writeRegisters(w io.Writer, sess *app.Session) {
	for i := 0; i < len(registerOrder); i++ {
		c := registerOrder[i]
		content, ok := sess.Register(c)
		if !ok || len(content.Text) == 0 {
			continue
		}
		kind := "c"
		if content.Linewise {
			kind = "l"
		}
		fmt.Fprintf(w, "%s  \"%c  %q\n", kind, c, content.Text)
	}
}
