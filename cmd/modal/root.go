package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dshills/modal/internal/app"
	"github.com/dshills/modal/internal/config"
)

// rootOptions holds the settings shared by every subcommand. They are
// filled in by the root command's PersistentPreRunE.
type rootOptions struct {
	configPath string
	logLevel   string

	// resolvedPath is the settings file actually read, empty when none
	// exists.
	resolvedPath string
	cfg          config.Config
	logger       *app.Logger
	closeLog     io.Closer
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "modal",
		Short: "A Vim-style modal key engine",
		Long: `modal turns key presses into editing commands the way Vim does:
counts, operators, motions, text objects, registers, marks and macros.

Use "modal replay" to see the commands a key sequence produces, or
"modal trace" to type keys interactively and watch the engine respond.`,
		SilenceUsage:       true,
		PersistentPreRunE:  func(cmd *cobra.Command, _ []string) error { return opts.setup() },
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error { return opts.teardown() },
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "",
		"config file (default: "+config.DefaultPath()+")")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "",
		"log level (debug, info, warn, error); overrides the config file")

	cmd.AddCommand(
		newReplayCmd(opts),
		newTraceCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

// setup loads settings and opens the logger.
func (o *rootOptions) setup() error {
	path := o.configPath
	if path == "" {
		path = config.DefaultPath()
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}
	o.resolvedPath = path

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if o.logLevel != "" {
		switch o.logLevel {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", o.logLevel)
		}
		cfg.Log.Level = o.logLevel
	}
	o.cfg = cfg

	logger, closer, err := app.NewLoggerFromConfig(cfg.Log)
	if err != nil {
		return err
	}
	o.logger = logger
	o.closeLog = closer
	logger.Debug("settings loaded from %s", displayPath(path))
	return nil
}

func (o *rootOptions) teardown() error {
	if o.closeLog == nil {
		return nil
	}
	err := o.closeLog.Close()
	o.closeLog = nil
	return err
}

func displayPath(path string) string {
	if path == "" {
		return "defaults"
	}
	return path
}
