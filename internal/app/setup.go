package app

import (
	"github.com/dshills/modal/internal/config"
	"github.com/dshills/modal/internal/input/macro"
	"github.com/dshills/modal/internal/input/mode"
)

// NewSessionFromConfig creates a session configured by cfg. When macro
// persistence is on, saved macros are loaded and written back on Close.
// extra options apply after those derived from cfg.
func NewSessionFromConfig(exec Executor, cfg config.Config, logger *Logger, extra ...SessionOption) (*Session, error) {
	if logger == nil {
		logger = NullLogger
	}

	stateOpts := []mode.Option{
		mode.WithJumpCapacity(cfg.History.JumpCapacity),
		mode.WithChangeCapacity(cfg.History.ChangeCapacity),
	}
	if cfg.Clipboard.Enabled {
		if ClipboardAvailable() {
			stateOpts = append(stateOpts, mode.WithClipboard(SystemClipboard{}))
		} else {
			logger.Warn("clipboard enabled but no clipboard utility found")
		}
	}

	opts := []SessionOption{
		WithLogger(logger),
		WithStateOptions(stateOpts...),
	}
	if cfg.Expression.Enabled {
		opts = append(opts, WithEvaluator(NewLuaEvaluator(cfg.Expression.Timeout.Std())))
	}

	var macroFile string
	if cfg.Macros.Persist {
		macroFile = cfg.Macros.File
		if macroFile == "" {
			path, err := macro.DefaultMacrosPath()
			if err != nil {
				return nil, NewOperationError("locate macros", "", err)
			}
			macroFile = path
		}
		opts = append(opts, WithMacroFile(macroFile))
	}

	s := NewSession(exec, append(opts, extra...)...)
	if macroFile != "" {
		if err := s.LoadMacros(macroFile); err != nil {
			return nil, err
		}
	}
	return s, nil
}
