package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/modal/internal/config/loader"
	"github.com/dshills/modal/internal/config/watcher"
)

// EnvPrefix is the prefix of environment variable overrides.
const EnvPrefix = "MODAL_"

// Config holds all session settings.
type Config struct {
	Log        LogConfig        `toml:"log" yaml:"log"`
	History    HistoryConfig    `toml:"history" yaml:"history"`
	Clipboard  ClipboardConfig  `toml:"clipboard" yaml:"clipboard"`
	Macros     MacrosConfig     `toml:"macros" yaml:"macros"`
	Expression ExpressionConfig `toml:"expression" yaml:"expression"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`
	// File receives log output; empty means stderr.
	File string `toml:"file" yaml:"file"`
}

// HistoryConfig sizes the jump and change lists.
type HistoryConfig struct {
	JumpCapacity   int `toml:"jump_capacity" yaml:"jump_capacity"`
	ChangeCapacity int `toml:"change_capacity" yaml:"change_capacity"`
}

// ClipboardConfig connects the + and * registers to the system clipboard.
type ClipboardConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
}

// MacrosConfig controls macro persistence.
type MacrosConfig struct {
	// File is where macros are saved; empty means the default location.
	File    string `toml:"file" yaml:"file"`
	Persist bool   `toml:"persist" yaml:"persist"`
}

// ExpressionConfig controls the = register.
type ExpressionConfig struct {
	Enabled bool     `toml:"enabled" yaml:"enabled"`
	Timeout Duration `toml:"timeout" yaml:"timeout"`
}

// Duration is a time.Duration written as a string such as "250ms".
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		History: HistoryConfig{
			JumpCapacity:   100,
			ChangeCapacity: 100,
		},
		Clipboard: ClipboardConfig{Enabled: false},
		Macros:    MacrosConfig{Persist: false},
		Expression: ExpressionConfig{
			Enabled: true,
			Timeout: Duration(250 * time.Millisecond),
		},
	}
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate reports every setting outside its domain.
func (c Config) Validate() error {
	var errs []error
	if !logLevels[strings.ToLower(c.Log.Level)] {
		errs = append(errs, &ValidationError{Path: "log.level", Message: "must be debug, info, warn or error", Value: c.Log.Level})
	}
	if c.History.JumpCapacity < 1 {
		errs = append(errs, &ValidationError{Path: "history.jump_capacity", Message: "must be at least 1", Value: c.History.JumpCapacity})
	}
	if c.History.ChangeCapacity < 1 {
		errs = append(errs, &ValidationError{Path: "history.change_capacity", Message: "must be at least 1", Value: c.History.ChangeCapacity})
	}
	if c.Expression.Timeout <= 0 {
		errs = append(errs, &ValidationError{Path: "expression.timeout", Message: "must be positive", Value: c.Expression.Timeout.Std()})
	}
	return errors.Join(errs...)
}

// LoadOption configures Load.
type LoadOption func(*loadOptions)

type loadOptions struct {
	fs      loader.FileSystem
	environ []string
	useEnv  bool
}

// WithFS reads files through fsys.
func WithFS(fsys loader.FileSystem) LoadOption {
	return func(o *loadOptions) {
		o.fs = fsys
	}
}

// WithEnviron reads overrides from the given KEY=VALUE list instead of
// the process environment.
func WithEnviron(environ []string) LoadOption {
	return func(o *loadOptions) {
		o.environ = environ
	}
}

// WithoutEnv disables environment overrides.
func WithoutEnv() LoadOption {
	return func(o *loadOptions) {
		o.useEnv = false
	}
}

// Load reads the settings file at path over the defaults, applies
// environment overrides and validates the result. An empty path or a
// missing file yields the defaults.
func Load(path string, opts ...LoadOption) (Config, error) {
	o := loadOptions{fs: loader.DefaultFS(), useEnv: true}
	for _, opt := range opts {
		opt(&o)
	}

	merged := make(map[string]any)
	if path != "" {
		l, err := loader.ForPath(o.fs, path)
		if err != nil {
			return Config{}, err
		}
		fileConfig, err := l.Load()
		if err != nil {
			return Config{}, err
		}
		merged = loader.DeepMerge(merged, fileConfig)
	}

	if o.useEnv {
		env := loader.NewEnvLoader(EnvPrefix)
		if o.environ != nil {
			env = loader.NewEnvLoaderFrom(EnvPrefix, o.environ)
		}
		envConfig, err := env.Load()
		if err != nil {
			return Config{}, fmt.Errorf("loading environment: %w", err)
		}
		merged = loader.DeepMerge(merged, envConfig)
	}

	cfg := Default()
	if err := decode(merged, &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding %s: %w", displayPath(path), err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// decode overlays the generic map onto cfg. Settings absent from m keep
// their current values.
func decode(m map[string]any, cfg *Config) error {
	if len(m) == 0 {
		return nil
	}
	data, err := toml.Marshal(m)
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, cfg)
}

// Watch reloads the settings at path whenever the file changes and hands
// the result to onReload. Load errors are passed through so the caller
// can keep its previous settings.
func Watch(path string, onReload func(Config, error), opts ...LoadOption) (*watcher.Watcher, error) {
	w, err := watcher.New()
	if err != nil {
		return nil, fmt.Errorf("creating config watcher: %w", err)
	}
	w.OnChange(func(watcher.Event) {
		onReload(Load(path, opts...))
	})
	w.OnError(func(err error) {
		onReload(Config{}, fmt.Errorf("watching %s: %w", path, err))
	})
	if err := w.Watch(path); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watching %s: %w", path, err)
	}
	return w, nil
}

// DefaultPath returns the user settings file, ~/.config/modal/config.toml
// on Linux.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "modal", "config.toml")
}

func displayPath(path string) string {
	if path == "" {
		return "environment"
	}
	return path
}
