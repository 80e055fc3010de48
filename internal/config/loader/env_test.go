package loader

import (
	"strings"
	"testing"
)

func getByPath(data map[string]any, path string) (any, bool) {
	section, setting, _ := strings.Cut(path, ".")
	m, ok := data[section].(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := m[setting]
	return v, ok
}

func TestEnvLoader_Load(t *testing.T) {
	loader := NewEnvLoaderFrom("MODAL_", []string{
		"MODAL_LOG_LEVEL=debug",
		"MODAL_HISTORY_JUMP_CAPACITY=42",
		"MODAL_CLIPBOARD=off",
		"MODAL_MACROS=/tmp/m.json",
		"MODAL_EXPRESSION_TIMEOUT=1.5",
		"HOME=/root",
	})

	config, err := loader.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		path string
		want any
	}{
		{"log.level", "debug"},
		{"history.jump_capacity", int64(42)},
		{"clipboard.enabled", false},
		{"macros.file", "/tmp/m.json"},
		{"expression.timeout", 1.5},
	}
	for _, tt := range tests {
		got, ok := getByPath(config, tt.path)
		if !ok || got != tt.want {
			t.Errorf("%s = %v (%T), want %v", tt.path, got, got, tt.want)
		}
	}

	if _, ok := config["home"]; ok {
		t.Error("unprefixed variables must be ignored")
	}
}

func TestEnvLoader_envToPath(t *testing.T) {
	loader := NewEnvLoader("MODAL_")

	tests := []struct {
		env  string
		want string
	}{
		{"MODAL_LOG_LEVEL", "log.level"},
		{"MODAL_HISTORY_CHANGE_CAPACITY", "history.change_capacity"},
		{"MODAL_EXPRESSION_ENABLED", "expression.enabled"},
		{"MODAL_ALONE", ""},
		{"MODAL__X", ""},
	}

	for _, tt := range tests {
		if got := loader.envToPath(tt.env); got != tt.want {
			t.Errorf("envToPath(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestEnvLoader_AddMapping(t *testing.T) {
	loader := NewEnvLoaderFrom("MODAL_", []string{"MODAL_JUMPS=7"})
	loader.AddMapping("MODAL_JUMPS", "history.jump_capacity")

	config, _ := loader.Load()
	if got, _ := getByPath(config, "history.jump_capacity"); got != int64(7) {
		t.Errorf("history.jump_capacity = %v, want 7", got)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"YES", true},
		{"off", false},
		{"12", int64(12)},
		{"-3", int64(-3)},
		{"0.5", 0.5},
		{"250ms", "250ms"},
		{"", ""},
		{"info", "info"},
	}

	for _, tt := range tests {
		if got := parseValue(tt.in); got != tt.want {
			t.Errorf("parseValue(%q) = %v (%T), want %v", tt.in, got, got, tt.want)
		}
	}
}
