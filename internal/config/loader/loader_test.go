package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
[log]
level = "debug"

[history]
jump_capacity = 50
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	log, ok := config["log"].(map[string]any)
	if !ok {
		t.Fatal("expected log to be a map")
	}
	if log["level"] != "debug" {
		t.Errorf("log.level = %v, want debug", log["level"])
	}

	history := config["history"].(map[string]any)
	if history["jump_capacity"] != int64(50) {
		t.Errorf("history.jump_capacity = %v (%T), want 50", history["jump_capacity"], history["jump_capacity"])
	}
}

func TestTOMLLoader_Missing(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/nope.toml").Load()
	if err != nil {
		t.Errorf("missing file should not be an error, got %v", err)
	}
	if config != nil {
		t.Errorf("config = %v, want nil", config)
	}
}

func TestTOMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "[log]\nlevel = \n")

	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if pe.Path != "/bad.toml" {
		t.Errorf("Path = %q", pe.Path)
	}
	if pe.Line == 0 {
		t.Error("Line should be reported")
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	config, err := NewTOMLLoader("").LoadFromReader(strings.NewReader(`clipboard = { enabled = true }`))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}
	if config["clipboard"].(map[string]any)["enabled"] != true {
		t.Errorf("clipboard.enabled not loaded: %v", config)
	}
}

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.yaml", `
log:
  level: warn
expression:
  enabled: false
  timeout: 250ms
`)

	config, err := NewYAMLLoaderWithFS(memfs, "/config.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	expr, ok := config["expression"].(map[string]any)
	if !ok {
		t.Fatalf("expected expression to be a map, got %T", config["expression"])
	}
	if expr["enabled"] != false {
		t.Errorf("expression.enabled = %v", expr["enabled"])
	}
	if expr["timeout"] != "250ms" {
		t.Errorf("expression.timeout = %v", expr["timeout"])
	}
}

func TestYAMLLoader_ParseError(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.yml", "log: [unclosed\n")

	_, err := NewYAMLLoaderWithFS(memfs, "/bad.yml").Load()
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"a.toml", "*loader.TOMLLoader", false},
		{"a.TOML", "*loader.TOMLLoader", false},
		{"a.yaml", "*loader.YAMLLoader", false},
		{"a.yml", "*loader.YAMLLoader", false},
		{"a.json", "", true},
		{"a", "", true},
	}

	for _, tt := range tests {
		l, err := ForPath(NewMemFS(), tt.path)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("ForPath(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ForPath(%q) error = %v", tt.path, err)
			continue
		}
		if got := typeName(l); got != tt.want {
			t.Errorf("ForPath(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func typeName(l FileLoader) string {
	switch l.(type) {
	case *TOMLLoader:
		return "*loader.TOMLLoader"
	case *YAMLLoader:
		return "*loader.YAMLLoader"
	}
	return ""
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"log":     map[string]any{"level": "info", "file": "a.log"},
		"history": map[string]any{"jump_capacity": int64(100)},
	}
	src := map[string]any{
		"log":       map[string]any{"level": "debug"},
		"clipboard": map[string]any{"enabled": false},
	}

	got := DeepMerge(dst, src)
	log := got["log"].(map[string]any)
	if log["level"] != "debug" || log["file"] != "a.log" {
		t.Errorf("log = %v", log)
	}
	if got["history"].(map[string]any)["jump_capacity"] != int64(100) {
		t.Errorf("history lost: %v", got)
	}
	if got["clipboard"].(map[string]any)["enabled"] != false {
		t.Errorf("clipboard not merged: %v", got)
	}

	if DeepMerge(nil, nil) == nil {
		t.Error("DeepMerge(nil, nil) should return an empty map")
	}
}
