package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestOperation_String(t *testing.T) {
	tests := []struct {
		op   Operation
		want string
	}{
		{OpWrite, "write"},
		{OpCreate, "create"},
		{OpRemove, "remove"},
		{OpRename, "rename"},
		{Operation(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestWatcher_Watch(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.toml")

	w, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Close()

	// The file itself need not exist.
	if err := w.Watch(tmpFile); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := w.Watch(tmpFile); !errors.Is(err, ErrAlreadyWatching) {
		t.Errorf("second Watch() error = %v, want ErrAlreadyWatching", err)
	}
	if files := w.WatchedFiles(); len(files) != 1 {
		t.Errorf("WatchedFiles() = %v, want 1 file", files)
	}

	if err := w.Watch(filepath.Join(tmpDir, "missing", "x.toml")); err == nil {
		t.Error("Watch() in a missing directory should fail")
	}

	if err := w.Unwatch(tmpFile); err != nil {
		t.Errorf("Unwatch() error = %v", err)
	}
	if files := w.WatchedFiles(); len(files) != 0 {
		t.Errorf("WatchedFiles() after Unwatch = %v", files)
	}
}

func TestWatcher_DetectsWrite(t *testing.T) {
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "config.toml")
	other := filepath.Join(tmpDir, "other.toml")
	if err := os.WriteFile(tmpFile, []byte("a = 1"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := New(WithDebounce(20 * time.Millisecond))
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	var mu sync.Mutex
	var events []Event
	done := make(chan struct{}, 1)
	w.OnChange(func(ev Event) {
		mu.Lock()
		events = append(events, ev)
		mu.Unlock()
		select {
		case done <- struct{}{}:
		default:
		}
	})

	if err := w.Watch(tmpFile); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(other, []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := os.WriteFile(tmpFile, []byte("a = 2"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("no change event")
	}

	mu.Lock()
	defer mu.Unlock()
	abs, _ := filepath.Abs(tmpFile)
	for _, ev := range events {
		if ev.Path != abs {
			t.Errorf("event for unwatched path %s", ev.Path)
		}
	}
}

func TestWatcher_Close(t *testing.T) {
	w, err := New()
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	if err := w.Watch(filepath.Join(t.TempDir(), "x.toml")); !errors.Is(err, ErrWatcherClosed) {
		t.Errorf("Watch() after Close = %v, want ErrWatcherClosed", err)
	}
}
