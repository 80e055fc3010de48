package macro

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dshills/modal/internal/input/key"
	"github.com/dshills/modal/internal/input/vim"
)

// persistedEvent is the JSON-serializable form of key.Event.
type persistedEvent struct {
	Key       uint8 `json:"key"`
	Modifiers uint8 `json:"modifiers,omitempty"`
}

// persistedMacro represents a single macro for persistence.
type persistedMacro struct {
	Register string           `json:"register"`
	Keys     string           `json:"keys,omitempty"` // informational
	Events   []persistedEvent `json:"events"`
}

// persistedData is the root structure for macro persistence.
type persistedData struct {
	Version    int              `json:"version"`
	SavedAt    time.Time        `json:"saved_at"`
	LastPlayed string           `json:"last_played,omitempty"`
	Macros     []persistedMacro `json:"macros"`
}

const currentVersion = 1

// Save writes all macros from the store to the specified file.
// The file is written atomically using a temporary file and rename.
func Save(store *Store, path string) error {
	jsonData, err := Export(store)
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	// Write atomically using temp file + rename
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Load reads macros from the specified file into the store.
// Existing macros are replaced. A missing file is not an error.
func Load(store *Store, path string) error {
	jsonData, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read macros file: %w", err)
	}

	store.ClearAll()
	return Import(store, jsonData, false)
}

// Export encodes all macros as JSON (for sharing/backup).
func Export(store *Store) ([]byte, error) {
	registers := store.Registers()

	data := persistedData{
		Version: currentVersion,
		SavedAt: time.Now(),
		Macros:  make([]persistedMacro, 0, len(registers)),
	}
	if r, ok := store.LastPlayed(); ok {
		data.LastPlayed = r.String()
	}

	for _, r := range registers {
		events := store.Get(r)
		persisted := persistedMacro{
			Register: r.String(),
			Keys:     key.Format(events),
			Events:   make([]persistedEvent, len(events)),
		}
		for i, e := range events {
			persisted.Events[i] = persistedEvent{Key: e.Key, Modifiers: uint8(e.Modifiers)}
		}
		data.Macros = append(data.Macros, persisted)
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal macros: %w", err)
	}
	return jsonData, nil
}

// Import decodes macros from JSON data.
// With merge, registers that already hold a macro are left untouched.
func Import(store *Store, jsonData []byte, merge bool) error {
	var data persistedData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return fmt.Errorf("failed to unmarshal macros: %w", err)
	}

	if data.Version > currentVersion {
		return fmt.Errorf("unsupported macros version: %d (max supported: %d)",
			data.Version, currentVersion)
	}

	for _, m := range data.Macros {
		r, ok := parseRegister(m.Register)
		if !ok {
			continue
		}
		if merge && store.HasMacro(r) {
			continue
		}

		events := make([]key.Event, len(m.Events))
		for i, p := range m.Events {
			events[i] = key.Event{Key: p.Key, Modifiers: key.Modifier(p.Modifiers)}
		}
		if err := store.Set(r, events); err != nil {
			return fmt.Errorf("failed to set register %s: %w", m.Register, err)
		}
	}

	if r, ok := parseRegister(data.LastPlayed); ok {
		store.SetLastPlayed(r)
	}
	return nil
}

// DefaultMacrosPath returns the default path for storing macros.
// On Unix-like systems: ~/.config/modal/macros.json
func DefaultMacrosPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(configDir, "modal", "macros.json"), nil
}

func parseRegister(s string) (vim.Register, bool) {
	if len(s) != 1 {
		return 0, false
	}
	r, ok := vim.RegisterFromChar(s[0])
	if !ok || !IsValidRegister(r) {
		return 0, false
	}
	return r, true
}
