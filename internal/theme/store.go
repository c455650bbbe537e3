package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// darkModeKey is the fixed key the dark-mode preference is stored under.
// The provider is its only reader and writer.
const darkModeKey = "dark_mode"

// Store persists the dark-mode preference across runs.
type Store interface {
	// DarkMode returns the persisted value. ok is false when no value
	// has ever been saved.
	DarkMode() (value bool, ok bool, err error)
	// SetDarkMode overwrites the persisted value.
	SetDarkMode(value bool) error
}

// FileStore keeps preferences as a JSON string map on disk. Values are
// string-serialized so the file stays diffable and editable by hand.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a FileStore backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPreferencesPath returns the standard preferences location
// under the user's home directory.
func DefaultPreferencesPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".todotui", "preferences.json"), nil
}

func (s *FileStore) DarkMode() (bool, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.read()
	if err != nil {
		return false, false, err
	}

	raw, ok := prefs[darkModeKey]
	if !ok {
		return false, false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("preference %q holds invalid value %q: %w", darkModeKey, raw, err)
	}
	return value, true, nil
}

func (s *FileStore) SetDarkMode(value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs, err := s.read()
	if err != nil {
		// A corrupt file is replaced rather than surfacing a stale error
		// on every save.
		prefs = map[string]string{}
	}
	prefs[darkModeKey] = strconv.FormatBool(value)

	return s.write(prefs)
}

func (s *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var prefs map[string]string
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, fmt.Errorf("failed to parse preferences: %w", err)
	}
	if prefs == nil {
		prefs = map[string]string{}
	}
	return prefs, nil
}

// write replaces the preferences file atomically via a temporary file
// and rename, so a crash never leaves a half-written document.
func (s *FileStore) write(prefs map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
