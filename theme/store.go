package theme

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// StorageKey is the only key this program ever persists
const StorageKey = "dp-theme"

// Store keeps the theme choice in a one-key YAML file
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Get returns the stored theme. A missing, unreadable or invalid file reads
// as "not set".
func (s *Store) Get() (Name, bool) {
	if s == nil || s.path == "" {
		return "", false
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}
	var doc map[string]string
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return "", false
	}
	return Parse(doc[StorageKey])
}

// Set writes the theme choice
func (s *Store) Set(n Name) error {
	if s == nil || s.path == "" {
		return errors.New("theme store: no path")
	}
	data, err := yaml.Marshal(map[string]string{StorageKey: string(n)})
	if err != nil {
		return fmt.Errorf("theme store: encode: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("theme store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("theme store: write %s: %w", s.path, err)
	}
	return nil
}

// Clear removes the stored choice so the system theme applies again
func (s *Store) Clear() error {
	if s == nil || s.path == "" {
		return nil
	}
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("theme store: %w", err)
	}
	return nil
}
