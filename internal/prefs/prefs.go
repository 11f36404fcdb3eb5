// Package prefs persists choices made in the live view, currently the theme.
// Preferences live in ~/.config/steamtail/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

// Prefs holds user preferences. An empty Theme defers to the config file.
type Prefs struct {
	Theme string `toml:"theme"`
}

const defaultPrefsPath = "~/.config/steamtail/prefs.toml"

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Store reads and writes one preferences file.
type Store struct {
	fs   afero.Fs
	path string
}

// Open returns a Store for path on fs. An empty path uses DefaultPath.
func Open(fs afero.Fs, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	resolved, err := expandPath(path)
	if err != nil {
		return nil, err
	}
	return &Store{fs: fs, path: resolved}, nil
}

// Path is the resolved file location.
func (s *Store) Path() string { return s.path }

// Load returns the stored preferences. A missing or unreadable file yields
// zero Prefs; preferences never block a run.
func (s *Store) Load() Prefs {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return Prefs{}
	}
	var p Prefs
	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{}
	}
	p.Theme = strings.TrimSpace(p.Theme)
	return p
}

// Save writes p, creating the parent directory as needed.
func (s *Store) Save(p Prefs) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}
	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	if trimmed == "" {
		return "", errors.New("prefs path is empty")
	}
	return filepath.Abs(trimmed)
}
