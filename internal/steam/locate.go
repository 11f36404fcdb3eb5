package steam

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

var (
	// ErrNotFound means no Steam installation could be located.
	ErrNotFound = errors.New("steam installation not found")
	// ErrLogNotFound means the installation has no content log.
	ErrLogNotFound = errors.New("content log not found")
)

// Locate returns the Steam install root. A non-empty override is the only
// candidate when set; otherwise the platform's usual locations are tried in
// order.
func Locate(fs afero.Fs, override string) (string, error) {
	if override = strings.TrimSpace(override); override != "" {
		root := filepath.Clean(override)
		if isDir(fs, root) {
			return root, nil
		}
		return "", fmt.Errorf("%w: %s is not a directory", ErrNotFound, root)
	}
	for _, root := range platformRoots() {
		if isDir(fs, root) {
			return filepath.Clean(root), nil
		}
	}
	return "", ErrNotFound
}

// ContentLogPath returns where Steam writes content_log.txt under root.
func ContentLogPath(root string) string {
	return filepath.Join(root, "logs", "content_log.txt")
}

// ContentLog returns the content log path, or ErrLogNotFound when the file
// does not exist.
func ContentLog(fs afero.Fs, root string) (string, error) {
	path := ContentLogPath(root)
	info, err := fs.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrLogNotFound, path)
	}
	return path, nil
}

func isDir(fs afero.Fs, path string) bool {
	ok, err := afero.IsDir(fs, path)
	return err == nil && ok
}
