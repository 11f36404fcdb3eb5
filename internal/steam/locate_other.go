//go:build !windows

package steam

import (
	"os"
	"path/filepath"
	"runtime"
)

func platformRoots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return candidateRoots(runtime.GOOS, home)
}

func candidateRoots(goos, home string) []string {
	if goos == "darwin" {
		return []string{filepath.Join(home, "Library", "Application Support", "Steam")}
	}
	return []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
	}
}
