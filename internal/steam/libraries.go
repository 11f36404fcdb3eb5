package steam

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Libraries returns root followed by the library folders listed in
// steamapps/libraryfolders.vdf. Only existing directories are kept, each once,
// in first-seen order.
func Libraries(fs afero.Fs, root string) []string {
	candidates := append([]string{root}, libraryFolders(fs, filepath.Join(root, "steamapps", "libraryfolders.vdf"))...)

	out := make([]string, 0, len(candidates))
	seen := make(map[string]struct{}, len(candidates))
	for _, p := range candidates {
		p = filepath.Clean(p)
		if _, dup := seen[p]; dup || !isDir(fs, p) {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// libraryFolders understands both layouts Steam has used:
//
//	"libraryfolders" { "0" { "path" "/mnt/games" ... } }
//	"LibraryFolders" { "TimeNextStatsReport" "..." "1" "D:\\SteamLibrary" }
func libraryFolders(fs afero.Fs, path string) []string {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil
	}
	kv, err := parseKeyValues(data)
	if err != nil {
		return nil
	}

	var paths []string
	for _, top := range orderedKeys(kv) {
		section, ok := kv[top].(map[string]interface{})
		if !ok {
			continue
		}
		for _, key := range orderedKeys(section) {
			switch v := section[key].(type) {
			case map[string]interface{}:
				if p := lookupString(v, "path"); p != "" {
					paths = append(paths, normalizeLibraryPath(p))
				}
			case string:
				if isNumeric(key) && strings.TrimSpace(v) != "" {
					paths = append(paths, normalizeLibraryPath(v))
				}
			}
		}
	}
	return paths
}

func normalizeLibraryPath(p string) string {
	return filepath.Clean(strings.ReplaceAll(strings.TrimSpace(p), `\\`, `\`))
}
