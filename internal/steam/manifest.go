package steam

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// NameResolver maps AppIDs to display names using appmanifest_<id>.acf files.
type NameResolver struct {
	fs        afero.Fs
	libraries []string
}

// NewNameResolver searches libraries in order.
func NewNameResolver(fs afero.Fs, libraries []string) *NameResolver {
	return &NameResolver{fs: fs, libraries: append([]string(nil), libraries...)}
}

// Name returns the manifest's AppState.name, or FallbackName when no library
// has a readable manifest with a name.
func (r *NameResolver) Name(appID uint64) string {
	file := fmt.Sprintf("appmanifest_%d.acf", appID)
	for _, lib := range r.libraries {
		data, err := afero.ReadFile(r.fs, filepath.Join(lib, "steamapps", file))
		if err != nil {
			continue
		}
		if name := manifestName(data); name != "" {
			return name
		}
	}
	return FallbackName(appID)
}

// FallbackName is the label used for apps without a manifest.
func FallbackName(appID uint64) string {
	return fmt.Sprintf("AppID %d", appID)
}

func manifestName(data []byte) string {
	kv, err := parseKeyValues(data)
	if err != nil {
		return ""
	}
	state, ok := lookup(kv, "AppState")
	if !ok {
		return ""
	}
	section, ok := state.(map[string]interface{})
	if !ok {
		return ""
	}
	return lookupString(section, "name")
}
