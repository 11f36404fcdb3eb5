//go:build windows

package steam

import (
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

type registryValue struct {
	root  registry.Key
	path  string
	value string
}

var registryValues = []registryValue{
	{registry.CURRENT_USER, `Software\Valve\Steam`, "SteamPath"},
	{registry.LOCAL_MACHINE, `SOFTWARE\WOW6432Node\Valve\Steam`, "InstallPath"},
	{registry.LOCAL_MACHINE, `SOFTWARE\Valve\Steam`, "InstallPath"},
}

func platformRoots() []string {
	var roots []string
	for _, rv := range registryValues {
		if v := readRegistryString(rv); v != "" {
			roots = append(roots, filepath.Clean(v))
		}
	}
	return roots
}

func readRegistryString(rv registryValue) string {
	key, err := registry.OpenKey(rv.root, rv.path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer key.Close()

	v, _, err := key.GetStringValue(rv.value)
	if err != nil {
		return ""
	}
	return v
}
