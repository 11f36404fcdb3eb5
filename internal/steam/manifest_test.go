package steam

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, fs afero.Fs, lib string, appID string, body string) {
	t.Helper()
	path := filepath.Join(filepath.FromSlash(lib), "steamapps", "appmanifest_"+appID+".acf")
	require.NoError(t, afero.WriteFile(fs, path, []byte(body), 0o644))
}

func TestNameResolver(t *testing.T) {
	fs := afero.NewMemMapFs()
	writeManifest(t, fs, "/steam", "730", `"AppState"
{
	"appid"		"730"
	"name"		"Counter-Strike 2"
	"StateFlags"		"4"
}
`)
	writeManifest(t, fs, "/mnt/games", "570", `"AppState"
{
	"appid"		"570"
	"name"		"Dota 2"
}
`)
	writeManifest(t, fs, "/steam", "440", `"AppState" { "appid" "440"`)
	writeManifest(t, fs, "/mnt/games", "440", `"AppState"
{
	"name"		"Team Fortress 2"
}
`)
	writeManifest(t, fs, "/steam", "10", `"AppState"
{
	"appid"		"10"
}
`)

	r := NewNameResolver(fs, []string{filepath.FromSlash("/steam"), filepath.FromSlash("/mnt/games")})

	testCases := []struct {
		name     string
		appID    uint64
		expected string
	}{
		{"first library", 730, "Counter-Strike 2"},
		{"second library", 570, "Dota 2"},
		{"malformed manifest is skipped", 440, "Team Fortress 2"},
		{"manifest without name", 10, "AppID 10"},
		{"no manifest", 42, "AppID 42"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, r.Name(tc.appID))
		})
	}
}

func TestFallbackName(t *testing.T) {
	require.Equal(t, "AppID 123", FallbackName(123))
}
