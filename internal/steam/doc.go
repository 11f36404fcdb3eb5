// Package steam finds the pieces of a Steam installation steamtail reads:
// the install root, the content log, the library folders and app manifests.
//
// Everything goes through an afero.Fs so lookups can be tested against an
// in-memory tree. Install discovery is per platform: the registry on Windows,
// well-known home directory locations elsewhere.
//
// Manifest and library files use Valve's KeyValues format and are parsed with
// github.com/andygrunwald/vdf. Unreadable or malformed files are treated as
// absent; only a missing install root or content log is an error.
package steam
