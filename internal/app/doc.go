// Package app is the composition root for steamtail.
//
// Run loads configuration (TOML file, .env, environment, then flag
// overrides), locates the Steam installation, and hands a monitor.Driver the
// content log window reader and the manifest name resolver. Output goes to
// one of three sinks:
//
//   - plain status lines, coloured when stdout is a terminal
//   - one JSON object per cycle (--json)
//   - a live bubbletea view (--tui, terminal only)
//
// Fatal errors (bad config, no Steam install, no content log) are returned
// before the first cycle. Read errors during polling are logged and the
// cycle reports an empty window.
package app
