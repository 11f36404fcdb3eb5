// Package config loads steamtail settings.
//
// # Resolution Order
//
// Later sources override earlier ones:
//
//  1. Built-in defaults (see Default)
//  2. ~/.config/steamtail/config.toml, or the path passed to Load
//  3. A .env file in the working directory (joho/godotenv); it never
//     overrides variables already set in the environment
//  4. STEAMTAIL_* environment variables
//
// Command-line flags are applied on top by the caller.
//
// # TOML Format
//
//	steam_root = "~/.steam/steam"   # skip platform discovery
//	cycles = 5                      # polls before exiting
//	interval_seconds = 60           # sleep between polls
//	window_lines = 800              # trailing lines examined per poll
//	window_bytes = 600000           # trailing bytes read per poll
//	log_level = "warn"              # diagnostics on stderr
//	theme = "Dracula"               # Dracula or Slate
//
// Every field is optional. A missing file is not an error.
//
// # Environment
//
//   - STEAMTAIL_STEAM_ROOT
//   - STEAMTAIL_CYCLES
//   - STEAMTAIL_INTERVAL: "90s" style duration or whole seconds
//   - STEAMTAIL_LOG_LEVEL
package config
