package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnv unsets every override for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvSteamRoot, EnvCycles, EnvInterval, EnvLogLevel} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"), noEnvFile(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, Default())
	}
	if cfg.Cycles != 5 || cfg.Interval != time.Minute {
		t.Fatalf("Cycles/Interval = %d/%s, want 5/1m0s", cfg.Cycles, cfg.Interval)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
steam_root = "  ~/.steam/steam  "
cycles = 3
interval_seconds = 10
window_lines = 100
window_bytes = 4096
log_level = " debug "
theme = "Slate"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path, noEnvFile(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.SteamRoot != filepath.Join(home, ".steam/steam") {
		t.Fatalf("SteamRoot = %q, want it under HOME %q", cfg.SteamRoot, home)
	}
	if cfg.Cycles != 3 {
		t.Fatalf("Cycles = %d, want 3", cfg.Cycles)
	}
	if cfg.Interval != 10*time.Second {
		t.Fatalf("Interval = %s, want 10s", cfg.Interval)
	}
	if cfg.WindowLines != 100 || cfg.WindowBytes != 4096 {
		t.Fatalf("window = %d lines/%d bytes, want 100/4096", cfg.WindowLines, cfg.WindowBytes)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", cfg.Theme)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
steam_root = "   "
log_level = ""
theme = " "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path, noEnvFile(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load = %+v, want defaults", cfg)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`cycles = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path, noEnvFile(t))
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("cycles = 0\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path, noEnvFile(t)); err == nil || !strings.Contains(err.Error(), "cycles") {
		t.Fatalf("Load error = %v, want cycles validation error", err)
	}
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("cycles = 3\ninterval_seconds = 10\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	root := t.TempDir()
	t.Setenv(EnvCycles, "7")
	t.Setenv(EnvInterval, "1m30s")
	t.Setenv(EnvSteamRoot, root)
	t.Setenv(EnvLogLevel, "error")

	cfg, err := Load(path, noEnvFile(t))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Cycles != 7 || cfg.Interval != 90*time.Second {
		t.Fatalf("Cycles/Interval = %d/%s, want 7/1m30s", cfg.Cycles, cfg.Interval)
	}
	if cfg.SteamRoot != root || cfg.LogLevel != "error" {
		t.Fatalf("SteamRoot/LogLevel = %q/%q", cfg.SteamRoot, cfg.LogLevel)
	}
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	clearEnv(t)
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("STEAMTAIL_CYCLES=2\nSTEAMTAIL_INTERVAL=5\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"), envFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Cycles != 2 || cfg.Interval != 5*time.Second {
		t.Fatalf("Cycles/Interval = %d/%s, want 2/5s", cfg.Cycles, cfg.Interval)
	}
}

func TestApplyEnv_InvalidNumber(t *testing.T) {
	cfg := Default()
	env := map[string]string{EnvCycles: "five"}
	err := applyEnv(&cfg, func(k string) string { return env[k] })
	if err == nil || !strings.Contains(err.Error(), EnvCycles) {
		t.Fatalf("applyEnv error = %v, want it to name %s", err, EnvCycles)
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
