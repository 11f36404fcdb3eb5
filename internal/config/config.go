package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures steamtail's settings after file, .env and environment
// overrides have been applied.
type Config struct {
	SteamRoot   string
	Cycles      int
	Interval    time.Duration
	WindowLines int
	WindowBytes int64
	LogLevel    string
	Theme       string
}

const (
	defaultConfigPath  = "~/.config/steamtail/config.toml"
	defaultEnvFile     = ".env"
	defaultCycles      = 5
	defaultInterval    = 60 * time.Second
	defaultWindowLines = 800
	defaultWindowBytes = 600_000
	defaultLogLevel    = "warn"
	defaultTheme       = "Dracula"
)

// Environment variables that override the config file.
const (
	EnvSteamRoot = "STEAMTAIL_STEAM_ROOT"
	EnvCycles    = "STEAMTAIL_CYCLES"
	EnvInterval  = "STEAMTAIL_INTERVAL"
	EnvLogLevel  = "STEAMTAIL_LOG_LEVEL"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Cycles:      defaultCycles,
		Interval:    defaultInterval,
		WindowLines: defaultWindowLines,
		WindowBytes: defaultWindowBytes,
		LogLevel:    defaultLogLevel,
		Theme:       defaultTheme,
	}
}

// Load reads the TOML config at path (default when empty), then applies the
// variables from envFile (default ".env") and the process environment. A
// missing config or env file is not an error.
func Load(path, envFile string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := loadFile(resolved, &cfg); err != nil {
		return Config{}, err
	}

	if strings.TrimSpace(envFile) == "" {
		envFile = defaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}
	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return Config{}, err
	}

	if cfg.SteamRoot != "" {
		cfg.SteamRoot = mustExpand(cfg.SteamRoot)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the poller cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Cycles < 1:
		return fmt.Errorf("cycles must be >= 1, got %d", c.Cycles)
	case c.Interval <= 0:
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	case c.WindowLines < 1:
		return fmt.Errorf("window_lines must be >= 1, got %d", c.WindowLines)
	case c.WindowBytes < 1:
		return fmt.Errorf("window_bytes must be >= 1, got %d", c.WindowBytes)
	}
	return nil
}

func loadFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		SteamRoot       string `toml:"steam_root"`
		Cycles          *int   `toml:"cycles"`
		IntervalSeconds *int   `toml:"interval_seconds"`
		WindowLines     *int   `toml:"window_lines"`
		WindowBytes     *int64 `toml:"window_bytes"`
		LogLevel        string `toml:"log_level"`
		Theme           string `toml:"theme"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	cfg.SteamRoot = strings.TrimSpace(raw.SteamRoot)
	if raw.Cycles != nil {
		cfg.Cycles = *raw.Cycles
	}
	if raw.IntervalSeconds != nil {
		cfg.Interval = time.Duration(*raw.IntervalSeconds) * time.Second
	}
	if raw.WindowLines != nil {
		cfg.WindowLines = *raw.WindowLines
	}
	if raw.WindowBytes != nil {
		cfg.WindowBytes = *raw.WindowBytes
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		cfg.Theme = theme
	}
	return nil
}

// applyEnv overrides cfg from getenv. STEAMTAIL_INTERVAL accepts a Go
// duration ("90s") or a bare number of seconds.
func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvSteamRoot)); v != "" {
		cfg.SteamRoot = v
	}
	if v := strings.TrimSpace(getenv(EnvCycles)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvCycles, err)
		}
		cfg.Cycles = n
	}
	if v := strings.TrimSpace(getenv(EnvInterval)); v != "" {
		d, err := parseInterval(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvInterval, err)
		}
		cfg.Interval = d
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

func parseInterval(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
