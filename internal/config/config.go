// Package config merges the defaults, the optional config file, the
// environment and an optional .env file into one explicit configuration
// value. Core packages receive fields from here instead of reading the
// process environment themselves.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/jmylchreest/yasbtint/internal/palette"
)

// Environment variables honoured for backwards compatibility with the
// original shell workflow.
const (
	// EnvAccentSlot forces a palette slot (e.g. "color4").
	EnvAccentSlot = "YASB_ACCENT_SLOT"
	// EnvCacheDir overrides pywal's cache directory.
	EnvCacheDir = "WAL_CACHE_DIR"
)

// Config carries every tunable of a run.
type Config struct {
	// AccentSlot forces a specific palette slot as the accent.
	AccentSlot string `toml:"accent_slot"`
	// CacheDir overrides the pywal cache directory.
	CacheDir string `toml:"cache_dir"`
	// YasbDir is the YASB configuration directory holding styles.css and
	// config.yaml. Empty selects ~/.config/yasb.
	YasbDir string `toml:"yasb_dir"`
	// Backends restricts or reorders the pywal backends to try.
	Backends []string `toml:"backends"`
	// Wallpaper bypasses the platform wallpaper query.
	Wallpaper string `toml:"wallpaper"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{}
}

// DefaultPath returns the default config file location,
// ~/.config/yasbtint/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "yasbtint", "config.toml")
	}
	return filepath.Join(home, ".config", "yasbtint", "config.toml")
}

// Load reads the config file at path (DefaultPath when empty), loads an
// optional .env file next to it, and applies environment overrides. A
// missing config file is not an error; a malformed one is.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, palette.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults apply.
	default:
		return nil, palette.Errorf("reading %s: %w", path, err)
	}

	// A .env beside the config file lets users pin the legacy variables
	// without touching their shell profile. Absence is fine.
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))

	cfg.applyEnv(os.Getenv)
	return cfg, nil
}

// applyEnv overlays the recognised environment variables onto the config.
func (c *Config) applyEnv(getenv func(string) string) {
	if slot := getenv(EnvAccentSlot); slot != "" {
		c.AccentSlot = slot
	}
	if dir := getenv(EnvCacheDir); dir != "" {
		c.CacheDir = dir
	}
}
