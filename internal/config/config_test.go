package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvAccentSlot, "")
	t.Setenv(EnvCacheDir, "")

	cfg, err := Load(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AccentSlot != "" || cfg.CacheDir != "" || cfg.YasbDir != "" {
		t.Errorf("defaults should be empty, got %+v", cfg)
	}
	if len(cfg.Backends) != 0 {
		t.Errorf("default backends should be empty (loader picks its own), got %v", cfg.Backends)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv(EnvAccentSlot, "")
	t.Setenv(EnvCacheDir, "")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `accent_slot = "color5"
cache_dir = "/tmp/wal-cache"
yasb_dir = "/home/user/.config/yasb"
backends = ["wal", "colorthief"]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AccentSlot != "color5" {
		t.Errorf("AccentSlot = %s, want color5", cfg.AccentSlot)
	}
	if cfg.CacheDir != "/tmp/wal-cache" {
		t.Errorf("CacheDir = %s, want /tmp/wal-cache", cfg.CacheDir)
	}
	if len(cfg.Backends) != 2 || cfg.Backends[0] != "wal" {
		t.Errorf("Backends = %v, want [wal colorthief]", cfg.Backends)
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("accent_slot = [broken"), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() should fail on malformed TOML")
	}
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte(`accent_slot = "color5"`), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv(EnvAccentSlot, "color2")
	t.Setenv(EnvCacheDir, "/env/cache")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AccentSlot != "color2" {
		t.Errorf("AccentSlot = %s, want env override color2", cfg.AccentSlot)
	}
	if cfg.CacheDir != "/env/cache" {
		t.Errorf("CacheDir = %s, want /env/cache", cfg.CacheDir)
	}
}

func TestDotenvBesideConfig(t *testing.T) {
	t.Setenv(EnvAccentSlot, "")
	t.Setenv(EnvCacheDir, "")
	// godotenv does not override variables that are already set, and
	// t.Setenv leaves them set-but-empty; unset to exercise the .env path.
	os.Unsetenv(EnvAccentSlot)
	os.Unsetenv(EnvCacheDir)

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvAccentSlot+"=color6\n"), 0644); err != nil {
		t.Fatalf("writing .env: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AccentSlot != "color6" {
		t.Errorf("AccentSlot = %s, want color6 from .env", cfg.AccentSlot)
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := &Config{AccentSlot: "color5", CacheDir: "/file/cache"}
	env := map[string]string{EnvAccentSlot: "color1"}

	cfg.applyEnv(func(key string) string { return env[key] })

	if cfg.AccentSlot != "color1" {
		t.Errorf("AccentSlot = %s, want color1", cfg.AccentSlot)
	}
	// Unset variables leave file values alone.
	if cfg.CacheDir != "/file/cache" {
		t.Errorf("CacheDir = %s, want /file/cache", cfg.CacheDir)
	}
}
