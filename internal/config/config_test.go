package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if configDir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.Contains(configDir, "crewfile") {
		t.Errorf("GetConfigDir() = %v, should contain 'crewfile'", configDir)
	}

	// Platform-specific checks
	switch runtime.GOOS {
	case "windows":
		if !strings.Contains(configDir, "AppData") && !strings.Contains(configDir, "Local") {
			t.Errorf("Windows config dir should contain 'AppData' or 'Local', got: %v", configDir)
		}
	case "darwin", "linux":
		if !strings.Contains(configDir, ".config") && os.Getenv("XDG_CONFIG_HOME") == "" {
			t.Errorf("Unix config dir should contain '.config', got: %v", configDir)
		}
	}
}

func TestGetConfigPath(t *testing.T) {
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}

	if filepath.Base(configPath) != "config.yaml" {
		t.Errorf("GetConfigPath() should end with 'config.yaml', got: %v", configPath)
	}
}

func TestDefaultStorePath(t *testing.T) {
	storePath, err := DefaultStorePath()
	if err != nil {
		t.Fatalf("DefaultStorePath() error = %v", err)
	}

	if filepath.Base(storePath) != "users.json" {
		t.Errorf("DefaultStorePath() should end with 'users.json', got: %v", storePath)
	}

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(storePath) != filepath.Dir(configPath) {
		t.Errorf("roster default %v should live next to config %v", storePath, configPath)
	}
}

func TestNewConfigDefaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Version != 1 {
		t.Errorf("NewConfig().Version = %v, want 1", cfg.Version)
	}
	if cfg.Format() != "table" {
		t.Errorf("NewConfig().Format() = %v, want table", cfg.Format())
	}
	if cfg.Storage == nil {
		t.Error("NewConfig().Storage should be initialized")
	}
}

func TestStorePathOverride(t *testing.T) {
	cfg := NewConfig()
	cfg.Storage.Path = "/srv/roster/team.json"

	path, err := cfg.StorePath()
	if err != nil {
		t.Fatalf("StorePath() error = %v", err)
	}
	if path != "/srv/roster/team.json" {
		t.Errorf("StorePath() = %v, want configured override", path)
	}
}

func TestFormatFallsBackWhenUnset(t *testing.T) {
	cfg := &Config{Version: 1}
	if cfg.Format() != "table" {
		t.Errorf("Format() with nil output prefs = %v, want table", cfg.Format())
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("uses XDG_CONFIG_HOME to redirect the config dir")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := NewConfig()
	cfg.Storage.Path = "/srv/roster/team.json"
	cfg.Output.Format = "json"

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := loadFromDisk()
	if err != nil {
		t.Fatalf("loadFromDisk() error = %v", err)
	}
	if loaded.Storage.Path != "/srv/roster/team.json" {
		t.Errorf("loaded Storage.Path = %v", loaded.Storage.Path)
	}
	if loaded.Format() != "json" {
		t.Errorf("loaded Format() = %v, want json", loaded.Format())
	}

	// Saved file carries the explanatory header comment
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# Crewfile Configuration File") {
		t.Error("saved config is missing its header comment")
	}
}

func TestLoadRejectsUnsupportedVersion(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("uses XDG_CONFIG_HOME to redirect the config dir")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	if err := EnsureConfigDir(); err != nil {
		t.Fatal(err)
	}
	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(configPath, []byte("version: 2\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := loadFromDisk(); err == nil {
		t.Error("loadFromDisk() accepted unsupported version")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("uses XDG_CONFIG_HOME to redirect the config dir")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadFromDisk()
	if err != nil {
		t.Fatalf("loadFromDisk() error = %v", err)
	}
	if cfg.Version != 1 || cfg.Format() != "table" {
		t.Errorf("loadFromDisk() without file = %+v, want defaults", cfg)
	}
}
