// ABOUTME: Tests for configuration loading, defaults, and path handling.
// ABOUTME: Uses XDG_CONFIG_HOME overrides pointed at temp directories.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetBackendDefault(t *testing.T) {
	c := &Config{}
	if got := c.GetBackend(); got != "charm" {
		t.Errorf("GetBackend() = %q, want charm", got)
	}

	c.Backend = "sqlite"
	if got := c.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want sqlite", got)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/data", filepath.Join(home, "data")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGetDataDirDefault(t *testing.T) {
	c := &Config{}
	if got := c.GetDataDir(); !strings.HasSuffix(got, "daylog") {
		t.Errorf("default data dir = %q, want a daylog directory", got)
	}

	c.DataDir = "/custom/dir"
	if got := c.GetDataDir(); got != "/custom/dir" {
		t.Errorf("GetDataDir() = %q", got)
	}
}

func TestConfigPathFollowsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-test")
	want := filepath.Join("/tmp/xdg-test", "daylog", "config.json")
	if got := GetConfigPath(); got != want {
		t.Errorf("GetConfigPath() = %q, want %q", got, want)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "" || cfg.DataDir != "" {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := &Config{Backend: "sqlite", DataDir: "~/daylog-data", UserName: "harper"}
	if err := c.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Backend != "sqlite" || got.DataDir != "~/daylog-data" || got.UserName != "harper" {
		t.Errorf("round trip = %+v", got)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "daylog", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestOpenStorageUnknownBackend(t *testing.T) {
	c := &Config{Backend: "mongodb"}
	if _, err := c.OpenStorage(); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestOpenStorageSQLite(t *testing.T) {
	c := &Config{Backend: "sqlite", DataDir: t.TempDir()}
	repo, err := c.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage: %v", err)
	}
	defer repo.Close()

	if _, err := repo.LoadProgress(); err != nil {
		t.Errorf("fresh repository unusable: %v", err)
	}
}
