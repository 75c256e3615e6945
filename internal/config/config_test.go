package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.Server.Host != DefaultHost {
		t.Errorf("expected default host, got %q", cfg.Server.Host)
	}
	if cfg.Server.Port != DefaultPort {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
	if cfg.Notifications.AutoHideMs != 6000 {
		t.Errorf("expected 6000ms auto-hide, got %d", cfg.Notifications.AutoHideMs)
	}
	if cfg.Notifications.Anchor != "bottom-left" {
		t.Errorf("expected bottom-left anchor, got %q", cfg.Notifications.Anchor)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := New()
	cfg.Name = "demo"
	cfg.Server.Port = 9000
	cfg.Notifications.Anchor = "top-right"
	if err := cfg.SaveTo(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Name != "demo" {
		t.Errorf("expected name demo, got %q", loaded.Name)
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", loaded.Server.Port)
	}
	if loaded.Notifications.Anchor != "top-right" {
		t.Errorf("expected top-right, got %q", loaded.Notifications.Anchor)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(`{"server":{"port":3000}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("explicit port lost, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != DefaultHost {
		t.Errorf("missing host not defaulted, got %q", cfg.Server.Host)
	}
	if cfg.Notifications.Anchor == "" {
		t.Error("missing anchor not defaulted")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"bad port", func(c *Config) { c.Server.Port = 70000 }, false},
		{"negative auto-hide", func(c *Config) { c.Notifications.AutoHideMs = -1 }, false},
		{"bad anchor", func(c *Config) { c.Notifications.Anchor = "center" }, false},
		{"bad timeout", func(c *Config) { c.Server.ShutdownTimeout = "soon" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := New()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestAddressAndDurations(t *testing.T) {
	cfg := New()
	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8081

	if cfg.Address() != "0.0.0.0:8081" {
		t.Errorf("unexpected address %q", cfg.Address())
	}
	if cfg.AutoHide() != 6*time.Second {
		t.Errorf("unexpected auto-hide %v", cfg.AutoHide())
	}
	if cfg.ShutdownTimeout() != 30*time.Second {
		t.Errorf("unexpected shutdown timeout %v", cfg.ShutdownTimeout())
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if Exists(dir) {
		t.Error("Exists should be false for empty dir")
	}

	cfg := New()
	if err := cfg.SaveTo(filepath.Join(dir, ConfigFileName)); err != nil {
		t.Fatal(err)
	}
	if !Exists(dir) {
		t.Error("Exists should be true after save")
	}
}
