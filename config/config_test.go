package config

import (
	"strings"
	"testing"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_TOKEN", "secret-token")
	t.Setenv("MY_NUMBER", "919999999999")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.AuthToken != "secret-token" {
		t.Errorf("AuthToken = %q", cfg.AuthToken)
	}
	if cfg.MyNumber != "919999999999" {
		t.Errorf("MyNumber = %q", cfg.MyNumber)
	}
	if cfg.DataDir != "data" {
		t.Errorf("DataDir default = %q, want 'data'", cfg.DataDir)
	}
	if cfg.ListenAddr != ":8086" {
		t.Errorf("ListenAddr default = %q, want ':8086'", cfg.ListenAddr)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Errorf("logging defaults = %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DATA_DIR", "/srv/refdata")
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.DataDir != "/srv/refdata" || cfg.ListenAddr != ":9090" || cfg.LogLevel != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "")
	t.Setenv("MY_NUMBER", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing required variables")
	}
	if !strings.Contains(err.Error(), "AUTH_TOKEN") && !strings.Contains(err.Error(), "MY_NUMBER") {
		t.Errorf("expected error to name missing variable, got: %v", err)
	}
}
