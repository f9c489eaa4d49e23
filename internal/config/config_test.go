package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StatePath == "" {
		t.Error("state path must have a default")
	}
	if cfg.AutoBackAndForth {
		t.Error("auto back-and-forth defaults to off")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level %q, want warn", cfg.LogLevel)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("TILECTL_STATE_PATH", "/tmp/custom-state.yaml")
	t.Setenv("TILECTL_WORKSPACE_AUTO_BACK_AND_FORTH", "true")
	t.Setenv("TILECTL_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StatePath != "/tmp/custom-state.yaml" {
		t.Errorf("state path %q, want /tmp/custom-state.yaml", cfg.StatePath)
	}
	if !cfg.AutoBackAndForth {
		t.Error("expected auto back-and-forth enabled from the environment")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level %q, want debug", cfg.LogLevel)
	}
}
