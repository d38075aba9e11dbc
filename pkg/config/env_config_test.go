// pkg/config/env_config_test.go
package config

import (
	"testing"
)

func TestLoadEnvironmentConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"LANDER_CONFIG_PATH", "LANDER_EPISODES", "LANDER_SEED",
		"LANDER_RENDER", "LANDER_TELEMETRY_PATH",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadEnvironmentConfig()
	if err != nil {
		t.Fatalf("LoadEnvironmentConfig() error: %v", err)
	}
	if cfg.ConfigPath != "config.json" {
		t.Errorf("ConfigPath = %q, expected config.json", cfg.ConfigPath)
	}
	if cfg.Episodes != 1 {
		t.Errorf("Episodes = %d, expected 1", cfg.Episodes)
	}
	if cfg.Seed != 1 {
		t.Errorf("Seed = %d, expected 1", cfg.Seed)
	}
	if cfg.Render {
		t.Error("Render defaulted to true")
	}
	if cfg.TelemetryPath != "" {
		t.Errorf("TelemetryPath = %q, expected empty", cfg.TelemetryPath)
	}
}

func TestLoadEnvironmentConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("LANDER_CONFIG_PATH", "/tmp/other.json")
	t.Setenv("LANDER_EPISODES", "25")
	t.Setenv("LANDER_SEED", "1234")
	t.Setenv("LANDER_RENDER", "true")
	t.Setenv("LANDER_TELEMETRY_PATH", "runs.db")

	cfg, err := LoadEnvironmentConfig()
	if err != nil {
		t.Fatalf("LoadEnvironmentConfig() error: %v", err)
	}
	if cfg.ConfigPath != "/tmp/other.json" {
		t.Errorf("ConfigPath = %q", cfg.ConfigPath)
	}
	if cfg.Episodes != 25 {
		t.Errorf("Episodes = %d, expected 25", cfg.Episodes)
	}
	if cfg.Seed != 1234 {
		t.Errorf("Seed = %d, expected 1234", cfg.Seed)
	}
	if !cfg.Render {
		t.Error("Render = false, expected true")
	}
	if cfg.TelemetryPath != "runs.db" {
		t.Errorf("TelemetryPath = %q, expected runs.db", cfg.TelemetryPath)
	}
}

func TestLoadEnvironmentConfig_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non_numeric_episodes", key: "LANDER_EPISODES", value: "many"},
		{name: "zero_episodes", key: "LANDER_EPISODES", value: "0"},
		{name: "negative_seed", key: "LANDER_SEED", value: "-3"},
		{name: "bad_bool", key: "LANDER_RENDER", value: "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadEnvironmentConfig(); err == nil {
				t.Errorf("LoadEnvironmentConfig() accepted %s=%s", tt.key, tt.value)
			}
		})
	}
}
