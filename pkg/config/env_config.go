// pkg/config/env_config.go
package config

import (
	"fmt"
	"os"
	"strconv"
)

// EnvironmentConfig contains harness settings read from LANDER_*
// environment variables. Flags passed to the binary take precedence
// over these.
type EnvironmentConfig struct {
	ConfigPath    string // LANDER_CONFIG_PATH
	Episodes      int    // LANDER_EPISODES
	Seed          uint64 // LANDER_SEED
	Render        bool   // LANDER_RENDER
	TelemetryPath string // LANDER_TELEMETRY_PATH; empty disables recording
}

// LoadEnvironmentConfig reads the harness configuration from the
// environment, applying defaults for unset variables.
func LoadEnvironmentConfig() (*EnvironmentConfig, error) {
	cfg := &EnvironmentConfig{
		ConfigPath: getEnvString("LANDER_CONFIG_PATH", "config.json"),
		Episodes:   1,
		Seed:       1,
	}

	var err error
	if cfg.Episodes, err = getEnvInt("LANDER_EPISODES", 1); err != nil {
		return nil, err
	}
	if cfg.Seed, err = getEnvUint("LANDER_SEED", 1); err != nil {
		return nil, err
	}
	if cfg.Render, err = getEnvBool("LANDER_RENDER", false); err != nil {
		return nil, err
	}
	cfg.TelemetryPath = getEnvString("LANDER_TELEMETRY_PATH", "")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the environment configuration for invalid values.
func (c *EnvironmentConfig) Validate() error {
	if c.Episodes <= 0 {
		return fmt.Errorf("LANDER_EPISODES must be positive: %d", c.Episodes)
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvUint(key string, fallback uint64) (uint64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
