// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jl-wynen/lunarlander-bot/pkg/bot"
	"github.com/jl-wynen/lunarlander-bot/pkg/physics"
)

// GameConfig contains the full configuration for a lander simulation
type GameConfig struct {
	World     WorldConfig    `json:"world"`
	Physics   physics.Config `json:"physics"`
	Landing   LandingConfig  `json:"landing"`
	Terrain   TerrainConfig  `json:"terrain"`
	Episode   EpisodeConfig  `json:"episode"`
	Autopilot bot.Config     `json:"autopilot"`
}

// WorldConfig describes the play area. X positions wrap at Width.
type WorldConfig struct {
	Width  int     `json:"width"`
	Height float64 `json:"height"`
}

// LandingConfig contains the touchdown limits used to classify ground
// contact as a landing or a crash.
type LandingConfig struct {
	MaxVerticalSpeed   float64 `json:"maxVerticalSpeed"`
	MaxHorizontalSpeed float64 `json:"maxHorizontalSpeed"`
	MaxTilt            float64 `json:"maxTilt"` // degrees off upright
}

// TerrainConfig controls terrain generation
type TerrainConfig struct {
	Seed      uint64  `json:"seed"`
	MaxHeight float64 `json:"maxHeight"`
	PadWidth  int     `json:"padWidth"`
}

// EpisodeConfig contains per-episode simulation parameters
type EpisodeConfig struct {
	TimeStep    float64 `json:"timeStep"`  // seconds per tick
	TimeLimit   float64 `json:"timeLimit"` // seconds; 0 disables the limit
	InitialFuel float64 `json:"initialFuel"`
	SpawnHeight float64 `json:"spawnHeight"`
}

// LoadConfig loads a configuration from a file
func LoadConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *GameConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for values the simulation cannot
// run with.
func (c *GameConfig) Validate() error {
	if c.World.Width <= 0 {
		return fmt.Errorf("world width must be positive: %d", c.World.Width)
	}
	if c.World.Height <= 0 {
		return fmt.Errorf("world height must be positive: %g", c.World.Height)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive: %g", c.Physics.Gravity)
	}
	if c.Physics.MainThrust <= 0 {
		return fmt.Errorf("main thrust must be positive: %g", c.Physics.MainThrust)
	}
	if c.Episode.TimeStep <= 0 {
		return fmt.Errorf("time step must be positive: %g", c.Episode.TimeStep)
	}
	if c.Episode.SpawnHeight > c.World.Height {
		return fmt.Errorf("spawn height %g exceeds world height %g",
			c.Episode.SpawnHeight, c.World.Height)
	}
	return c.Autopilot.Validate()
}

// DefaultConfig returns a default simulation configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		World: WorldConfig{
			Width:  1920,
			Height: 1080,
		},
		Physics: physics.Config{
			Gravity:       1.62,
			MainThrust:    4.0,
			TurnRate:      30,
			FuelBurnRate:  2.5,
			HeadingPeriod: 360,
		},
		Landing: LandingConfig{
			MaxVerticalSpeed:   5,
			MaxHorizontalSpeed: 3,
			MaxTilt:            5,
		},
		Terrain: TerrainConfig{
			Seed:      1,
			MaxHeight: 500,
			PadWidth:  60,
		},
		Episode: EpisodeConfig{
			TimeStep:    0.1,
			TimeLimit:   600,
			InitialFuel: 1000,
			SpawnHeight: 1000,
		},
		Autopilot: bot.DefaultConfig(),
	}
}
