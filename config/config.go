// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"gridsnake/game"
	"gridsnake/game/types"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all configuration parameters.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Grid   GridConfig   `yaml:"grid"`
	Snake  SnakeConfig  `yaml:"snake"`
	Apple  AppleConfig  `yaml:"apple"`
	Driver DriverConfig `yaml:"driver"`
	Audio  AudioConfig  `yaml:"audio"`
	Output OutputConfig `yaml:"output"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
	CellSize  int `yaml:"cell_size"`
}

// GridConfig holds the board dimensions in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SnakeConfig holds snake creation and growth parameters.
type SnakeConfig struct {
	InitialLength  int `yaml:"initial_length"`
	GrowthPerApple int `yaml:"growth_per_apple"`
	StartX         int `yaml:"start_x"` // -1 = grid centre
	StartZ         int `yaml:"start_z"` // -1 = grid centre
}

// AppleConfig holds apple placement parameters.
type AppleConfig struct {
	MinHeadDistance float64 `yaml:"min_head_distance"`
	EatThreshold    float64 `yaml:"eat_threshold"`
	MaxAttempts     int     `yaml:"max_attempts"` // 0 = scale with grid area
}

// DriverConfig holds the tick loop settings.
type DriverConfig struct {
	TickInterval float64 `yaml:"tick_interval"` // seconds
}

// AudioConfig holds sound cue settings.
type AudioConfig struct {
	Enabled   bool   `yaml:"enabled"`
	BitePath  string `yaml:"bite_path"`
	DeathPath string `yaml:"death_path"`
}

// OutputConfig holds session export settings.
type OutputConfig struct {
	Dir string `yaml:"dir"` // empty = no export
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the game settings and the driver-owned values.
func (c *Config) Validate() error {
	if err := c.GameSettings().Validate(); err != nil {
		return err
	}
	if c.Driver.TickInterval <= 0 {
		return &game.ConfigError{Field: "tick interval", Reason: "must be positive"}
	}
	return nil
}

// GameSettings converts the loaded values into simulation settings.
func (c *Config) GameSettings() game.Settings {
	return game.Settings{
		GridWidth:            c.Grid.Width,
		GridHeight:           c.Grid.Height,
		InitialLength:        c.Snake.InitialLength,
		GrowthPerApple:       c.Snake.GrowthPerApple,
		StartX:               c.Snake.StartX,
		StartZ:               c.Snake.StartZ,
		InitialDirection:     types.North,
		MinAppleDistance:     c.Apple.MinHeadDistance,
		EatThreshold:         c.Apple.EatThreshold,
		MaxPlacementAttempts: c.Apple.MaxAttempts,
	}
}

// TickInterval returns the driver interval as a Duration.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Driver.TickInterval * float64(time.Second))
}

// WriteYAML writes the current configuration to a file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
