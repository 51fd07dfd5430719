package game

import (
	"errors"
	"fmt"

	"gridsnake/game/types"
)

var (
	// ErrInvalidTransition is returned for Tick after game over and Reset mid-game.
	ErrInvalidTransition = errors.New("invalid state transition")
	// ErrInvalidConfig is wrapped by every ConfigError.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigError names the setting that was rejected.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s %s", ErrInvalidConfig, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// CentreStart places the initial head in the middle of the grid.
const CentreStart = -1

// Settings are the simulation parameters fixed for the lifetime of a Game.
type Settings struct {
	GridWidth            int
	GridHeight           int
	InitialLength        int
	GrowthPerApple       int
	StartX               int // CentreStart = GridWidth/2
	StartZ               int // CentreStart = GridHeight/2
	InitialDirection     types.Direction
	MinAppleDistance     float64
	EatThreshold         float64
	MaxPlacementAttempts int // 0 = scale with grid area
}

// DefaultSettings mirrors the classic 20x20 board.
func DefaultSettings() Settings {
	return Settings{
		GridWidth:        20,
		GridHeight:       20,
		InitialLength:    5,
		GrowthPerApple:   3,
		StartX:           CentreStart,
		StartZ:           CentreStart,
		InitialDirection: types.North,
		MinAppleDistance: 5.0,
		EatThreshold:     0.1,
	}
}

func (s Settings) Grid() types.Grid {
	return types.Grid{Width: s.GridWidth, Height: s.GridHeight}
}

// StartPosition resolves CentreStart against the grid size.
func (s Settings) StartPosition() types.GridPosition {
	p := types.GridPosition{X: s.StartX, Z: s.StartZ}
	if p.X == CentreStart {
		p.X = s.GridWidth / 2
	}
	if p.Z == CentreStart {
		p.Z = s.GridHeight / 2
	}
	return p
}

// Validate rejects settings that cannot produce a playable session.
func (s Settings) Validate() error {
	switch {
	case s.GridWidth <= 0:
		return &ConfigError{Field: "grid width", Reason: "must be positive"}
	case s.GridHeight <= 0:
		return &ConfigError{Field: "grid height", Reason: "must be positive"}
	case s.InitialLength < 1:
		return &ConfigError{Field: "initial length", Reason: "must be at least 1"}
	case s.GrowthPerApple < 0:
		return &ConfigError{Field: "growth per apple", Reason: "must not be negative"}
	case s.MinAppleDistance < 0:
		return &ConfigError{Field: "min apple distance", Reason: "must not be negative"}
	case s.EatThreshold <= 0:
		return &ConfigError{Field: "eat threshold", Reason: "must be positive"}
	case s.MaxPlacementAttempts < 0:
		return &ConfigError{Field: "max placement attempts", Reason: "must not be negative"}
	case !s.InitialDirection.Valid():
		return &ConfigError{Field: "initial direction", Reason: "unknown direction"}
	}

	grid := s.Grid()
	p := s.StartPosition()
	back := s.InitialDirection.Opposite()
	for i := 0; i < s.InitialLength; i++ {
		if !grid.Contains(p) {
			return &ConfigError{Field: "initial snake", Reason: fmt.Sprintf("segment %d at %v is outside the grid", i, p)}
		}
		p = p.Add(back)
	}
	return nil
}
