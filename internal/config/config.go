// Package config provides YAML-based game configuration loading and
// difficulty presets for the frogger platform.
package config

import (
	"errors"
	"fmt"
)

// FroggerConfig contains all configuration for the Frogger game.
type FroggerConfig struct {
	Arena  ArenaConfig  `yaml:"arena"`
	Layout LayoutConfig `yaml:"layout"`
	Hero   HeroConfig   `yaml:"hero"`
}

// ArenaConfig defines the playfield in pixels and the simulation rate.
type ArenaConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"`
}

// LayoutConfig defines how densely the level is populated.
type LayoutConfig struct {
	VehicleColumns  int `yaml:"vehicle_columns"`  // Vehicles per road lane
	RaftRepetitions int `yaml:"raft_repetitions"` // River sections of five rafts
}

// HeroConfig defines the frog.
type HeroConfig struct {
	StartX     int `yaml:"start_x"`
	StartY     int `yaml:"start_y"`
	Lives      int `yaml:"lives"`
	Step       int `yaml:"step"`        // Hop distance in pixels
	BlinkTicks int `yaml:"blink_ticks"` // Invulnerability after losing a life
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// Validate reports the first setting that cannot build a level.
func (c FroggerConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, fmt.Errorf("arena size %dx%d must be positive", c.Arena.Width, c.Arena.Height))
	}
	if c.Arena.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate %d must be positive", c.Arena.TickRate))
	}
	if c.Layout.VehicleColumns < 0 || c.Layout.RaftRepetitions < 0 {
		errs = append(errs, errors.New("layout counts must not be negative"))
	}
	if c.Hero.Lives <= 0 {
		errs = append(errs, fmt.Errorf("hero lives %d must be positive", c.Hero.Lives))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: %w", errors.Join(errs...))
}
