package config

import (
	_ "embed"
)

//go:embed defaults/frogger.yaml
var defaultFroggerYAML []byte

// DefaultFroggerConfig returns the default Frogger configuration.
func DefaultFroggerConfig() FroggerConfig {
	return FroggerConfig{
		Arena: ArenaConfig{
			Width:    640,
			Height:   480,
			TickRate: 30,
		},
		Layout: LayoutConfig{
			VehicleColumns:  5,
			RaftRepetitions: 2,
		},
		Hero: HeroConfig{
			StartX:     308,
			StartY:     440,
			Lives:      3,
			Step:       32,
			BlinkTicks: 60,
		},
	}
}
