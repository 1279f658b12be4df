package core

// RuntimeConfig is what a driver hands a game on Reset: the surface it
// draws on and the clock and seed it runs with.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // Layout seed; drivers replace 0 with the current time
}

// DefaultConfig returns an 80x24 terminal at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a driver needs for the HUD and the scoreboard.
type GameState struct {
	Score    int
	GameOver bool // lost or won
	Won      bool
	Paused   bool
	Lives    int
	Progress int // filled homes
	Seconds  int // playing time
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
