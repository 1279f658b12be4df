// Package frogger implements the Frogger arcade game on top of the arena
// kernel. The player guides a frog across a busy road and a river of rafts,
// turtles and crocodiles into the five homes at the top of the screen.
package frogger

import (
	"math/rand"

	"github.com/vovakirdan/tui-frogger/internal/config"
	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

// Game adapts a Session to the registry.Game interface.
type Game struct {
	session *Session
	runtime core.RuntimeConfig
	cfg     config.FroggerConfig
	paused  bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// configured values.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig resolves the configuration the next Reset will use.
// Invalid or unreadable files fall back to the defaults.
func LoadConfig() config.FroggerConfig {
	cfg, err := config.LoadFrogger(configPath)
	if err != nil {
		cfg = config.DefaultFroggerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFroggerPreset(&cfg, difficultyPreset)
	}
	if cfg.Validate() != nil {
		cfg = config.DefaultFroggerConfig()
	}
	return cfg
}

// New creates a new Frogger game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "frogger"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Frogger"
}

// Reset builds a fresh level. The runtime seed drives the layout and the
// turtle dives, so equal seeds replay identically.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig()
	g.paused = false

	layout := Layout{
		VehicleColumns:  g.cfg.Layout.VehicleColumns,
		RaftRepetitions: g.cfg.Layout.RaftRepetitions,
		Start:           core.Pt(int32(g.cfg.Hero.StartX), int32(g.cfg.Hero.StartY)),
		Frog: FrogOptions{
			Lives:      g.cfg.Hero.Lives,
			HopSize:    int32(g.cfg.Hero.Step),
			BlinkTicks: g.cfg.Hero.BlinkTicks,
		},
	}
	size := core.Pt(int32(g.cfg.Arena.Width), int32(g.cfg.Arena.Height))
	rng := rand.New(rand.NewSource(runtime.Seed))

	g.session = NewSession(size, layout, rng)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.GameOver() || g.session.GameWon() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.session.Tick(in)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	won := g.session.GameWon()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: won || g.session.GameOver(),
		Won:      won,
		Paused:   g.paused,
		Lives:    g.session.RemainingLives(),
		Progress: g.session.HomesFilled(),
		Seconds:  g.session.PlayingTime(),
	}
}

// Session exposes the running level to drivers that draw it themselves.
func (g *Game) Session() *Session {
	return g.session
}

// Config returns the configuration applied by the last Reset.
func (g *Game) Config() config.FroggerConfig {
	return g.cfg
}

// Register the game with the registry
func init() {
	registry.Register("frogger", func() registry.Game {
		return New()
	})
}
