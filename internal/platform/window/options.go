package window

import "github.com/vovakirdan/tui-frogger/internal/core"

// Options configures the window driver.
type Options struct {
	Scale    int    // Window pixels per arena pixel
	TickRate int    // Ticks per second
	Seed     int64  // 0 picks a new layout on every start
	Player   string // Name recorded with saved runs
}

func (o Options) withDefaults() Options {
	if o.Scale <= 0 {
		o.Scale = 1
	}
	if o.TickRate <= 0 {
		o.TickRate = core.DefaultConfig().TickRate
	}
	if o.Player == "" {
		o.Player = "local"
	}
	return o
}
