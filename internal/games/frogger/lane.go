package frogger

import (
	"math/rand"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// vehicleMargin is how far a vehicle travels off-screen before wrapping.
const vehicleMargin = 70

// lane holds the state shared by every horizontal traveller.
type lane struct {
	pos   core.Point
	size  core.Point
	speed int32
}

func (l *lane) Pos() core.Point  { return l.pos }
func (l *lane) Size() core.Point { return l.size }
func (l *lane) Speed() int32     { return l.speed }
func (l *lane) Alive() bool      { return true }

// drift moves the traveller by its speed and wraps it around the arena once
// it is more than margin pixels past the far edge.
func (l *lane) drift(arenaW, margin int32) {
	l.pos.X += l.speed

	if l.speed > 0 && l.pos.X > arenaW+margin {
		l.pos.X = -margin
	}
	if l.speed < 0 && l.pos.X < -margin {
		l.pos.X = arenaW
	}
}

// randint returns a uniform value in [lo, hi]. A nil rng yields lo.
func randint(rng *rand.Rand, lo, hi int) int32 {
	if rng == nil || hi <= lo {
		return int32(lo)
	}
	return int32(lo + rng.Intn(hi-lo+1))
}
