package frogger

import "github.com/vovakirdan/tui-frogger/internal/core"

// Snapshot contains the observable session state after a tick.
// Two sessions built from the same seed and fed the same keys produce equal
// snapshots.
type Snapshot struct {
	Tick    uint64
	Lives   int
	Wins    [WinSlots]bool
	Blink   int
	InWater bool

	// Actor state in arena order. Each actor is 7 ints:
	// Kind, X, Y, W, H, Sprite, Visible.
	ActorData []int
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	actors := s.Actors()
	data := make([]int, 0, len(actors)*7)
	for _, a := range actors {
		pos, size := a.Pos(), a.Size()
		sprite, visible := a.Sprite()
		vis := 0
		if visible {
			vis = 1
		}
		data = append(data,
			int(a.Kind()),
			int(pos.X), int(pos.Y),
			int(size.X), int(size.Y),
			int(sprite), vis,
		)
	}

	return Snapshot{
		Tick:      s.Ticks(),
		Lives:     s.frog.Lives(),
		Wins:      s.frog.Wins(),
		Blink:     s.frog.Blinking(),
		InWater:   s.frog.InWater(),
		ActorData: data,
	}
}

// HeroPos returns the frog position recorded in the snapshot.
func (sn Snapshot) HeroPos() core.Point {
	n := len(sn.ActorData)
	if n < 7 {
		return core.Point{}
	}
	return core.Pt(int32(sn.ActorData[n-6]), int32(sn.ActorData[n-5]))
}
