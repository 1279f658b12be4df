// Package arena implements the tick-driven actor simulation kernel: a fixed-size
// playfield that owns an ordered actor collection, remembers the key sets of the
// current and previous tick, and lets each actor query its overlaps while it
// updates.
package arena

import "github.com/vovakirdan/tui-frogger/internal/core"

// Kind tags the closed set of actor variants the kernel knows about.
// Collision handling switches over it exhaustively.
type Kind uint8

const (
	KindVehicle   Kind = iota + 1 // moving obstacle, lethal
	KindRaft                      // floating platform the frog can ride
	KindTurtle                    // submersible platform, lethal while under water
	KindCrocodile                 // jaw hazard, always lethal
	KindWater                     // static hazard zone
	KindFrog                      // the player-controlled hero
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindVehicle:
		return "vehicle"
	case KindRaft:
		return "raft"
	case KindTurtle:
		return "turtle"
	case KindCrocodile:
		return "crocodile"
	case KindWater:
		return "water"
	case KindFrog:
		return "frog"
	default:
		return "unknown"
	}
}

// Sprite is an opaque visual-state token. Renderers map it to a glyph or a
// sprite region; the kernel never interprets it.
type Sprite uint16

// Actor is the capability set every simulated entity implements.
type Actor interface {
	// Kind identifies the variant for collision dispatch.
	Kind() Kind

	// Pos returns the top-left corner in arena pixels.
	Pos() core.Point

	// Size returns width and height in pixels.
	Size() core.Point

	// Sprite returns the visual state for this frame.
	// ok=false means the actor is not drawn (blinking, submerged, background).
	Sprite() (s Sprite, ok bool)

	// Alive is advisory; dead actors stay in the collection.
	Alive() bool

	// Speed is the horizontal drift applied each tick, zero for static actors.
	Speed() int32

	// Lethal reports whether touching the actor in its current state kills the hero.
	Lethal() bool

	// Update advances the actor by one tick. It may read st but only
	// mutates the actor itself.
	Update(st *Status)
}

// Bounds returns the rectangle currently covered by a.
func Bounds(a Actor) core.Rect {
	return core.RectAt(a.Pos(), a.Size())
}

// Overlaps reports whether the rectangles of a and b intersect.
func Overlaps(a, b Actor) bool {
	return Bounds(a).Intersects(Bounds(b))
}
