package arena

import (
	"fmt"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Arena owns the playfield size, the actor collection and the input history.
// It is not safe for concurrent use; one session drives it from one goroutine.
type Arena struct {
	size     core.Point
	actors   []Actor
	current  core.InputFrame
	previous core.InputFrame
	count    uint64
	updating bool
}

// New creates an empty arena of the given pixel size.
// Panics on negative dimensions.
func New(size core.Point) *Arena {
	if size.X < 0 || size.Y < 0 {
		panic(fmt.Sprintf("arena: invalid size %dx%d", size.X, size.Y))
	}
	return &Arena{
		size:     size,
		actors:   make([]Actor, 0, 64),
		current:  core.NewInputFrame(),
		previous: core.NewInputFrame(),
	}
}

// Spawn appends an actor. Insertion order is update order, draw order and
// collision report order.
// Panics when called with nil or from inside an actor's Update.
func (a *Arena) Spawn(actor Actor) {
	if actor == nil {
		panic("arena: spawn of nil actor")
	}
	if a.updating {
		panic("arena: spawn during tick")
	}
	a.actors = append(a.actors, actor)
}

// Tick advances the simulation by one step with the keys held this tick.
// Every actor is updated once, in insertion order, so later actors observe
// positions already updated earlier in the same pass.
func (a *Arena) Tick(keys core.InputFrame) {
	a.previous = a.current
	a.current = keys.Clone()

	a.updating = true
	st := Status{arena: a}
	for i, actor := range a.actors {
		st.self = i
		actor.Update(&st)
	}
	a.updating = false

	a.count++
}

// Size returns the arena dimensions in pixels.
func (a *Arena) Size() core.Point {
	return a.size
}

// Count returns the number of completed ticks.
func (a *Arena) Count() uint64 {
	return a.count
}

// Actors returns the actor collection in insertion order.
// Callers must treat the slice as read-only.
func (a *Arena) Actors() []Actor {
	return a.actors
}

// Status is the read-only view an actor receives during Update.
type Status struct {
	arena *Arena
	self  int
}

// Size returns the arena dimensions.
func (s *Status) Size() core.Point {
	return s.arena.size
}

// Tick returns the number of ticks completed before the current one.
func (s *Status) Tick() uint64 {
	return s.arena.count
}

// CurrentKeys returns a copy of the keys held this tick.
func (s *Status) CurrentKeys() core.InputFrame {
	return s.arena.current.Clone()
}

// PreviousKeys returns a copy of the keys held on the previous tick.
func (s *Status) PreviousKeys() core.InputFrame {
	return s.arena.previous.Clone()
}

// Held reports whether the action is held this tick.
func (s *Status) Held(act core.Action) bool {
	return s.arena.current.Has(act)
}

// Pressed reports a rising edge: held this tick and not on the previous one.
func (s *Status) Pressed(act core.Action) bool {
	return s.arena.current.Has(act) && !s.arena.previous.Has(act)
}

// Collisions returns every other actor overlapping the updating actor,
// in insertion order, using positions as they are at call time.
func (s *Status) Collisions() []Actor {
	self := s.arena.actors[s.self]
	var hits []Actor
	for i, other := range s.arena.actors {
		if i == s.self {
			continue
		}
		if Overlaps(self, other) {
			hits = append(hits, other)
		}
	}
	return hits
}
