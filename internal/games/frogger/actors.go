package frogger

import (
	"math/rand"

	"github.com/vovakirdan/tui-frogger/internal/arena"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Vehicle aspects.
const (
	AspectYellowCar = iota
	AspectWhiteCar
	AspectTruck
)

// Vehicle is a road obstacle travelling along a fixed lane. Lethal on contact.
type Vehicle struct {
	lane
	aspect int
}

// NewVehicle creates a vehicle with a random aspect drawn from rng.
func NewVehicle(pos core.Point, speed int32, rng *rand.Rand) *Vehicle {
	return newVehicle(pos, speed, int(randint(rng, AspectYellowCar, AspectTruck)))
}

func newVehicle(pos core.Point, speed int32, aspect int) *Vehicle {
	size := core.Pt(32, 26)
	if aspect == AspectTruck {
		size = core.Pt(62, 24)
	}
	return &Vehicle{lane: lane{pos: pos, size: size, speed: speed}, aspect: aspect}
}

func (v *Vehicle) Kind() arena.Kind { return arena.KindVehicle }
func (v *Vehicle) Lethal() bool     { return true }

// Aspect returns the cosmetic vehicle type.
func (v *Vehicle) Aspect() int { return v.aspect }

func (v *Vehicle) Update(st *arena.Status) {
	v.drift(st.Size().X, vehicleMargin)
}

func (v *Vehicle) Sprite() (arena.Sprite, bool) {
	right := v.speed >= 0
	switch v.aspect {
	case AspectYellowCar:
		if right {
			return SpriteCarYellowRight, true
		}
		return SpriteCarYellowLeft, true
	case AspectWhiteCar:
		if right {
			return SpriteCarWhiteRight, true
		}
		return SpriteCarWhiteLeft, true
	default:
		if right {
			return SpriteTruckRight, true
		}
		return SpriteTruckLeft, true
	}
}

// Raft is a floating log the frog can ride across the river.
type Raft struct {
	lane
}

// NewRaft creates a 96x20 raft.
func NewRaft(pos core.Point, speed int32) *Raft {
	return &Raft{lane: lane{pos: pos, size: core.Pt(96, 20), speed: speed}}
}

func (r *Raft) Kind() arena.Kind             { return arena.KindRaft }
func (r *Raft) Lethal() bool                 { return false }
func (r *Raft) Sprite() (arena.Sprite, bool) { return SpriteRaft, true }

func (r *Raft) Update(st *arena.Status) {
	r.drift(st.Size().X, r.size.X)
}

// TurtlePhase is the dive stage of a turtle group.
type TurtlePhase uint8

const (
	PhaseSurface    TurtlePhase = iota // afloat, safe
	PhaseImmersion1                    // sinking, still safe
	PhaseImmersion2                    // under water, lethal
	PhaseEmerging                      // resurfacing, safe
)

func (p TurtlePhase) String() string {
	switch p {
	case PhaseSurface:
		return "surface"
	case PhaseImmersion1:
		return "immersion 1"
	case PhaseImmersion2:
		return "immersion 2"
	case PhaseEmerging:
		return "emerging"
	default:
		return "unknown"
	}
}

// Turtle dive cycle, in ticks.
const (
	turtleCycle        = 150
	turtleDiveStart    = 20
	turtleSubmerged    = 50
	turtleEmerging     = 100
	turtleResurfaced   = 120
	turtleDiveOdds     = 1000
	turtleDivingShrink = 4
)

// turtlePhaseAt maps a counter value in [0, turtleCycle) to its phase.
func turtlePhaseAt(counter int) TurtlePhase {
	switch {
	case counter < turtleDiveStart:
		return PhaseSurface
	case counter < turtleSubmerged:
		return PhaseImmersion1
	case counter < turtleEmerging:
		return PhaseImmersion2
	case counter < turtleResurfaced:
		return PhaseEmerging
	default:
		return PhaseSurface
	}
}

// Turtle is a group of turtles that periodically dives. The frog can ride it
// unless it is fully submerged.
type Turtle struct {
	lane
	counter int
	phase   TurtlePhase
	rng     *rand.Rand
}

// NewTurtle creates a turtle group at the start of its cycle. While afloat it
// may begin diving early with a 1-in-1000 chance per tick drawn from rng;
// a nil rng keeps the cycle fully deterministic.
func NewTurtle(pos core.Point, speed int32, rng *rand.Rand) *Turtle {
	return &Turtle{
		lane:  lane{pos: pos, size: core.Pt(64, 20), speed: speed},
		phase: PhaseSurface,
		rng:   rng,
	}
}

func (t *Turtle) Kind() arena.Kind { return arena.KindTurtle }

// Lethal reports whether the turtle is under water.
func (t *Turtle) Lethal() bool { return t.Submerged() }

// Submerged reports whether the turtle is in its under-water phase.
func (t *Turtle) Submerged() bool { return t.phase == PhaseImmersion2 }

// Phase returns the phase observed during the most recent update.
func (t *Turtle) Phase() TurtlePhase { return t.phase }

// Counter returns the position within the dive cycle.
func (t *Turtle) Counter() int { return t.counter }

// Size shrinks while the group is sinking or resurfacing.
func (t *Turtle) Size() core.Point {
	if t.phase == PhaseImmersion1 || t.phase == PhaseEmerging {
		return core.Pt(t.size.X, t.size.Y-turtleDivingShrink)
	}
	return t.size
}

func (t *Turtle) Sprite() (arena.Sprite, bool) {
	switch t.phase {
	case PhaseImmersion1, PhaseEmerging:
		return SpriteTurtleDiving, true
	case PhaseImmersion2:
		return 0, false
	default:
		return SpriteTurtle, true
	}
}

func (t *Turtle) Update(st *arena.Status) {
	if t.rng != nil && turtlePhaseAt(t.counter) == PhaseSurface && t.rng.Intn(turtleDiveOdds) == 0 {
		t.counter = turtleDiveStart
	}

	t.drift(st.Size().X, t.size.X)

	t.phase = turtlePhaseAt(t.counter)
	t.counter = (t.counter + 1) % turtleCycle
}

// Crocodile cycle, in ticks.
const (
	crocodileCycle    = 80
	crocodileOpenFrom = 40
)

// Crocodile swims with the rafts and snaps its jaw open and shut.
// It is lethal whatever the jaw does.
type Crocodile struct {
	lane
	counter int
	open    bool
}

// NewCrocodile creates a crocodile with its mouth closed.
func NewCrocodile(pos core.Point, speed int32) *Crocodile {
	return &Crocodile{lane: lane{pos: pos, size: core.Pt(96, 20), speed: speed}}
}

func (c *Crocodile) Kind() arena.Kind { return arena.KindCrocodile }
func (c *Crocodile) Lethal() bool     { return true }

// MouthOpen reports the jaw state observed during the most recent update.
func (c *Crocodile) MouthOpen() bool { return c.open }

func (c *Crocodile) Sprite() (arena.Sprite, bool) {
	if c.open {
		return SpriteCrocodileOpen, true
	}
	return SpriteCrocodileClosed, true
}

func (c *Crocodile) Update(st *arena.Status) {
	c.drift(st.Size().X, c.size.X)

	c.open = c.counter >= crocodileOpenFrom
	c.counter = (c.counter + 1) % crocodileCycle
}

// waterHeight is the depth of the river band in pixels.
const waterHeight = 156

// Water is the river band. Touching it without a supporting raft or turtle
// drowns the frog. The background art covers it, so it reports no sprite.
type Water struct {
	pos  core.Point
	size core.Point
}

// NewWater creates a river band of the given width.
func NewWater(pos core.Point, width int32) *Water {
	return &Water{pos: pos, size: core.Pt(width, waterHeight)}
}

func (w *Water) Kind() arena.Kind             { return arena.KindWater }
func (w *Water) Pos() core.Point              { return w.pos }
func (w *Water) Size() core.Point             { return w.size }
func (w *Water) Sprite() (arena.Sprite, bool) { return 0, false }
func (w *Water) Alive() bool                  { return true }
func (w *Water) Speed() int32                 { return 0 }
func (w *Water) Lethal() bool                 { return false }
func (w *Water) Update(*arena.Status)         {}
