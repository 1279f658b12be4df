package frogger

import (
	"github.com/vovakirdan/tui-frogger/internal/arena"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Frog defaults.
const (
	DefaultLives      = 3
	DefaultHopSize    = 32
	DefaultBlinkTicks = 60
	WinSlots          = 5
)

// Win slot geometry. The frog's center must lie strictly inside a slot.
var winSlotX = [WinSlots]int32{48, 176, 304, 432, 560}

const (
	winSlotWidth  = 32
	winSlotTop    = 58
	winSlotBottom = 80
)

// WinSlot returns the rectangle of the i-th home slot.
func WinSlot(i int) core.Rect {
	return core.NewRect(int(winSlotX[i]), winSlotTop, winSlotWidth, winSlotBottom-winSlotTop)
}

var (
	frogVertical   = core.Pt(24, 18)
	frogHorizontal = core.Pt(18, 24)
)

// FrogOptions tunes the hero. Zero fields take the defaults.
type FrogOptions struct {
	Lives      int
	HopSize    int32
	BlinkTicks int
}

func (o FrogOptions) withDefaults() FrogOptions {
	if o.Lives <= 0 {
		o.Lives = DefaultLives
	}
	if o.HopSize <= 0 {
		o.HopSize = DefaultHopSize
	}
	if o.BlinkTicks <= 0 {
		o.BlinkTicks = DefaultBlinkTicks
	}
	return o
}

// Frog is the player-controlled hero.
//
// Each tick it resolves collisions (unless blinking), checks the home slots,
// hops on freshly pressed arrows, clamps itself inside the arena and counts
// down its blink window. Losing a life resets it to the start and makes it
// invulnerable for BlinkTicks ticks.
type Frog struct {
	pos        core.Point
	startPos   core.Point
	size       core.Point
	step       core.Point
	hop        int32
	sprite     arena.Sprite
	lives      int
	blinking   int
	blinkTicks int
	inWater    bool
	wins       [WinSlots]bool
}

// NewFrog creates the hero at its starting position.
func NewFrog(pos core.Point, opts FrogOptions) *Frog {
	opts = opts.withDefaults()
	return &Frog{
		pos:        pos,
		startPos:   pos,
		size:       frogVertical,
		hop:        opts.HopSize,
		sprite:     SpriteFrogUp,
		lives:      opts.Lives,
		blinkTicks: opts.BlinkTicks,
	}
}

func (f *Frog) Kind() arena.Kind { return arena.KindFrog }
func (f *Frog) Pos() core.Point  { return f.pos }
func (f *Frog) Size() core.Point { return f.size }
func (f *Frog) Alive() bool      { return f.lives > 0 }
func (f *Frog) Lethal() bool     { return false }

// Speed returns the horizontal step applied on the last tick.
func (f *Frog) Speed() int32 { return f.step.X }

// Sprite hides the frog on alternating pairs of ticks while it blinks.
func (f *Frog) Sprite() (arena.Sprite, bool) {
	if f.blinking > 0 && (f.blinking/2)%2 == 0 {
		return 0, false
	}
	return f.sprite, true
}

// Lives returns the remaining lives.
func (f *Frog) Lives() int { return f.lives }

// Wins returns the home slot flags, left to right.
func (f *Frog) Wins() [WinSlots]bool { return f.wins }

// Blinking returns the remaining invulnerability ticks.
func (f *Frog) Blinking() int { return f.blinking }

// InWater reports whether the last collision scan left the frog in the river.
func (f *Frog) InWater() bool { return f.inWater }

// StartPos returns where the frog respawns.
func (f *Frog) StartPos() core.Point { return f.startPos }

func (f *Frog) Update(st *arena.Status) {
	scr := st.Size()

	// inWater carries over from the previous tick.
	f.step = core.Point{}

	if f.blinking == 0 {
		f.resolveCollisions(st.Collisions())
		if f.inWater {
			f.loseLife()
		}
	}

	f.checkWinSlots()

	if st.Pressed(core.ActionUp) {
		f.face(frogVertical, SpriteFrogUp)
		f.step.Y = -f.hop
	} else if st.Pressed(core.ActionDown) {
		f.face(frogVertical, SpriteFrogDown)
		f.step.Y = f.hop
	}

	if st.Pressed(core.ActionLeft) {
		f.face(frogHorizontal, SpriteFrogLeft)
		f.step.X = -f.hop
	} else if st.Pressed(core.ActionRight) {
		f.face(frogHorizontal, SpriteFrogRight)
		f.step.X = f.hop
	}

	f.pos = f.pos.Add(f.step)
	f.pos.X = core.Clamp(f.pos.X, 0, scr.X-f.size.X)
	f.pos.Y = core.Clamp(f.pos.Y, 0, scr.Y-f.size.Y)

	f.blinking = max(f.blinking-1, 0)
}

// resolveCollisions applies overlaps in arena order. The first lethal contact
// ends the scan: the frog is back at the start and invulnerable.
func (f *Frog) resolveCollisions(hits []arena.Actor) {
	for _, other := range hits {
		switch other.Kind() {
		case arena.KindVehicle, arena.KindCrocodile:
			f.loseLife()
		case arena.KindWater:
			f.inWater = true
		case arena.KindRaft:
			f.inWater = false
			f.step.X = other.Speed()
		case arena.KindTurtle:
			if other.Lethal() {
				f.loseLife()
			} else {
				f.inWater = false
				f.step.X = other.Speed()
			}
		case arena.KindFrog:
		}

		if f.blinking > 0 {
			return
		}
	}
}

// checkWinSlots fills at most one empty slot, scanning left to right.
func (f *Frog) checkWinSlots() {
	cx, cy := core.RectAt(f.pos, f.size).Center()
	for i, x := range winSlotX {
		if f.wins[i] {
			continue
		}
		if cx > int(x) && cx < int(x)+winSlotWidth && cy > winSlotTop && cy < winSlotBottom {
			f.wins[i] = true
			f.resetPosition()
			return
		}
	}
}

func (f *Frog) face(size core.Point, sprite arena.Sprite) {
	f.size = size
	f.sprite = sprite
}

func (f *Frog) resetPosition() {
	f.pos = f.startPos
	f.size = frogVertical
	f.sprite = SpriteFrogUp
}

func (f *Frog) loseLife() {
	f.blinking = f.blinkTicks
	f.inWater = false
	f.lives--
	f.resetPosition()
}
