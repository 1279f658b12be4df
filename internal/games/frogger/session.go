package frogger

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-frogger/internal/arena"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

// TicksPerSecond converts arena ticks into playing time.
const TicksPerSecond = 30

// Lane rows, top edge in pixels.
var (
	roadLanes  = [5]int32{276, 308, 340, 372, 404}
	riverLanes = [5]int32{87, 119, 151, 183, 215}
)

const (
	riverTop       = 82
	vehicleSpeed   = 4
	raftSpeed      = 2
	vehicleSpacing = 150
	riverSpacing   = 320
)

// Layout controls how a session populates its arena.
type Layout struct {
	VehicleColumns  int         // vehicles per road lane
	RaftRepetitions int         // copies of the five-lane river section
	Start           core.Point  // frog spawn point
	Frog            FrogOptions // hero tuning
	PlaytimeOffset  int         // seconds already played before this session
}

// DefaultLayout returns the classic 640x480 setup.
func DefaultLayout() Layout {
	return Layout{
		VehicleColumns:  5,
		RaftRepetitions: 2,
		Start:           core.Pt(308, 440),
	}
}

// Session owns one arena populated with a frogger level and derives the
// score-level queries from its frog.
type Session struct {
	arena    *arena.Arena
	frog     *Frog
	playtime int
}

// NewSession builds the level procedurally. rng drives the horizontal
// offsets, vehicle aspects and turtle dives; nil gives a fixed layout.
// Panics on a non-positive size or negative counts.
func NewSession(size core.Point, layout Layout, rng *rand.Rand) *Session {
	if size.X <= 0 || size.Y <= 0 {
		panic(fmt.Sprintf("frogger: invalid arena size %dx%d", size.X, size.Y))
	}
	if layout.VehicleColumns < 0 || layout.RaftRepetitions < 0 {
		panic(fmt.Sprintf("frogger: invalid layout %d vehicles, %d river sections",
			layout.VehicleColumns, layout.RaftRepetitions))
	}

	a := arena.New(size)
	a.Spawn(NewWater(core.Pt(0, riverTop), size.X))

	for i, n := int32(0), int32(layout.VehicleColumns); i < n; i++ {
		for row, y := range roadLanes {
			x := i*vehicleSpacing + randint(rng, 10, 50)
			a.Spawn(NewVehicle(core.Pt(x, y), laneSpeed(row, vehicleSpeed), rng))
		}
	}

	for i, n := int32(0), int32(layout.RaftRepetitions); i < n; i++ {
		spawnRiverSection(a, i*riverSpacing, rng)
	}

	frog := NewFrog(layout.Start, layout.Frog)
	a.Spawn(frog)

	return &Session{arena: a, frog: frog, playtime: layout.PlaytimeOffset}
}

// spawnRiverSection adds five rafts, a crocodile trailing the first raft and
// turtles trailing the second and fourth.
func spawnRiverSection(a *arena.Arena, base int32, rng *rand.Rand) {
	rafts := make([]*Raft, len(riverLanes))
	for row, y := range riverLanes {
		x := base + randint(rng, 50, 200)
		rafts[row] = NewRaft(core.Pt(x, y), laneSpeed(row, raftSpeed))
		a.Spawn(rafts[row])
	}

	lead := rafts[0]
	a.Spawn(NewCrocodile(core.Pt(lead.pos.X+lead.size.X+lead.size.X/2, lead.pos.Y), lead.speed))

	for _, r := range []*Raft{rafts[1], rafts[3]} {
		t := NewTurtle(core.Pt(0, r.pos.Y), r.speed, rng)
		t.pos.X = r.pos.X + r.size.X + t.size.X/2
		a.Spawn(t)
	}
}

// laneSpeed alternates direction per row, starting rightwards.
func laneSpeed(row int, speed int32) int32 {
	if row%2 == 1 {
		return -speed
	}
	return speed
}

// Tick advances the level by one step with the keys held this tick.
func (s *Session) Tick(keys core.InputFrame) {
	s.arena.Tick(keys)
}

// Size returns the arena size in pixels.
func (s *Session) Size() core.Point {
	return s.arena.Size()
}

// Actors returns every actor in draw order. The slice is read-only.
func (s *Session) Actors() []arena.Actor {
	return s.arena.Actors()
}

// Hero returns the frog.
func (s *Session) Hero() *Frog {
	return s.frog
}

// Ticks returns the number of completed ticks.
func (s *Session) Ticks() uint64 {
	return s.arena.Count()
}

// RemainingLives returns the frog's lives.
func (s *Session) RemainingLives() int {
	return s.frog.Lives()
}

// GameOver reports whether the frog has run out of lives.
func (s *Session) GameOver() bool {
	return s.RemainingLives() <= 0
}

// GameWon reports whether every home slot is filled.
func (s *Session) GameWon() bool {
	for _, won := range s.frog.Wins() {
		if !won {
			return false
		}
	}
	return true
}

// HomesFilled counts the filled home slots.
func (s *Session) HomesFilled() int {
	n := 0
	for _, won := range s.frog.Wins() {
		if won {
			n++
		}
	}
	return n
}

// PlayingTime returns elapsed seconds on a 30 ticks-per-second clock.
func (s *Session) PlayingTime() int {
	return s.playtime + int(s.arena.Count()/TicksPerSecond)
}

// Score awards 100 points per filled home and, once the game is won,
// 50 per remaining life.
func (s *Session) Score() int {
	score := 100 * s.HomesFilled()
	if s.GameWon() {
		score += 50 * s.RemainingLives()
	}
	return score
}
