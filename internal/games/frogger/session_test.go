package frogger

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/arena"
	"github.com/vovakirdan/tui-frogger/internal/core"
)

func TestNewSessionPopulation(t *testing.T) {
	s := NewSession(core.Pt(640, 480), DefaultLayout(), nil)
	actors := s.Actors()

	// water + 5 columns x 5 lanes + 2 sections x (5 rafts + crocodile + 2 turtles) + frog
	if len(actors) != 43 {
		t.Fatalf("actors = %d, want 43", len(actors))
	}
	if actors[0].Kind() != arena.KindWater {
		t.Errorf("first actor = %v, want water", actors[0].Kind())
	}
	if actors[len(actors)-1].Kind() != arena.KindFrog {
		t.Errorf("last actor = %v, want frog", actors[len(actors)-1].Kind())
	}

	counts := map[arena.Kind]int{}
	for _, a := range actors {
		counts[a.Kind()]++
	}
	want := map[arena.Kind]int{
		arena.KindWater:     1,
		arena.KindVehicle:   25,
		arena.KindRaft:      10,
		arena.KindCrocodile: 2,
		arena.KindTurtle:    4,
		arena.KindFrog:      1,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Errorf("kinds = %v, want %v", counts, want)
	}

	if s.Hero().Pos() != core.Pt(308, 440) {
		t.Errorf("hero at %v, want (308,440)", s.Hero().Pos())
	}
	if s.RemainingLives() != DefaultLives {
		t.Errorf("lives = %d, want %d", s.RemainingLives(), DefaultLives)
	}
}

func TestNewSessionFixedLayout(t *testing.T) {
	s := NewSession(core.Pt(480, 360), Layout{VehicleColumns: 2, RaftRepetitions: 1, Start: core.Pt(100, 330)}, nil)
	actors := s.Actors()

	// Second column, third lane.
	v := actors[1+5+2]
	if v.Pos() != core.Pt(160, 340) || v.Speed() != 4 {
		t.Errorf("vehicle at %v speed %d, want (160,340) speed 4", v.Pos(), v.Speed())
	}
	if actors[1+1].Speed() != -4 {
		t.Errorf("second lane speed = %d, want -4", actors[2].Speed())
	}

	river := actors[1+10:]
	for i, y := range riverLanes {
		r := river[i]
		if r.Kind() != arena.KindRaft || r.Pos() != core.Pt(50, y) {
			t.Errorf("raft %d: %v at %v, want raft at (50,%d)", i, r.Kind(), r.Pos(), y)
		}
	}
	if croc := river[5]; croc.Kind() != arena.KindCrocodile || croc.Pos() != core.Pt(194, 87) {
		t.Errorf("crocodile: %v at %v, want (194,87)", croc.Kind(), croc.Pos())
	}
	if tu := river[6]; tu.Kind() != arena.KindTurtle || tu.Pos() != core.Pt(178, 119) || tu.Speed() != -2 {
		t.Errorf("turtle 1: %v at %v speed %d", tu.Kind(), tu.Pos(), tu.Speed())
	}
	if tu := river[7]; tu.Pos() != core.Pt(178, 183) {
		t.Errorf("turtle 2 at %v, want (178,183)", tu.Pos())
	}
}

func TestNewSessionPanics(t *testing.T) {
	tests := []struct {
		name   string
		size   core.Point
		layout Layout
	}{
		{"zero width", core.Pt(0, 480), DefaultLayout()},
		{"negative height", core.Pt(640, -1), DefaultLayout()},
		{"negative vehicles", core.Pt(640, 480), Layout{VehicleColumns: -1}},
		{"negative rafts", core.Pt(640, 480), Layout{RaftRepetitions: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			NewSession(tt.size, tt.layout, nil)
		})
	}
}

func TestSessionDeterministic(t *testing.T) {
	script := []core.InputFrame{
		press(core.ActionUp), press(), press(core.ActionLeft), press(core.ActionUp),
		press(), press(core.ActionRight), press(core.ActionUp), press(),
	}

	run := func() Snapshot {
		s := NewSession(core.Pt(640, 480), DefaultLayout(), rand.New(rand.NewSource(42)))
		for i := 0; i < 600; i++ {
			s.Tick(script[i%len(script)])
		}
		return s.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Error("sessions with equal seeds and keys diverged")
	}
	if a.Tick != 600 {
		t.Errorf("tick = %d, want 600", a.Tick)
	}
}

func TestSessionSeedChangesLayout(t *testing.T) {
	a := NewSession(core.Pt(640, 480), DefaultLayout(), rand.New(rand.NewSource(1))).Snapshot()
	b := NewSession(core.Pt(640, 480), DefaultLayout(), rand.New(rand.NewSource(2))).Snapshot()
	if reflect.DeepEqual(a.ActorData, b.ActorData) {
		t.Error("different seeds produced the same layout")
	}
}

func TestSessionPlayingTime(t *testing.T) {
	layout := DefaultLayout()
	layout.PlaytimeOffset = 10
	s := NewSession(core.Pt(640, 480), layout, nil)

	for i := 0; i < 95; i++ {
		s.Tick(press())
	}
	if got := s.PlayingTime(); got != 13 {
		t.Errorf("PlayingTime() = %d, want 13", got)
	}
	if s.Ticks() != 95 {
		t.Errorf("Ticks() = %d, want 95", s.Ticks())
	}
}

func TestSessionFirstHop(t *testing.T) {
	s := NewSession(core.Pt(640, 480), DefaultLayout(), nil)
	s.Tick(press(core.ActionUp))

	if got := s.Hero().Pos(); got != core.Pt(308, 408) {
		t.Errorf("hero at %v, want (308,408)", got)
	}
	if sn := s.Snapshot(); sn.HeroPos() != core.Pt(308, 408) {
		t.Errorf("snapshot hero at %v", sn.HeroPos())
	}
}

func TestSessionStatus(t *testing.T) {
	s := NewSession(core.Pt(640, 480), DefaultLayout(), nil)
	if s.GameOver() || s.GameWon() || s.Score() != 0 {
		t.Fatal("fresh session should be running with no score")
	}

	s.frog.wins = [WinSlots]bool{true, true, false, true, true}
	if s.GameWon() || s.HomesFilled() != 4 || s.Score() != 400 {
		t.Errorf("four homes: won=%v homes=%d score=%d", s.GameWon(), s.HomesFilled(), s.Score())
	}

	// Drop the frog into the last free home.
	s.frog.pos = core.Pt(308, 60)
	s.Tick(press())
	if !s.GameWon() {
		t.Fatal("all five homes filled, game should be won")
	}
	if want := 500 + 50*DefaultLives; s.Score() != want {
		t.Errorf("score = %d, want %d", s.Score(), want)
	}

	s.frog.lives = 0
	if !s.GameOver() {
		t.Error("no lives left, game should be over")
	}
}
