package frogger

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")

	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	g.Reset(cfg)
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists("frogger") {
		t.Fatal("frogger not registered")
	}
	g, err := registry.Create("frogger")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "frogger" || g.Title() != "Frogger" {
		t.Errorf("got %q / %q", g.ID(), g.Title())
	}
}

func TestGameResetUsesConfig(t *testing.T) {
	g := newTestGame(t)

	if g.Session().Size() != core.Pt(640, 480) {
		t.Errorf("arena = %v, want 640x480", g.Session().Size())
	}
	if g.Config().Arena.TickRate != 30 {
		t.Errorf("tick rate = %d", g.Config().Arena.TickRate)
	}
	st := g.State()
	if st.GameOver || st.Paused || st.Score != 0 {
		t.Errorf("fresh state = %+v", st)
	}
}

func TestGameDifficultyPreset(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("easy")
	defer SetDifficultyPreset("")

	g := New()
	g.Reset(core.DefaultConfig())
	if g.Session().RemainingLives() != 5 {
		t.Errorf("easy lives = %d, want 5", g.Session().RemainingLives())
	}
}

func TestGamePauseFreezesSession(t *testing.T) {
	g := newTestGame(t)

	g.Step(core.FrameOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused")
	}
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Session().Ticks() != 0 {
		t.Errorf("ticks = %d while paused, want 0", g.Session().Ticks())
	}

	// The resuming step runs a tick.
	g.Step(core.FrameOf(core.ActionPause))
	if g.State().Paused || g.Session().Ticks() != 1 {
		t.Errorf("paused=%v ticks=%d after resume", g.State().Paused, g.Session().Ticks())
	}
}

func TestGameStopsWhenOver(t *testing.T) {
	g := newTestGame(t)
	g.Session().frog.lives = 0

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Won {
		t.Errorf("state = %+v, want lost game", res.State)
	}
	if g.Session().Ticks() != 0 {
		t.Error("finished game must not tick")
	}

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "GAME OVER") {
		t.Error("render should show GAME OVER")
	}
}

func TestGameWonState(t *testing.T) {
	g := newTestGame(t)
	g.Session().frog.wins = [WinSlots]bool{true, true, true, true, true}

	st := g.State()
	if !st.GameOver || !st.Won {
		t.Errorf("state = %+v, want won", st)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(80, 24)
	g.Render(scr)

	if !strings.Contains(scr.Row(0), "Lives: 3") {
		t.Errorf("HUD row = %q", scr.Row(0))
	}
	if !strings.Contains(scr.String(), "~") {
		t.Error("river not drawn")
	}

	// The frog starts at (308,440): column 308*80/640 = 38, row 1 + 440*23/480 = 22.
	if cell := scr.GetCell(38, 22); cell.Rune != '^' {
		t.Errorf("frog cell = %q, want '^'", cell.Rune)
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(20, 8)
	g.Render(scr)
	if !strings.Contains(scr.String(), "Terminal too small") {
		t.Error("expected too-small message")
	}
}

func TestGameRenderPaused(t *testing.T) {
	g := newTestGame(t)
	g.Step(core.FrameOf(core.ActionPause))

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	if !strings.Contains(scr.String(), "PAUSED") {
		t.Error("render should show PAUSED")
	}
}

func TestScenery(t *testing.T) {
	tests := []struct {
		height int32
		want   []Band
	}{
		{480, []Band{
			{40, 82, TerrainBank},
			{244, 276, TerrainMedian},
			{436, 480, TerrainSidewalk},
		}},
		{360, []Band{
			{40, 82, TerrainBank},
			{244, 276, TerrainMedian},
		}},
		{260, []Band{
			{40, 82, TerrainBank},
			{244, 260, TerrainMedian},
		}},
	}

	for _, tt := range tests {
		got := Scenery(tt.height)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Scenery(%d) = %v, want %v", tt.height, got, tt.want)
		}
	}
}
