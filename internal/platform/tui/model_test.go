package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// stubGame records what the platform feeds it.
type stubGame struct {
	resets int
	seed   int64
	inputs []core.InputFrame
	state  core.GameState
}

func (g *stubGame) ID() string    { return "tui-stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.seed = cfg.Seed
	g.state = core.GameState{Lives: 3}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) State() core.GameState { return g.state }

func init() {
	registry.Register("tui-stub", func() registry.Game { return &stubGame{} })
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 30}
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm
}

func (m GameModel) tick() TickMsg {
	return TickMsg{Gen: m.gen}
}

func TestGameModelSeed(t *testing.T) {
	g := &stubGame{}
	NewGameModel(g, nil, testConfig(), "local")
	if g.resets != 1 || g.seed == 0 {
		t.Errorf("resets=%d seed=%d, want one reset with a time seed", g.resets, g.seed)
	}

	cfg := testConfig()
	cfg.Seed = 42
	NewGameModel(g, nil, cfg, "local")
	if g.seed != 42 {
		t.Errorf("fixed seed = %d, want 42", g.seed)
	}
}

func TestGameModelKeyLastsOneTick(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, nil, testConfig(), "local")

	m = update(t, m, runeKey("w"))
	m = update(t, m, m.tick())
	m = update(t, m, m.tick())

	if len(g.inputs) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionUp) {
		t.Error("first tick should hold Up")
	}
	if g.inputs[1].Has(core.ActionUp) {
		t.Error("second tick should be idle")
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	g := &stubGame{}
	m := NewGameModel(g, nil, testConfig(), "local")

	update(t, m, TickMsg{Gen: m.gen + 1})
	if len(g.inputs) != 0 {
		t.Errorf("stale tick stepped the game %d times", len(g.inputs))
	}
}

func TestGameModelRestart(t *testing.T) {
	g := &stubGame{}
	cfg := testConfig()
	cfg.Seed = 7
	m := NewGameModel(g, nil, cfg, "local")

	g.state.GameOver = true
	m = update(t, m, m.tick())
	m = update(t, m, runeKey("r"))
	m = update(t, m, m.tick())

	if g.resets != 2 {
		t.Errorf("resets = %d, want 2", g.resets)
	}
	if g.seed != 7 {
		t.Errorf("restart seed = %d, want fixed 7", g.seed)
	}
	if m.State().GameOver {
		t.Error("state should be fresh after restart")
	}
}

func TestGameModelBackSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m := NewGameModel(g, store, testConfig(), "alice")

	g.state.Score = 200
	g.state.Progress = 2
	m = update(t, m, m.tick())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if !m.BackToScores() {
		t.Fatal("esc should leave for the scoreboard")
	}
	if _, cmd := m.Update(m.tick()); cmd != nil {
		t.Error("tick loop should stop after leaving")
	}

	scores, err := store.TopScores("tui-stub", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Player != "alice" || scores[0].Homes != 2 {
		t.Errorf("saved runs = %+v", scores)
	}
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(&stubGame{}, nil, testConfig(), "local")
	view := m.View()
	if !strings.Contains(view, "stub") {
		t.Error("view should contain the game frame")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help footer")
	}
}

func TestSessionModelFlow(t *testing.T) {
	sm, err := NewSessionModel("tui-stub", nil, testConfig(), "local")
	if err != nil {
		t.Fatalf("NewSessionModel() failed: %v", err)
	}

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := sm.Update(msg)
		sm = next.(SessionModel)
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if sm.game != nil || sm.scoreboard == nil {
		t.Fatal("esc should switch to the scoreboard")
	}
	if !strings.Contains(sm.View(), "HIGH SCORES - Stub") {
		t.Error("scoreboard should show the game title")
	}

	step(TickMsg{})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if sm.game == nil {
		t.Fatal("enter should start a new game")
	}

	step(runeKey("q"))
	if !sm.quitting || sm.View() != "" {
		t.Error("q should end the session")
	}
}

func TestSessionModelUnknownGame(t *testing.T) {
	if _, err := NewSessionModel("missing", nil, testConfig(), "local"); err == nil {
		t.Error("expected error for unknown game")
	}
}

func TestRenderScreenColors(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'a', core.ColorRed)
	s.SetColored(1, 0, 'b', core.ColorRed)
	s.SetColored(2, 0, 'c', core.ColorBlue)

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("want 2 rows, got %q", out)
	}
	if !strings.Contains(out, "ab") {
		t.Errorf("same-color cells should share a run: %q", out)
	}
}
