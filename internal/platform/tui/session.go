package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

// SessionModel is the top-level model for one player: game -> scoreboard ->
// game. Leaving a game shows its scoreboard; starting from the scoreboard
// builds a fresh game.
type SessionModel struct {
	gameID     string
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	game       *GameModel
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session that starts straight into the game.
func NewSessionModel(gameID string, store *storage.Store, cfg core.RuntimeConfig, player string) (SessionModel, error) {
	m := SessionModel{
		gameID: gameID,
		store:  store,
		config: cfg,
		player: player,
	}
	if err := m.startGame(); err != nil {
		return m, err
	}
	return m, nil
}

func (m *SessionModel) startGame() error {
	game, err := registry.Create(m.gameID)
	if err != nil {
		return err
	}
	gm := NewGameModel(game, m.store, m.config, m.player)
	m.game = &gm
	m.scoreboard = nil
	return nil
}

func (m *SessionModel) showScores() {
	title := m.gameID
	for _, info := range registry.List() {
		if info.ID == m.gameID {
			title = info.Title
		}
	}
	sb := NewScoreboardModel(m.store, m.gameID, title, m.config.ScreenW, m.config.ScreenH)
	sb.embedded = true
	m.scoreboard = &sb
	m.game = nil
}

// Init starts the game loop.
func (m SessionModel) Init() tea.Cmd {
	if m.game != nil {
		return m.game.Init()
	}
	return nil
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(GameModel); ok {
		m.game = &gm
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToScores():
		m.showScores()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Stale ticks from the previous game are dropped.
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = &sb
	}

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.WantsPlay():
		if err := m.startGame(); err != nil {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.game.Init()
	}
	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.game != nil:
		return m.game.View()
	case m.scoreboard != nil:
		return m.scoreboard.View()
	}
	return ""
}

// Run starts the Bubble Tea program for a local player.
func Run(gameID string, store *storage.Store, cfg core.RuntimeConfig) error {
	model, err := NewSessionModel(gameID, store, cfg, "local")
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
