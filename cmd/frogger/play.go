package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/core"
	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

const gameID = "frogger"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD  - Hop
  P            - Pause
  R            - Restart (after game over)
  Esc/B        - Show high scores
  Q/Ctrl+C     - Quit

Terminals only report key presses, so holding a key behaves like
pressing it repeatedly. Use 'frogger window' for true held keys.

Difficulty options:
  easy   - More lives, lighter traffic
  normal - Config values
  hard   - Fewer lives, fewer rafts

Examples:
  frogger play
  frogger play --difficulty hard
  frogger play --config ./my-frogger.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	applyGameFlags()

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate(cmd),
		Seed:     flagSeed,
	}

	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}

	return tui.Run(gameID, store, cfg)
}

// openStoreOrWarn opens the scores database. Games still run without it.
func openStoreOrWarn() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
