package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
	"github.com/vovakirdan/tui-frogger/internal/platform/window"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and play with real held keys.

The window driver is only available in binaries built with
'-tags ebiten'.

Controls:
  Arrows/WASD  - Hop (hold to keep hopping)
  P            - Pause
  R            - Restart (after game over)
  Esc/Q        - Quit

Examples:
  frogger window
  frogger window --scale 2 --difficulty easy`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window pixels per arena pixel")
}

func runWindow(cmd *cobra.Command, _ []string) error {
	applyGameFlags()

	store := openStoreOrWarn()
	if store != nil {
		defer store.Close()
	}

	return window.Run(frogger.New(), store, window.Options{
		Scale:    flagScale,
		TickRate: tickRate(cmd),
		Seed:     flagSeed,
	})
}
