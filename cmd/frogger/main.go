// frogger is a tick-based Frogger for the terminal, a desktop window and SSH.
//
// Usage:
//
//	frogger list              - List available games
//	frogger play              - Play in the terminal
//	frogger window            - Play in a desktop window (needs -tags ebiten)
//	frogger sim               - Run a scripted session headless
//	frogger scores            - Show high scores
//	frogger serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible layouts
//	--db <path>     - Set database path (default: ~/.arcade/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/games/frogger"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string

	// Game config flags, shared by play, window, sim and serve
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogger",
	Short: "Frogger - hop across the road and the river",
	Long: `Frogger is a tick-based arcade game: cross five lanes of traffic,
ride rafts, turtles and crocodiles over the river, and fill all five homes.

Available commands:
  list     - Show all available games
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run a scripted session without a display
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  frogger play
  frogger play --difficulty easy
  frogger sim --seed 7 --keys up,up,-,left
  frogger serve --ssh :2222
  frogger scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", frogger.TicksPerSecond, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// addGameFlags registers --config and --difficulty on a subcommand.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom frogger config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// applyGameFlags hands the config flags to the game before it is created.
func applyGameFlags() {
	frogger.SetConfigPath(flagConfig)
	frogger.SetDifficultyPreset(flagDifficulty)
}

// tickRate is --fps when given, otherwise the configured arena tick rate.
func tickRate(cmd *cobra.Command) int {
	if cmd.Flags().Changed("fps") {
		return flagFPS
	}
	return frogger.LoadConfig().Arena.TickRate
}
