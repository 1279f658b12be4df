package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-frogger/internal/platform/tui"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best runs.

Examples:
  frogger scores
  frogger scores --limit 20
  frogger scores --tui
  frogger scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded run")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	if flagScoresTUI {
		return browseScores(cmd, store)
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Frogger")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'frogger play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Homes", "Time", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-6s  %s\n", "----", "------", "-----", "-----", "----", "----")
	for i, r := range scores {
		homes := fmt.Sprintf("%d/5", r.Homes)
		if r.Won {
			homes += "*"
		}
		fmt.Printf("  %-4d  %-12s  %-6d  %-6s  %-6s  %s\n",
			i+1, r.Player, r.Score, homes, fmt.Sprintf("%ds", r.Seconds), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Best: %d  Average: %.0f\n",
			stats.Runs, stats.Wins, stats.HighScore, stats.AvgScore)
	}
	return nil
}

// browseScores shows the interactive scoreboard and starts a game when the
// player asks for one.
func browseScores(cmd *cobra.Command, store *storage.Store) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	play, err := tui.RunScoreboard(store, gameID, "Frogger", width, height)
	if err != nil || !play {
		return err
	}
	return runPlay(cmd, nil)
}
