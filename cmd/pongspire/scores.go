package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pongspire/internal/registry"
	"github.com/vovakirdan/pongspire/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores for an exercise",
	Long: `Display the top high scores for the given exercise (default: pong).
A score is recorded every time the last life is lost with points on the board.

Examples:
  pongspire scores
  pongspire scores pong --limit 20
  pongspire scores pong --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every recorded score for the exercise")
}

func runScores(cmd *cobra.Command, args []string) {
	logger := newLogger()
	gameID := gameArg(logger, args)

	game, err := registry.Create(gameID, loadConfig(logger))
	if err != nil {
		fatal(logger, "Cannot create game", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal(logger, "Cannot open scores database", err)
	}
	defer closeStore(logger, store)

	if flagScoresClear {
		if err := clearScores(os.Stdout, store, gameID, game.Title()); err != nil {
			logger.Error("Cannot clear scores", "error", err)
		}
		return
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		logger.Error("Cannot read scores", "error", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pongspire play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Printf("  %-4s  %-16s  %-8s  %s\n", "----", "------", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-16s  %-8d  %s\n", i+1, player, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GameStats(gameID)
	if err != nil {
		logger.Warn("Cannot read stats", "error", err)
		return
	}

	fmt.Println()
	fmt.Printf("Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// clearScores removes the exercise's scores and reports how many were dropped.
func clearScores(w io.Writer, store *storage.Store, gameID, title string) error {
	stats, err := store.GameStats(gameID)
	if err != nil {
		return err
	}
	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Cleared %d score(s) for %s\n", stats.GamesCount, title)
	return err
}
