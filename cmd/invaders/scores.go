package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagClearScores bool
	flagScoreLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top high scores and play statistics for a game.

Examples:
  invaders scores invaders
  invaders scores invaders_classic --limit 20
  invaders scores invaders --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the game")
	scoresCmd.Flags().IntVar(&flagScoreLimit, "limit", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	out := cmd.OutOrStdout()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w; run 'invaders list' to see available games", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoreLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'invaders play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-4s  %s\n", "Rank", "Score", "Wave", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-4s  %s\n", "----", "-----", "----", "----")
	for i, entry := range scores {
		fmt.Fprintf(out, "  %-4d  %-10d  %-4d  %s\n",
			i+1, entry.Score, entry.Wave, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Games played: %d\n", stats.GamesCount)
	fmt.Fprintf(out, "Best: %d (best wave %d)\n", stats.HighScore, stats.BestWave)
	fmt.Fprintf(out, "Average: %.0f\n", stats.AvgScore)
	return nil
}
