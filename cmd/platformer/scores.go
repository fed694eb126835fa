package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 final scores, or the top 10 runs of a level.

Examples:
  platformer scores
  platformer scores 1-1`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		if err := printRuns(store, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := printScores(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) error {
	scores, err := store.TopScores(platformer.GameID, 10)
	if err != nil {
		return err
	}

	fmt.Println("High Scores")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'platformer play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	highScore, err := store.HighScore(platformer.GameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", highScore)
	}
	return nil
}

func printRuns(store *storage.Store, levelID string) error {
	runs, err := store.TopRuns(levelID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("Best Runs - World %s\n", levelID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to set the first run!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-12s  %s\n", "Rank", "Score", "Coins", "Lives", "Result", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-5s  %-12s  %s\n", "----", "-----", "-----", "-----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-5d  %-5d  %-12s  %s\n",
			i+1, r.Score, r.Coins, r.Lives, r.Outcome, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
