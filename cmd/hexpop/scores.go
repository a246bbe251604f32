package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ormakov/hexpop/internal/platform/tui"
	"github.com/ormakov/hexpop/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score table",
	Long: `Display the top 10 high scores.

By default an interactive table opens; use --plain for plain text output.

Examples:
  hexpop scores
  hexpop scores --plain
  hexpop scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores as plain text instead of the interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Scores cleared.")
		return
	}

	if flagPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) {
	scores, err := store.TopScores(storage.TopLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Hex Pop")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'hexpop play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %s\n", "Rank", "Score", "Bubbles", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %-6s  %s\n", "----", "-----", "-------", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %-6d  %s\n", i+1, entry.Score, entry.BubblesPopped, entry.Level, dateStr)
	}

	fmt.Println()
	if high, err := store.HighScore(); err == nil {
		fmt.Printf("Best: %d\n", high)
	}
}
