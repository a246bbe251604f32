// hexpop is a terminal bubble shooter played on a hexagonal grid.
//
// Usage:
//
//	hexpop play              - Play the game
//	hexpop scores            - Show the high score table
//	hexpop serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.hexpop/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hexpop",
	Short: "Hex Pop - A bubble shooter in your terminal",
	Long: `Hex Pop is a terminal bubble shooter. Aim, fire, and pop clusters of
three or more same-colored bubbles before the field descends onto you.

Available commands:
  play     - Play the game
  scores   - View the high score table
  serve    - Start SSH server for remote play

Examples:
  hexpop play
  hexpop play --difficulty hard
  hexpop play --seed 42
  hexpop serve --ssh :2222
  hexpop scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.hexpop/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
