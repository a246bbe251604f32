package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ormakov/hexpop/internal/config"
	"github.com/ormakov/hexpop/internal/core"
	"github.com/ormakov/hexpop/internal/game"
	"github.com/ormakov/hexpop/internal/platform/tui"
	"github.com/ormakov/hexpop/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Hex Pop",
	Long: `Start a game.

Controls:
  A/D, Left/Right  - Aim
  Space/Up         - Fire
  1/2/3            - Pick a power-up
  P/Esc            - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slower descent, fewer rows and colors
  normal - The standard game
  hard   - Faster descent, more starting rows
  fixed  - No descent speed-up across levels

Examples:
  hexpop play
  hexpop play --difficulty easy
  hexpop play --seed 42
  hexpop play --config ./my-hexpop.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Load game configuration
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&gameCfg, config.DifficultyPreset(flagDifficulty))
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game.New(gameCfg), store, rt)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
