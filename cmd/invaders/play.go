package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game (default: invaders).

Controls:
  A/D, Left/Right  - Move
  Space/W/Up       - Fire (Space also starts the game)
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 lives, slower formation, fewer enemy shots
  normal - the configured values
  hard   - 2 lives, faster formation, more enemy shots

Examples:
  invaders play
  invaders play invaders_classic
  invaders play --difficulty hard --sound
  invaders play --config ./my-invaders.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "invaders"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q; run 'invaders list' to see available games", gameID)
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, runtimeConfig(), sess.options(false)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
