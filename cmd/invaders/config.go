package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var configCmd = &cobra.Command{
	Use:   "config [game]",
	Short: "Print the effective game configuration as YAML",
	Long: `Resolve the configuration a new game would use and print it as YAML.

The result applies the config search order, the difficulty preset and
the variant. Redirect it to a file to start a custom config:

  invaders config > ~/.arcade/configs/invaders.yaml
  invaders config invaders_classic --difficulty easy`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runConfig(cmd *cobra.Command, args []string) error {
	gameID := "invaders"
	if len(args) > 0 {
		gameID = args[0]
	}
	variant, ok := invaders.VariantOf(gameID)
	if !ok {
		return fmt.Errorf("unknown game %q", gameID)
	}

	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)

	cfg, err := invaders.EffectiveConfig(variant)
	if err != nil {
		return err
	}

	data, err := config.MarshalInvaders(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
