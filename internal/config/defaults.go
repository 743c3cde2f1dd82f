package config

import (
	_ "embed"
)

//go:embed defaults/invaders.yaml
var defaultInvadersYAML []byte

// DefaultInvadersConfig returns the default Invaders configuration.
// It mirrors defaults/invaders.yaml and is used when the embedded file cannot be parsed.
func DefaultInvadersConfig() InvadersConfig {
	return InvadersConfig{
		Field: FieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			Width:             40,
			Height:            30,
			Speed:             5,
			BottomOffset:      20,
			Lives:             3,
			InvulnerableTicks: 90,
			FireDelayTicks:    18,
		},
		Enemies: EnemyConfig{
			Rows:        5,
			Cols:        10,
			Width:       30,
			Height:      20,
			Padding:     20,
			TopOffset:   60,
			LeftOffset:  50,
			BaseSpeed:   1,
			DescendStep: 20,
			EdgeMargin:  20,
			FireChance:  0.01,
			PointsPer:   10,
		},
		Bullets: BulletConfig{
			Width:       3,
			Height:      15,
			PlayerSpeed: 7,
			EnemySpeed:  4,
			BombWidth:   6,
			BombHeight:  12,
			BombSpeed:   3,
		},
		Bunkers: BunkerConfig{
			Count:    4,
			Cols:     8,
			Rows:     6,
			CellSize: 10,
			Y:        440,
		},
		BonusShip: BonusShipConfig{
			Enabled:        true,
			Width:          48,
			Height:         20,
			Y:              30,
			MinSpeed:       2,
			MaxSpeed:       4,
			PointsPerSpeed: 50,
			SpawnMinTicks:  900,
			SpawnMaxTicks:  1800,
			BombChance:     0.01,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "invaders", "invaders_classic":
		return defaultInvadersYAML
	default:
		return nil
	}
}
