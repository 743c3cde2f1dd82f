package config

import (
	"errors"
	"fmt"
)

// ValidationError describes one rejected configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate rejects configurations the simulation cannot run with.
// All problems are reported together.
func (c InvadersConfig) Validate() error {
	var errs []error

	positive := func(field string, v float64) {
		if v <= 0 {
			errs = append(errs, ValidationError{field, fmt.Sprintf("must be positive, got %v", v)})
		}
	}
	nonNegative := func(field string, v float64) {
		if v < 0 {
			errs = append(errs, ValidationError{field, fmt.Sprintf("must not be negative, got %v", v)})
		}
	}
	probability := func(field string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, ValidationError{field, fmt.Sprintf("must be within [0, 1], got %v", v)})
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)

	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.speed", c.Player.Speed)
	nonNegative("player.bottom_offset", c.Player.BottomOffset)
	positive("player.lives", float64(c.Player.Lives))
	nonNegative("player.invulnerable_ticks", float64(c.Player.InvulnerableTicks))
	nonNegative("player.fire_delay_ticks", float64(c.Player.FireDelayTicks))
	if c.Player.Width > c.Field.Width {
		errs = append(errs, ValidationError{"player.width", "wider than the field"})
	}
	if c.Player.Height+c.Player.BottomOffset > c.Field.Height {
		errs = append(errs, ValidationError{"player.height", "player does not fit in the field"})
	}

	positive("enemies.rows", float64(c.Enemies.Rows))
	positive("enemies.cols", float64(c.Enemies.Cols))
	positive("enemies.width", c.Enemies.Width)
	positive("enemies.height", c.Enemies.Height)
	nonNegative("enemies.padding", c.Enemies.Padding)
	nonNegative("enemies.top_offset", c.Enemies.TopOffset)
	nonNegative("enemies.left_offset", c.Enemies.LeftOffset)
	positive("enemies.base_speed", c.Enemies.BaseSpeed)
	nonNegative("enemies.descend_step", c.Enemies.DescendStep)
	nonNegative("enemies.edge_margin", c.Enemies.EdgeMargin)
	probability("enemies.fire_chance", c.Enemies.FireChance)
	nonNegative("enemies.points_per_type", float64(c.Enemies.PointsPer))
	if formationW := float64(c.Enemies.Cols)*(c.Enemies.Width+c.Enemies.Padding) - c.Enemies.Padding; formationW+2*c.Enemies.EdgeMargin > c.Field.Width {
		errs = append(errs, ValidationError{"enemies.cols", "formation does not fit between the edge margins"})
	}

	positive("bullets.width", c.Bullets.Width)
	positive("bullets.height", c.Bullets.Height)
	positive("bullets.player_speed", c.Bullets.PlayerSpeed)
	positive("bullets.enemy_speed", c.Bullets.EnemySpeed)

	if c.Bunkers.Count < 0 {
		errs = append(errs, ValidationError{"bunkers.count", "must not be negative"})
	}
	if c.Bunkers.Count > 0 {
		positive("bunkers.cols", float64(c.Bunkers.Cols))
		positive("bunkers.rows", float64(c.Bunkers.Rows))
		positive("bunkers.cell_size", c.Bunkers.CellSize)
		if float64(c.Bunkers.Count*c.Bunkers.Cols)*c.Bunkers.CellSize > c.Field.Width {
			errs = append(errs, ValidationError{"bunkers.count", "bunkers do not fit across the field"})
		}
	}

	if c.BonusShip.Enabled {
		positive("bonus_ship.width", c.BonusShip.Width)
		positive("bonus_ship.height", c.BonusShip.Height)
		positive("bonus_ship.min_speed", c.BonusShip.MinSpeed)
		if c.BonusShip.MaxSpeed < c.BonusShip.MinSpeed {
			errs = append(errs, ValidationError{"bonus_ship.max_speed", "must not be below min_speed"})
		}
		nonNegative("bonus_ship.points_per_speed", c.BonusShip.PointsPerSpeed)
		positive("bonus_ship.spawn_min_ticks", float64(c.BonusShip.SpawnMinTicks))
		if c.BonusShip.SpawnMaxTicks < c.BonusShip.SpawnMinTicks {
			errs = append(errs, ValidationError{"bonus_ship.spawn_max_ticks", "must not be below spawn_min_ticks"})
		}
		probability("bonus_ship.bomb_chance", c.BonusShip.BombChance)
		positive("bullets.bomb_width", c.Bullets.BombWidth)
		positive("bullets.bomb_height", c.Bullets.BombHeight)
		positive("bullets.bomb_speed", c.Bullets.BombSpeed)
	}

	return errors.Join(errs...)
}
