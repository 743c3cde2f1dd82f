// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// InvadersConfig contains all configuration for the Invaders game.
// Distances are in field units, durations in simulation ticks.
type InvadersConfig struct {
	Field     FieldConfig     `yaml:"field"`
	Player    PlayerConfig    `yaml:"player"`
	Enemies   EnemyConfig     `yaml:"enemies"`
	Bullets   BulletConfig    `yaml:"bullets"`
	Bunkers   BunkerConfig    `yaml:"bunkers"`
	BonusShip BonusShipConfig `yaml:"bonus_ship"`
}

// FieldConfig defines the playfield dimensions.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player ship and its life cycle.
type PlayerConfig struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	Speed             float64 `yaml:"speed"`
	BottomOffset      float64 `yaml:"bottom_offset"` // Gap between ship bottom and field bottom
	Lives             int     `yaml:"lives"`
	InvulnerableTicks int     `yaml:"invulnerable_ticks"`
	FireDelayTicks    int     `yaml:"fire_delay_ticks"`
}

// EnemyConfig defines the enemy formation.
type EnemyConfig struct {
	Rows        int     `yaml:"rows"`
	Cols        int     `yaml:"cols"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Padding     float64 `yaml:"padding"`
	TopOffset   float64 `yaml:"top_offset"`
	LeftOffset  float64 `yaml:"left_offset"`
	BaseSpeed   float64 `yaml:"base_speed"`
	DescendStep float64 `yaml:"descend_step"`
	EdgeMargin  float64 `yaml:"edge_margin"` // Distance from the field edge that triggers a flip
	FireChance  float64 `yaml:"fire_chance"` // Per-tick probability that a front enemy fires
	PointsPer   int     `yaml:"points_per_type"`
}

// BulletConfig defines projectile sizes and speeds.
type BulletConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	PlayerSpeed float64 `yaml:"player_speed"`
	EnemySpeed  float64 `yaml:"enemy_speed"`
	BombWidth   float64 `yaml:"bomb_width"`
	BombHeight  float64 `yaml:"bomb_height"`
	BombSpeed   float64 `yaml:"bomb_speed"`
}

// BunkerConfig defines the destructible cover.
type BunkerConfig struct {
	Count    int     `yaml:"count"` // 0 disables bunkers
	Cols     int     `yaml:"cols"`
	Rows     int     `yaml:"rows"`
	CellSize float64 `yaml:"cell_size"`
	Y        float64 `yaml:"y"`
}

// BonusShipConfig defines the periodic high-value target.
type BonusShipConfig struct {
	Enabled        bool    `yaml:"enabled"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Y              float64 `yaml:"y"`
	MinSpeed       float64 `yaml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	PointsPerSpeed float64 `yaml:"points_per_speed"` // points = floor(|speed| * points_per_speed)
	SpawnMinTicks  int     `yaml:"spawn_min_ticks"`
	SpawnMaxTicks  int     `yaml:"spawn_max_ticks"`
	BombChance     float64 `yaml:"bomb_chance"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// ApplyInvadersPreset modifies the config based on a difficulty preset.
func ApplyInvadersPreset(cfg *InvadersConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Enemies.BaseSpeed *= 0.75
		cfg.Enemies.FireChance *= 0.5
		cfg.BonusShip.BombChance *= 0.5
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Enemies.BaseSpeed *= 1.5
		cfg.Enemies.FireChance = min(cfg.Enemies.FireChance*2, 1)
		cfg.BonusShip.BombChance = min(cfg.BonusShip.BombChance*2, 1)
	}
}

// Classic strips bunkers and the bonus ship, leaving the plain formation game.
func Classic(cfg InvadersConfig) InvadersConfig {
	cfg.Bunkers.Count = 0
	cfg.BonusShip.Enabled = false
	return cfg
}
