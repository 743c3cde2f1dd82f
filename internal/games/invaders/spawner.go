package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Spawner makes every random decision of the simulation: which enemy fires,
// when the bonus ship arrives, from which side and how fast, and when it
// drops a bomb. It holds no session state; deadlines live in SimulationState.
type Spawner struct {
	rng        core.Rand
	fireChance float64
	bonus      config.BonusShipConfig
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng core.Rand, enemies config.EnemyConfig, bonus config.BonusShipConfig) *Spawner {
	return &Spawner{
		rng:        rng,
		fireChance: enemies.FireChance,
		bonus:      bonus,
	}
}

// ChooseShooter picks one of the column-front enemies with the per-tick fire
// probability, or returns nil.
func (s *Spawner) ChooseShooter(fronts []*Enemy) *Enemy {
	if len(fronts) == 0 {
		return nil
	}
	if s.rng.Float64() >= s.fireChance {
		return nil
	}
	return fronts[s.rng.Intn(len(fronts))]
}

// NextBonusTick returns the tick at which the next bonus ship should arrive,
// drawn uniformly from the configured interval after now.
func (s *Spawner) NextBonusTick(now uint64) uint64 {
	span := s.bonus.SpawnMaxTicks - s.bonus.SpawnMinTicks
	delay := s.bonus.SpawnMinTicks
	if span > 0 {
		delay += s.rng.Intn(span + 1)
	}
	return now + uint64(delay) //#nosec G115 -- spawn ticks validated positive
}

// SpawnBonus creates a bonus ship just outside a random horizontal edge,
// heading across the field.
func (s *Spawner) SpawnBonus(fieldWidth float64) *BonusShip {
	fromLeft := s.rng.Intn(2) == 0
	speed := s.bonus.MinSpeed + s.rng.Float64()*(s.bonus.MaxSpeed-s.bonus.MinSpeed)

	ship := &BonusShip{
		Box:    core.NewRectF(0, s.bonus.Y, s.bonus.Width, s.bonus.Height),
		Points: BonusPoints(speed, s.bonus.PointsPerSpeed),
	}
	if fromLeft {
		ship.Box.X = -s.bonus.Width
		ship.Speed = speed
	} else {
		ship.Box.X = fieldWidth
		ship.Speed = -speed
	}
	return ship
}

// DropBomb reports whether the bonus ship drops a bomb this tick.
func (s *Spawner) DropBomb() bool {
	return s.rng.Float64() < s.bonus.BombChance
}

// BonusPoints is the value of a bonus ship flying at speed.
func BonusPoints(speed, perSpeed float64) int {
	return int(math.Floor(math.Abs(speed) * perSpeed))
}
