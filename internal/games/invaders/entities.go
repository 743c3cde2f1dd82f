package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// BulletOwner distinguishes who fired a projectile.
type BulletOwner int

const (
	OwnerPlayer BulletOwner = iota
	OwnerEnemy
	OwnerBomb // Dropped by the bonus ship
)

// String returns the owner name.
func (o BulletOwner) String() string {
	switch o {
	case OwnerPlayer:
		return "player"
	case OwnerEnemy:
		return "enemy"
	case OwnerBomb:
		return "bomb"
	default:
		return "unknown"
	}
}

// Bullet is a projectile moving vertically at constant speed.
// VY is negative for player bullets (upward) and positive otherwise.
type Bullet struct {
	Box   core.RectF
	VY    float64
	Owner BulletOwner
}

// BonusShip is the high-value target crossing the top of the field.
// The sign of Speed encodes its direction.
type BonusShip struct {
	Box    core.RectF
	Speed  float64
	Points int
}

// Departed reports whether the ship has fully left the field on the side
// opposite to where it entered.
func (b *BonusShip) Departed(fieldWidth float64) bool {
	if b.Speed > 0 {
		return b.Box.X >= fieldWidth
	}
	return b.Box.Right() <= 0
}

// newPlayerBullet spawns a bullet centered just above the player.
func newPlayerBullet(p *Player, cfg config.BulletConfig) *Bullet {
	return &Bullet{
		Box:   core.NewRectF(p.Box.CenterX()-cfg.Width/2, p.Box.Y-cfg.Height, cfg.Width, cfg.Height),
		VY:    -cfg.PlayerSpeed,
		Owner: OwnerPlayer,
	}
}

// newEnemyBullet spawns a bullet centered under the shooter.
func newEnemyBullet(e *Enemy, cfg config.BulletConfig) *Bullet {
	return &Bullet{
		Box:   core.NewRectF(e.Box.CenterX()-cfg.Width/2, e.Box.Bottom(), cfg.Width, cfg.Height),
		VY:    cfg.EnemySpeed,
		Owner: OwnerEnemy,
	}
}

// newBomb spawns a bomb centered under the bonus ship.
func newBomb(b *BonusShip, cfg config.BulletConfig) *Bullet {
	return &Bullet{
		Box:   core.NewRectF(b.Box.CenterX()-cfg.BombWidth/2, b.Box.Bottom(), cfg.BombWidth, cfg.BombHeight),
		VY:    cfg.BombSpeed,
		Owner: OwnerBomb,
	}
}

// advanceBullets moves every bullet and drops those that left the field
// vertically. Player bullets leave through the top, the rest through the
// bottom.
func advanceBullets(bullets []*Bullet, fieldHeight float64) []*Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Box.Y += b.VY
		if b.Owner == OwnerPlayer && b.Box.Y < 0 {
			continue
		}
		if b.Owner != OwnerPlayer && b.Box.Y > fieldHeight {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}
