package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Player is the ship at the bottom of the field.
// After a hit it is invulnerable until InvulnerableUntil.
type Player struct {
	Box               core.RectF
	Invulnerable      bool
	InvulnerableUntil uint64

	lastShot uint64
	hasShot  bool
}

// newPlayer places the player centered at the bottom of the field.
func newPlayer(cfg config.PlayerConfig, field config.FieldConfig) Player {
	return Player{
		Box: core.NewRectF(
			(field.Width-cfg.Width)/2,
			field.Height-cfg.Height-cfg.BottomOffset,
			cfg.Width,
			cfg.Height,
		),
	}
}

// Move applies horizontal intent and clamps the ship inside the field.
func (p *Player) Move(in core.Intent, speed, fieldWidth float64) {
	if in.MoveLeft {
		p.Box.X -= speed
	}
	if in.MoveRight {
		p.Box.X += speed
	}
	p.Box.X = core.ClampF(p.Box.X, 0, fieldWidth-p.Box.W)
}

// CanFire reports whether the fire delay has elapsed since the last shot.
func (p *Player) CanFire(tick uint64, delay int) bool {
	if !p.hasShot {
		return true
	}
	return tick-p.lastShot >= uint64(delay) //#nosec G115 -- delay validated non-negative
}

// MarkFired records a shot at the given tick.
func (p *Player) MarkFired(tick uint64) {
	p.lastShot = tick
	p.hasShot = true
}

// ExpireInvulnerability returns the player to normal once the deadline passes.
func (p *Player) ExpireInvulnerability(tick uint64) {
	if p.Invulnerable && tick >= p.InvulnerableUntil {
		p.Invulnerable = false
	}
}

// MakeInvulnerable starts the post-hit grace window.
func (p *Player) MakeInvulnerable(tick uint64, duration int) {
	p.Invulnerable = true
	p.InvulnerableUntil = tick + uint64(duration) //#nosec G115 -- duration validated non-negative
}
