// Package invaders implements a fixed-formation shoot-'em-up: a deterministic
// tick-driven simulation engine plus the registry adapter and renderer that
// put it on a terminal screen.
package invaders

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseReady    Phase = iota // Waiting for the first start
	PhasePlaying               // Ticks advance the world
	PhaseGameOver              // Terminal until Restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// SimulationState owns every entity and counter of one session.
// Restart replaces it wholesale; nothing carries over.
type SimulationState struct {
	Phase Phase
	Tick  uint64
	Score int
	Lives int
	Wave  int // 1-based

	Player        Player
	Formation     *Formation
	Bunkers       []*Bunker
	PlayerBullets []*Bullet
	EnemyBullets  []*Bullet
	Bombs         []*Bullet
	Bonus         *BonusShip // nil when no ship is flying

	NextBonusTick uint64
}

// Simulation advances a SimulationState one tick at a time.
// It is single-threaded; callers drive Tick from their frame loop.
type Simulation struct {
	cfg     config.InvadersConfig
	spawner *Spawner
	state   *SimulationState
	events  []core.Event
}

// NewSimulation validates cfg and prepares a session in PhaseReady.
func NewSimulation(cfg config.InvadersConfig, rng core.Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invaders: invalid config: %w", err)
	}
	if rng == nil {
		return nil, errors.New("invaders: nil random source")
	}

	s := &Simulation{
		cfg:     cfg,
		spawner: NewSpawner(rng, cfg.Enemies, cfg.BonusShip),
	}
	s.state = s.newState()
	return s, nil
}

// newState builds a fresh session: full formation, intact bunkers,
// no projectiles and a newly scheduled bonus ship.
func (s *Simulation) newState() *SimulationState {
	st := &SimulationState{
		Phase:     PhaseReady,
		Lives:     s.cfg.Player.Lives,
		Wave:      1,
		Player:    newPlayer(s.cfg.Player, s.cfg.Field),
		Formation: NewFormation(s.cfg.Enemies),
		Bunkers:   CreateBunkers(s.cfg.Bunkers.Count, s.cfg.Field.Width, geometryFrom(s.cfg.Bunkers)),
	}
	if s.cfg.BonusShip.Enabled {
		st.NextBonusTick = s.spawner.NextBonusTick(0)
	}
	return st
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.InvadersConfig {
	return s.cfg
}

// State exposes the live session state. Callers must treat it as read-only;
// use Snapshot for a detached copy.
func (s *Simulation) State() *SimulationState {
	return s.state
}

// Phase returns the current phase.
func (s *Simulation) Phase() Phase {
	return s.state.Phase
}

// Start leaves PhaseReady. It has no effect in any other phase.
func (s *Simulation) Start() {
	if s.state.Phase == PhaseReady {
		s.state.Phase = PhasePlaying
	}
}

// Restart discards the current session and begins a new one immediately.
func (s *Simulation) Restart() {
	s.state = s.newState()
	s.state.Phase = PhasePlaying
}

// Tick advances the world by one step and returns the events it produced,
// in emission order. Outside PhasePlaying it does nothing.
func (s *Simulation) Tick(in core.Intent) []core.Event {
	st := s.state
	if st.Phase != PhasePlaying {
		return nil
	}

	s.events = nil
	st.Tick++

	s.runDeadlines()
	s.updatePlayer(in)

	st.PlayerBullets = advanceBullets(st.PlayerBullets, s.cfg.Field.Height)
	st.EnemyBullets = advanceBullets(st.EnemyBullets, s.cfg.Field.Height)
	st.Bombs = advanceBullets(st.Bombs, s.cfg.Field.Height)

	s.updateBonusShip()

	st.Formation.Step(s.cfg.Field.Width)
	if st.Formation.ReachedLine(st.Player.Box.Y) {
		s.gameOver()
		return s.events
	}

	s.spawnProjectiles()
	s.resolvePlayerBullets()
	if s.resolveHostile(&st.EnemyBullets) || s.resolveHostile(&st.Bombs) {
		return s.events
	}

	if st.Formation.Len() == 0 {
		st.Formation = NewFormation(s.cfg.Enemies)
		st.Wave++
		s.emit(core.Event{Kind: core.EventWaveCleared, Value: st.Wave})
	}

	return s.events
}

func (s *Simulation) emit(e core.Event) {
	s.events = append(s.events, e)
}

// runDeadlines evaluates tick-counted timers at the start of a tick.
func (s *Simulation) runDeadlines() {
	st := s.state
	st.Player.ExpireInvulnerability(st.Tick)

	if s.cfg.BonusShip.Enabled && st.Bonus == nil && st.Tick >= st.NextBonusTick {
		st.Bonus = s.spawner.SpawnBonus(s.cfg.Field.Width)
		s.emit(core.Event{
			Kind:  core.EventBonusShipSpawned,
			Value: st.Bonus.Points,
			X:     st.Bonus.Box.CenterX(),
			Y:     st.Bonus.Box.Y,
		})
	}
}

// updatePlayer applies movement and the rate-limited fire request.
func (s *Simulation) updatePlayer(in core.Intent) {
	st := s.state
	st.Player.Move(in, s.cfg.Player.Speed, s.cfg.Field.Width)

	if in.Fire && st.Player.CanFire(st.Tick, s.cfg.Player.FireDelayTicks) {
		st.PlayerBullets = append(st.PlayerBullets, newPlayerBullet(&st.Player, s.cfg.Bullets))
		st.Player.MarkFired(st.Tick)
		s.emit(core.Event{Kind: core.EventPlayerFired, X: st.Player.Box.CenterX(), Y: st.Player.Box.Y})
	}
}

// updateBonusShip moves the bonus ship and retires it once it has crossed.
func (s *Simulation) updateBonusShip() {
	st := s.state
	if st.Bonus == nil {
		return
	}

	st.Bonus.Box.X += st.Bonus.Speed
	if st.Bonus.Departed(s.cfg.Field.Width) {
		st.Bonus = nil
		st.NextBonusTick = s.spawner.NextBonusTick(st.Tick)
		s.emit(core.Event{Kind: core.EventBonusShipDeparted})
	}
}

// spawnProjectiles lets one column-front enemy fire and the bonus ship bomb.
func (s *Simulation) spawnProjectiles() {
	st := s.state
	if shooter := s.spawner.ChooseShooter(st.Formation.FrontByColumn()); shooter != nil {
		st.EnemyBullets = append(st.EnemyBullets, newEnemyBullet(shooter, s.cfg.Bullets))
	}
	if st.Bonus != nil && s.spawner.DropBomb() {
		st.Bombs = append(st.Bombs, newBomb(st.Bonus, s.cfg.Bullets))
	}
}

// resolvePlayerBullets checks each player bullet against bunkers, then
// enemies, then the bonus ship. The first match consumes the bullet.
func (s *Simulation) resolvePlayerBullets() {
	st := s.state
	kept := st.PlayerBullets[:0]

	for _, b := range st.PlayerBullets {
		if ApplyHit(st.Bunkers, b.Box) {
			continue
		}
		if s.hitEnemy(b) {
			continue
		}
		if s.hitBonusShip(b) {
			continue
		}
		kept = append(kept, b)
	}
	st.PlayerBullets = kept
}

func (s *Simulation) hitEnemy(b *Bullet) bool {
	st := s.state
	for i, e := range st.Formation.Enemies {
		if !core.Overlaps(b.Box, e.Box) {
			continue
		}
		points := e.Type * s.cfg.Enemies.PointsPer
		st.Formation.Remove(i)
		st.Score += points
		s.emit(core.Event{
			Kind:  core.EventEnemyDestroyed,
			Value: points,
			X:     e.Box.CenterX(),
			Y:     e.Box.Y,
		})
		return true
	}
	return false
}

func (s *Simulation) hitBonusShip(b *Bullet) bool {
	st := s.state
	if st.Bonus == nil || !core.Overlaps(b.Box, st.Bonus.Box) {
		return false
	}

	ship := st.Bonus
	st.Bonus = nil
	st.Score += ship.Points
	st.NextBonusTick = s.spawner.NextBonusTick(st.Tick)
	s.emit(core.Event{
		Kind:  core.EventBonusShipDestroyed,
		Value: ship.Points,
		X:     ship.Box.CenterX(),
		Y:     ship.Box.Y,
	})
	return true
}

// resolveHostile checks enemy bullets or bombs against bunkers, then the
// player. Returns true if a hit ended the game.
func (s *Simulation) resolveHostile(bullets *[]*Bullet) bool {
	st := s.state
	kept := (*bullets)[:0]

	for i, b := range *bullets {
		if ApplyHit(st.Bunkers, b.Box) {
			continue
		}
		if core.Overlaps(b.Box, st.Player.Box) {
			s.hitPlayer()
			if st.Phase == PhaseGameOver {
				*bullets = append(kept, (*bullets)[i+1:]...)
				return true
			}
			continue
		}
		kept = append(kept, b)
	}
	*bullets = kept
	return false
}

// hitPlayer applies the player lifecycle transition for one hit. While
// invulnerable the hit is absorbed without effect.
func (s *Simulation) hitPlayer() {
	st := s.state
	if st.Player.Invulnerable {
		return
	}

	st.Lives--
	s.emit(core.Event{
		Kind:  core.EventPlayerHit,
		Value: st.Lives,
		X:     st.Player.Box.CenterX(),
		Y:     st.Player.Box.Y,
	})

	if st.Lives <= 0 {
		st.Lives = 0
		s.gameOver()
		return
	}
	st.Player.MakeInvulnerable(st.Tick, s.cfg.Player.InvulnerableTicks)
}

func (s *Simulation) gameOver() {
	if s.state.Phase != PhasePlaying {
		return
	}
	s.state.Phase = PhaseGameOver
	s.emit(core.Event{Kind: core.EventGameOver, Value: s.state.Score})
}
