package invaders

import (
	"fmt"
	"hash/fnv"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Snapshot is a detached, read-only copy of a session for renderers,
// presentation and determinism checks.
type Snapshot struct {
	Phase Phase
	Tick  uint64
	Score int
	Lives int
	Wave  int

	Player    Player
	Enemies   []Enemy
	Direction float64
	Speed     float64
	Bunkers   [][]Block // Standing blocks per bunker, in creation order

	PlayerBullets []Bullet
	EnemyBullets  []Bullet
	Bombs         []Bullet

	Bonus         BonusShip
	HasBonus      bool
	NextBonusTick uint64
}

// Snapshot copies the current session state.
func (s *Simulation) Snapshot() Snapshot {
	st := s.state
	snap := Snapshot{
		Phase:         st.Phase,
		Tick:          st.Tick,
		Score:         st.Score,
		Lives:         st.Lives,
		Wave:          st.Wave,
		Player:        st.Player,
		Enemies:       make([]Enemy, len(st.Formation.Enemies)),
		Direction:     st.Formation.Direction,
		Speed:         st.Formation.Speed,
		Bunkers:       make([][]Block, len(st.Bunkers)),
		PlayerBullets: copyBullets(st.PlayerBullets),
		EnemyBullets:  copyBullets(st.EnemyBullets),
		Bombs:         copyBullets(st.Bombs),
		NextBonusTick: st.NextBonusTick,
	}

	for i, e := range st.Formation.Enemies {
		snap.Enemies[i] = *e
	}
	for i, b := range st.Bunkers {
		blocks := make([]Block, len(b.Blocks))
		for j, block := range b.Blocks {
			blocks[j] = *block
		}
		snap.Bunkers[i] = blocks
	}
	if st.Bonus != nil {
		snap.Bonus = *st.Bonus
		snap.HasBonus = true
	}
	return snap
}

func copyBullets(src []*Bullet) []Bullet {
	out := make([]Bullet, len(src))
	for i, b := range src {
		out[i] = *b
	}
	return out
}

// Hash returns a digest of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := fnv.New64a()

	fmt.Fprintf(h, "P:%d;T:%d;S:%d;L:%d;W:%d;", snap.Phase, snap.Tick, snap.Score, snap.Lives, snap.Wave)
	fmt.Fprintf(h, "ship:%s:%v:%d;", rectKey(snap.Player.Box), snap.Player.Invulnerable, snap.Player.InvulnerableUntil)

	fmt.Fprintf(h, "F:%g:%g:", snap.Direction, snap.Speed)
	for _, e := range snap.Enemies {
		fmt.Fprintf(h, "%d,%d,%d,%s|", e.Type, e.Row, e.Col, rectKey(e.Box))
	}

	fmt.Fprintf(h, ";B:")
	for i, blocks := range snap.Bunkers {
		fmt.Fprintf(h, "%d:", i)
		for _, b := range blocks {
			fmt.Fprintf(h, "%s,%d|", rectKey(b.Box), b.Health)
		}
	}

	for _, group := range [][]Bullet{snap.PlayerBullets, snap.EnemyBullets, snap.Bombs} {
		fmt.Fprintf(h, ";X:")
		for _, b := range group {
			fmt.Fprintf(h, "%d,%s|", b.Owner, rectKey(b.Box))
		}
	}

	if snap.HasBonus {
		fmt.Fprintf(h, ";U:%s:%g:%d", rectKey(snap.Bonus.Box), snap.Bonus.Speed, snap.Bonus.Points)
	}
	fmt.Fprintf(h, ";N:%d", snap.NextBonusTick)

	return h.Sum64()
}

func rectKey(r core.RectF) string {
	return fmt.Sprintf("%g,%g,%g,%g", r.X, r.Y, r.W, r.H)
}
