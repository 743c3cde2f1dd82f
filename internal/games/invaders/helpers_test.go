package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// fixedRand returns the same draw every time, clamped to the requested range.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }

func (r fixedRand) Intn(n int) int { return min(r.n, n-1) }

// quietConfig disables every random source so tests control the world.
func quietConfig() config.InvadersConfig {
	cfg := config.DefaultInvadersConfig()
	cfg.Enemies.FireChance = 0
	cfg.Bunkers.Count = 0
	cfg.BonusShip.Enabled = false
	return cfg
}

// newPlaying builds a started simulation from cfg.
func newPlaying(t *testing.T, cfg config.InvadersConfig, rng core.Rand) *Simulation {
	t.Helper()
	if rng == nil {
		rng = fixedRand{f: 0.5}
	}
	sim, err := NewSimulation(cfg, rng)
	if err != nil {
		t.Fatalf("NewSimulation() failed: %v", err)
	}
	sim.Start()
	return sim
}

// hostileAt returns a stationary enemy bullet overlapping r.
func hostileAt(r core.RectF) *Bullet {
	return &Bullet{Box: core.NewRectF(r.X+1, r.Y+1, 3, 15), Owner: OwnerEnemy}
}

// shotAt returns a stationary player bullet overlapping r.
func shotAt(r core.RectF) *Bullet {
	return &Bullet{Box: core.NewRectF(r.X+10, r.Y+2, 3, 15), Owner: OwnerPlayer}
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func findEvent(events []core.Event, kind core.EventKind) (core.Event, bool) {
	for _, e := range events {
		if e.Kind == kind {
			return e, true
		}
	}
	return core.Event{}, false
}

// totalBlocks sums the standing blocks across all bunkers.
func totalBlocks(bunkers []*Bunker) int {
	n := 0
	for _, b := range bunkers {
		n += b.BlockCount()
	}
	return n
}
