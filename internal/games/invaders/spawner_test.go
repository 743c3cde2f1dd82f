package invaders

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func TestNextBonusTickWithinInterval(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	s := NewSpawner(rand.New(rand.NewSource(1)), cfg.Enemies, cfg.BonusShip)

	for range 1000 {
		next := s.NextBonusTick(100)
		if next < 100+900 || next > 100+1800 {
			t.Fatalf("next arrival %d outside [1000, 1900]", next)
		}
	}
}

func TestSpawnBonusSides(t *testing.T) {
	cfg := config.DefaultInvadersConfig()

	left := NewSpawner(fixedRand{f: 0, n: 0}, cfg.Enemies, cfg.BonusShip).SpawnBonus(800)
	if left.Box.Right() != 0 || left.Speed != cfg.BonusShip.MinSpeed {
		t.Errorf("left arrival: x=%v speed=%v", left.Box.X, left.Speed)
	}
	if left.Points != 100 {
		t.Errorf("speed 2 ship worth %d, want 100", left.Points)
	}

	right := NewSpawner(fixedRand{f: 1, n: 1}, cfg.Enemies, cfg.BonusShip).SpawnBonus(800)
	if right.Box.X != 800 || right.Speed != -cfg.BonusShip.MaxSpeed {
		t.Errorf("right arrival: x=%v speed=%v", right.Box.X, right.Speed)
	}
	if right.Points != 200 {
		t.Errorf("speed 4 ship worth %d, want 200", right.Points)
	}
}

func TestBonusPoints(t *testing.T) {
	tests := []struct {
		speed float64
		want  int
	}{
		{4, 200},
		{-4, 200},
		{3.99, 199},
		{2.5, 125},
		{0, 0},
	}
	for _, tc := range tests {
		if got := BonusPoints(tc.speed, 50); got != tc.want {
			t.Errorf("BonusPoints(%v) = %d, want %d", tc.speed, got, tc.want)
		}
	}
}

func TestChooseShooter(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	fronts := NewFormation(cfg.Enemies).FrontByColumn()

	never := cfg.Enemies
	never.FireChance = 0
	if NewSpawner(fixedRand{f: 0}, never, cfg.BonusShip).ChooseShooter(fronts) != nil {
		t.Error("zero fire chance should never fire")
	}

	always := cfg.Enemies
	always.FireChance = 1
	s := NewSpawner(fixedRand{f: 0.3, n: 7}, always, cfg.BonusShip)
	if got := s.ChooseShooter(fronts); got != fronts[7] {
		t.Errorf("expected column 7 front, got col %d", got.Col)
	}
	if s.ChooseShooter(nil) != nil {
		t.Error("no fronts means no shooter")
	}
}

func TestDepartedEdges(t *testing.T) {
	ship := &BonusShip{Speed: 3}
	ship.Box.W = 48
	ship.Box.X = 799
	if ship.Departed(800) {
		t.Error("still partly inside")
	}
	ship.Box.X = 800
	if !ship.Departed(800) {
		t.Error("fully past the right edge")
	}

	ship.Speed = -3
	ship.Box.X = -47
	if ship.Departed(800) {
		t.Error("still partly inside on the left")
	}
	ship.Box.X = -48
	if !ship.Departed(800) {
		t.Error("fully past the left edge")
	}
}
