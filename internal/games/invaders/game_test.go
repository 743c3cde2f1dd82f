package invaders

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

func runtimeConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGamesRegistered(t *testing.T) {
	for _, id := range []string{"invaders", "invaders_classic"} {
		if !registry.Exists(id) {
			t.Errorf("%s should be registered", id)
		}
	}
}

func TestGameStartsOnFire(t *testing.T) {
	g := New()
	g.Reset(runtimeConfig(1))

	if g.Simulation().Phase() != PhaseReady {
		t.Fatal("game should wait in the ready phase")
	}
	g.Step(input())
	if g.Simulation().State().Tick != 0 {
		t.Error("world should not advance before start")
	}

	g.Step(input(core.ActionFire))
	if g.Simulation().Phase() != PhasePlaying {
		t.Fatal("fire should start the game")
	}
}

func TestClassicVariant(t *testing.T) {
	g := NewClassic()
	g.Reset(runtimeConfig(1))

	st := g.Simulation().State()
	if len(st.Bunkers) != 0 {
		t.Errorf("classic should have no bunkers, got %d", len(st.Bunkers))
	}
	if g.Simulation().Config().BonusShip.Enabled {
		t.Error("classic should have no bonus ship")
	}
	if g.ID() != "invaders_classic" {
		t.Errorf("unexpected ID %q", g.ID())
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(runtimeConfig(1))
	g.Step(input(core.ActionFire))
	g.Step(input())

	res := g.Step(input(core.ActionPause))
	if !res.State.Paused {
		t.Fatal("P should pause")
	}
	tick := g.Simulation().State().Tick
	for range 10 {
		g.Step(input(core.ActionRight))
	}
	if g.Simulation().State().Tick != tick {
		t.Error("paused game must not tick")
	}

	res = g.Step(input(core.ActionPause))
	if res.State.Paused || g.Simulation().State().Tick != tick+1 {
		t.Error("second P should resume")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(runtimeConfig(9))
	g.Step(input(core.ActionFire))

	st := g.Simulation().State()
	st.Lives = 1
	st.Score = 40
	st.EnemyBullets = append(st.EnemyBullets, hostileAt(st.Player.Box))

	res := g.Step(input())
	if !res.State.GameOver || res.State.Score != 40 {
		t.Fatalf("expected game over with score 40, got %+v", res.State)
	}
	if countEvents(res.Events, core.EventGameOver) != 1 {
		t.Errorf("step result should carry the GameOver event, got %v", res.Events)
	}

	res = g.Step(input(core.ActionRestart))
	if res.State.GameOver || res.State.Score != 0 || res.State.Wave != 1 {
		t.Errorf("restart should begin a fresh session, got %+v", res.State)
	}
	if g.Simulation().Phase() != PhasePlaying {
		t.Error("restart goes straight to playing")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionFire)
		case i%40 < 20:
			inputs[i].Set(core.ActionLeft)
		default:
			inputs[i].Set(core.ActionRight)
		}
		if i%5 == 0 {
			inputs[i].Set(core.ActionFire)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(runtimeConfig(777))
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Simulation().Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
	if s1.Score != s2.Score || s1.Tick != s2.Tick {
		t.Errorf("Determinism failed: score %d/%d tick %d/%d", s1.Score, s2.Score, s1.Tick, s2.Tick)
	}
}

func TestScorePopups(t *testing.T) {
	g := New()
	g.Reset(runtimeConfig(1))
	g.updatePopups([]core.Event{{Kind: core.EventEnemyDestroyed, Value: 30, X: 100, Y: 100}})

	if len(g.popups) != 1 || g.popups[0].text != "+30" {
		t.Fatalf("expected a +30 popup, got %+v", g.popups)
	}
	for range popupTicks {
		g.updatePopups(nil)
	}
	if len(g.popups) != 0 {
		t.Error("popups should expire")
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(runtimeConfig(1))
	g.SetHighScore(1234)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	hud := screen.Row(0)
	for _, want := range []string{"Score: 0", "Hi: 1234", "Wave: 1", "Lives: 3"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}
	if !strings.Contains(screen.String(), "Press SPACE to start") {
		t.Error("ready overlay should be shown")
	}

	g.Step(input(core.ActionFire))
	g.Render(screen)
	out := screen.String()
	if !strings.ContainsRune(out, BlockChar) {
		t.Error("bunkers should be drawn")
	}
	if !strings.ContainsRune(out, PlayerNoseChar) {
		t.Error("player should be drawn")
	}
	if !strings.Contains(out, "/oo") {
		t.Error("back row enemies should be drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})
	screen := core.NewScreen(20, 10)

	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small terminals should get a notice")
	}

	g.Resize(80, 24)
	screen.Resize(80, 24)
	g.Render(screen)
	if strings.Contains(screen.String(), "Window too small") {
		t.Error("resize should lift the notice")
	}
}

func TestEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	if err := os.WriteFile(path, []byte("player:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("hard")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	cfg, err := EffectiveConfig(VariantStandard)
	if err != nil {
		t.Fatalf("EffectiveConfig: %v", err)
	}
	if cfg.Player.Lives != 2 {
		t.Errorf("hard preset should override lives, got %d", cfg.Player.Lives)
	}

	classic, _ := EffectiveConfig(VariantClassic)
	if classic.Bunkers.Count != 0 || classic.BonusShip.Enabled {
		t.Error("classic variant should drop bunkers and the bonus ship")
	}

	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))
	fallback, err := EffectiveConfig(VariantStandard)
	if err == nil {
		t.Error("missing custom config should report an error")
	}
	if fallback.Validate() != nil {
		t.Error("fallback config should be valid")
	}
}

func TestEffectiveConfigHardPresetStaysValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	yaml := "enemies:\n  fire_chance: 0.6\nbonus_ship:\n  bomb_chance: 0.7\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	SetDifficultyPreset("hard")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})

	cfg, err := EffectiveConfig(VariantStandard)
	if err != nil {
		t.Fatalf("EffectiveConfig: %v", err)
	}
	if cfg.Enemies.FireChance != 1 || cfg.BonusShip.BombChance != 1 {
		t.Errorf("chances = %v/%v, want both capped at 1", cfg.Enemies.FireChance, cfg.BonusShip.BombChance)
	}

	g := New()
	g.Reset(runtimeConfig(1))
	if g.Err() != nil || g.Simulation() == nil {
		t.Errorf("hard preset should still build a simulation, err = %v", g.Err())
	}
}

func TestEffectiveConfigValidatesResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	if err := os.WriteFile(path, []byte("player:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	if _, err := EffectiveConfig(VariantStandard); err == nil {
		t.Error("invalid config should be rejected before a game starts")
	}
}

func TestVariantOf(t *testing.T) {
	tests := []struct {
		id   string
		want Variant
		ok   bool
	}{
		{"invaders", VariantStandard, true},
		{"invaders_classic", VariantClassic, true},
		{"pong", VariantStandard, false},
	}
	for _, tt := range tests {
		v, ok := VariantOf(tt.id)
		if v != tt.want || ok != tt.ok {
			t.Errorf("VariantOf(%q) = %v, %v; want %v, %v", tt.id, v, ok, tt.want, tt.ok)
		}
	}
}
