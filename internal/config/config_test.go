package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseInvaders(GetDefaultYAML("invaders"))
	if err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Errorf("embedded YAML and DefaultInvadersConfig differ:\n%+v\n%+v", cfg, DefaultInvadersConfig())
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultInvadersConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestValidateRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadersConfig)
		field  string
	}{
		{"zero field width", func(c *InvadersConfig) { c.Field.Width = 0 }, "field.width"},
		{"negative player height", func(c *InvadersConfig) { c.Player.Height = -1 }, "player.height"},
		{"no enemy rows", func(c *InvadersConfig) { c.Enemies.Rows = 0 }, "enemies.rows"},
		{"fire chance above one", func(c *InvadersConfig) { c.Enemies.FireChance = 1.5 }, "enemies.fire_chance"},
		{"inverted bonus speeds", func(c *InvadersConfig) { c.BonusShip.MaxSpeed = 1 }, "bonus_ship.max_speed"},
		{"inverted spawn interval", func(c *InvadersConfig) { c.BonusShip.SpawnMaxTicks = 10 }, "bonus_ship.spawn_max_ticks"},
		{"zero bunker cell", func(c *InvadersConfig) { c.Bunkers.CellSize = 0 }, "bunkers.cell_size"},
		{"zero lives", func(c *InvadersConfig) { c.Player.Lives = 0 }, "player.lives"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.field) {
				t.Errorf("error %q should name %s", err, tc.field)
			}
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("error should wrap a ValidationError, got %T", err)
			}
		})
	}
}

func TestValidateIgnoresDisabledFeatures(t *testing.T) {
	cfg := Classic(DefaultInvadersConfig())
	cfg.Bunkers.CellSize = 0
	cfg.BonusShip.MinSpeed = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("disabled bunkers/bonus ship should not be validated: %v", err)
	}
}

func TestLoadInvadersCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invaders.yaml")
	data := []byte("player:\n  lives: 7\nenemies:\n  rows: 3\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvaders(path)
	if err != nil {
		t.Fatalf("LoadInvaders() failed: %v", err)
	}
	if cfg.Player.Lives != 7 || cfg.Enemies.Rows != 3 {
		t.Errorf("overrides not applied: lives=%d rows=%d", cfg.Player.Lives, cfg.Enemies.Rows)
	}
	if cfg.Enemies.Cols != 10 {
		t.Errorf("unspecified keys should keep defaults, cols=%d", cfg.Enemies.Cols)
	}
}

func TestLoadInvadersRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("field:\n  width: -5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadInvaders(path); err == nil {
		t.Error("expected error for negative field width")
	}
	if _, err := LoadInvaders(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := MarshalInvaders(DefaultInvadersConfig())
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := ParseInvaders(data)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != DefaultInvadersConfig() {
		t.Error("marshalled config should decode to the same values")
	}
}

func TestApplyInvadersPreset(t *testing.T) {
	base := DefaultInvadersConfig()

	easy := base
	ApplyInvadersPreset(&easy, DifficultyEasy)
	if easy.Player.Lives != 5 || easy.Enemies.BaseSpeed >= base.Enemies.BaseSpeed {
		t.Errorf("easy preset: lives=%d speed=%v", easy.Player.Lives, easy.Enemies.BaseSpeed)
	}

	hard := base
	ApplyInvadersPreset(&hard, DifficultyHard)
	if hard.Player.Lives != 2 || hard.Enemies.FireChance <= base.Enemies.FireChance {
		t.Errorf("hard preset: lives=%d fire=%v", hard.Player.Lives, hard.Enemies.FireChance)
	}

	normal := base
	ApplyInvadersPreset(&normal, DifficultyNormal)
	if normal != base {
		t.Error("normal preset should leave the config untouched")
	}

	if ParsePreset("insane") != "" || ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset mismatch")
	}
}

func TestHardPresetCapsChances(t *testing.T) {
	tests := []struct {
		name       string
		fire, bomb float64
		wantFire   float64
		wantBomb   float64
	}{
		{"defaults double", 0.1, 0.2, 0.2, 0.4},
		{"fire capped", 0.6, 0.3, 1, 0.6},
		{"both capped", 0.7, 0.8, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultInvadersConfig()
			cfg.Enemies.FireChance = tt.fire
			cfg.BonusShip.BombChance = tt.bomb
			ApplyInvadersPreset(&cfg, DifficultyHard)

			if cfg.Enemies.FireChance != tt.wantFire || cfg.BonusShip.BombChance != tt.wantBomb {
				t.Errorf("chances = %v/%v, want %v/%v",
					cfg.Enemies.FireChance, cfg.BonusShip.BombChance, tt.wantFire, tt.wantBomb)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("Validate: %v", err)
			}
		})
	}
}
