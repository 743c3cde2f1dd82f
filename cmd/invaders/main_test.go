package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		flagConfig, flagDifficulty = "", ""
		flagClearScores, flagScoreLimit = false, 10
		invaders.SetConfigPath("")
		invaders.SetDifficultyPreset("")
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, id := range []string{"invaders", "invaders_classic"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config", "invaders_classic", "--difficulty", "easy")
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	cfg, err := config.ParseInvaders([]byte(out))
	if err != nil {
		t.Fatalf("printed YAML should parse: %v", err)
	}
	if cfg.Player.Lives != 5 {
		t.Errorf("easy lives = %d, want 5", cfg.Player.Lives)
	}
	if cfg.Bunkers.Count != 0 || cfg.BonusShip.Enabled {
		t.Error("classic config should have no bunkers or bonus ship")
	}
}

func TestConfigCommandUnknownGame(t *testing.T) {
	if _, err := execute(t, "config", "pong"); err == nil {
		t.Error("unknown game should fail")
	}
}

func TestScoresCommand(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scores.db")
	store, err := storage.Open(dbPath)
	if err != nil {
		t.Fatal(err)
	}
	store.SaveScore("invaders", 1500, 4)
	store.SaveScore("invaders", 300, 1)
	store.Close()

	out, err := execute(t, "scores", "invaders", "--db", dbPath)
	if err != nil {
		t.Fatalf("scores: %v", err)
	}
	if !strings.Contains(out, "1500") || !strings.Contains(out, "best wave 4") {
		t.Errorf("scores output:\n%s", out)
	}

	if _, err := execute(t, "scores", "invaders", "--db", dbPath, "--clear"); err != nil {
		t.Fatalf("scores --clear: %v", err)
	}
	out, _ = execute(t, "scores", "invaders", "--db", dbPath)
	if !strings.Contains(out, "No scores recorded yet.") {
		t.Errorf("scores after clear:\n%s", out)
	}
}
