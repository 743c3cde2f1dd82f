package invaders

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// Variant selects the feature set of a game instance.
type Variant int

const (
	VariantStandard Variant = iota // Bunkers and bonus ship
	VariantClassic                 // Formation only
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// EffectiveConfig resolves the configuration a new game of variant v uses:
// the loaded file (defaults if it cannot be read), then the difficulty
// preset, then the variant's restrictions. The load error is returned
// alongside the fallback; otherwise the final result is validated.
func EffectiveConfig(v Variant) (config.InvadersConfig, error) {
	cfg, err := config.LoadInvaders(configPath)
	if err != nil {
		cfg = config.DefaultInvadersConfig()
	}
	if difficultyPreset != "" {
		config.ApplyInvadersPreset(&cfg, difficultyPreset)
	}
	if v == VariantClassic {
		cfg = config.Classic(cfg)
	}
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invaders: invalid config: %w", err)
	}
	return cfg, nil
}

// VariantOf maps a registered game ID to its variant.
func VariantOf(gameID string) (Variant, bool) {
	switch gameID {
	case "invaders":
		return VariantStandard, true
	case "invaders_classic":
		return VariantClassic, true
	}
	return VariantStandard, false
}

// popupTicks is how long a floating score stays on screen.
const popupTicks = 45

// popup is a floating score label, in field coordinates.
type popup struct {
	text string
	x, y float64
	ttl  int
}

// Game adapts a Simulation to the arcade registry: it maps platform input to
// intents, handles start, pause and restart, and renders snapshots.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.InvadersConfig
	sim     *Simulation
	err     error

	paused    bool
	highScore int
	popups    []popup

	// Layout (computed from screen size)
	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game with bunkers and the bonus ship.
func New() *Game {
	return &Game{variant: VariantStandard}
}

// NewClassic creates a game with the formation only.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "invaders_classic"
	}
	return "invaders"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Invaders (Classic)"
	}
	return "Invaders"
}

// Reset loads configuration and prepares a new session in the ready phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, _ := EffectiveConfig(g.variant) // Falls back to defaults; the CLI reports load errors
	g.cfg = cfg

	g.minScreenW = 40
	g.minScreenH = 16
	g.resize(runtime.ScreenW, runtime.ScreenH)

	g.paused = false
	g.popups = g.popups[:0]
	g.sim, g.err = NewSimulation(cfg, rand.New(rand.NewSource(runtime.Seed))) //#nosec G404 -- gameplay randomness
}

// Resize adapts rendering to a new terminal size without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.resize(w, h)
}

func (g *Game) resize(w, h int) {
	g.screenTooSmall = w < g.minScreenW || h < g.minScreenH
}

// SetHighScore seeds the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(g.highScore, score)
}

// Simulation returns the underlying engine, or nil if the config was rejected.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Err returns the configuration error from the last Reset, if any.
func (g *Game) Err() error {
	return g.err
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.sim.Phase() {
	case PhaseReady:
		if in.Has(core.ActionFire) || in.Has(core.ActionConfirm) {
			g.sim.Start()
		}
		return core.StepResult{State: g.State()}

	case PhaseGameOver:
		if in.Has(core.ActionRestart) {
			g.sim.Restart()
			g.paused = false
			g.popups = g.popups[:0]
		}
		g.updatePopups(nil)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	events := g.sim.Tick(in.Intent())
	g.updatePopups(events)

	st := g.State()
	g.highScore = max(g.highScore, st.Score)
	return core.StepResult{State: st, Events: events}
}

// updatePopups ages existing popups and adds one per scoring event.
func (g *Game) updatePopups(events []core.Event) {
	kept := g.popups[:0]
	for _, p := range g.popups {
		p.ttl--
		p.y--
		if p.ttl > 0 {
			kept = append(kept, p)
		}
	}
	g.popups = kept

	for _, e := range events {
		switch e.Kind {
		case core.EventEnemyDestroyed, core.EventBonusShipDestroyed:
			g.popups = append(g.popups, popup{
				text: fmt.Sprintf("+%d", e.Value),
				x:    e.X,
				y:    e.Y,
				ttl:  popupTicks,
			})
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	st := g.sim.State()
	return core.GameState{
		Score:    st.Score,
		Wave:     st.Wave,
		GameOver: st.Phase == PhaseGameOver,
		Paused:   g.paused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("invaders", func() registry.Game {
		return New()
	})
	registry.Register("invaders_classic", func() registry.Game {
		return NewClassic()
	})
}
