package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Options wires a game session to its surroundings. Every field is optional.
type Options struct {
	Store  *storage.Store // Score persistence
	Sink   core.EventSink // Receives every game event (sound)
	Logger *log.Logger    // Session log; discarded when nil
	Hold   time.Duration  // Movement hold window; DefaultHoldWindow when zero
	Menu   bool           // B returns to the menu after game over or pause
}

// PauseAwareSink is implemented by event sinks that hold continuous output,
// such as a looping sound, while the game is paused.
type PauseAwareSink interface {
	SetPaused(paused bool)
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	held       heldDirection
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts Options) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Hold <= 0 {
		opts.Hold = DefaultHoldWindow
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		opts:       opts,
		logger:     logger.With("game", game.ID()),
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		held:       newHeldDirection(cfg.TickRate, opts.Hold),
	}
}

// Init resets the game, seeds its high score and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.seedHighScore()
	m.logger.Info("session started", "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

func (m GameModel) seedHighScore() {
	seeder, ok := m.game.(registry.HighScoreSeeder)
	if !ok || m.opts.Store == nil {
		return
	}
	high, err := m.opts.Store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	seeder.SetHighScore(high)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		if m.opts.Menu && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
		}

	case action == core.ActionLeft, action == core.ActionRight:
		m.held.press(action)

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize follows the terminal size. Games that can resize keep their
// session; others are reset unless the current game is already over.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick runs one simulation step and routes its results.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.gameState.Paused || m.gameState.GameOver {
		m.held.release()
	}
	m.held.apply(&m.inputFrame)

	wasOver := m.gameState.GameOver
	wasPaused := m.gameState.Paused
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasPaused != m.gameState.Paused {
		if ps, ok := m.opts.Sink.(PauseAwareSink); ok {
			ps.SetPaused(m.gameState.Paused)
		}
	}

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.logger.Info("game restarted")
	}

	m.dispatch(result.Events)

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// dispatch forwards events to the sink and logs the milestones.
func (m GameModel) dispatch(events []core.Event) {
	for _, e := range events {
		if m.opts.Sink != nil {
			m.opts.Sink.OnEvent(e)
		}

		switch e.Kind {
		case core.EventWaveCleared:
			m.logger.Info("wave cleared", "wave", e.Value, "score", m.gameState.Score)
		case core.EventGameOver:
			m.logger.Info("game over", "score", e.Value, "wave", m.gameState.Wave)
		case core.EventPlayerHit:
			m.logger.Debug("player hit", "lives", e.Value)
		}
	}
}

func (m GameModel) saveScore() {
	if m.opts.Store == nil || m.gameState.Score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Wave); err != nil {
		m.logger.Error("could not save score", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewGameModel(game, cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
