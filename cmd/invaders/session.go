package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Game flags shared by play and menu
var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
)

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	cmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume from 0 (silent) to 1")
}

// session bundles what a local play session needs and releases it on close.
type session struct {
	store   *storage.Store
	logger  *log.Logger
	sound   *audio.SoundManager
	logFile *os.File
}

// openSession applies the game flags and opens storage, logging and sound.
// Storage and sound failures are reported and skipped.
func openSession() (*session, error) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return nil, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}
	invaders.SetConfigPath(flagConfig)
	invaders.SetDifficultyPreset(flagDifficulty)
	if _, err := invaders.EffectiveConfig(invaders.VariantStandard); err != nil {
		return nil, err
	}

	s := &session{}

	logger, logFile, err := openLogger()
	if err != nil {
		return nil, err
	}
	s.logger, s.logFile = logger, logFile

	s.store, err = storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		s.logger.Warn("scores disabled", "error", err)
		s.store = nil
	}

	flagVolume = min(max(flagVolume, 0), 1)
	if flagSound {
		sm := audio.NewSoundManager(flagVolume)
		if err := sm.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
			s.logger.Warn("sound disabled", "error", err)
		} else {
			s.sound = sm
		}
	}

	return s, nil
}

// options builds the tui options for one game.
func (s *session) options(menu bool) tui.Options {
	opts := tui.Options{
		Store:  s.store,
		Logger: s.logger,
		Menu:   menu,
	}
	if s.sound != nil {
		opts.Sink = s.sound
	}
	return opts
}

func (s *session) Close() {
	if s.sound != nil {
		s.sound.Cleanup()
	}
	if s.store != nil {
		s.store.Close()
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}

// openLogger returns a file logger for --log, or a discarding logger.
// The terminal belongs to Bubble Tea, so logs never go to stderr.
func openLogger() (*log.Logger, *os.File, error) {
	if flagLogPath == "" {
		return log.New(io.Discard), nil, nil
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "invaders",
		Level:           level,
	})
	return logger, f, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
