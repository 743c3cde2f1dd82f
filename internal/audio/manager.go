package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// SoundManager plays a sound for each simulation event. It implements
// core.EventSink and is a no-op until Initialize succeeds.
type SoundManager struct {
	mu        sync.Mutex
	mixer     *beep.Mixer
	hum       *beep.Ctrl
	volume    float64
	enabled   bool // Accepting sounds
	speakerOn bool // Mixer is attached to the speaker
}

// NewSoundManager creates a sound manager with the given master volume (0..1).
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the audio device and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.enabled {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.enabled = true
	sm.speakerOn = true
	return nil
}

// Cleanup stops all sounds. The speaker stays open; beep has no way to
// reopen it after Close.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.enabled {
		return
	}
	sm.stopHum()
	sm.withSpeaker(sm.mixer.Clear)
	sm.enabled = false
}

// OnEvent voices a single simulation event.
func (sm *SoundManager) OnEvent(e core.Event) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.enabled {
		return
	}

	switch e.Kind {
	case core.EventBonusShipSpawned:
		sm.startHum()
	case core.EventBonusShipDeparted, core.EventBonusShipDestroyed, core.EventGameOver:
		sm.stopHum()
	}

	if sweep, ok := SweepFor(e.Kind); ok {
		s := newVolume(NewSweep(sweep, SampleRate), sm.volume)
		sm.withSpeaker(func() { sm.mixer.Add(s) })
	}
}

// SweepFor returns the one-shot sound for an event kind, if it has one.
func SweepFor(kind core.EventKind) (Sweep, bool) {
	switch kind {
	case core.EventPlayerFired:
		return ShotSweep, true
	case core.EventEnemyDestroyed:
		return EnemyDeathSweep, true
	case core.EventPlayerHit:
		return PlayerDeathSweep, true
	case core.EventBonusShipDestroyed:
		return BonusDeathSweep, true
	case core.EventWaveCleared:
		return WaveSweep, true
	case core.EventGameOver:
		return GameOverSweep, true
	default:
		return Sweep{}, false
	}
}

// SetPaused holds or resumes the bonus ship hum while the game is paused.
// One-shot sounds already queued play out.
func (sm *SoundManager) SetPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.hum == nil {
		return
	}
	hum := sm.hum
	sm.withSpeaker(func() { hum.Paused = paused })
}

// Humming reports whether the bonus ship hum is playing.
func (sm *SoundManager) Humming() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.hum != nil && !sm.hum.Paused
}

func (sm *SoundManager) startHum() {
	if sm.hum != nil {
		sm.withSpeaker(func() { sm.hum.Paused = false })
		return
	}
	ctrl := &beep.Ctrl{Streamer: newVolume(NewHum(SampleRate), sm.volume), Paused: false}
	sm.withSpeaker(func() { sm.mixer.Add(ctrl) })
	sm.hum = ctrl
}

// stopHum silences the hum and detaches its stream so the mixer drops it.
func (sm *SoundManager) stopHum() {
	if sm.hum == nil {
		return
	}
	hum := sm.hum
	sm.withSpeaker(func() {
		hum.Paused = true
		hum.Streamer = nil
	})
	sm.hum = nil
}

// withSpeaker runs f under the speaker lock when the mixer is live.
func (sm *SoundManager) withSpeaker(f func()) {
	if sm.speakerOn {
		speaker.Lock()
		defer speaker.Unlock()
	}
	f()
}
