package core

import "fmt"

// EventKind identifies something that happened during a simulation tick.
// Events flow outward to audio and presentation; games never consume them.
type EventKind int

const (
	EventEnemyDestroyed     EventKind = iota // Value: points awarded
	EventPlayerHit                           // Value: lives remaining
	EventBonusShipDestroyed                  // Value: points awarded
	EventBonusShipDeparted                   // Bonus ship left the field unharmed
	EventWaveCleared                         // Value: index of the new wave
	EventGameOver                            // Value: final score
	EventPlayerFired                         // A player bullet was created
	EventBonusShipSpawned                    // Value: point value of the ship
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventEnemyDestroyed:
		return "EnemyDestroyed"
	case EventPlayerHit:
		return "PlayerHit"
	case EventBonusShipDestroyed:
		return "BonusShipDestroyed"
	case EventBonusShipDeparted:
		return "BonusShipDeparted"
	case EventWaveCleared:
		return "WaveCleared"
	case EventGameOver:
		return "GameOver"
	case EventPlayerFired:
		return "PlayerFired"
	case EventBonusShipSpawned:
		return "BonusShipSpawned"
	default:
		return "Unknown"
	}
}

// Event is a single occurrence with its payload.
// X and Y locate the occurrence in field units where one applies
// (the destroyed enemy, the hit player), for popups and panning.
type Event struct {
	Kind  EventKind
	Value int
	X, Y  float64
}

// String formats the event as Kind{value}.
func (e Event) String() string {
	return fmt.Sprintf("%s{%d}", e.Kind, e.Value)
}

// EventSink receives events emitted by a game step.
type EventSink interface {
	OnEvent(e Event)
}
