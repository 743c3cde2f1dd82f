package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// DefaultHoldWindow is how long a movement key counts as held after its last
// press or auto-repeat. Terminals report key presses only, never releases.
const DefaultHoldWindow = 150 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left", "h":
		return core.ActionLeft, false
	case "d", "right", "l":
		return core.ActionRight, false
	case " ", "w", "up":
		return core.ActionFire, false
	case "enter":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "b":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}

// heldDirection keeps the last movement key active for a number of ticks,
// so auto-repeating keys read as continuous movement. Pressing the opposite
// direction takes over immediately.
type heldDirection struct {
	action    core.Action
	remaining int
	holdTicks int
}

// newHeldDirection sizes the hold window for the given tick rate.
func newHeldDirection(tickRate int, window time.Duration) heldDirection {
	ticks := int(time.Duration(tickRate) * window / time.Second)
	return heldDirection{holdTicks: max(ticks, 1)}
}

// press records a movement key.
func (h *heldDirection) press(a core.Action) {
	h.action = a
	h.remaining = h.holdTicks
}

// apply adds the held direction to frame and counts down one tick.
func (h *heldDirection) apply(frame *core.InputFrame) {
	if h.remaining <= 0 {
		return
	}
	frame.Set(h.action)
	h.remaining--
}

// release drops any held direction.
func (h *heldDirection) release() {
	h.remaining = 0
}
