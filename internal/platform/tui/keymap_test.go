package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"a moves left", runeKey('a'), core.ActionLeft, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d moves right", runeKey('d'), core.ActionRight, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"space fires", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"w fires", runeKey('w'), core.ActionFire, false},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r restarts", runeKey('r'), core.ActionRestart, false},
		{"b goes back", runeKey('b'), core.ActionBack, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestHeldDirection(t *testing.T) {
	h := newHeldDirection(60, 50*time.Millisecond) // 3 ticks
	if h.holdTicks != 3 {
		t.Fatalf("holdTicks = %d, want 3", h.holdTicks)
	}

	h.press(core.ActionLeft)
	for i := range 3 {
		frame := core.NewInputFrame()
		h.apply(&frame)
		if !frame.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should still be held", i)
		}
	}

	frame := core.NewInputFrame()
	h.apply(&frame)
	if frame.Has(core.ActionLeft) {
		t.Error("left should expire after the hold window")
	}

	// Opposite direction takes over.
	h.press(core.ActionLeft)
	h.press(core.ActionRight)
	frame = core.NewInputFrame()
	h.apply(&frame)
	if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) {
		t.Errorf("frame = %v, want right only", frame.Actions)
	}

	h.release()
	frame = core.NewInputFrame()
	h.apply(&frame)
	if frame.Has(core.ActionRight) {
		t.Error("release should drop the held direction")
	}
}

func TestHeldDirectionMinimumOneTick(t *testing.T) {
	h := newHeldDirection(10, time.Millisecond)
	if h.holdTicks != 1 {
		t.Errorf("holdTicks = %d, want 1", h.holdTicks)
	}
}
