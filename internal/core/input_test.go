package core

import "testing"

func TestInputFrameIntent(t *testing.T) {
	f := NewInputFrame()
	if in := f.Intent(); in.MoveLeft || in.MoveRight || in.Fire {
		t.Errorf("empty frame should carry no intent, got %+v", in)
	}

	f.Set(ActionLeft)
	f.Set(ActionFire)
	in := f.Intent()
	if !in.MoveLeft || in.MoveRight || !in.Fire {
		t.Errorf("Intent() = %+v, expected left+fire", in)
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Intent().Fire {
		t.Error("Clear should remove actions")
	}
}

func TestEventString(t *testing.T) {
	e := Event{Kind: EventEnemyDestroyed, Value: 50}
	if e.String() != "EnemyDestroyed{50}" {
		t.Errorf("String() = %q", e.String())
	}
	if EventKind(99).String() != "Unknown" {
		t.Error("unknown kinds should stringify as Unknown")
	}
}
