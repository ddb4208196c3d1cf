package internal

import (
	"testing"
	"time"

	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestRepeat() (*KeyRepeat, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	r := NewKeyRepeatWithTiming(300*time.Millisecond, 50*time.Millisecond)
	r.now = clock.now
	return r, clock
}

func TestKeyRepeatTiming(t *testing.T) {
	r, clock := newTestRepeat()
	r.Press(constants.KeyDown)

	clock.advance(299 * time.Millisecond)
	if got := r.Update(); got != constants.KeyUnassigned {
		t.Fatalf("repeated before delay: %v", got.GetName())
	}

	clock.advance(time.Millisecond)
	if got := r.Update(); got != constants.KeyDown {
		t.Fatalf("no repeat after delay: %v", got.GetName())
	}

	clock.advance(49 * time.Millisecond)
	if got := r.Update(); got != constants.KeyUnassigned {
		t.Fatalf("repeated before interval: %v", got.GetName())
	}

	clock.advance(time.Millisecond)
	if got := r.Update(); got != constants.KeyDown {
		t.Fatalf("no repeat after interval: %v", got.GetName())
	}
}

func TestKeyRepeatRelease(t *testing.T) {
	r, clock := newTestRepeat()
	r.Press(constants.KeyPageDown)

	r.Release(constants.KeyUp)
	if r.Held() != constants.KeyPageDown {
		t.Fatal("releasing another key stopped the repeat")
	}

	r.Release(constants.KeyPageDown)
	clock.advance(time.Second)
	if got := r.Update(); got != constants.KeyUnassigned {
		t.Fatalf("repeat after release: %v", got.GetName())
	}
}

func TestKeyRepeatIgnoresNonNavigationKeys(t *testing.T) {
	r, clock := newTestRepeat()

	for _, key := range []constants.Key{constants.KeyEnter, constants.KeyEscape, constants.KeyHome, constants.KeyEnd} {
		r.Press(key)
		clock.advance(time.Second)
		if got := r.Update(); got != constants.KeyUnassigned {
			t.Errorf("%s repeated", key.GetName())
		}
	}
}

func TestKeyRepeatLatestKeyWins(t *testing.T) {
	r, clock := newTestRepeat()
	r.Press(constants.KeyUp)
	clock.advance(200 * time.Millisecond)
	r.Press(constants.KeyDown)

	clock.advance(200 * time.Millisecond)
	if got := r.Update(); got != constants.KeyUnassigned {
		t.Fatalf("new key repeated before its own delay: %v", got.GetName())
	}
	clock.advance(100 * time.Millisecond)
	if got := r.Update(); got != constants.KeyDown {
		t.Fatalf("got %v, want Down", got.GetName())
	}
}
