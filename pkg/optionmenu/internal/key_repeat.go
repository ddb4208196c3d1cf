package internal

import (
	"time"

	"github.com/inappwebview/optionmenu/pkg/optionmenu/constants"
)

// KeyRepeat turns a held navigation key into a stream of presses. Hosts feed
// it key down/up transitions and poll Update once per frame; the platform's
// own auto-repeat events should be dropped so the rate stays predictable.
type KeyRepeat struct {
	held           constants.Key
	lastRepeatTime time.Time
	repeatDelay    time.Duration
	repeatInterval time.Duration
	hasRepeated    bool

	now func() time.Time
}

// NewKeyRepeat waits 300ms before the first repeat, then repeats every 50ms.
func NewKeyRepeat() *KeyRepeat {
	return NewKeyRepeatWithTiming(300*time.Millisecond, 50*time.Millisecond)
}

func NewKeyRepeatWithTiming(delay, interval time.Duration) *KeyRepeat {
	return &KeyRepeat{
		held:           constants.KeyUnassigned,
		repeatDelay:    delay,
		repeatInterval: interval,
		now:            time.Now,
	}
}

// Repeats reports whether key auto-repeats while held.
func Repeats(key constants.Key) bool {
	switch key {
	case constants.KeyUp, constants.KeyDown,
		constants.KeyKeypadUp, constants.KeyKeypadDown,
		constants.KeyPageUp, constants.KeyPageDown:
		return true
	}
	return false
}

// Press records key as held. Only the most recent repeating key is tracked.
func (r *KeyRepeat) Press(key constants.Key) {
	if !Repeats(key) {
		return
	}
	now := r.now()
	r.held = key
	r.lastRepeatTime = now
	r.hasRepeated = false
}

// Release stops repeating key if it is the one held.
func (r *KeyRepeat) Release(key constants.Key) {
	if r.held == key {
		r.Reset()
	}
}

// Held returns the key being repeated, or KeyUnassigned.
func (r *KeyRepeat) Held() constants.Key {
	return r.held
}

// Update returns the key to press again this frame, or KeyUnassigned.
func (r *KeyRepeat) Update() constants.Key {
	if r.held == constants.KeyUnassigned {
		return constants.KeyUnassigned
	}

	threshold := r.repeatInterval
	if !r.hasRepeated {
		threshold = r.repeatDelay
	}

	now := r.now()
	if now.Sub(r.lastRepeatTime) < threshold {
		return constants.KeyUnassigned
	}

	r.lastRepeatTime = now
	r.hasRepeated = true
	return r.held
}

func (r *KeyRepeat) Reset() {
	r.held = constants.KeyUnassigned
	r.hasRepeated = false
}
