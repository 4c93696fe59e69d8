package terminal

import (
	"slices"
	"time"
)

// holdTracker turns a terminal's press-only key stream into press and
// release pairs. A key counts as held while its auto-repeat keeps arriving;
// once no repeat arrives for timeout it is released.
type holdTracker struct {
	timeout time.Duration
	held    map[string]time.Time
}

func newHoldTracker(timeout time.Duration) *holdTracker {
	return &holdTracker{timeout: timeout, held: make(map[string]time.Time)}
}

// press records a key event and reports whether it starts a new hold
// rather than repeating a held key.
func (h *holdTracker) press(name string, now time.Time) bool {
	_, held := h.held[name]
	h.held[name] = now
	return !held
}

// expire calls release for every key whose last event is older than the
// timeout, in name order.
func (h *holdTracker) expire(now time.Time, release func(name string)) {
	var expired []string
	for name, last := range h.held {
		if now.Sub(last) >= h.timeout {
			expired = append(expired, name)
		}
	}
	slices.Sort(expired)
	for _, name := range expired {
		delete(h.held, name)
		release(name)
	}
}

func (h *holdTracker) clear() {
	clear(h.held)
}
