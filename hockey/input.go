package hockey

import "strings"

// Direction is the way a bound key steers the paddle.
type Direction int

const (
	NoDirection Direction = iota
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// KeyEvent is a press or release of a bound key.
type KeyEvent struct {
	Dir     Direction
	Pressed bool
}

// Controls is the bridge between a platform's keyboard and the paddle. The
// platform pushes key names as they arrive; InputSystem drains them at the
// start of the next tick.
type Controls struct {
	bindings map[string]Direction
	pending  []KeyEvent
}

// NewControls binds the key names in keys to their directions. Names are
// matched case-insensitively.
func NewControls(keys KeyConfig) Controls {
	c := Controls{bindings: make(map[string]Direction)}
	for _, name := range keys.Left {
		c.bindings[normalizeKey(name)] = Left
	}
	for _, name := range keys.Right {
		c.bindings[normalizeKey(name)] = Right
	}
	return c
}

func normalizeKey(name string) string {
	return strings.ToLower(name)
}

// Bound returns the direction bound to a key name.
func (c *Controls) Bound(name string) (Direction, bool) {
	d, ok := c.bindings[normalizeKey(name)]
	return d, ok
}

// Push queues a key transition. Keys without a binding are dropped and
// Push reports false.
func (c *Controls) Push(name string, pressed bool) bool {
	d, ok := c.Bound(name)
	if !ok {
		return false
	}
	c.pending = append(c.pending, KeyEvent{Dir: d, Pressed: pressed})
	return true
}

// Pending returns the number of queued events.
func (c *Controls) Pending() int {
	return len(c.pending)
}

// Drain hands every queued event to fn in arrival order and empties the
// queue.
func (c *Controls) Drain(fn func(KeyEvent)) {
	for _, ev := range c.pending {
		fn(ev)
	}
	c.pending = c.pending[:0]
}

// Discard drops every queued event.
func (c *Controls) Discard() {
	c.pending = c.pending[:0]
}

// ApplyKey updates the paddle velocity for one key transition. A press sets
// the velocity toward its direction. A release only stops the paddle when it
// is moving in the released key's direction.
func ApplyKey(p *Paddle, ev KeyEvent) {
	switch ev.Dir {
	case Right:
		if ev.Pressed {
			p.DX = p.Speed
		} else if p.DX > 0 {
			p.DX = 0
		}
	case Left:
		if ev.Pressed {
			p.DX = -p.Speed
		} else if p.DX < 0 {
			p.DX = 0
		}
	}
}
