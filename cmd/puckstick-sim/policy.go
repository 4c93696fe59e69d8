package main

import (
	"fmt"
	"math/rand"

	"github.com/plus3/puckstick/hockey"
)

// Policy decides which direction key is held before each tick.
type Policy interface {
	Name() string
	Choose(w *hockey.World) hockey.Direction
}

func NewPolicy(name string, seed int64) (Policy, error) {
	switch name {
	case "idle":
		return idlePolicy{}, nil
	case "track":
		return trackPolicy{}, nil
	case "random":
		return &randomPolicy{rng: rand.New(rand.NewSource(seed)), every: 15}, nil
	}
	return nil, fmt.Errorf("unknown policy %q (want idle, track or random)", name)
}

type idlePolicy struct{}

func (idlePolicy) Name() string                          { return "idle" }
func (idlePolicy) Choose(*hockey.World) hockey.Direction { return hockey.NoDirection }

// trackPolicy keeps the paddle centre under the puck.
type trackPolicy struct{}

func (trackPolicy) Name() string { return "track" }

func (trackPolicy) Choose(w *hockey.World) hockey.Direction {
	paddle, puck := w.Paddle(), w.Puck()
	centre := paddle.X + paddle.Width/2
	switch {
	case puck.X < centre-paddle.Speed:
		return hockey.Left
	case puck.X > centre+paddle.Speed:
		return hockey.Right
	}
	return hockey.NoDirection
}

// randomPolicy picks a new direction every few ticks.
type randomPolicy struct {
	rng   *rand.Rand
	every uint64
	dir   hockey.Direction
}

func (p *randomPolicy) Name() string { return "random" }

func (p *randomPolicy) Choose(w *hockey.World) hockey.Direction {
	if w.Session().Ticks%p.every == 0 {
		p.dir = hockey.Direction(p.rng.Intn(3))
	}
	return p.dir
}

// driver turns policy decisions into key presses and releases, the same
// events a keyboard would produce.
type driver struct {
	policy Policy
	keys   map[hockey.Direction]string
	held   hockey.Direction
}

func newDriver(policy Policy, keys hockey.KeyConfig) *driver {
	return &driver{
		policy: policy,
		keys: map[hockey.Direction]string{
			hockey.Left:  keys.Left[0],
			hockey.Right: keys.Right[0],
		},
	}
}

func (d *driver) steer(w *hockey.World) {
	want := d.policy.Choose(w)
	if want == d.held {
		return
	}
	controls := w.Controls()
	if d.held != hockey.NoDirection {
		controls.Push(d.keys[d.held], false)
	}
	if want != hockey.NoDirection {
		controls.Push(d.keys[want], true)
	}
	d.held = want
}

func (d *driver) reset() {
	d.held = hockey.NoDirection
}
