package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/puckstick/hockey"
)

type Options struct {
	// TPS is the number of game ticks per second.
	TPS int
	// Hold is how long a key counts as held after its last repeat.
	Hold time.Duration
}

func DefaultOptions() Options {
	return Options{TPS: 60, Hold: 400 * time.Millisecond}
}

// Session connects one world to one screen.
type Session struct {
	World    *hockey.World
	Renderer *Renderer

	holds *holdTracker
}

func NewSession(screen tcell.Screen, world *hockey.World, opts Options) *Session {
	return &Session{
		World:    world,
		Renderer: NewRenderer(screen, world.Config().Theme),
		holds:    newHoldTracker(opts.Hold),
	}
}

// Handle applies one input event and reports whether the player asked to
// quit.
func (s *Session) Handle(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		action, name := Translate(ev)
		switch action {
		case Quit:
			return true
		case ResetGame:
			s.holds.clear()
			s.World.Reset()
		case Steer:
			// Every press is forwarded so the latest key wins; the tracker
			// only extends the hold.
			s.holds.press(name, now)
			s.World.Controls().Push(name, true)
		}
	case *tcell.EventResize:
		s.Renderer.screen.Sync()
	}
	return false
}

// Tick releases expired keys, advances the world and redraws.
func (s *Session) Tick(now time.Time) hockey.Outcome {
	controls := s.World.Controls()
	s.holds.expire(now, func(name string) {
		controls.Push(name, false)
	})
	out := s.World.Step()
	s.Renderer.Draw(s.World.Snapshot())
	return out
}

// Run drives world on screen until ctx is done or the player quits. screen
// must be initialised; the caller finalises it, which also stops the event
// reader.
func Run(ctx context.Context, screen tcell.Screen, world *hockey.World, opts Options) error {
	s := NewSession(screen, world, opts)
	s.Renderer.Draw(world.Snapshot())

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(max(opts.TPS, 1)))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if s.Handle(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			s.Tick(now)
		}
	}
}
