package hockey

import "github.com/plus3/puckstick/ecs"

// Outcome describes what one Step did.
type Outcome int

const (
	// Idle means the session was already over and nothing moved.
	Idle Outcome = iota
	Continued
	Ended
)

func (o Outcome) String() string {
	switch o {
	case Continued:
		return "continued"
	case Ended:
		return "ended"
	}
	return "idle"
}

// Snapshot is a copy of the game state for display and inspection.
type Snapshot struct {
	Field   Field
	Paddle  Paddle
	Puck    Puck
	Session Session
}

// World owns the storage and the tick scheduler of one game.
type World struct {
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler

	cfg        Config
	paddle     ecs.EntityId
	puck       ecs.EntityId
	onGameOver []func(Snapshot)

	session  *ecs.Singleton[Session]
	controls *ecs.Singleton[Controls]
}

// NewRegistry registers every component the game spawns. Frontends that add
// their own components register them on the returned registry before
// calling NewWorldWithRegistry.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Paddle](registry)
	ecs.RegisterComponent[Puck](registry)
	return registry
}

// NewWorld builds a running game from cfg. cfg must be valid.
func NewWorld(cfg Config) *World {
	return NewWorldWithRegistry(cfg, NewRegistry())
}

// NewWorldWithRegistry is NewWorld on a registry the caller has extended.
func NewWorldWithRegistry(cfg Config, registry *ecs.ComponentRegistry) *World {
	storage := ecs.NewStorage(registry)
	w := &World{
		Storage:   storage,
		Scheduler: ecs.NewScheduler(storage),
		cfg:       cfg,
	}

	ecs.NewSingleton[Field](storage, Field{Width: cfg.Field.Width, Height: cfg.Field.Height})
	ecs.NewSingleton[Theme](storage, cfg.Theme)
	w.session = ecs.NewSingleton[Session](storage)
	w.controls = ecs.NewSingleton[Controls](storage, NewControls(cfg.Keys))

	w.Scheduler.Register(&InputSystem{})
	w.Scheduler.Register(&PaddleSystem{})
	w.Scheduler.Register(&PuckSystem{})
	w.Scheduler.Register(&WallSystem{})
	w.Scheduler.Register(&PaddleCollisionSystem{Mode: cfg.Collision})
	w.Scheduler.Register(&GameOverSystem{Notify: w.notifyGameOver})

	w.spawn()
	return w
}

// Config returns the configuration the world was built from.
func (w *World) Config() Config {
	return w.cfg
}

func (w *World) spawn() {
	f := w.cfg.Field
	w.paddle = w.Storage.Spawn(Paddle{
		X:      f.Width/2 - w.cfg.Paddle.Width/2,
		Y:      f.Height - w.cfg.Paddle.Lift,
		Width:  w.cfg.Paddle.Width,
		Height: w.cfg.Paddle.Height,
		Speed:  w.cfg.Paddle.Speed,
	})
	w.puck = w.Storage.Spawn(Puck{
		X:      f.Width / 2,
		Y:      f.Height / 2,
		Radius: w.cfg.Puck.Radius,
		DX:     w.cfg.Puck.DX,
		DY:     w.cfg.Puck.DY,
	})
}

// Reset starts a new session in place: paddle and puck return to their
// starting positions, queued input is dropped and the session is Running.
func (w *World) Reset() {
	w.Storage.Delete(w.paddle)
	w.Storage.Delete(w.puck)
	w.spawn()
	*w.session.Get() = Session{}
	w.controls.Get().Discard()
}

// Step advances the game by one tick.
func (w *World) Step() Outcome {
	if w.Over() {
		return Idle
	}
	w.Scheduler.Once(1)
	if w.Over() {
		return Ended
	}
	return Continued
}

// Run steps until the session ends or maxTicks ticks have run (0 means no
// limit) and returns the number of ticks advanced.
func (w *World) Run(maxTicks uint64) uint64 {
	var n uint64
	for maxTicks == 0 || n < maxTicks {
		out := w.Step()
		if out == Idle {
			break
		}
		n++
		if out == Ended {
			break
		}
	}
	return n
}

// Controls returns the key queue the platform feeds.
func (w *World) Controls() *Controls {
	return w.controls.Get()
}

// Session returns a copy of the current session state.
func (w *World) Session() Session {
	return *w.session.Get()
}

// Over reports whether the session has ended. It stays true until Reset.
func (w *World) Over() bool {
	return w.session.Get().Over()
}

// Paddle returns the live paddle component. Callers may edit it between
// ticks.
func (w *World) Paddle() *Paddle {
	return ecs.ReadComponent[Paddle](w.Storage, w.paddle)
}

// Puck returns the live puck component.
func (w *World) Puck() *Puck {
	return ecs.ReadComponent[Puck](w.Storage, w.puck)
}

// Snapshot copies the field, paddle, puck and session state.
func (w *World) Snapshot() Snapshot {
	var field *Field
	w.Storage.ReadSingleton(&field)
	return Snapshot{
		Field:   *field,
		Paddle:  *w.Paddle(),
		Puck:    *w.Puck(),
		Session: w.Session(),
	}
}

// OnGameOver registers fn to run once each time a session ends.
func (w *World) OnGameOver(fn func(Snapshot)) {
	w.onGameOver = append(w.onGameOver, fn)
}

func (w *World) notifyGameOver() {
	snap := w.Snapshot()
	for _, fn := range w.onGameOver {
		fn(snap)
	}
}
