package hockey

import "github.com/plus3/puckstick/ecs"

type paddleView = struct {
	ecs.EntityId
	*Paddle
}

type puckView = struct {
	ecs.EntityId
	*Puck
}

// InputSystem applies queued key events to every paddle. Events that arrive
// after game over are discarded.
type InputSystem struct {
	Paddles  ecs.Query[paddleView]
	Controls ecs.Singleton[Controls]
	Session  ecs.Singleton[Session]
}

func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	controls := s.Controls.Get()
	if s.Session.Get().Over() {
		controls.Discard()
		return
	}
	controls.Drain(func(ev KeyEvent) {
		for p := range s.Paddles.Values() {
			ApplyKey(p.Paddle, ev)
		}
	})
}

// PaddleSystem counts the tick and moves every paddle.
type PaddleSystem struct {
	Paddles ecs.Query[paddleView]
	Field   ecs.Singleton[Field]
	Session ecs.Singleton[Session]
}

func (s *PaddleSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if session.Over() {
		return
	}
	session.Ticks++
	field := *s.Field.Get()
	for p := range s.Paddles.Values() {
		MovePaddle(p.Paddle, field)
	}
}

// PuckSystem moves every puck.
type PuckSystem struct {
	Pucks   ecs.Query[puckView]
	Session ecs.Singleton[Session]
}

func (s *PuckSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Session.Get().Over() {
		return
	}
	for p := range s.Pucks.Values() {
		MovePuck(p.Puck)
	}
}

// WallSystem reflects pucks off the side and top walls.
type WallSystem struct {
	Pucks   ecs.Query[puckView]
	Field   ecs.Singleton[Field]
	Session ecs.Singleton[Session]
}

func (s *WallSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if session.Over() {
		return
	}
	field := *s.Field.Get()
	for p := range s.Pucks.Values() {
		if ReflectWalls(p.Puck, field).Any() {
			session.WallBounces++
		}
	}
}

// PaddleCollisionSystem reflects pucks that overlap a paddle, using Mode.
type PaddleCollisionSystem struct {
	Pucks   ecs.Query[puckView]
	Paddles ecs.Query[paddleView]
	Session ecs.Singleton[Session]
	Mode    CollisionMode
}

func (s *PaddleCollisionSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if session.Over() {
		return
	}
	for puck := range s.Pucks.Values() {
		for paddle := range s.Paddles.Values() {
			if ReflectPaddle(puck.Puck, *paddle.Paddle, s.Mode) {
				session.PaddleBounces++
				break
			}
		}
	}
}

// GameOverSystem ends the session once any puck is past the bottom edge.
// Notify runs once, after the frame's commands are flushed.
type GameOverSystem struct {
	Pucks   ecs.Query[puckView]
	Field   ecs.Singleton[Field]
	Session ecs.Singleton[Session]
	Notify  func()
}

func (s *GameOverSystem) Execute(frame *ecs.UpdateFrame) {
	session := s.Session.Get()
	if session.Over() {
		return
	}
	field := *s.Field.Get()
	for p := range s.Pucks.Values() {
		if PastBottom(*p.Puck, field) {
			session.State = Terminated
			if s.Notify != nil {
				frame.Commands.Defer(s.Notify)
			}
			return
		}
	}
}
