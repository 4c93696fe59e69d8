package hockey

import "fmt"

// Field is the playing surface. Origin is the top-left corner, y grows down.
type Field struct {
	Width, Height float64
}

// Paddle is the player's bar. X and Y locate its top-left corner; DX is the
// current horizontal velocity in pixels per tick.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	DX            float64
}

// Right is the x coordinate of the paddle's right edge.
func (p Paddle) Right() float64  { return p.X + p.Width }
// Bottom is the y coordinate of the paddle's lower edge.
func (p Paddle) Bottom() float64 { return p.Y + p.Height }

// Puck positions are centres.
type Puck struct {
	X, Y   float64
	Radius float64
	DX, DY float64
}

func (p Puck) Left() float64   { return p.X - p.Radius }
func (p Puck) Right() float64  { return p.X + p.Radius }
func (p Puck) Top() float64    { return p.Y - p.Radius }
func (p Puck) Bottom() float64 { return p.Y + p.Radius }

// State is the session lifecycle: Running until the puck is lost, then
// Terminated.
type State int

const (
	Running State = iota
	Terminated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session tracks one life from start (or Reset) to game over.
type Session struct {
	State State
	// Ticks advanced while Running.
	Ticks         uint64
	WallBounces   int
	PaddleBounces int
}

// Over reports whether the session is Terminated.
func (s *Session) Over() bool {
	return s.State == Terminated
}

// CollisionMode selects the paddle overlap test.
type CollisionMode int

const (
	// CollisionStrict is a two-sided AABB test: the puck's vertical span
	// must overlap the paddle's.
	CollisionStrict CollisionMode = iota
	// CollisionLenient only checks the puck's bottom edge against the paddle
	// top, so a puck below the paddle still counts as a hit.
	CollisionLenient
)

// ParseCollisionMode accepts "strict", "lenient" or an empty string, which
// means strict.
func ParseCollisionMode(s string) (CollisionMode, error) {
	switch s {
	case "strict", "":
		return CollisionStrict, nil
	case "lenient":
		return CollisionLenient, nil
	}
	return 0, fmt.Errorf("unknown collision mode %q", s)
}

func (m CollisionMode) String() string {
	switch m {
	case CollisionStrict:
		return "strict"
	case CollisionLenient:
		return "lenient"
	}
	return fmt.Sprintf("CollisionMode(%d)", int(m))
}

func (m CollisionMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *CollisionMode) UnmarshalText(text []byte) error {
	parsed, err := ParseCollisionMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
