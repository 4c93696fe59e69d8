package hockey

// Bounce reports which boundaries reflected the puck during one tick.
type Bounce struct {
	Side   bool
	Top    bool
	Paddle bool
}

// Any reports whether the puck was reflected at all.
func (b Bounce) Any() bool {
	return b.Side || b.Top || b.Paddle
}

// MovePaddle applies the paddle velocity and clamps the paddle inside the
// field horizontally.
func MovePaddle(p *Paddle, f Field) {
	p.X += p.DX
	if p.X < 0 {
		p.X = 0
	}
	if p.Right() > f.Width {
		p.X = f.Width - p.Width
	}
}

// MovePuck applies the puck velocity to its position.
func MovePuck(p *Puck) {
	p.X += p.DX
	p.Y += p.DY
}

// ReflectWalls flips DX when the puck's left or right edge is past the side
// walls and DY when its top edge is past the top wall.
func ReflectWalls(p *Puck, f Field) Bounce {
	var b Bounce
	if p.Left() < 0 || p.Right() > f.Width {
		p.DX = -p.DX
		b.Side = true
	}
	if p.Top() < 0 {
		p.DY = -p.DY
		b.Top = true
	}
	return b
}

// HitsPaddle reports whether the puck's centre column is strictly inside the
// paddle span and its bottom edge is below the paddle top. CollisionStrict
// also requires the puck's top edge to be above the paddle bottom.
func HitsPaddle(p Puck, pd Paddle, mode CollisionMode) bool {
	if p.X <= pd.X || p.X >= pd.Right() {
		return false
	}
	if p.Bottom() <= pd.Y {
		return false
	}
	if mode == CollisionStrict && p.Top() >= pd.Bottom() {
		return false
	}
	return true
}

// ReflectPaddle flips DY when the puck overlaps the paddle.
func ReflectPaddle(p *Puck, pd Paddle, mode CollisionMode) bool {
	if !HitsPaddle(*p, pd, mode) {
		return false
	}
	p.DY = -p.DY
	return true
}

// PastBottom reports whether the puck's bottom edge is below the field.
func PastBottom(p Puck, f Field) bool {
	return p.Bottom() > f.Height
}
