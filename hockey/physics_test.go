package hockey_test

import (
	"testing"

	"github.com/plus3/puckstick/hockey"
	"github.com/stretchr/testify/assert"
)

var field = hockey.Field{Width: 600, Height: 400}

func TestMovePaddleClamps(t *testing.T) {
	tests := []struct {
		name  string
		x, dx float64
		want  float64
	}{
		{"moves right", 100, 7, 107},
		{"moves left", 100, -7, 93},
		{"stops at left wall", 3, -7, 0},
		{"stops at right wall", 495, 7, 500},
		{"already at right wall", 500, 7, 500},
		{"idle", 250, 0, 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := hockey.Paddle{X: tt.x, Width: 100, Height: 12, Speed: 7, DX: tt.dx}
			hockey.MovePaddle(&p, field)
			assert.Equal(t, tt.want, p.X)
		})
	}
}

func TestReflectWalls(t *testing.T) {
	tests := []struct {
		name       string
		puck       hockey.Puck
		wantDX     float64
		wantDY     float64
		wantBounce hockey.Bounce
	}{
		{"inside", hockey.Puck{X: 300, Y: 200, Radius: 10, DX: 4, DY: 4}, 4, 4, hockey.Bounce{}},
		{"touching right edge", hockey.Puck{X: 590, Y: 200, Radius: 10, DX: 4, DY: 4}, 4, 4, hockey.Bounce{}},
		{"past right edge", hockey.Puck{X: 592, Y: 200, Radius: 10, DX: 4, DY: 4}, -4, 4, hockey.Bounce{Side: true}},
		{"past left edge", hockey.Puck{X: 8, Y: 200, Radius: 10, DX: -4, DY: 4}, 4, 4, hockey.Bounce{Side: true}},
		{"touching top", hockey.Puck{X: 300, Y: 10, Radius: 10, DX: 4, DY: -4}, 4, -4, hockey.Bounce{}},
		{"past top", hockey.Puck{X: 300, Y: 8, Radius: 10, DX: 4, DY: -4}, 4, 4, hockey.Bounce{Top: true}},
		{"corner", hockey.Puck{X: 8, Y: 8, Radius: 10, DX: -4, DY: -4}, 4, 4, hockey.Bounce{Side: true, Top: true}},
		{"bottom is open", hockey.Puck{X: 300, Y: 395, Radius: 10, DX: 4, DY: 4}, 4, 4, hockey.Bounce{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.puck
			b := hockey.ReflectWalls(&p, field)
			assert.Equal(t, tt.wantBounce, b)
			assert.Equal(t, tt.wantDX, p.DX)
			assert.Equal(t, tt.wantDY, p.DY)
		})
	}
}

func TestHitsPaddle(t *testing.T) {
	paddle := hockey.Paddle{X: 250, Y: 380, Width: 100, Height: 12}

	tests := []struct {
		name    string
		x, y    float64
		strict  bool
		lenient bool
	}{
		{"above paddle", 300, 370, false, false},
		{"bottom edge enters paddle top", 300, 372, true, true},
		{"inside paddle", 300, 390, true, true},
		{"top edge still inside", 300, 401, true, true},
		{"below paddle", 300, 403, false, true},
		{"left of span", 250, 380, false, false},
		{"right of span", 350, 380, false, false},
		{"far left column", 10, 385, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			puck := hockey.Puck{X: tt.x, Y: tt.y, Radius: 10}
			assert.Equal(t, tt.strict, hockey.HitsPaddle(puck, paddle, hockey.CollisionStrict), "strict")
			assert.Equal(t, tt.lenient, hockey.HitsPaddle(puck, paddle, hockey.CollisionLenient), "lenient")
		})
	}
}

func TestReflectPaddle(t *testing.T) {
	paddle := hockey.Paddle{X: 250, Y: 380, Width: 100, Height: 12}

	hit := hockey.Puck{X: 300, Y: 375, Radius: 10, DY: 4}
	assert.True(t, hockey.ReflectPaddle(&hit, paddle, hockey.CollisionStrict))
	assert.Equal(t, -4.0, hit.DY)

	miss := hockey.Puck{X: 300, Y: 300, Radius: 10, DY: 4}
	assert.False(t, hockey.ReflectPaddle(&miss, paddle, hockey.CollisionStrict))
	assert.Equal(t, 4.0, miss.DY)
}

func TestPastBottom(t *testing.T) {
	assert.False(t, hockey.PastBottom(hockey.Puck{Y: 390, Radius: 10}, field))
	assert.True(t, hockey.PastBottom(hockey.Puck{Y: 390.5, Radius: 10}, field))
}
