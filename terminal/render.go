package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/puckstick/hockey"
)

const (
	paddleRune = '█'
	puckRune   = '●'
)

// Renderer draws snapshots scaled to the screen. The bottom row is a status
// line; the rest of the grid is the field.
type Renderer struct {
	screen tcell.Screen

	background tcell.Style
	paddle     tcell.Style
	puck       tcell.Style
	message    tcell.Style
}

func NewRenderer(screen tcell.Screen, theme hockey.Theme) *Renderer {
	bg := rgb(theme.Background)
	return &Renderer{
		screen:     screen,
		background: tcell.StyleDefault.Background(bg),
		paddle:     tcell.StyleDefault.Background(bg).Foreground(rgb(theme.Paddle)),
		puck:       tcell.StyleDefault.Background(bg).Foreground(rgb(theme.Puck)),
		message:    tcell.StyleDefault.Background(rgb(theme.Message)).Foreground(tcell.ColorWhite),
	}
}

func rgb(hex string) tcell.Color {
	c := hockey.MustColor(hex)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// grid maps field coordinates to cells.
type grid struct {
	cols, rows int
	sx, sy     float64
}

func newGrid(field hockey.Field, width, height int) grid {
	rows := max(height-1, 1)
	return grid{
		cols: width,
		rows: rows,
		sx:   float64(width) / field.Width,
		sy:   float64(rows) / field.Height,
	}
}

func (g grid) col(x float64) int {
	return min(max(int(x*g.sx), 0), g.cols-1)
}

func (g grid) row(y float64) int {
	return min(max(int(y*g.sy), 0), g.rows-1)
}

func (r *Renderer) Draw(snap hockey.Snapshot) {
	width, height := r.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}
	r.screen.SetStyle(r.background)
	r.screen.Clear()

	g := newGrid(snap.Field, width, height)

	p := snap.Paddle
	row := g.row(p.Y)
	last := max(g.col(p.Right())-1, g.col(p.X))
	for x := g.col(p.X); x <= last; x++ {
		r.screen.SetContent(x, row, paddleRune, nil, r.paddle)
	}

	r.screen.SetContent(g.col(snap.Puck.X), g.row(snap.Puck.Y), puckRune, nil, r.puck)

	s := snap.Session
	r.text(0, height-1, fmt.Sprintf("ticks %d  walls %d  paddle %d  [←/→] move  [r] reset  [q] quit",
		s.Ticks, s.WallBounces, s.PaddleBounces), r.background)

	if s.Over() {
		msg := " Game Over! Press R to play again "
		r.text((width-len([]rune(msg)))/2, g.rows/2, msg, r.message)
	}

	r.screen.Show()
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for _, c := range s {
		r.screen.SetContent(x, y, c, nil, style)
		x++
	}
}
