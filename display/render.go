package display

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/puckstick/ecs"
	"github.com/plus3/puckstick/hockey"
)

const (
	GameOverText = "Game Over! Press R to play again"

	// ebitenutil.DebugPrint glyph size.
	glyphWidth  = 6
	glyphHeight = 16
)

// RenderSystem paints the field onto screen. It draws nothing while screen
// is nil.
type RenderSystem struct {
	Paddles ecs.Query[struct{ *hockey.Paddle }]
	Pucks   ecs.Query[struct{ *hockey.Puck }]
	Field   ecs.Singleton[hockey.Field]
	Session ecs.Singleton[hockey.Session]
	Theme   ecs.Singleton[hockey.Theme]

	screen  *ebiten.Image
	palette *palette
}

type palette struct {
	background, paddle, puck, message color.RGBA
}

func newPalette(t hockey.Theme) *palette {
	return &palette{
		background: hockey.MustColor(t.Background),
		paddle:     hockey.MustColor(t.Paddle),
		puck:       hockey.MustColor(t.Puck),
		message:    hockey.MustColor(t.Message),
	}
}

// SetScreen selects the image the next Execute draws on.
func (s *RenderSystem) SetScreen(screen *ebiten.Image) {
	s.screen = screen
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	if s.screen == nil {
		return
	}
	if s.palette == nil {
		s.palette = newPalette(*s.Theme.Get())
	}

	s.screen.Fill(s.palette.background)

	for p := range s.Paddles.Values() {
		vector.DrawFilledRect(s.screen,
			float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height),
			s.palette.paddle, false)
	}
	for p := range s.Pucks.Values() {
		vector.DrawFilledCircle(s.screen,
			float32(p.X), float32(p.Y), float32(p.Radius),
			s.palette.puck, true)
	}

	if s.Session.Get().Over() {
		s.drawMessage(GameOverText)
	}
}

func (s *RenderSystem) drawMessage(text string) {
	field := s.Field.Get()
	w := len(text) * glyphWidth
	x := (int(field.Width) - w) / 2
	y := (int(field.Height) - glyphHeight) / 2

	vector.DrawFilledRect(s.screen,
		float32(x-8), float32(y-4), float32(w+16), float32(glyphHeight+8),
		s.palette.message, false)
	ebitenutil.DebugPrintAt(s.screen, text, x, y)
}
