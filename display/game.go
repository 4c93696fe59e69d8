// Package display runs the game in an ebiten window.
package display

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/puckstick/ecs"
	"github.com/plus3/puckstick/hockey"
)

// Overlay is drawn on top of the game when debugging is enabled.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Update()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	WantsKeyboard() bool
}

// Game implements ebiten.Game around a hockey.World. Update advances the
// world by exactly one tick; Draw runs the render systems.
type Game struct {
	World *hockey.World

	render       *ecs.Scheduler
	renderSystem *RenderSystem
	overlay      Overlay
	showOverlay  bool

	released []ebiten.Key
	pressed  []ebiten.Key
}

func NewGame(world *hockey.World) *Game {
	g := &Game{
		World:        world,
		render:       ecs.NewScheduler(world.Storage),
		renderSystem: &RenderSystem{},
	}
	g.render.Register(g.renderSystem)
	return g
}

// SetOverlay attaches a debug overlay, shown until F1 hides it.
func (g *Game) SetOverlay(o Overlay) {
	g.overlay = o
	g.showOverlay = o != nil
}

// RenderScheduler exposes the draw-side scheduler for stats.
func (g *Game) RenderScheduler() *ecs.Scheduler {
	return g.render
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.overlay != nil && inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showOverlay = !g.showOverlay
	}

	if g.overlayActive() {
		g.overlay.BeginFrame()
		defer g.overlay.EndFrame()
		g.overlay.Update()
	}

	g.forwardKeys(g.overlayActive() && g.overlay.WantsKeyboard())

	g.World.Step()
	return nil
}

// forwardKeys hands this frame's key transitions to the world.
func (g *Game) forwardKeys(overlayFocused bool) {
	g.released = inpututil.AppendJustReleasedKeys(g.released[:0])
	g.pressed = inpututil.AppendJustPressedKeys(g.pressed[:0])
	g.applyKeys(g.released, g.pressed, overlayFocused)
}

// applyKeys pushes releases first so a same-frame switch of direction ends
// on the new key. Releases always reach the world; presses, including the
// reset key, are dropped while the overlay has keyboard focus.
func (g *Game) applyKeys(released, pressed []ebiten.Key, overlayFocused bool) {
	controls := g.World.Controls()
	for _, k := range released {
		controls.Push(KeyName(k), false)
	}
	if overlayFocused {
		return
	}
	if slices.Contains(pressed, ebiten.KeyR) {
		g.World.Reset()
		controls = g.World.Controls()
	}
	for _, k := range pressed {
		controls.Push(KeyName(k), true)
	}
}

func (g *Game) overlayActive() bool {
	return g.overlay != nil && g.showOverlay
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.SetScreen(screen)
	g.render.Once(0)
	g.renderSystem.SetScreen(nil)

	if g.overlayActive() {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	field := g.World.Config().Field
	w, h := int(field.Width), int(field.Height)
	if g.overlay != nil {
		g.overlay.Layout(w, h)
	}
	return w, h
}

// KeyName returns the name hockey.Controls bindings use for k.
func KeyName(k ebiten.Key) string {
	return k.String()
}
