// Package ebiten hosts the debug overlay in an ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/puckstick/debugui"
	"github.com/plus3/puckstick/ecs"
	"github.com/plus3/puckstick/hockey"
)

// ImguiBackend wraps the ebiten Dear ImGui backend so it can be stored as a
// singleton.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Overlay owns the ImGui backend and a scheduler that runs ImguiSystem over
// the world's storage.
type Overlay struct {
	backend   *ecs.Singleton[ImguiBackend]
	input     *ecs.Singleton[debugui.ImguiInputState]
	scheduler *ecs.Scheduler
}

// NewOverlay creates the ImGui context and spawns the session and
// performance windows into the world. extra schedulers are listed in the
// performance window next to the world's tick scheduler.
func NewOverlay(world *hockey.World, title string, extra ...debugui.NamedScheduler) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, int(world.Config().Field.Width), int(world.Config().Field.Height))
	imgui.CurrentIO().SetIniFilename("")

	storage := world.Storage
	debugui.Register(storage.Registry())

	o := &Overlay{
		backend:   ecs.NewSingleton[ImguiBackend](storage, ImguiBackend{EbitenBackend: backend}),
		input:     ecs.NewSingleton[debugui.ImguiInputState](storage),
		scheduler: ecs.NewScheduler(storage),
	}
	o.scheduler.Register(&debugui.ImguiSystem{})

	schedulers := append([]debugui.NamedScheduler{{Name: "Tick", Scheduler: world.Scheduler}}, extra...)
	schedulers = append(schedulers, debugui.NamedScheduler{Name: "Overlay", Scheduler: o.scheduler})

	session := &debugui.SessionPanel{World: world}
	perf := debugui.NewPerformancePanel(storage, 120, schedulers...)
	storage.Spawn(debugui.ImguiItem{Render: session.Render})
	storage.Spawn(debugui.ImguiItem{Render: perf.Render})

	return o
}

func (o *Overlay) BeginFrame() { o.backend.Get().BeginFrame() }
func (o *Overlay) EndFrame()   { o.backend.Get().EndFrame() }

// Update queues every window's ImGui calls for this frame.
func (o *Overlay) Update() {
	o.scheduler.Once(1.0 / float64(ebiten.TPS()))
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Get().Draw(screen)
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Get().Layout(width, height)
}

func (o *Overlay) WantsKeyboard() bool {
	return o.input.Get().WantCaptureKeyboard
}
