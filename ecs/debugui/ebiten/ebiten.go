// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stardodge/ecs"
	"github.com/plus3/stardodge/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window. imgui.ini persistence
// is disabled.
func NewImguiBackend(title string, width, height int) ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: backend}
}

// Overlay runs a UI storage's ImguiItems inside an Ebiten game: call Update
// from Game.Update, Draw last in Game.Draw and Layout from Game.Layout.
type Overlay struct {
	Storage   *ecs.Storage
	scheduler *ecs.Scheduler
	backend   ImguiBackend
	input     *ecs.Singleton[debugui.ImguiInputState]
}

// NewOverlay wires an ImguiSystem over ui.
func NewOverlay(backend ImguiBackend, ui *ecs.Storage) *Overlay {
	scheduler := ecs.NewScheduler(ui)
	scheduler.Register(&debugui.ImguiSystem{})
	return &Overlay{
		Storage:   ui,
		scheduler: scheduler,
		backend:   backend,
		input:     ecs.NewSingleton[debugui.ImguiInputState](ui),
	}
}

// Update builds one ImGui frame from every ImguiItem.
func (o *Overlay) Update() {
	o.backend.BeginFrame()
	o.scheduler.Once(0)
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

// InputState reports what ImGui captured during the last Update.
func (o *Overlay) InputState() debugui.ImguiInputState {
	return *o.input.Get()
}
