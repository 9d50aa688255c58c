package client

import (
	"fmt"
	"log"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stardodge/arcade"
	"github.com/plus3/stardodge/ecs/debugui"
)

var errorColor = imgui.NewVec4(1, 0.4, 0.4, 1)

// ControlPanel is the "Stardodge" debug window: clock control, live tuning
// and session info.
type ControlPanel struct {
	world   *arcade.World
	draft   arcade.Tuning
	invalid error
}

func NewControlPanel(world *arcade.World) *ControlPanel {
	return &ControlPanel{world: world, draft: *world.Tuning()}
}

func (p *ControlPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 120), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 520), imgui.CondOnce)
	if !imgui.BeginV("Stardodge", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	clock := p.world.Clock()
	paused := clock.Paused()
	if imgui.Checkbox("Paused", &paused) {
		clock.SetPaused(paused)
	}
	imgui.SameLine()
	if imgui.Button("Step") {
		p.world.Tick()
	}
	imgui.SameLine()
	if imgui.Button("Reset run") {
		log.Printf("[client] run reset from debug panel")
		p.world.Reset()
	}

	fixed := clock.Time()
	session := p.world.Session()
	imgui.Text(fmt.Sprintf("Tick: %d  Step: %v", fixed.Ticks, fixed.Step))
	imgui.Text(fmt.Sprintf("Overstep: %.2f", fixed.OverstepFraction()))
	imgui.Text(fmt.Sprintf("Score: %d  Best: %d  Runs: %d", p.world.Score(), session.Best, session.Runs))
	imgui.Text(fmt.Sprintf("Seed: %d", p.world.Seed()))

	if imgui.TreeNodeStr("Tuning") {
		if debugui.EditStruct(&p.draft) {
			p.apply()
		}
		if p.invalid != nil {
			imgui.TextColored(errorColor, p.invalid.Error())
		}
		if imgui.Button("Defaults") {
			p.draft = arcade.DefaultTuning()
			p.apply()
		}
		imgui.TreePop()
	}
}

// apply copies the draft into the world only when it validates.
func (p *ControlPanel) apply() {
	p.invalid = p.draft.Validate()
	if p.invalid == nil {
		*p.world.Tuning() = p.draft
	}
}

func (p *ControlPanel) Item() debugui.ImguiItem {
	return debugui.ImguiItem{Render: p.Render}
}
