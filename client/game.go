// Package client hosts an arcade.World in an Ebiten window: it samples the
// mouse, feeds frame times, draws the sprites and optionally the debug UI.
package client

import (
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/stardodge/arcade"
	"github.com/plus3/stardodge/ecs"
	"github.com/plus3/stardodge/ecs/debugui"
	debugui_ebiten "github.com/plus3/stardodge/ecs/debugui/ebiten"
)

// Options configures a Game.
type Options struct {
	Title         string
	Width, Height int
	Debug         bool // build the ImGui overlay, toggled with F3
}

// Game implements ebiten.Game.
type Game struct {
	world  *arcade.World
	render *ecs.Scheduler
	screen *ecs.Singleton[Screen]

	overlay     *debugui_ebiten.Overlay
	showOverlay bool

	last time.Time
}

func NewGame(world *arcade.World, opts Options) *Game {
	g := &Game{
		world:  world,
		render: ecs.NewScheduler(world.Storage),
		screen: ecs.NewSingleton[Screen](world.Storage),
	}
	rng := rand.New(rand.NewPCG(world.Seed(), 0))
	g.render.Register(&RenderSystem{Atlas: NewAtlas(rng)})

	if opts.Debug {
		backend := debugui_ebiten.NewImguiBackend(opts.Title, opts.Width, opts.Height)
		ui := debugui.NewStorage()
		debugui.SpawnDebugUI(ui, world.Storage,
			debugui.NamedScheduler{Name: "FixedUpdate", Scheduler: world.Fixed},
			debugui.NamedScheduler{Name: "Update", Scheduler: world.Frame},
			debugui.NamedScheduler{Name: "Render", Scheduler: g.render},
		)
		ui.Spawn(NewControlPanel(world).Item())
		g.overlay = debugui_ebiten.NewOverlay(backend, ui)
		g.showOverlay = true
	}
	g.last = time.Now()
	return g
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	captured := false
	if g.overlay != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
			g.showOverlay = !g.showOverlay
		}
		if g.showOverlay {
			g.overlay.Update()
			captured = g.overlay.InputState().WantCaptureMouse
		}
	}

	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !captured
	g.world.SetPointer(g.world.Window().PointerAt(float64(x), float64(y), pressed))

	now := time.Now()
	g.world.Advance(now.Sub(g.last))
	g.last = now
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Get().Image = screen
	g.render.Once(0)
	if g.overlay != nil && g.showOverlay {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.world.SetWindow(float64(outsideWidth), float64(outsideHeight))
	if g.overlay != nil {
		g.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
