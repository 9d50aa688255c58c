package arcade

import (
	"log"
	"math/rand/v2"
	"time"

	"github.com/plus3/stardodge/ecs"
)

// DefaultStep is the fixed simulation step, 64 ticks per second.
const DefaultStep = time.Second / 64

// Options configures a World.
type Options struct {
	Tuning Tuning // DefaultTuning when zero
	Step   time.Duration // fixed step, DefaultStep when zero
	Seed   uint64        // random when zero
	Best   int           // best score carried in from a previous session

	// OnGameOver is called from the fixed tick that ends a run.
	OnGameOver GameOverFunc
}

// World owns the storage and schedules of one game. It never touches the
// window itself: the host feeds it the window size, the pointer and frame
// times.
type World struct {
	Storage *ecs.Storage
	Fixed   *ecs.Scheduler // runs every fixed tick
	Frame   *ecs.Scheduler // runs once per Advance after the fixed ticks

	clock   *ecs.FixedClock
	reset   *ResetGameSystem
	seed    uint64
	score   *ecs.Singleton[StarScore]
	session *ecs.Singleton[Session]
	window  *ecs.Singleton[Window]
	pointer *ecs.Singleton[Pointer]
	tuning  *ecs.Singleton[Tuning]
}

// NewRegistry registers every component the simulation spawns.
func NewRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Spaceship](registry)
	ecs.RegisterComponent[Asteroid](registry)
	ecs.RegisterComponent[Star](registry)
	ecs.RegisterComponent[ScoreText](registry)
	ecs.RegisterComponent[BestText](registry)
	ecs.RegisterComponent[HasDrag](registry)
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[CurrentPosition](registry)
	ecs.RegisterComponent[TargetPosition](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Sprite](registry)
	ecs.RegisterComponent[Text](registry)
	return registry
}

// NewWorld builds the storage, runs startup and wires the schedules.
func NewWorld(opts Options) *World {
	if opts.Step <= 0 {
		opts.Step = DefaultStep
	}
	if opts.Seed == 0 {
		opts.Seed = rand.Uint64()
	}
	if opts.Tuning == (Tuning{}) {
		opts.Tuning = DefaultTuning()
	}

	storage := ecs.NewStorage(NewRegistry())
	w := &World{
		Storage: storage,
		Fixed:   ecs.NewScheduler(storage),
		Frame:   ecs.NewScheduler(storage),
		seed:    opts.Seed,
		score:   ecs.NewSingleton[StarScore](storage),
		session: ecs.NewSingleton(storage, Session{Best: opts.Best}),
		window:  ecs.NewSingleton[Window](storage),
		pointer: ecs.NewSingleton[Pointer](storage),
		tuning:  ecs.NewSingleton(storage, opts.Tuning),
	}
	ecs.NewSingleton(storage, NewRng(opts.Seed))

	w.reset = &ResetGameSystem{onGameOver: opts.OnGameOver}
	w.Fixed.Prepare(w.reset)
	ecs.NewSingleton(storage, ResetGame{System: w.reset})

	startup := ecs.NewScheduler(storage)
	startup.Register(&SetupSystem{})
	startup.Once(0)

	w.Fixed.Register(&DestroyAsteroidsSystem{})
	w.Fixed.Register(ecs.ApplyDeferred{})
	w.Fixed.Register(&SpawnAsteroidsSystem{})
	w.Fixed.Register(&SpawnStarsSystem{})
	w.Fixed.Register(ecs.ApplyDeferred{})
	w.Fixed.Register(&PlayerInputSystem{})
	w.Fixed.Register(&MoveObjectsSystem{})
	w.Fixed.Register(&CollectStarsSystem{})
	w.Fixed.Register(ecs.ApplyDeferred{})
	w.Fixed.Register(&UpdateScoreboardSystem{})
	w.Fixed.Register(&CheckCollisionSystem{})
	w.Fixed.Register(&ApplyDragSystem{})
	w.clock = ecs.NewFixedClock(w.Fixed, opts.Step)

	w.Frame.Register(&InterpolateSystem{})

	log.Printf("[arcade] world ready: step=%v seed=%d", opts.Step, opts.Seed)
	return w
}

// Advance feeds one frame of real time: zero or more fixed ticks, then the
// frame schedule. It returns the number of fixed ticks run.
func (w *World) Advance(frame time.Duration) int {
	ticks := w.clock.Advance(frame)
	w.Frame.Once(frame.Seconds())
	return ticks
}

// Tick runs exactly one fixed tick followed by the frame schedule.
func (w *World) Tick() {
	w.clock.Step()
	w.Frame.Once(0)
}

// Reset ends the current run as a collision would.
func (w *World) Reset() {
	commands := &ecs.Commands{}
	commands.RunSystem(w.reset)
	commands.Flush(w.Storage)
}

func (w *World) SetWindow(width, height float64) {
	*w.window.Get() = Window{Width: width, Height: height}
}

func (w *World) Window() Window {
	return *w.window.Get()
}

func (w *World) SetPointer(pointer Pointer) {
	*w.pointer.Get() = pointer
}

// Score returns the current run's score.
func (w *World) Score() int {
	return w.score.Get().Value
}

func (w *World) Session() Session {
	return *w.session.Get()
}

// Tuning returns the live constants. Changes apply from the next tick.
func (w *World) Tuning() *Tuning {
	return w.tuning.Get()
}

func (w *World) Clock() *ecs.FixedClock {
	return w.clock
}

func (w *World) Seed() uint64 {
	return w.seed
}
