package ecs_test

import (
	"reflect"
	"testing"

	"github.com/plus3/stardodge/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spawnDebrisSystem struct {
	count int
}

func (s *spawnDebrisSystem) Execute(frame *ecs.UpdateFrame) {
	for i := 0; i < s.count; i++ {
		frame.Commands.Spawn(Position{X: float64(i)}, Debris{})
	}
}

type countDebrisSystem struct {
	Debris ecs.Query[struct{ *Debris }]
	seen   []int
}

func (s *countDebrisSystem) Execute(frame *ecs.UpdateFrame) {
	s.seen = append(s.seen, s.Debris.Count())
}

type clearDebrisSystem struct {
	Debris ecs.Query[struct {
		ecs.EntityId
		*Debris
	}]
}

func (s *clearDebrisSystem) Execute(frame *ecs.UpdateFrame) {
	for id := range s.Debris.Iter() {
		frame.Commands.Delete(id)
		frame.Commands.Delete(id)
	}
}

type resetSystem struct {
	Everything ecs.Query[struct {
		ecs.EntityId
		*Position
	}]
	runs int
}

func (s *resetSystem) Execute(frame *ecs.UpdateFrame) {
	s.runs++
	for id := range s.Everything.Iter() {
		frame.Commands.Delete(id)
	}
	frame.Commands.Spawn(Position{}, Beacon{})
}

func TestCommandsAreDeferredUntilFlush(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	counter := &countDebrisSystem{}
	scheduler.Register(&spawnDebrisSystem{count: 3})
	scheduler.Register(counter)

	scheduler.Once(0)
	scheduler.Once(0)

	assert.Equal(t, []int{0, 3}, counter.seen)
	assert.Equal(t, 6, storage.EntityCount())
}

func TestApplyDeferredFlushesMidFrame(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	counter := &countDebrisSystem{}
	scheduler.Register(&spawnDebrisSystem{count: 2})
	scheduler.Register(ecs.ApplyDeferred{})
	scheduler.Register(counter)

	scheduler.Once(0)
	assert.Equal(t, []int{2}, counter.seen)
}

func TestDuplicateDeletesAreApplied(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	storage.Spawn(Position{}, Debris{})
	storage.Spawn(Position{}, Debris{})
	keep := storage.Spawn(Position{})

	scheduler.Register(&clearDebrisSystem{})
	scheduler.Once(0)

	assert.Equal(t, 1, storage.EntityCount())
	assert.True(t, storage.Alive(keep))
}

func TestFlushOrder(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	doomed := storage.Spawn(Position{X: 1})
	grows := storage.Spawn(Position{X: 2})
	shrinks := storage.Spawn(Position{X: 3}, Velocity{DX: 1})

	commands := newFlushCommands(t, storage)
	var order []string
	commands.AddComponent(doomed, Velocity{})
	commands.Delete(doomed)
	commands.AddComponent(grows, Hull{Current: 1})
	commands.RemoveComponent(shrinks, reflect.TypeFor[Velocity]())
	commands.Defer(func() {
		order = append(order, "defer")
		assert.Equal(t, 3, storage.EntityCount(), "spawn applied before deferred functions")
	})
	commands.Spawn(Callsign("new"))
	commands.Flush(storage)

	assert.Equal(t, []string{"defer"}, order)
	assert.False(t, storage.Alive(doomed))

	hulls := ecs.NewQuery[struct{ *Hull }](storage)
	assert.Equal(t, 1, hulls.Count())
	velocities := ecs.NewQuery[struct{ *Velocity }](storage)
	assert.Equal(t, 0, velocities.Count())
	assert.True(t, commands.Empty())
}

func TestRunSystemRunsOncePerFlush(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	scheduler := ecs.NewScheduler(storage)

	storage.Spawn(Position{X: 1})
	storage.Spawn(Position{X: 2})

	reset := &resetSystem{}
	scheduler.Prepare(reset)

	commands := newFlushCommands(t, storage)
	commands.RunSystem(reset)
	commands.RunSystem(reset)
	commands.Flush(storage)

	assert.Equal(t, 1, reset.runs)
	require.Equal(t, 1, storage.EntityCount())
	beacons := ecs.NewQuery[struct{ *Beacon }](storage)
	assert.Equal(t, 1, beacons.Count())
}

// newFlushCommands gets a Commands buffer by capturing the one handed to a system.
func newFlushCommands(t *testing.T, storage *ecs.Storage) *ecs.Commands {
	t.Helper()
	var captured *ecs.Commands
	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(captureSystem(func(frame *ecs.UpdateFrame) {
		captured = frame.Commands
	}))
	scheduler.Once(0)
	require.NotNil(t, captured)
	return captured
}

type captureSystem func(frame *ecs.UpdateFrame)

func (f captureSystem) Execute(frame *ecs.UpdateFrame) { f(frame) }
