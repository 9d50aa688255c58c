package ecs_test

import (
	"fmt"
	"time"

	"github.com/plus3/stardodge/ecs"
)

type Score struct {
	Points int
}

// ScoreSystem awards a point for every beacon and removes it.
type ScoreSystem struct {
	Beacons ecs.Query[struct {
		ecs.EntityId
		*Beacon
	}]
	Score ecs.Singleton[Score]
}

func (s *ScoreSystem) Execute(frame *ecs.UpdateFrame) {
	for id := range s.Beacons.Iter() {
		s.Score.Get().Points++
		frame.Commands.Delete(id)
	}
}

// ExampleScheduler shows a system with a query and a singleton, and that
// deletes queued through Commands land after the frame.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Beacon](registry)
	ecs.RegisterComponent[Position](registry)

	storage := ecs.NewStorage(registry)
	score := ecs.NewSingleton[Score](storage)

	storage.Spawn(Beacon{}, Position{X: 1})
	storage.Spawn(Beacon{}, Position{X: 2})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&ScoreSystem{})
	scheduler.Once(0)

	fmt.Printf("points=%d entities=%d\n", score.Get().Points, storage.EntityCount())
	// Output:
	// points=2 entities=0
}

// ExampleFixedClock runs a schedule at 100 Hz from uneven frame times and
// reports the interpolation fraction left over.
func ExampleFixedClock() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	scheduler := ecs.NewScheduler(storage)
	clock := ecs.NewFixedClock(scheduler, 10*time.Millisecond)

	for _, frame := range []time.Duration{16 * time.Millisecond, 16 * time.Millisecond, 3 * time.Millisecond} {
		ticks := clock.Advance(frame)
		fmt.Printf("ticks=%d overstep=%.1f\n", ticks, clock.Time().OverstepFraction())
	}
	// Output:
	// ticks=1 overstep=0.6
	// ticks=2 overstep=0.2
	// ticks=0 overstep=0.5
}

// ExampleView_optional reads an optional component.
func ExampleView_optional() {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Position{X: 1}, Callsign("comet"))

	view := ecs.NewView[struct {
		*Position
		Name *Callsign `ecs:"optional"`
	}](storage)

	for item := range view.Values() {
		fmt.Println(item.Position.X, *item.Name)
	}
	// Output:
	// 1 comet
}
