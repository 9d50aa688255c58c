// Package soak drives an arcade.World headlessly with a scripted pointer and
// reports tick timings, memory use and per-system stats.
package soak

import (
	"context"
	"log"
	"math"
	"runtime"
	"time"

	"github.com/plus3/stardodge/arcade"
	"github.com/plus3/stardodge/ecs"
	"github.com/plus3/stardodge/geom"
)

// Config bounds a soak run. The run stops at whichever of Duration and
// Ticks is reached first; a zero value disables that bound.
type Config struct {
	Duration time.Duration
	Ticks    int
	Seed     uint64
	Tuning   arcade.Tuning
	Width    float64
	Height   float64
}

// Pilot scripts the pointer: it circles the centre and thrusts in bursts of
// one second every two.
type Pilot struct {
	Radius float64
	Rate   float64 // radians per tick
	Burst  int     // ticks per thrust/coast phase
}

func DefaultPilot() Pilot {
	return Pilot{Radius: 200, Rate: 0.02, Burst: 64}
}

// Pointer returns the pointer state for tick.
func (p Pilot) Pointer(tick int) arcade.Pointer {
	a := float64(tick) * p.Rate
	pressed := p.Burst <= 0 || (tick/p.Burst)%2 == 0
	return arcade.Pointer{
		Position: geom.V(math.Cos(a), math.Sin(a)).Scale(p.Radius),
		Inside:   true,
		Pressed:  pressed,
	}
}

// Run ticks a fresh world until ctx is done or a bound in cfg is reached.
func Run(ctx context.Context, cfg Config, pilot Pilot) *Report {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 1280, 720
	}
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	report := &Report{
		Duration:  cfg.Duration,
		TickLimit: cfg.Ticks,
	}
	world := arcade.NewWorld(arcade.Options{
		Tuning: cfg.Tuning,
		Seed:   cfg.Seed,
		OnGameOver: func(score int, record bool) {
			report.Runs++
		},
	})
	world.SetWindow(cfg.Width, cfg.Height)
	report.Seed = world.Seed()

	runtime.ReadMemStats(&report.MemStatsStart)
	start := time.Now()

Loop:
	for tick := 0; cfg.Ticks <= 0 || tick < cfg.Ticks; tick++ {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}
		world.SetPointer(pilot.Pointer(tick))

		tickStart := time.Now()
		world.Tick()
		report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
		report.TotalTicks++
		report.PeakEntities = max(report.PeakEntities, world.Storage.EntityCount())
	}

	report.TotalTime = time.Since(start)
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Best = world.Session().Best
	report.FinalScore = world.Score()
	report.Archetypes = len(world.Storage.Archetypes())
	report.Systems = systemRows(world.Fixed.GetStats())
	log.Printf("[soak] %d ticks in %v, %d runs ended", report.TotalTicks, report.TotalTime, report.Runs)
	return report
}

func systemRows(stats *ecs.SchedulerStats) []ecs.SystemStats {
	rows := make([]ecs.SystemStats, 0, len(stats.Systems))
	for _, s := range stats.Systems {
		if s.ExecutionCount > 0 {
			rows = append(rows, s)
		}
	}
	return rows
}
