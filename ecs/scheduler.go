package ecs

import (
	"context"
	"reflect"
	"time"
)

// System is one step of a schedule. Systems are usually pointers to structs
// whose Query and Singleton fields are bound by the Scheduler and whose other
// fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is what a system sees for one run of its schedule.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}

// ApplyDeferred flushes the commands queued so far in the frame, making
// spawns and deletes visible to the systems registered after it.
type ApplyDeferred struct{}

func (ApplyDeferred) Execute(frame *UpdateFrame) {
	frame.Commands.Flush(frame.Storage)
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

// Scheduler runs its systems in registration order.
type Scheduler struct {
	storage *Storage
	systems []System
	stats   []SystemStats
}

// NewScheduler creates a scheduler over storage.
func NewScheduler(storage *Storage) *Scheduler {
	return &Scheduler{storage: storage}
}

// Storage returns the storage the scheduler binds systems to.
func (s *Scheduler) Storage() *Storage {
	return s.storage
}

// Register binds the system's fields and appends it to the run order.
func (s *Scheduler) Register(system System) {
	s.Prepare(system)
	s.systems = append(s.systems, system)
	s.stats = append(s.stats, SystemStats{
		Name:        systemName(system),
		MinDuration: time.Duration(1<<63 - 1),
	})
}

// storageBinder is implemented by *Query[T] and *Singleton[T].
type storageBinder interface {
	Init(storage *Storage)
}

// Prepare binds the Query and Singleton fields of system without adding it
// to the run order. Use it for systems run through Commands.RunSystem.
func (s *Scheduler) Prepare(system System) {
	v := reflect.ValueOf(system)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		if !field.CanSet() || field.Kind() != reflect.Struct {
			continue
		}
		if binder, ok := field.Addr().Interface().(storageBinder); ok {
			binder.Init(s.storage)
		}
	}
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Once runs every system once with dt, then flushes remaining commands.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.storage)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := &s.stats[i]
		stats.ExecutionCount++
		stats.LastDuration = duration
		stats.TotalDuration += duration
		stats.MinDuration = min(stats.MinDuration, duration)
		stats.MaxDuration = max(stats.MaxDuration, duration)
	}

	frame.Commands.Flush(s.storage)
}

// Run calls Once every interval until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			s.Once(dt)
		}
	}
}

// GetStats returns a snapshot of per-system timings.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Systems:     make([]SystemStats, len(s.stats)),
	}

	for i, st := range s.stats {
		if st.ExecutionCount > 0 {
			st.AvgDuration = st.TotalDuration / time.Duration(st.ExecutionCount)
		}
		stats.Systems[i] = st
		stats.TotalExecutions += st.ExecutionCount
	}
	return stats
}
