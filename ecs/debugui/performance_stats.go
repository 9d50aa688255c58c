package debugui

import (
	"fmt"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stardodge/ecs"
)

// NamedScheduler labels a scheduler in the timings table.
type NamedScheduler struct {
	Name      string
	Scheduler *ecs.Scheduler
}

// PerformanceStats is the "Performance" window: frame times, storage
// occupancy and per-system timings of the watched schedulers.
type PerformanceStats struct {
	storage    *ecs.Storage
	schedulers []NamedScheduler
	timer      *FrameTimer

	history []float32 // ms, ring buffer
	index   int
	filled  int
}

func NewPerformanceStats(historyFrames int, storage *ecs.Storage, schedulers ...NamedScheduler) *PerformanceStats {
	return &PerformanceStats{
		storage:    storage,
		schedulers: schedulers,
		timer:      NewFrameTimer(),
		history:    make([]float32, max(historyFrames, 1)),
	}
}

// Record adds one frame time sample.
func (ps *PerformanceStats) Record(frame time.Duration) {
	ps.history[ps.index] = float32(frame.Seconds() * 1000)
	ps.index = (ps.index + 1) % len(ps.history)
	ps.filled = min(ps.filled+1, len(ps.history))
}

// AverageFrameTime returns the mean of the recorded samples in ms.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	if ps.filled == 0 {
		return 0
	}
	var total float32
	for _, ft := range ps.history[:ps.filled] {
		total += ft
	}
	return total / float32(ps.filled)
}

func (ps *PerformanceStats) Render() {
	ps.Record(ps.timer.Delta())

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 120), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 420), imgui.CondOnce)
	if !imgui.BeginV("Performance", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := ps.storage.CollectStats()
	imgui.Text(fmt.Sprintf("Entities: %d", stats.TotalEntityCount))
	imgui.Text(fmt.Sprintf("Archetypes: %d", stats.ArchetypeCount))
	imgui.Text(fmt.Sprintf("Singletons: %d", stats.SingletonCount))

	avg := ps.AverageFrameTime()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.history[0], int32(len(ps.history)))

	for _, named := range ps.schedulers {
		if imgui.TreeNodeStr(named.Name) {
			renderSystemTable(named.Name, named.Scheduler.GetStats())
			imgui.TreePop()
		}
	}

	if imgui.TreeNodeStr("Archetypes") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ArchetypeTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("ID")
			imgui.TableSetupColumn("Components")
			imgui.TableSetupColumn("Entities")
			imgui.TableHeadersRow()

			for _, arch := range stats.ArchetypeBreakdown {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("0x%X", arch.ID))
				imgui.TableNextColumn()
				imgui.Text(shortTypeNames(arch.ComponentTypes))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
			}
			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Singletons") {
		for _, singletonType := range stats.SingletonTypes {
			imgui.BulletText(singletonType)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func renderSystemTable(id string, stats *ecs.SchedulerStats) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSizingFixedFit
	if !imgui.BeginTableV(id+"Systems", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}
	imgui.TableSetupColumn("System")
	imgui.TableSetupColumn("Runs")
	imgui.TableSetupColumn("Avg")
	imgui.TableSetupColumn("Max")
	imgui.TableHeadersRow()

	for _, system := range stats.Systems {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(system.Name)
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%d", system.ExecutionCount))
		imgui.TableNextColumn()
		imgui.Text(system.AvgDuration.String())
		imgui.TableNextColumn()
		imgui.Text(system.MaxDuration.String())
	}
	imgui.EndTable()
}

// shortTypeNames drops package qualifiers: "arcade.Transform, arcade.Star"
// becomes "Transform, Star".
func shortTypeNames(names []string) string {
	short := make([]string, len(names))
	for i, name := range names {
		if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
			name = name[dot+1:]
		}
		short[i] = name
	}
	return strings.Join(short, ", ")
}

// Item wraps the panel for spawning into a UI storage.
func (ps *PerformanceStats) Item() ImguiItem {
	return ImguiItem{Render: ps.Render}
}

type FrameTimer struct {
	last time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{last: time.Now()}
}

// Delta returns the time since the previous call.
func (ft *FrameTimer) Delta() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.last)
	ft.last = now
	return delta
}
