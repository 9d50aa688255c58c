package debugui

import "github.com/plus3/stardodge/ecs"

// SpawnDebugUI spawns the performance, entity browser and inspector windows
// into ui, all watching target.
func SpawnDebugUI(ui *ecs.Storage, target *ecs.Storage, schedulers ...NamedScheduler) {
	selection := &Selection{}
	ui.Spawn(NewPerformanceStats(120, target, schedulers...).Item())
	ui.Spawn(NewEntityBrowser(target, selection, 50).Item())
	ui.Spawn(NewComponentInspector(target, selection).Item())
}
