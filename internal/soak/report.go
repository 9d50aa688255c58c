package soak

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/stardodge/ecs"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	TickLimit int
	Seed      uint64

	// Results
	TotalTicks    int
	TotalTime     time.Duration
	TickTime      Stats
	Runs          int
	Best          int
	FinalScore    int
	PeakEntities  int
	Archetypes    int
	Systems       []ecs.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Headroom is how many ticks of the average cost fit into one step.
func (r *Report) Headroom(step time.Duration) float64 {
	if r.TickTime.Avg <= 0 {
		return 0
	}
	return float64(step) / float64(r.TickTime.Avg)
}

const reportTemplate = `
# Stardodge Soak Report

## Configuration
- **Seed:** {{.Seed}}
- **Duration Limit:** {{.Duration}}
- **Tick Limit:** {{.TickLimit}}

## Simulation
- **Ticks:** {{.TotalTicks}} in {{.TotalTime}}
- **Runs Ended:** {{.Runs}}
- **Best Score:** {{.Best}}
- **Score At Stop:** {{.FinalScore}}
- **Peak Entities:** {{.PeakEntities}} across {{.Archetypes}} archetypes

## Tick Time
- **Avg:** {{.TickTime.Avg}}
- **Min:** {{.TickTime.Min}}
- **Max:** {{.TickTime.Max}}
- **Headroom at 64 Hz:** {{headroom .}}x

## Systems
| System | Runs | Avg | Max |
|---|---|---|---|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}

## Memory Usage
- Heap Alloc:  {{mb .MemStatsStart.HeapAlloc}} MB -> {{mb .MemStatsEnd.HeapAlloc}} MB
- Total Alloc: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}} MB during the run
- Num GC:      {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
- GC Pause:    {{ns (bsub .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs)}}
`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) uint64 {
			if a < b {
				return 0
			}
			return a - b
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
		"headroom": func(r *Report) string {
			return fmt.Sprintf("%.0f", r.Headroom(time.Second/64))
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
