package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Games    int
	Seed     uint64

	// Results
	TotalTime      time.Duration
	Totals         GameResult
	Violation      string
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
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

// KindCount pairs a piece kind with how often it spawned.
type KindCount struct {
	Kind  tetris.Kind
	Count int
}

func (r *Report) SpawnCounts() []KindCount {
	out := make([]KindCount, 0, len(tetris.Kinds))
	for i, k := range tetris.Kinds {
		out = append(out, KindCount{Kind: k, Count: r.Totals.Spawned[i]})
	}
	return out
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Parallel Games:** {{.Games}}
- **Base Seed:** {{.Seed}}

## Results
{{- if .Violation}}
- **INVARIANT VIOLATION:** {{.Violation}}
{{- else}}
- **Invariants:** held
{{- end}}
- **Total Frames:** {{.Totals.Frames}}
- **Commands Applied:** {{.Totals.Commands}}
- **Total Test Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.Totals.FrameTime.Avg}}
  - **Min:** {{.Totals.FrameTime.Min}}
  - **Max:** {{.Totals.FrameTime.Max}}

## Gameplay
- **Locks:** {{.Totals.Locks}}
- **Lines:** {{.Totals.Lines}}
- **Game Overs:** {{.Totals.GameOvers}}
- **Top Score:** {{.Totals.TopScore}}
- **Max Level:** {{.Totals.MaxLevel}}
- **Clears (1/2/3/4 rows):** {{index .Totals.Clears 0}} / {{index .Totals.Clears 1}} / {{index .Totals.Clears 2}} / {{index .Totals.Clears 3}}
- **Spawns:**{{range .SpawnCounts}} {{.Kind}}={{.Count}}{{end}}

## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Heap In Use:** {{mb .MemStatsEnd.HeapInuse}} MiB
{{end}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
