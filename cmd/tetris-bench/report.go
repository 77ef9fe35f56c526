package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/tetris/tetris"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Games    int
	Frame    time.Duration
	Seed     uint64

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	GameTime       time.Duration
	UpdateTime     Stats
	Results        Results
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
	s.Min, s.Max = s.Samples[0], s.Samples[0]
	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Results tallies finished games.
type Results struct {
	Games        int
	Lines        int
	BestScore    int
	BestLevel    int
	TotalScore   int
	PiecesInPlay int
}

func (r *Results) add(m tetris.MatchResult) {
	r.Games++
	r.Lines += m.Lines
	r.TotalScore += m.Score
	r.BestScore = max(r.BestScore, m.Score)
	r.BestLevel = max(r.BestLevel, m.Level)
}

func (r Results) AvgScore() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalScore) / float64(r.Games)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Tetris Bench Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Engines:** {{.Games}}
- **Frame:** {{.Frame}}
- **Seed:** {{.Seed}}

## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Game Time per Engine:** {{.GameTime}}
- **Update Time (all engines):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Games
- **Finished:** {{.Results.Games}}
- **Lines Cleared:** {{.Results.Lines}}
- **Best Score:** {{.Results.BestScore}} (level {{.Results.BestLevel}})
- **Avg Score:** {{printf "%.1f" .Results.AvgScore}}
- **Pieces Locked in Running Games:** {{.Results.PiecesInPlay}}

## Memory Usage (MiB)
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc)}}
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{mb (bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc)}}
- Sys Memory:     {{mb .MemStatsStart.Sys}} (start) -> {{mb .MemStatsEnd.Sys}} (end)
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{ns .MemStatsEnd.PauseTotalNs}}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
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
