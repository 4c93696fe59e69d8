package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/puckstick/ecs"
)

type Report struct {
	// Configuration
	Policy    string
	Seed      int64
	Sessions  int
	MaxTicks  uint64
	Collision string

	// Results
	Results   []Result
	Ended     int
	MinTicks  uint64
	MaxPlayed uint64
	AvgTicks  float64
	TotalTime time.Duration
	TickTime  Stats
	Systems   []ecs.SystemStats
}

type Result struct {
	Session       int
	Ticks         uint64
	WallBounces   int
	PaddleBounces int
	Ended         bool
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

func (r *Report) summarize() {
	if len(r.Results) == 0 {
		return
	}

	var total uint64
	r.MinTicks = r.Results[0].Ticks
	for _, res := range r.Results {
		if res.Ended {
			r.Ended++
		}
		r.MinTicks = min(r.MinTicks, res.Ticks)
		r.MaxPlayed = max(r.MaxPlayed, res.Ticks)
		total += res.Ticks
	}
	r.AvgTicks = float64(total) / float64(len(r.Results))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Puckstick Simulation Report

## Configuration
- **Policy:** {{.Policy}}{{if eq .Policy "random"}} (seed {{.Seed}}){{end}}
- **Sessions:** {{.Sessions}}
- **Tick Limit:** {{if .MaxTicks}}{{.MaxTicks}}{{else}}none{{end}}
- **Collision:** {{.Collision}}

## Sessions
| # | Ticks | Wall | Paddle | Result |
|---|------:|-----:|-------:|--------|
{{- range .Results}}
| {{.Session}} | {{.Ticks}} | {{.WallBounces}} | {{.PaddleBounces}} | {{if .Ended}}game over{{else}}tick limit{{end}} |
{{- end}}

## Summary
- **Game Overs:** {{.Ended}} of {{len .Results}}
- **Ticks:** min {{.MinTicks}}, max {{.MaxPlayed}}, avg {{printf "%.1f" .AvgTicks}}
- **Total Time:** {{.TotalTime}}
- **Tick Time:**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Systems
| System | Runs | Avg | Max |
|--------|-----:|----:|----:|
{{- range .Systems}}
| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MaxDuration}} |
{{- end}}
`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
