package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/snake/engine"
	"github.com/plus3/snake/game"
)

type Report struct {
	// Configuration
	Session  string
	Config   game.Config
	Duration time.Duration
	FPS      int

	// Results
	Frames      int64
	Interrupted bool
	TotalTime   time.Duration
	UpdateTime  Stats
	Games       int
	Best        int
	Longest     int
	WallDeaths  int
	SelfDeaths  int
	Phases      []engine.SystemStats
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

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Snake Soak Report

## Session
- **ID:** {{.Session}}
- **Arena:** {{.Config.Sim.Arena.Width}}x{{.Config.Sim.Arena.Height}} (border {{.Config.Sim.Arena.Border}})
- **Food:** up to {{.Config.Sim.FoodLimit}}, {{.Config.Sim.Placement}}
- **Ticks:** move every {{.Config.MoveEvery}}, spawn every {{.Config.SpawnEvery}}
- **Game Time:** {{.Duration}} at {{.FPS}} fps{{if .Interrupted}} (interrupted){{end}}

## Play
- **Frames:** {{.Frames}}
- **Games Over:** {{.Games}} ({{.WallDeaths}} wall, {{.SelfDeaths}} self)
- **Best Score:** {{.Best}}
- **Longest Snake:** {{.Longest}}

## Performance
- **Total Wall Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Phases
{{range .Phases}}- {{.Name}} every {{every .Period}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}`

	fm := template.FuncMap{
		"every": func(d time.Duration) string {
			if d == 0 {
				return "frame"
			}
			return d.String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
