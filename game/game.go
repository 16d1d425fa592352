// Package game runs the snake simulation as a set of phases on the engine
// scheduler: input every frame, then movement, eating, growth and game over
// on the movement clock, and food spawning on its own slower clock.
package game

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/snake/engine"
	"github.com/plus3/snake/snake"
)

// Tuning holds the knobs that may change while a game runs. Edits take
// effect on the next Update.
type Tuning struct {
	MoveEvery  time.Duration
	SpawnEvery time.Duration
	// MaxCatchUp bounds how many movement ticks a single slow frame may run.
	MaxCatchUp int
}

// Game is one play session.
type Game struct {
	id        uuid.UUID
	state     *State
	scheduler *engine.Scheduler
	moveStep  *engine.Timestep
	spawnStep *engine.Timestep
	tuning    Tuning
}

// New builds a game polling input for steering. A nil input leaves the snake
// heading wherever it spawned.
func New(cfg Config, input Input) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sim, err := snake.New(cfg.Sim)
	if err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}

	g := &Game{
		id:        uuid.New(),
		state:     &State{Sim: sim, Logger: logger},
		scheduler: engine.NewScheduler(),
		moveStep:  engine.NewTimestep(cfg.MoveEvery),
		spawnStep: engine.NewTimestep(cfg.SpawnEvery),
	}
	g.tuning = Tuning{
		MoveEvery:  cfg.MoveEvery,
		SpawnEvery: cfg.SpawnEvery,
		MaxCatchUp: g.moveStep.MaxCatchUp,
	}

	st := g.state
	g.scheduler.Register(&InputSystem{State: st, Input: input})
	g.scheduler.RegisterFixed(g.moveStep,
		&MovementSystem{State: st},
		&EatingSystem{State: st},
		&GrowthSystem{State: st},
		&GameOverSystem{State: st},
	)
	g.scheduler.RegisterFixed(g.spawnStep, &FoodSpawnSystem{State: st})

	return g, nil
}

// Register adds a system that runs every frame after the snake phases, such
// as a renderer or debug overlay.
func (g *Game) Register(system engine.System) {
	g.scheduler.Register(system)
}

// Update advances the game by dt seconds of wall time.
func (g *Game) Update(dt float64) {
	g.applyTuning()
	g.state.Events = Events{}
	g.scheduler.Once(dt)
}

func (g *Game) applyTuning() {
	if g.tuning.MoveEvery > 0 && g.tuning.MoveEvery != g.moveStep.Period() {
		g.moveStep.SetPeriod(g.tuning.MoveEvery)
	}
	if g.tuning.SpawnEvery > 0 && g.tuning.SpawnEvery != g.spawnStep.Period() {
		g.spawnStep.SetPeriod(g.tuning.SpawnEvery)
	}
	if g.tuning.MaxCatchUp > 0 {
		g.moveStep.MaxCatchUp = g.tuning.MaxCatchUp
		g.spawnStep.MaxCatchUp = g.tuning.MaxCatchUp
	}
}

// Load installs a board state, for replays and tests.
func (g *Game) Load(snap snake.Snapshot) error {
	return g.state.Sim.Load(snap)
}

func (g *Game) Snapshot() snake.Snapshot { return g.state.Sim.Snapshot() }

// Events returns the signals raised during the most recent Update. A frame
// without a movement tick reports none.
func (g *Game) Events() Events { return g.state.Events }

// Stats returns per-phase execution statistics.
func (g *Game) Stats() *engine.SchedulerStats { return g.scheduler.GetStats() }

// ID identifies this session in logs and reports.
func (g *Game) ID() uuid.UUID { return g.id }

// Tuning returns the live tuning values for editing.
func (g *Game) Tuning() *Tuning { return &g.tuning }

// Sim exposes the underlying simulation for read-only inspection.
func (g *Game) Sim() *snake.Sim { return g.state.Sim }
