package engine_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/snake/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordSystem struct {
	name  string
	log   *[]string
	dts   []float64
	steps []int
}

func (s *recordSystem) Execute(frame *engine.Frame) {
	*s.log = append(*s.log, s.name)
	s.dts = append(s.dts, frame.DeltaTime)
	s.steps = append(s.steps, frame.Step)
}

type deferSystem struct {
	log *[]string
}

func (s *deferSystem) Execute(frame *engine.Frame) {
	frame.Commands.Defer(func() {
		*s.log = append(*s.log, "deferred")
	})
}

func TestScheduler(t *testing.T) {
	t.Run("every frame systems run in registration order", func(t *testing.T) {
		var log []string
		scheduler := engine.NewScheduler()
		scheduler.Register(&recordSystem{name: "input", log: &log})
		scheduler.Register(&recordSystem{name: "render", log: &log})

		scheduler.Once(1.0 / 60.0)
		scheduler.Once(1.0 / 60.0)

		assert.Equal(t, []string{"input", "render", "input", "render"}, log)
	})

	t.Run("fixed stage runs once per elapsed period", func(t *testing.T) {
		var log []string
		scheduler := engine.NewScheduler()
		scheduler.Register(&recordSystem{name: "input", log: &log})
		move := &recordSystem{name: "move", log: &log}
		scheduler.RegisterFixed(engine.NewTimestep(250*time.Millisecond), move)

		scheduler.Once(0.125)
		assert.Equal(t, []string{"input"}, log)

		scheduler.Once(0.125)
		assert.Equal(t, []string{"input", "input", "move"}, log)
		assert.Equal(t, []float64{0.25}, move.dts)
	})

	t.Run("fixed stages keep phase across uneven frames", func(t *testing.T) {
		var log []string
		step := engine.NewTimestep(500 * time.Millisecond)
		scheduler := engine.NewScheduler()
		move := &recordSystem{name: "move", log: &log}
		scheduler.RegisterFixed(step, move)

		for _, dt := range []float64{0.375, 0.375, 0.375, 0.375} {
			scheduler.Once(dt)
		}

		// 1.5s elapsed: three steps, nothing left over.
		assert.Len(t, move.dts, 3)
		assert.InDelta(t, 0, step.Overstep(), 1e-9)
	})

	t.Run("a stalled frame catches up a bounded number of steps", func(t *testing.T) {
		var log []string
		step := engine.NewTimestep(100 * time.Millisecond)
		step.MaxCatchUp = 3
		scheduler := engine.NewScheduler()
		move := &recordSystem{name: "move", log: &log}
		scheduler.RegisterFixed(step, move)

		scheduler.Once(1.0)

		assert.Equal(t, []int{0, 1, 2}, move.steps)
	})

	t.Run("stages sharing a timestep advance it once", func(t *testing.T) {
		var log []string
		step := engine.NewTimestep(250 * time.Millisecond)
		scheduler := engine.NewScheduler()
		scheduler.RegisterFixed(step, &recordSystem{name: "move", log: &log})
		scheduler.Register(&recordSystem{name: "input", log: &log})
		scheduler.RegisterFixed(step, &recordSystem{name: "grow", log: &log})

		scheduler.Once(0.25)

		assert.Equal(t, []string{"move", "input", "grow"}, log)
	})

	t.Run("commands flush after every system", func(t *testing.T) {
		var log []string
		scheduler := engine.NewScheduler()
		scheduler.Register(&deferSystem{log: &log})
		scheduler.Register(&recordSystem{name: "render", log: &log})

		scheduler.Once(0.016)

		assert.Equal(t, []string{"render", "deferred"}, log)
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		var log []string
		scheduler := engine.NewScheduler()
		system := &recordSystem{name: "tick", log: &log}
		scheduler.Register(system)

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, 1*time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.NotEmpty(t, system.dts)
	})
}

func TestSchedulerStats(t *testing.T) {
	var log []string
	scheduler := engine.NewScheduler()
	scheduler.Register(&recordSystem{name: "input", log: &log})
	scheduler.RegisterFixed(engine.NewTimestep(time.Second), &deferSystem{log: &log})

	for range 4 {
		scheduler.Once(0.5)
	}

	stats := scheduler.GetStats()
	require.Len(t, stats.Systems, 2)
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(4), stats.FrameCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)

	assert.Equal(t, "recordSystem", stats.Systems[0].Name)
	assert.Equal(t, time.Duration(0), stats.Systems[0].Period)
	assert.Equal(t, int64(4), stats.Systems[0].ExecutionCount)

	assert.Equal(t, "deferSystem", stats.Systems[1].Name)
	assert.Equal(t, time.Second, stats.Systems[1].Period)
	assert.Equal(t, int64(2), stats.Systems[1].ExecutionCount)
	assert.LessOrEqual(t, stats.Systems[1].MinDuration, stats.Systems[1].MaxDuration)
}

func TestTimestep(t *testing.T) {
	step := engine.NewTimestep(150 * time.Millisecond)
	assert.Equal(t, 150*time.Millisecond, step.Period())

	assert.Equal(t, 0, step.Advance(0.1))
	assert.InDelta(t, 0.1/0.15, step.Overstep(), 1e-9)

	assert.Equal(t, 1, step.Advance(0.1))
	assert.InDelta(t, 0.05/0.15, step.Overstep(), 1e-9)

	step.Reset()
	assert.Zero(t, step.Overstep())

	step.SetPeriod(time.Second)
	assert.Equal(t, 0, step.Advance(0.5))
	assert.Equal(t, 1, step.Advance(0.5))
}
