package engine

import (
	"context"
	"reflect"
	"time"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	FrameCount      int64
	TotalExecutions int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name string
	// Period is zero for systems that run every frame.
	Period         time.Duration
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// stage is a run of systems sharing a cadence. A nil step means every frame.
type stage struct {
	step    *Timestep
	systems []int
}

// Scheduler manages and executes systems in registration order.
type Scheduler struct {
	stages      []*stage
	systems     []System
	systemStats []*systemStatsInternal
	frames      int64
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		systems: make([]System, 0),
	}
}

// Register adds a system that runs once every frame.
func (s *Scheduler) Register(system System) {
	last := s.lastStage()
	if last == nil || last.step != nil {
		last = &stage{}
		s.stages = append(s.stages, last)
	}
	last.systems = append(last.systems, s.add(system))
}

// RegisterFixed adds systems that run, in the given order, once per elapsed
// step period. Passing the same Timestep twice makes both stages share one
// clock.
func (s *Scheduler) RegisterFixed(step *Timestep, systems ...System) {
	st := &stage{step: step}
	for _, system := range systems {
		st.systems = append(st.systems, s.add(system))
	}
	s.stages = append(s.stages, st)
}

func (s *Scheduler) lastStage() *stage {
	if len(s.stages) == 0 {
		return nil
	}
	return s.stages[len(s.stages)-1]
}

func (s *Scheduler) add(system System) int {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
	return len(s.systems) - 1
}

// Once runs one frame of dt seconds. Every-frame stages run once; fixed
// stages run as many times as their timestep says is due. Deferred commands
// are flushed after the last stage.
func (s *Scheduler) Once(dt float64) {
	frame := newFrame(dt)
	advanced := make(map[*Timestep]int)

	for _, st := range s.stages {
		steps := 1
		frame.DeltaTime = dt
		if st.step != nil {
			n, ok := advanced[st.step]
			if !ok {
				n = st.step.Advance(dt)
				advanced[st.step] = n
			}
			steps = n
			frame.DeltaTime = st.step.PeriodSeconds()
		}

		for step := range steps {
			frame.Step = step
			for _, idx := range st.systems {
				s.execute(idx, frame)
			}
		}
	}

	s.frames++
	frame.Commands.Flush()
}

func (s *Scheduler) execute(idx int, frame *Frame) {
	start := time.Now()
	s.systems[idx].Execute(frame)
	duration := time.Since(start)

	stats := s.systemStats[idx]
	stats.executionCount++
	stats.lastDuration = duration
	stats.totalDuration += duration

	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
}

// Run executes frames at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		FrameCount:  s.frames,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	periods := make([]time.Duration, len(s.systems))
	for _, st := range s.stages {
		if st.step == nil {
			continue
		}
		for _, idx := range st.systems {
			periods[idx] = st.step.Period()
		}
	}

	var totalExecs int64
	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			Period:         periods[i],
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
