package main

import (
	"bytes"
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/plus3/snake/game"
	"github.com/plus3/snake/snake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func soakConfig() game.Config {
	cfg := game.DefaultConfig()
	cfg.Sim.Arena = snake.Arena{Width: 16, Height: 16, Border: 1}
	cfg.Sim.Seed = 11
	cfg.Logger = log.New(io.Discard, "", 0)
	return cfg
}

func TestSoak(t *testing.T) {
	report, err := Soak(context.Background(), soakConfig(), time.Minute, 60)
	require.NoError(t, err)

	assert.Equal(t, int64(3600), report.Frames)
	assert.False(t, report.Interrupted)
	assert.Equal(t, report.Games, report.WallDeaths+report.SelfDeaths)
	assert.GreaterOrEqual(t, report.Best, 1)
	assert.GreaterOrEqual(t, report.Longest, report.Best+1)
	require.Len(t, report.Phases, 6)
	assert.Equal(t, int64(3600), report.Phases[0].ExecutionCount)
}

func TestSoakCountsEveryDeathAtLowFrameRates(t *testing.T) {
	// At 4 fps a frame runs one or two movement ticks. The small board
	// makes the autopilot die often.
	cfg := soakConfig()
	cfg.Sim.Arena = snake.Arena{Width: 6, Height: 6, Border: 1}
	report, err := Soak(context.Background(), cfg, 2*time.Minute, 4)
	require.NoError(t, err)

	assert.Equal(t, int64(480), report.Frames)
	assert.Positive(t, report.Games)
	assert.Equal(t, report.Games, report.WallDeaths+report.SelfDeaths)
}

func TestSoakStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Soak(ctx, soakConfig(), time.Hour, 60)
	require.NoError(t, err)
	assert.True(t, report.Interrupted)
	assert.Zero(t, report.Frames)
}

func TestSoakRejectsBadInput(t *testing.T) {
	_, err := Soak(context.Background(), soakConfig(), time.Second, 0)
	assert.Error(t, err)

	cfg := soakConfig()
	cfg.MoveEvery = 0
	_, err = Soak(context.Background(), cfg, time.Second, 60)
	assert.ErrorIs(t, err, game.ErrBadPeriod)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	report, err := Soak(context.Background(), soakConfig(), 5*time.Second, 64)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "- **ID:** "+report.Session)
	assert.Contains(t, out, "- **Arena:** 16x16 (border 1)")
	assert.Contains(t, out, "avoid-snake")
	assert.Contains(t, out, "- InputSystem every frame: 320 runs")
	assert.Contains(t, out, "- FoodSpawnSystem every 500ms: 10 runs")
}
