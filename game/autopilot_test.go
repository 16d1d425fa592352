package game_test

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/plus3/snake/game"
	"github.com/plus3/snake/snake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedSim(t *testing.T, snap snake.Snapshot) *snake.Sim {
	t.Helper()
	cfg := snake.DefaultConfig()
	cfg.Arena = snake.Arena{Width: 10, Height: 10}
	cfg.Seed = 3
	sim, err := snake.New(cfg)
	require.NoError(t, err)
	require.NoError(t, sim.Load(snap))
	return sim
}

func TestAutopilot(t *testing.T) {
	t.Run("heads toward food", func(t *testing.T) {
		sim := loadedSim(t, snake.Snapshot{Segments: cells(5, 5), Direction: snake.Up, Food: cells(8, 5)})
		var a game.Autopilot
		a.Plan(sim)

		d, ok := game.PickDirection(&a)
		require.True(t, ok)
		assert.Equal(t, snake.Right, d)
	})

	t.Run("turns away from a wall", func(t *testing.T) {
		sim := loadedSim(t, snake.Snapshot{Segments: cells(5, 9), Direction: snake.Up, Food: cells(5, 0)})
		var a game.Autopilot
		a.Plan(sim)

		d, ok := game.PickDirection(&a)
		require.True(t, ok)
		assert.Contains(t, []snake.Direction{snake.Left, snake.Right}, d)
	})

	t.Run("avoids its own body", func(t *testing.T) {
		// Body wraps around the right of the head; food lies beyond it.
		sim := loadedSim(t, snake.Snapshot{
			Segments:  cells(5, 5, 5, 4, 6, 4, 6, 5, 6, 6),
			Direction: snake.Up,
			Food:      cells(9, 5),
		})
		var a game.Autopilot
		a.Plan(sim)

		d, ok := game.PickDirection(&a)
		require.True(t, ok)
		assert.NotEqual(t, snake.Right, d)
	})

	t.Run("holds nothing when boxed in", func(t *testing.T) {
		sim := loadedSim(t, snake.Snapshot{
			Segments:  cells(0, 9, 1, 9, 1, 8, 0, 8),
			Direction: snake.Left,
		})
		var a game.Autopilot
		a.Plan(sim)

		_, ok := game.PickDirection(&a)
		assert.False(t, ok)
	})
}

func TestAutopilotPlaysWithinInvariants(t *testing.T) {
	cfg := game.DefaultConfig()
	cfg.Sim.Arena = snake.Arena{Width: 20, Height: 20, Border: 1}
	cfg.Sim.Seed = 7
	cfg.MoveEvery = 125 * time.Millisecond
	cfg.SpawnEvery = 500 * time.Millisecond
	cfg.Logger = log.New(io.Discard, "", 0)

	pilot := &game.Autopilot{}
	g, err := game.New(cfg, pilot)
	require.NoError(t, err)

	arena := cfg.Sim.Arena
	for range 4000 {
		g.Update(1.0 / 64.0)

		snap := g.Snapshot()
		require.LessOrEqual(t, len(snap.Food), 1)
		for _, f := range snap.Food {
			require.True(t, arena.Contains(f), "food at %v", f)
		}
		seen := make(map[snake.Cell]bool, len(snap.Segments))
		for _, c := range snap.Segments {
			require.True(t, arena.Contains(c), "segment at %v", c)
			require.False(t, seen[c], "segment %v repeated", c)
			seen[c] = true
		}
	}

	assert.GreaterOrEqual(t, g.Snapshot().Best, 1)
}
