package render_test

import (
	"testing"

	"github.com/plus3/snake/render"
	"github.com/plus3/snake/snake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name               string
		pos, window, arena float64
		want               float64
	}{
		{"first cell", 0, 100, 10, -45},
		{"middle cell", 5, 100, 10, 5},
		{"last cell", 9, 100, 10, 45},
		{"wide window", 0, 1200, 30, -580},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, render.Translate(tt.pos, tt.window, tt.arena), 1e-9)
		})
	}
}

func TestLayout(t *testing.T) {
	l := render.Layout{Width: 100, Height: 200, Arena: snake.Arena{Width: 10, Height: 10}}

	tw, th := l.Tile()
	assert.Equal(t, 10.0, tw)
	assert.Equal(t, 20.0, th)

	t.Run("origin is bottom left", func(t *testing.T) {
		x, y := l.Center(snake.Cell{X: 0, Y: 0})
		assert.InDelta(t, 5, x, 1e-9)
		assert.InDelta(t, 190, y, 1e-9)
	})

	t.Run("top right", func(t *testing.T) {
		x, y := l.Center(snake.Cell{X: 9, Y: 9})
		assert.InDelta(t, 95, x, 1e-9)
		assert.InDelta(t, 10, y, 1e-9)
	})

	t.Run("sprites are scaled and centred", func(t *testing.T) {
		r := l.Rect(snake.Cell{X: 0, Y: 9})
		assert.InDelta(t, 8, r.W, 1e-9)
		assert.InDelta(t, 16, r.H, 1e-9)
		assert.InDelta(t, 1, r.X, 1e-9)
		assert.InDelta(t, 2, r.Y, 1e-9)
	})
}

func TestLayoutBounds(t *testing.T) {
	l := render.Layout{Width: 100, Height: 100, Arena: snake.Arena{Width: 10, Height: 10, Border: 1}}
	assert.Equal(t, render.Rect{X: 10, Y: 10, W: 80, H: 80}, l.Bounds())
}

func TestSprites(t *testing.T) {
	l := render.Layout{Width: 100, Height: 100, Arena: snake.Arena{Width: 10, Height: 10}}
	snap := snake.Snapshot{
		Segments: []snake.Cell{{X: 2, Y: 2}, {X: 2, Y: 1}},
		Food:     []snake.Cell{{X: 5, Y: 5}},
		Score:    4,
		Best:     7,
	}

	sprites := l.Sprites(snap)
	require.Len(t, sprites, 3)
	assert.Equal(t, render.FoodColor, sprites[0].Color)
	assert.Equal(t, render.TailColor, sprites[1].Color)
	assert.Equal(t, render.HeadColor, sprites[2].Color)
	assert.Equal(t, l.Rect(snap.Segments[0]), sprites[2].Rect)

	assert.Equal(t, "Score: 4  Best: 7", render.ScoreText(snap))
}
