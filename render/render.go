// Package render holds the drawing math shared by the frontends: where a
// cell lands on screen, how big its sprite is, and which colours to use.
package render

import (
	"fmt"
	"image/color"

	"github.com/plus3/snake/snake"
)

// SpriteScale is the fraction of a tile a snake segment or food covers.
const SpriteScale = 0.8

var (
	HeadColor       = color.RGBA{R: 255, A: 255}
	TailColor       = color.RGBA{R: 255, G: 178, B: 153, A: 255}
	FoodColor       = color.RGBA{R: 255, B: 255, A: 255}
	BackgroundColor = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	TextColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Translate maps a cell coordinate on one axis to a window coordinate whose
// origin is the window centre. Cell 0 lands half a tile in from the edge.
func Translate(pos, window, arena float64) float64 {
	tile := window / arena
	return pos/arena*window - window/2 + tile/2
}

// Rect is an axis-aligned screen rectangle with a top-left origin.
type Rect struct {
	X, Y, W, H float64
}

// Layout fits an arena into a window of the given pixel size.
type Layout struct {
	Width, Height float64
	Arena         snake.Arena
}

// Tile returns the size of one cell in pixels.
func (l Layout) Tile() (w, h float64) {
	return l.Width / float64(l.Arena.Width), l.Height / float64(l.Arena.Height)
}

// Center returns the screen position of the middle of c. Cell y grows up
// while screen y grows down.
func (l Layout) Center(c snake.Cell) (x, y float64) {
	x = Translate(float64(c.X), l.Width, float64(l.Arena.Width)) + l.Width/2
	y = l.Height/2 - Translate(float64(c.Y), l.Height, float64(l.Arena.Height))
	return x, y
}

// Rect returns the sprite rectangle for c.
func (l Layout) Rect(c snake.Cell) Rect {
	tw, th := l.Tile()
	w, h := tw*SpriteScale, th*SpriteScale
	cx, cy := l.Center(c)
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Bounds returns the rectangle enclosing the playable region, for drawing
// the border of an inset arena.
func (l Layout) Bounds() Rect {
	tw, th := l.Tile()
	b := float64(l.Arena.Border)
	return Rect{
		X: b * tw,
		Y: b * th,
		W: l.Width - 2*b*tw,
		H: l.Height - 2*b*th,
	}
}

// ScoreText is the HUD line shown in the top-left corner.
func ScoreText(snap snake.Snapshot) string {
	return fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.Best)
}

// Sprite is one thing to draw.
type Sprite struct {
	Rect  Rect
	Color color.RGBA
}

// Sprites lists what a frame draws, food first so the snake covers it.
func (l Layout) Sprites(snap snake.Snapshot) []Sprite {
	out := make([]Sprite, 0, len(snap.Food)+len(snap.Segments))
	for _, f := range snap.Food {
		out = append(out, Sprite{Rect: l.Rect(f), Color: FoodColor})
	}
	for i := len(snap.Segments) - 1; i >= 0; i-- {
		c := TailColor
		if i == 0 {
			c = HeadColor
		}
		out = append(out, Sprite{Rect: l.Rect(snap.Segments[i]), Color: c})
	}
	return out
}
