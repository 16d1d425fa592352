package snake

import "fmt"

// Arena is the rectangular grid the game is played on.
// Border insets the playable region on every side: 0 makes the whole
// grid playable, 1 reserves a one-cell wall around the edge.
type Arena struct {
	Width  int
	Height int
	Border int
}

// Contains reports whether c lies inside the playable region.
func (a Arena) Contains(c Cell) bool {
	return c.X >= a.Border && c.Y >= a.Border &&
		c.X < a.Width-a.Border && c.Y < a.Height-a.Border
}

// Playable returns the number of cells inside the playable region.
func (a Arena) Playable() int {
	w, h := a.Width-2*a.Border, a.Height-2*a.Border
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// Validate rejects arenas without a playable cell.
func (a Arena) Validate() error {
	if a.Border < 0 {
		return fmt.Errorf("%w: negative border %d", ErrArenaTooSmall, a.Border)
	}
	if a.Playable() == 0 {
		return fmt.Errorf("%w: %dx%d with border %d", ErrArenaTooSmall, a.Width, a.Height, a.Border)
	}
	return nil
}

// index maps a playable cell to a dense key for the occupancy index.
func (a Arena) index(c Cell) int {
	return c.Y*a.Width + c.X
}

// nth returns the n-th playable cell in row-major order.
func (a Arena) nth(n int) Cell {
	w := a.Width - 2*a.Border
	return Cell{X: a.Border + n%w, Y: a.Border + n/w}
}
