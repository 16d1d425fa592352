package snake

import (
	"errors"
	"fmt"
)

var (
	ErrArenaTooSmall = errors.New("arena has no playable cell")
	ErrBadFoodLimit  = errors.New("food limit must be positive")
	ErrEmptySnake    = errors.New("snake has no segments")
	ErrOutOfBounds   = errors.New("cell outside the playable region")
)

// Placement selects which cells food may spawn on.
type Placement uint8

const (
	// AvoidSnake never places food on any snake segment.
	AvoidSnake Placement = iota
	// AvoidHead only keeps food off the head cell.
	AvoidHead
	// Anywhere rolls any playable cell without an occupancy check.
	Anywhere
)

func (p Placement) String() string {
	switch p {
	case AvoidSnake:
		return "avoid-snake"
	case AvoidHead:
		return "avoid-head"
	case Anywhere:
		return "anywhere"
	}
	return "invalid"
}

// ParsePlacement is the inverse of String.
func ParsePlacement(s string) (Placement, error) {
	for _, p := range []Placement{AvoidSnake, AvoidHead, Anywhere} {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown food placement %q", s)
}

// Config holds everything needed to build a Sim.
type Config struct {
	Arena     Arena
	FoodLimit int
	Placement Placement
	// Seed feeds the spawn RNG. Zero picks a time based seed.
	Seed uint64
}

// DefaultConfig mirrors the classic 30x30 board with a single live food.
func DefaultConfig() Config {
	return Config{
		Arena:     Arena{Width: 30, Height: 30},
		FoodLimit: 1,
		Placement: AvoidSnake,
	}
}

// Validate reports the first problem with the arena, food limit or placement.
func (c Config) Validate() error {
	if err := c.Arena.Validate(); err != nil {
		return err
	}
	if c.FoodLimit <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadFoodLimit, c.FoodLimit)
	}
	if c.Placement > Anywhere {
		return fmt.Errorf("unknown food placement %d", c.Placement)
	}
	return nil
}
