package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/plus3/snake/snake"
)

var ErrBadPeriod = errors.New("tick period must be positive")

// Config wires a simulation to its clocks.
type Config struct {
	Sim snake.Config
	// MoveEvery is the fast tick: movement, eating, growth and game over.
	MoveEvery time.Duration
	// SpawnEvery is the slow tick that tops food back up.
	SpawnEvery time.Duration
	// Logger receives score and game over lines. Nil means log.Default().
	Logger *log.Logger
}

// DefaultConfig moves every 150ms and tries to spawn food every 500ms on the
// default board.
func DefaultConfig() Config {
	return Config{
		Sim:        snake.DefaultConfig(),
		MoveEvery:  150 * time.Millisecond,
		SpawnEvery: 500 * time.Millisecond,
	}
}

// Validate checks both tick periods and the simulation config.
func (c Config) Validate() error {
	if c.MoveEvery <= 0 {
		return fmt.Errorf("%w: move every %s", ErrBadPeriod, c.MoveEvery)
	}
	if c.SpawnEvery <= 0 {
		return fmt.Errorf("%w: spawn every %s", ErrBadPeriod, c.SpawnEvery)
	}
	return c.Sim.Validate()
}
