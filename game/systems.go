package game

import (
	"log"

	"github.com/plus3/snake/engine"
	"github.com/plus3/snake/snake"
)

// Events are the signals the snake phases raised during one frame. A frame
// may run several movement ticks; their events add up rather than replace
// each other.
type Events struct {
	// GameOver is set when any tick of the frame ended a game.
	GameOver bool
	// Collision is the cause of the latest game over.
	Collision snake.Collision
	// Collisions lists the cause of every game over, in tick order.
	Collisions  []snake.Collision
	Growths     int
	FoodSpawned bool
	// Food is the cell placed when FoodSpawned is set.
	Food snake.Cell
}

// tick carries one movement tick's signals from movement to the phases
// after it. It is cleared when the next tick starts.
type tick struct {
	gameOver  bool
	collision snake.Collision
	growth    int
}

// State is the data every snake phase shares.
type State struct {
	Sim    *snake.Sim
	Events Events
	Logger *log.Logger

	tick tick
}

// InputSystem polls the input every frame and steers the snake.
type InputSystem struct {
	State *State
	Input Input
}

func (s *InputSystem) Execute(frame *engine.Frame) {
	if s.Input == nil {
		return
	}
	if p, ok := s.Input.(Planner); ok {
		p.Plan(s.State.Sim)
	}
	if d, ok := PickDirection(s.Input); ok {
		s.State.Sim.Steer(d)
	}
}

// MovementSystem steps the head once per movement tick.
type MovementSystem struct {
	State *State
}

func (s *MovementSystem) Execute(frame *engine.Frame) {
	s.State.tick = tick{}

	m := s.State.Sim.Move()
	if m.Collision != snake.NoCollision {
		s.State.tick.gameOver = true
		s.State.tick.collision = m.Collision
	}
}

// EatingSystem consumes food under the head and queues growth.
type EatingSystem struct {
	State *State
}

func (s *EatingSystem) Execute(frame *engine.Frame) {
	if s.State.tick.gameOver {
		return
	}

	n := s.State.Sim.Eat()
	if n == 0 {
		return
	}
	s.State.tick.growth = n

	score, logger := s.State.Sim.Score(), s.State.Logger
	frame.Commands.Defer(func() {
		logger.Printf("Score: %d", score)
	})
}

// GrowthSystem extends the body by the growth queued this tick.
type GrowthSystem struct {
	State *State
}

func (s *GrowthSystem) Execute(frame *engine.Frame) {
	t := &s.State.tick
	if t.gameOver || t.growth == 0 {
		return
	}
	s.State.Sim.Grow(t.growth)
	s.State.Events.Growths += t.growth
	t.growth = 0
}

// GameOverSystem resets the board after a collision.
type GameOverSystem struct {
	State *State
}

func (s *GameOverSystem) Execute(frame *engine.Frame) {
	t := &s.State.tick
	if !t.gameOver {
		return
	}
	t.gameOver = false

	ev := &s.State.Events
	ev.GameOver = true
	ev.Collision = t.collision
	ev.Collisions = append(ev.Collisions, t.collision)

	sim := s.State.Sim
	score, collision, logger := sim.Score(), t.collision, s.State.Logger
	sim.Reset()

	frame.Commands.Defer(func() {
		logger.Printf("game over (%s collision) at score %d, best %d", collision, score, sim.Best())
		logger.Printf("Score: %d", 0)
	})
}

// FoodSpawnSystem tops up food on the slow tick.
type FoodSpawnSystem struct {
	State *State
}

func (s *FoodSpawnSystem) Execute(frame *engine.Frame) {
	c, ok := s.State.Sim.SpawnFood()
	if !ok {
		return
	}
	s.State.Events.FoodSpawned = true
	s.State.Events.Food = c
}
