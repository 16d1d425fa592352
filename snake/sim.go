// Package snake implements the grid simulation behind the snake game:
// movement, reversal prevention, wall and self collision, food placement,
// eating and growth. It holds plain state and knows nothing about windows,
// input devices or clocks; callers drive it one tick at a time.
package snake

import (
	"fmt"
	"slices"
	"time"

	"golang.org/x/exp/rand"
)

// spawnTries bounds rejection sampling before falling back to a full scan.
const spawnTries = 64

// Outcome tags what a tick did.
type Outcome uint8

const (
	Continued Outcome = iota
	AteFood
	GameOver
)

func (o Outcome) String() string {
	switch o {
	case Continued:
		return "continued"
	case AteFood:
		return "ate-food"
	case GameOver:
		return "game-over"
	}
	return "invalid"
}

// Collision names why a move was refused.
type Collision uint8

const (
	NoCollision Collision = iota
	WallCollision
	SelfCollision
)

func (c Collision) String() string {
	switch c {
	case NoCollision:
		return "none"
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	}
	return "invalid"
}

// Move is the result of a single movement step.
type Move struct {
	// Head is the cell the head entered, or tried to enter on a collision.
	Head Cell
	// Tail is the cell vacated by the last segment. Unset on a collision.
	Tail      Cell
	Collision Collision
}

// Result summarises a full tick.
type Result struct {
	Outcome   Outcome
	Collision Collision
	Eaten     int
	Head      Cell
}

// Snapshot is a copy of the simulation state, safe to keep across ticks.
type Snapshot struct {
	Arena     Arena
	Segments  []Cell
	Direction Direction
	Food      []Cell
	Score     int
	Best      int
	Games     int
}

// Sim owns the snake, its food and the score.
type Sim struct {
	cfg Config
	rng *rand.Rand

	segments []Cell
	occupied *occupancy
	// heading is the direction of the last committed move; intent is
	// the direction the next move will take.
	heading  Direction
	intent   Direction
	lastTail Cell
	hasTail  bool

	food  []Cell
	score int
	best  int
	games int
}

// New builds a simulation with a freshly spawned snake and no food.
func New(cfg Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	s := &Sim{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(seed)),
		occupied: newOccupancy(cfg.Arena, cfg.Arena.Playable()),
	}
	s.spawnSnake()
	return s, nil
}

// Config returns the configuration the simulation was built with.
func (s *Sim) Config() Config {
	return s.cfg
}

// Head returns segment 0. A snake without segments is a construction bug.
func (s *Sim) Head() Cell {
	if len(s.segments) == 0 {
		panic(ErrEmptySnake)
	}
	return s.segments[0]
}

// Len returns the number of segments.
func (s *Sim) Len() int { return len(s.segments) }

// Direction returns the direction the next move will take.
func (s *Sim) Direction() Direction { return s.intent }

// Score returns the food eaten since the last game over.
func (s *Sim) Score() int { return s.score }

// Best returns the highest score reached this session.
func (s *Sim) Best() int { return s.best }

// Games returns how many games have ended this session.
func (s *Sim) Games() int { return s.games }

// Segments returns a copy of the body, head first.
func (s *Sim) Segments() []Cell {
	return slices.Clone(s.segments)
}

// Food returns a copy of the live food cells.
func (s *Sim) Food() []Cell {
	return slices.Clone(s.food)
}

// Occupied reports whether any segment sits on c.
func (s *Sim) Occupied(c Cell) bool {
	return s.occupied.has(c)
}

// LastTail returns the cell vacated by the most recent move.
func (s *Sim) LastTail() (Cell, bool) {
	return s.lastTail, s.hasTail
}

// Steer changes the direction of the next move. A request for the exact
// opposite of either the pending direction or the last committed move is
// refused.
func (s *Sim) Steer(d Direction) bool {
	if d > Down || d == s.intent.Opposite() || d == s.heading.Opposite() {
		return false
	}
	s.intent = d
	return true
}

// Move advances the head one cell. Wall and self collisions are checked
// against the body as it was before the move; on a collision nothing is
// committed and the caller is expected to treat the tick as game over.
func (s *Sim) Move() Move {
	next := s.Head().Step(s.intent)
	m := Move{Head: next}

	if !s.cfg.Arena.Contains(next) {
		m.Collision = WallCollision
		return m
	}
	if s.occupied.has(next) {
		m.Collision = SelfCollision
		return m
	}

	tail := s.segments[len(s.segments)-1]
	s.occupied.remove(tail)
	copy(s.segments[1:], s.segments[:len(s.segments)-1])
	s.segments[0] = next
	s.occupied.add(next)

	s.heading = s.intent
	s.lastTail = tail
	s.hasTail = true
	m.Tail = tail
	return m
}

// Eat consumes every food on the head cell and returns how many were eaten.
func (s *Sim) Eat() int {
	head := s.Head()
	eaten := 0
	s.food = slices.DeleteFunc(s.food, func(c Cell) bool {
		if c == head {
			eaten++
			return true
		}
		return false
	})

	s.score += eaten
	if s.score > s.best {
		s.best = s.score
	}
	return eaten
}

// Grow appends n segments on the cell the tail vacated this tick, which
// undoes the tail trim of that move.
func (s *Sim) Grow(n int) {
	at, ok := s.lastTail, s.hasTail
	if !ok {
		at = s.segments[len(s.segments)-1]
	}
	for range n {
		s.segments = append(s.segments, at)
		s.occupied.add(at)
	}
}

// SpawnFood places one food when fewer than the configured limit exist.
// It reports false when the limit is reached or no eligible cell is left.
func (s *Sim) SpawnFood() (Cell, bool) {
	if len(s.food) >= s.cfg.FoodLimit {
		return Cell{}, false
	}

	c, ok := s.pickFoodCell()
	if !ok {
		return Cell{}, false
	}
	s.food = append(s.food, c)
	return c, true
}

func (s *Sim) foodBlocked(c Cell) bool {
	switch s.cfg.Placement {
	case AvoidSnake:
		return s.occupied.has(c) || slices.Contains(s.food, c)
	case AvoidHead:
		return c == s.Head() || slices.Contains(s.food, c)
	}
	return false
}

func (s *Sim) pickFoodCell() (Cell, bool) {
	playable := s.cfg.Arena.Playable()
	for range spawnTries {
		c := s.cfg.Arena.nth(s.rng.Intn(playable))
		if !s.foodBlocked(c) {
			return c, true
		}
	}

	// Crowded board: pick uniformly among the cells that are actually free.
	free := make([]Cell, 0, playable)
	for i := range playable {
		if c := s.cfg.Arena.nth(i); !s.foodBlocked(c) {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return Cell{}, false
	}
	return free[s.rng.Intn(len(free))], true
}

// Reset clears the board after a game over: all food and segments go, the
// score drops to zero and a new snake spawns at a random cell and heading.
func (s *Sim) Reset() {
	s.food = s.food[:0]
	s.score = 0
	s.games++
	s.spawnSnake()
}

func (s *Sim) spawnSnake() {
	s.occupied.reset()
	head := s.cfg.Arena.nth(s.rng.Intn(s.cfg.Arena.Playable()))
	s.segments = append(s.segments[:0], head)
	s.occupied.add(head)

	d := Directions[s.rng.Intn(len(Directions))]
	s.heading, s.intent = d, d
	s.lastTail, s.hasTail = head, false
}

// Tick runs movement, eating, growth and game over handling in order.
func (s *Sim) Tick() Result {
	m := s.Move()
	if m.Collision != NoCollision {
		s.Reset()
		return Result{Outcome: GameOver, Collision: m.Collision, Head: m.Head}
	}

	if n := s.Eat(); n > 0 {
		s.Grow(n)
		return Result{Outcome: AteFood, Eaten: n, Head: m.Head}
	}
	return Result{Outcome: Continued, Head: m.Head}
}

// Snapshot copies out the current state.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		Arena:     s.cfg.Arena,
		Segments:  s.Segments(),
		Direction: s.intent,
		Food:      s.Food(),
		Score:     s.score,
		Best:      s.best,
		Games:     s.games,
	}
}

// Load replaces the board with snap. The arena of snap is ignored; the
// simulation keeps its own.
func (s *Sim) Load(snap Snapshot) error {
	if len(snap.Segments) == 0 {
		return ErrEmptySnake
	}
	if snap.Direction > Down {
		return fmt.Errorf("invalid direction %d", snap.Direction)
	}
	for i, c := range snap.Segments {
		if !s.cfg.Arena.Contains(c) {
			return fmt.Errorf("%w: segment %d at %v", ErrOutOfBounds, i, c)
		}
	}
	for _, c := range snap.Food {
		if !s.cfg.Arena.Contains(c) {
			return fmt.Errorf("%w: food at %v", ErrOutOfBounds, c)
		}
	}
	if len(snap.Food) > s.cfg.FoodLimit {
		return fmt.Errorf("%w: %d food over limit %d", ErrBadFoodLimit, len(snap.Food), s.cfg.FoodLimit)
	}
	if snap.Score < 0 {
		return fmt.Errorf("negative score %d", snap.Score)
	}

	s.occupied.reset()
	s.segments = append(s.segments[:0], snap.Segments...)
	for _, c := range s.segments {
		s.occupied.add(c)
	}
	s.food = append(s.food[:0], snap.Food...)
	s.heading, s.intent = snap.Direction, snap.Direction
	s.lastTail, s.hasTail = s.segments[len(s.segments)-1], false
	s.score = snap.Score
	s.best = max(s.best, snap.Best, snap.Score)
	s.games = snap.Games
	return nil
}
