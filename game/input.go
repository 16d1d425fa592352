package game

import "github.com/plus3/snake/snake"

// Key is one of the four directional keys the game listens to.
type Key uint8

const (
	KeyLeft Key = iota
	KeyDown
	KeyUp
	KeyRight
)

// keyPriority is the order held keys are considered in when several are
// down in the same frame.
var keyPriority = [...]struct {
	key Key
	dir snake.Direction
}{
	{KeyLeft, snake.Left},
	{KeyDown, snake.Down},
	{KeyUp, snake.Up},
	{KeyRight, snake.Right},
}

// Input is polled once per frame for each directional key.
type Input interface {
	Pressed(key Key) bool
}

// Planner is an Input that wants to look at the board before being polled.
type Planner interface {
	Input
	Plan(sim *snake.Sim)
}

// InputFunc adapts a plain function to Input.
type InputFunc func(key Key) bool

func (f InputFunc) Pressed(key Key) bool { return f(key) }

// PickDirection returns the direction of the highest priority held key.
func PickDirection(in Input) (snake.Direction, bool) {
	for _, kp := range keyPriority {
		if in.Pressed(kp.key) {
			return kp.dir, true
		}
	}
	return 0, false
}

// KeyForDirection maps a direction back to the key that requests it.
func KeyForDirection(d snake.Direction) Key {
	for _, kp := range keyPriority {
		if kp.dir == d {
			return kp.key
		}
	}
	return KeyLeft
}

// Keys is an Input backed by an explicit set of held keys.
type Keys map[Key]bool

func (k Keys) Pressed(key Key) bool { return k[key] }

// Press marks key as held.
func (k Keys) Press(key Key) { k[key] = true }

// Release marks key as up.
func (k Keys) Release(key Key) { delete(k, key) }

// Set holds exactly the given keys.
func (k Keys) Set(keys ...Key) {
	clear(k)
	for _, key := range keys {
		k[key] = true
	}
}
