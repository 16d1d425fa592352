package game

import "github.com/plus3/snake/snake"

// Autopilot steers greedily toward the nearest food while refusing any move
// that would end the game on the next tick. Among equally good moves it
// prefers the one with more free neighbours, then the current heading.
type Autopilot struct {
	choice snake.Direction
	ok     bool
}

func (a *Autopilot) Pressed(key Key) bool {
	return a.ok && KeyForDirection(a.choice) == key
}

// Plan picks the direction for the coming frame.
func (a *Autopilot) Plan(sim *snake.Sim) {
	head := sim.Head()
	current := sim.Direction()
	food := sim.Food()
	arena := sim.Config().Arena

	best, bestDist, bestRoom := current, -1, -1
	for _, d := range snake.Directions {
		if d == current.Opposite() {
			continue
		}
		next := head.Step(d)
		if isDanger(sim, arena, next) {
			continue
		}

		dist := nearest(next, food)
		room := freeNeighbours(sim, arena, next)
		better := bestDist < 0 ||
			dist < bestDist ||
			(dist == bestDist && room > bestRoom) ||
			(dist == bestDist && room == bestRoom && d == current)
		if better {
			best, bestDist, bestRoom = d, dist, room
		}
	}

	a.choice, a.ok = best, bestDist >= 0
}

func isDanger(sim *snake.Sim, arena snake.Arena, c snake.Cell) bool {
	return !arena.Contains(c) || sim.Occupied(c)
}

func freeNeighbours(sim *snake.Sim, arena snake.Arena, c snake.Cell) int {
	n := 0
	for _, d := range snake.Directions {
		if !isDanger(sim, arena, c.Step(d)) {
			n++
		}
	}
	return n
}

// nearest is the Manhattan distance to the closest food, or zero when the
// board is empty so every safe move scores the same.
func nearest(c snake.Cell, food []snake.Cell) int {
	best := -1
	for _, f := range food {
		d := abs(f.X-c.X) + abs(f.Y-c.Y)
		if best < 0 || d < best {
			best = d
		}
	}
	return max(best, 0)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
