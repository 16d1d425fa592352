package snake

// Direction is one of the four headings a snake can travel in.
type Direction uint8

const (
	Left Direction = iota
	Up
	Right
	Down
)

// Directions lists every heading in declaration order.
var Directions = [...]Direction{Left, Up, Right, Down}

// Opposite returns the heading that would reverse the snake into itself.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Delta returns the cell offset of a single step. Up grows y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, 1
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	}
	return "invalid"
}

// ParseDirection is the inverse of String.
func ParseDirection(s string) (Direction, bool) {
	for _, d := range Directions {
		if d.String() == s {
			return d, true
		}
	}
	return 0, false
}
