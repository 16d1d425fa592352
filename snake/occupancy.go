package snake

import "github.com/kamstrup/intmap"

// occupancy counts snake segments per cell so collision and spawn checks
// do not have to walk the body.
type occupancy struct {
	arena Arena
	cells *intmap.Map[int, int]
}

func newOccupancy(arena Arena, capacity int) *occupancy {
	return &occupancy{
		arena: arena,
		cells: intmap.New[int, int](capacity),
	}
}

func (o *occupancy) add(c Cell) {
	key := o.arena.index(c)
	n, _ := o.cells.Get(key)
	o.cells.Put(key, n+1)
}

func (o *occupancy) remove(c Cell) {
	key := o.arena.index(c)
	n, ok := o.cells.Get(key)
	if !ok {
		return
	}
	if n <= 1 {
		o.cells.Del(key)
		return
	}
	o.cells.Put(key, n-1)
}

func (o *occupancy) has(c Cell) bool {
	_, ok := o.cells.Get(o.arena.index(c))
	return ok
}

// distinct returns the number of different cells holding a segment.
func (o *occupancy) distinct() int {
	return o.cells.Len()
}

func (o *occupancy) reset() {
	o.cells.Clear()
}
