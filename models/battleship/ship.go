package battleship

import "fmt"

type Ship struct {
	name    string
	start   Point
	end     Point
	onXAxis bool
	hits    []bool
}

// NewShip never fails. Callers must check IsValid before
// handing the ship to a board; a diagonal ship gets slots
// allocated along the x axis but is never placed.
func NewShip(start, end Point, name string) *Ship {
	if end.Less(start) {
		start, end = end, start
	}

	sh := &Ship{
		name:    name,
		start:   start,
		end:     end,
		onXAxis: start.Y == end.Y,
	}

	var length uint8
	if sh.onXAxis || start.X != end.X {
		length = end.X - start.X
	} else {
		length = end.Y - start.Y
	}
	// single cell ship still takes one slot
	sh.hits = make([]bool, int(length)+1)

	return sh
}

// No diagonal placement
func (sh *Ship) IsValid() bool {
	return sh.start.X == sh.end.X || sh.start.Y == sh.end.Y
}

func (sh *Ship) Name() string {
	return sh.name
}

func (sh *Ship) Start() Point {
	return sh.start
}

func (sh *Ship) End() Point {
	return sh.end
}

// OnXAxis reports whether all cells of the ship share the same y.
func (sh *Ship) OnXAxis() bool {
	return sh.onXAxis
}

func (sh *Ship) Len() int {
	return len(sh.hits)
}

// IsHit is a membership test only. It does not say
// whether the cell was already hit before.
func (sh *Ship) IsHit(p Point) bool {
	if !sh.IsValid() {
		return false
	}

	if sh.onXAxis {
		return p.Y == sh.start.Y && p.X >= sh.start.X && p.X <= sh.end.X
	}
	return p.X == sh.start.X && p.Y >= sh.start.Y && p.Y <= sh.end.Y
}

// RegisterHit marks the cell at p as hit and returns whether
// every cell of the ship is now hit. Points outside the ship
// are ignored and return false.
func (sh *Ship) RegisterHit(p Point) bool {
	if !sh.IsHit(p) {
		return false
	}

	var offset int
	if sh.onXAxis {
		offset = int(p.X) - int(sh.start.X)
	} else {
		offset = int(p.Y) - int(sh.start.Y)
	}
	if offset < 0 || offset >= len(sh.hits) {
		panic(fmt.Sprintf("hit offset %d out of range for ship %q with %d cells; this should never happen", offset, sh.name, len(sh.hits)))
	}

	sh.hits[offset] = true
	return sh.IsSunk()
}

func (sh *Ship) IsSunk() bool {
	for _, hit := range sh.hits {
		if !hit {
			return false
		}
	}
	return true
}

// Cells returns every point the ship spans from start to end.
// Diagonal ships span nothing.
func (sh *Ship) Cells() []Point {
	if !sh.IsValid() {
		return nil
	}

	cells := make([]Point, 0, len(sh.hits))
	for i := range sh.hits {
		if sh.onXAxis {
			cells = append(cells, NewPoint(sh.start.X+uint8(i), sh.start.Y))
		} else {
			cells = append(cells, NewPoint(sh.start.X, sh.start.Y+uint8(i)))
		}
	}
	return cells
}

func (sh *Ship) HitCells() []Point {
	cells := sh.Cells()
	hitCells := make([]Point, 0, len(cells))
	for i, cell := range cells {
		if sh.hits[i] {
			hitCells = append(hitCells, cell)
		}
	}
	return hitCells
}
