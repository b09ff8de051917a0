package battleship

// Boards are always square with this many
// rows and columns
const MapSize uint8 = 10

type CellStatus uint8

const (
	CellEmpty CellStatus = iota
	CellHasShip

	// Terminal. Set by the first shot landing
	// on the cell, whatever was there before
	CellPicked
)

func (c CellStatus) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellHasShip:
		return "has_ship"
	case CellPicked:
		return "picked"
	default:
		return "unknown"
	}
}

type Point struct {
	X uint8 `json:"x" toml:"x"`
	Y uint8 `json:"y" toml:"y"`
}

func NewPoint(x, y uint8) Point {
	return Point{X: x, Y: y}
}

// Lexicographic on (x, y)
func (p Point) Less(other Point) bool {
	return p.X < other.X || (p.X == other.X && p.Y < other.Y)
}

func (p Point) InBounds() bool {
	return p.X < MapSize && p.Y < MapSize
}

// Grid is indexed as grid[x][y]
type Grid [MapSize][MapSize]CellStatus

// Creates a new default grid
// All cells are CellEmpty
func NewGrid() Grid {
	return Grid{}
}

func (g *Grid) at(p Point) CellStatus {
	return g[p.X][p.Y]
}

func (g *Grid) set(p Point, status CellStatus) {
	g[p.X][p.Y] = status
}

// Count returns how many cells currently have the status.
func (g Grid) Count(status CellStatus) int {
	count := 0
	for x := range g {
		for y := range g[x] {
			if g[x][y] == status {
				count++
			}
		}
	}
	return count
}
