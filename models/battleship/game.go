package battleship

import (
	cerr "github.com/saeidalz13/battleship-exercises/internal/error"

	"github.com/google/uuid"
)

type ShipSpec struct {
	Name  string `json:"name" toml:"name"`
	Start Point  `json:"start" toml:"start"`
	End   Point  `json:"end" toml:"end"`
}

type ShotResult struct {
	Point    Point   `json:"point"`
	Outcome  Outcome `json:"outcome"`
	ShipName string  `json:"ship_name,omitempty"`
}

// Game wraps a single board with an id and the
// history of shots resolved against it.
type Game struct {
	uuid  string
	board *Board
	shots []ShotResult
}

func NewGame() *Game {
	return newGame(uuid.NewString()[:6])
}

func newGame(gameUuid string) *Game {
	return &Game{
		uuid:  gameUuid,
		board: NewBoard(),
		shots: make([]ShotResult, 0, int(MapSize)*int(MapSize)),
	}
}

func (g *Game) Uuid() string {
	return g.uuid
}

func (g *Game) Board() *Board {
	return g.board
}

// PlaceFleet places the ships in order and stops at the
// first one the board rejects. Ships placed before the
// rejected one stay on the board.
func (g *Game) PlaceFleet(specs []ShipSpec) error {
	for _, spec := range specs {
		if !g.board.PlaceShip(NewShip(spec.Start, spec.End, spec.Name)) {
			return cerr.ErrShipPlacementRejected(spec.Name)
		}
	}
	return nil
}

func (g *Game) Shoot(p Point) (ShotResult, error) {
	outcome, name, err := g.board.ResolveShot(p)
	if err != nil {
		return ShotResult{}, err
	}

	result := ShotResult{Point: p, Outcome: outcome, ShipName: name}
	g.shots = append(g.shots, result)
	return result, nil
}

func (g *Game) Shots() []ShotResult {
	shots := make([]ShotResult, len(g.shots))
	copy(shots, g.shots)
	return shots
}

func (g *Game) IsFinished() bool {
	return g.board.IsFleetDestroyed()
}
