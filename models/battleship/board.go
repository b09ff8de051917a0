package battleship

import (
	cerr "github.com/saeidalz13/battleship-exercises/internal/error"
)

// Board is not safe for concurrent use. Shots read then
// write the cell status, so callers sharing a board must
// serialize PlaceShip and ResolveShot themselves.
type Board struct {
	grid  Grid
	ships []*Ship
}

func NewBoard() *Board {
	return &Board{
		grid:  NewGrid(),
		ships: make([]*Ship, 0, 5),
	}
}

// PlaceShip accepts the ship only if it is valid, fully on
// the grid and every cell it spans is still empty. A rejected
// ship leaves the board untouched.
func (b *Board) PlaceShip(ship *Ship) bool {
	if ship == nil || !ship.IsValid() {
		return false
	}

	cells := ship.Cells()
	for _, cell := range cells {
		if !cell.InBounds() {
			return false
		}
		if b.grid.at(cell) != CellEmpty {
			return false
		}
	}

	for _, cell := range cells {
		b.grid.set(cell, CellHasShip)
	}
	b.ships = append(b.ships, ship)
	return true
}

// ResolveShot returns the outcome of a shot and, for hit
// and sunk, the name of the ship that was hit.
func (b *Board) ResolveShot(p Point) (Outcome, string, error) {
	if !p.InBounds() {
		return 0, "", cerr.ErrXorYOutOfGridBound(p.X, p.Y)
	}

	switch b.grid.at(p) {
	case CellPicked:
		return OutcomeRepeat, "", nil

	case CellEmpty:
		b.grid.set(p, CellPicked)
		return OutcomeMiss, "", nil

	case CellHasShip:
		b.grid.set(p, CellPicked)

		ship := b.shipAt(p)
		if ship == nil {
			panic("cell has ship but no ship spans it; this should never happen")
		}

		if ship.RegisterHit(p) {
			return OutcomeSunk, ship.Name(), nil
		}
		return OutcomeHit, ship.Name(), nil
	}

	panic("unknown cell status; this should never happen")
}

func (b *Board) shipAt(p Point) *Ship {
	for _, ship := range b.ships {
		if ship.IsHit(p) {
			return ship
		}
	}
	return nil
}

func (b *Board) Cell(p Point) (CellStatus, error) {
	if !p.InBounds() {
		return 0, cerr.ErrXorYOutOfGridBound(p.X, p.Y)
	}
	return b.grid.at(p), nil
}

// ShipAt returns the ship spanning p, if any.
func (b *Board) ShipAt(p Point) (*Ship, bool) {
	ship := b.shipAt(p)
	return ship, ship != nil
}

// Returns the placed ships in the order they were accepted
func (b *Board) Ships() []*Ship {
	ships := make([]*Ship, len(b.ships))
	copy(ships, b.ships)
	return ships
}

func (b *Board) SunkenShips() int {
	sunken := 0
	for _, ship := range b.ships {
		if ship.IsSunk() {
			sunken++
		}
	}
	return sunken
}

// An empty board has no fleet to destroy
func (b *Board) IsFleetDestroyed() bool {
	return len(b.ships) > 0 && b.SunkenShips() == len(b.ships)
}

// Snapshot returns a copy of the cell statuses.
func (b *Board) Snapshot() Grid {
	return b.grid
}
