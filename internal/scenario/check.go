package scenario

import (
	"errors"
	"slices"

	cerr "github.com/saeidalz13/battleship-exercises/internal/error"
	mb "github.com/saeidalz13/battleship-exercises/models/battleship"
	"github.com/saeidalz13/battleship-exercises/models/dependency"
)

// RunCycles finds the cyclic nodes of the scenario graph and
// compares them with the expected ones, if any were given.
// The nodes are returned even when the check fails.
func RunCycles(s Scenario) ([]string, error) {
	cyclic := dependency.FindCyclicNodes(s.Graph)
	if s.ExpectCyclic == nil {
		return cyclic, nil
	}

	expected := slices.Clone(s.ExpectCyclic)
	slices.Sort(expected)
	expected = slices.Compact(expected)

	if !slices.Equal(cyclic, expected) {
		return cyclic, cerr.ErrCyclicNodesMismatch(cyclic, expected)
	}
	return cyclic, nil
}

// RunBattleship places the scenario fleet on the game board and
// fires every shot in order, calling onShot after each one.
// Every shot is fired even after a mismatch; all mismatches
// are returned joined. A shot outside the grid stops the run.
func RunBattleship(s Scenario, game *mb.Game, onShot func(mb.ShotResult)) error {
	if err := game.PlaceFleet(s.Ships); err != nil {
		return err
	}
	if placed := len(game.Board().Ships()); placed != len(s.Ships) {
		return cerr.ErrShipCountMismatch(placed, len(s.Ships))
	}

	var mismatches []error
	for _, shot := range s.Shots {
		result, err := game.Shoot(shot.Point())
		if err != nil {
			return err
		}
		if onShot != nil {
			onShot(result)
		}

		if err := checkShot(shot, result); err != nil {
			mismatches = append(mismatches, err)
		}
	}
	return errors.Join(mismatches...)
}

func checkShot(shot Shot, result mb.ShotResult) error {
	if shot.Expect == "" {
		return nil
	}

	expected, err := mb.ParseOutcome(shot.Expect)
	if err != nil {
		return err
	}

	if result.Outcome != expected || result.ShipName != shot.Ship {
		return cerr.ErrShotOutcomeMismatch(shot.X, shot.Y, describe(result.Outcome, result.ShipName), describe(expected, shot.Ship))
	}
	return nil
}

func describe(outcome mb.Outcome, shipName string) string {
	if shipName == "" {
		return outcome.String()
	}
	return outcome.String() + " " + shipName
}
