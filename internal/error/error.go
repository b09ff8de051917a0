package error

import (
	"errors"
	"fmt"
)

// Sentinels to check against with errors.Is. The constructors
// below wrap them with the details of the failing call.
var (
	ErrOutOfGridBound    = errors.New("out of game grid bound")
	ErrPlacementRejected = errors.New("ship placement rejected")
	ErrGameNotFound      = errors.New("game not found")
	ErrSelfCheckFailed   = errors.New("self check failed")
)

func ErrGameNotExists(gameUuid string) error {
	return fmt.Errorf("%w: game with this uuid does not exist, uuid: %s", ErrGameNotFound, gameUuid)
}

func ErrXorYOutOfGridBound(x, y uint8) error {
	return fmt.Errorf("%w: incoming x or y is out of game grid bound\tx: %d\ty: %d", ErrOutOfGridBound, x, y)
}

func ErrShipPlacementRejected(name string) error {
	return fmt.Errorf("%w: ship is diagonal, off the grid or collides with another ship\tname: %s", ErrPlacementRejected, name)
}

func ErrShipCountMismatch(placed, expected int) error {
	return fmt.Errorf("%w: placed ships mismatch\tplaced: %d\texpected: %d", ErrSelfCheckFailed, placed, expected)
}

func ErrCyclicNodesMismatch(got, expected []string) error {
	return fmt.Errorf("%w: cyclic nodes mismatch\tgot: %v\texpected: %v", ErrSelfCheckFailed, got, expected)
}

func ErrShotOutcomeMismatch(x, y uint8, got, expected string) error {
	return fmt.Errorf("%w: shot outcome mismatch\tx: %d\ty: %d\tgot: %s\texpected: %s", ErrSelfCheckFailed, x, y, got, expected)
}

func ErrInvalidStage(stage string) error {
	return fmt.Errorf("invalid type of development stage: %s", stage)
}

func ErrInvalidOutcome(outcome string) error {
	return fmt.Errorf("invalid shot outcome: %s", outcome)
}

func ErrEmptyScenario(path string) error {
	return fmt.Errorf("scenario has neither a graph nor ships: %s", path)
}
