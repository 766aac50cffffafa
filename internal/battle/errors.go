package battle

import "errors"

// All game errors are recoverable: a failed operation mutates nothing and the
// caller re-prompts or re-selects.
var (
	// ErrOutOfBounds rejects a ship placement extending past the grid edges.
	ErrOutOfBounds = errors.New("battle: ship extends beyond the board")

	// ErrOverlap rejects a ship placement intersecting an already-placed ship.
	ErrOverlap = errors.New("battle: ships cannot overlap")

	// ErrAlreadyFired rejects a shot at a coordinate the same side has
	// already targeted.
	ErrAlreadyFired = errors.New("battle: coordinate already fired upon")

	// ErrNoTargets signals that every coordinate has been fired upon; the
	// game is presumed already over.
	ErrNoTargets = errors.New("battle: no targets remaining")

	// ErrUnknownShip rejects placement of a ship that does not belong to the
	// board's fleet.
	ErrUnknownShip = errors.New("battle: ship does not belong to this fleet")

	// ErrFleetComplete rejects placement after all five ships are placed.
	ErrFleetComplete = errors.New("battle: all ships already placed")
)
