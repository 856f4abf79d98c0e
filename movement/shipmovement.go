package movement

import (
	"fmt"

	"github.com/harborlab/portsim/ship"
)

// ShipMovement moves a single ship across the port boundary.
type ShipMovement struct {
	movementBase

	ship ship.Ship
}

// NewShipMovement creates a movement of the given ship at the given action
// time. The action time must be non-negative.
func NewShipMovement(
	time int64,
	direction Direction,
	s ship.Ship,
) (*ShipMovement, error) {
	base, err := newMovementBase(time, direction)
	if err != nil {
		return nil, err
	}

	return &ShipMovement{movementBase: base, ship: s}, nil
}

// Ship returns the ship being moved.
func (m *ShipMovement) Ship() ship.Ship {
	return m.ship
}

func (m *ShipMovement) String() string {
	return fmt.Sprintf("%s ShipMovement to occur at %d involving the ship %s",
		m.direction, m.time, m.ship.Name())
}
