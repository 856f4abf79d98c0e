package movement

import (
	"fmt"

	"github.com/harborlab/portsim/cargo"
)

// CargoMovement moves a batch of cargo across the port boundary.
type CargoMovement struct {
	movementBase

	cargo []cargo.Cargo
}

// NewCargoMovement creates a movement of the given cargo batch at the given
// action time. The action time must be non-negative and the batch must not
// be empty.
func NewCargoMovement(
	time int64,
	direction Direction,
	batch []cargo.Cargo,
) (*CargoMovement, error) {
	base, err := newMovementBase(time, direction)
	if err != nil {
		return nil, err
	}

	if len(batch) == 0 {
		return nil, fmt.Errorf("cargo movement must carry at least one item")
	}

	m := &CargoMovement{
		movementBase: base,
		cargo:        make([]cargo.Cargo, len(batch)),
	}
	copy(m.cargo, batch)

	return m, nil
}

// Cargo returns a copy of the cargo batch being moved.
func (m *CargoMovement) Cargo() []cargo.Cargo {
	batch := make([]cargo.Cargo, len(m.cargo))
	copy(batch, m.cargo)

	return batch
}

func (m *CargoMovement) String() string {
	return fmt.Sprintf(
		"%s CargoMovement to occur at %d involving %d piece(s) of cargo",
		m.direction, m.time, len(m.cargo))
}
