package codec

import (
	"fmt"

	"github.com/harborlab/portsim/cargo"
	"github.com/harborlab/portsim/movement"
	"github.com/harborlab/portsim/ship"
)

const (
	movementKindShip  = "ShipMovement"
	movementKindCargo = "CargoMovement"
)

// EncodeMovement renders a single pending movement.
func EncodeMovement(m movement.Movement) string {
	switch mv := m.(type) {
	case *movement.ShipMovement:
		return fmt.Sprintf("%s:%d:%s:%d",
			movementKindShip, mv.Time(), mv.Direction(),
			mv.Ship().IMONumber())

	case *movement.CargoMovement:
		batch := mv.Cargo()
		ids := make([]int, 0, len(batch))
		for _, item := range batch {
			ids = append(ids, item.ID())
		}

		return fmt.Sprintf("%s:%d:%s:%d:%s",
			movementKindCargo, mv.Time(), mv.Direction(),
			len(ids), joinIDs(ids))

	default:
		panic(fmt.Sprintf("unknown movement variant %T", m))
	}
}

// ParseMovement decodes a single movement line, resolving ship and cargo
// references against the given registries.
func ParseMovement(
	line string,
	ships *ship.Registry,
	cargoes *cargo.Registry,
) (movement.Movement, error) {
	switch kind := kindOf(line); kind {
	case movementKindShip:
		return parseShipMovement(line, ships)

	case movementKindCargo:
		return parseCargoMovement(line, cargoes)

	default:
		return nil, decodeErrorf(line, "unknown movement kind %q", kind)
	}
}

func parseShipMovement(
	line string,
	ships *ship.Registry,
) (movement.Movement, error) {
	fields, err := splitFields(line, 4)
	if err != nil {
		return nil, err
	}

	time, err := parseInt64(line, fields[1])
	if err != nil {
		return nil, err
	}

	direction, err := movement.ParseDirection(fields[2])
	if err != nil {
		return nil, wrapDecodeError(line, err)
	}

	imoNumber, err := parseInt(line, fields[3])
	if err != nil {
		return nil, err
	}

	vessel, err := ships.Lookup(imoNumber)
	if err != nil {
		return nil, wrapDecodeError(line, err)
	}

	m, err := movement.NewShipMovement(time, direction, vessel)
	if err != nil {
		return nil, wrapDecodeError(line, err)
	}

	return m, nil
}

func parseCargoMovement(
	line string,
	cargoes *cargo.Registry,
) (movement.Movement, error) {
	fields, err := splitFields(line, 5)
	if err != nil {
		return nil, err
	}

	time, err := parseInt64(line, fields[1])
	if err != nil {
		return nil, err
	}

	direction, err := movement.ParseDirection(fields[2])
	if err != nil {
		return nil, wrapDecodeError(line, err)
	}

	count, err := parseInt(line, fields[3])
	if err != nil {
		return nil, err
	}

	ids, err := parseIDList(line, fields[4], count)
	if err != nil {
		return nil, err
	}

	batch := make([]cargo.Cargo, 0, len(ids))
	for _, id := range ids {
		item, err := cargoes.Lookup(id)
		if err != nil {
			return nil, wrapDecodeError(line, err)
		}
		batch = append(batch, item)
	}

	m, err := movement.NewCargoMovement(time, direction, batch)
	if err != nil {
		return nil, wrapDecodeError(line, err)
	}

	return m, nil
}
