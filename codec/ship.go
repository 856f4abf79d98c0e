package codec

import (
	"fmt"
	"strconv"

	"github.com/harborlab/portsim/cargo"
	"github.com/harborlab/portsim/ship"
)

const (
	shipKindBulkCarrier   = "BulkCarrier"
	shipKindContainerShip = "ContainerShip"
)

// EncodeShip renders a single ship, including references to the cargo it
// carries.
func EncodeShip(s ship.Ship) string {
	switch vessel := s.(type) {
	case *ship.BulkCarrier:
		cargoID := ""
		if vessel.Cargo() != nil {
			cargoID = strconv.Itoa(vessel.Cargo().ID())
		}

		return fmt.Sprintf("%s:%d:%s:%s:%s:%d:%s",
			shipKindBulkCarrier, vessel.IMONumber(), vessel.Name(),
			vessel.OriginFlag(), vessel.Flag(), vessel.TonnageCapacity(),
			cargoID)

	case *ship.ContainerShip:
		containers := vessel.Cargo()
		ids := make([]int, 0, len(containers))
		for _, container := range containers {
			ids = append(ids, container.ID())
		}

		return fmt.Sprintf("%s:%d:%s:%s:%s:%d:%d:%s",
			shipKindContainerShip, vessel.IMONumber(), vessel.Name(),
			vessel.OriginFlag(), vessel.Flag(), vessel.ContainerCapacity(),
			len(ids), joinIDs(ids))

	default:
		panic(fmt.Sprintf("unknown ship variant %T", s))
	}
}

// ParseShip decodes a single ship line, registers the result with the ship
// registry, and loads any referenced cargo from the cargo registry.
func ParseShip(
	line string,
	ships *ship.Registry,
	cargoes *cargo.Registry,
) (ship.Ship, error) {
	switch kind := kindOf(line); kind {
	case shipKindBulkCarrier:
		return parseBulkCarrier(line, ships, cargoes)

	case shipKindContainerShip:
		return parseContainerShip(line, ships, cargoes)

	default:
		return nil, decodeErrorf(line, "unknown ship kind %q", kind)
	}
}

type shipHeader struct {
	imoNumber  int
	name       string
	originFlag string
	flag       ship.NauticalFlag
	capacity   int
}

func parseShipHeader(line string, fields []string) (shipHeader, error) {
	imoNumber, err := parseInt(line, fields[1])
	if err != nil {
		return shipHeader{}, err
	}

	flag, err := ship.ParseNauticalFlag(fields[4])
	if err != nil {
		return shipHeader{}, wrapDecodeError(line, err)
	}

	capacity, err := parseInt(line, fields[5])
	if err != nil {
		return shipHeader{}, err
	}

	return shipHeader{
		imoNumber:  imoNumber,
		name:       fields[2],
		originFlag: fields[3],
		flag:       flag,
		capacity:   capacity,
	}, nil
}

func parseBulkCarrier(
	line string,
	ships *ship.Registry,
	cargoes *cargo.Registry,
) (ship.Ship, error) {
	fields, err := splitFields(line, 7)
	if err != nil {
		return nil, err
	}

	header, err := parseShipHeader(line, fields)
	if err != nil {
		return nil, err
	}

	vessel, err := ship.NewBulkCarrier(ships,
		header.imoNumber, header.name, header.originFlag,
		header.flag, header.capacity)
	if err != nil {
		return nil, wrapDecodeError(line, err)
	}

	if fields[6] != "" {
		if err := loadShipCargo(line, vessel, fields[6], cargoes); err != nil {
			return nil, err
		}
	}

	return vessel, nil
}

func parseContainerShip(
	line string,
	ships *ship.Registry,
	cargoes *cargo.Registry,
) (ship.Ship, error) {
	fields, err := splitFields(line, 8)
	if err != nil {
		return nil, err
	}

	header, err := parseShipHeader(line, fields)
	if err != nil {
		return nil, err
	}

	count, err := parseInt(line, fields[6])
	if err != nil {
		return nil, err
	}

	tokens, err := parseTokenList(line, fields[7], count)
	if err != nil {
		return nil, err
	}

	vessel, err := ship.NewContainerShip(ships,
		header.imoNumber, header.name, header.originFlag,
		header.flag, header.capacity)
	if err != nil {
		return nil, wrapDecodeError(line, err)
	}

	for _, token := range tokens {
		if err := loadShipCargo(line, vessel, token, cargoes); err != nil {
			return nil, err
		}
	}

	return vessel, nil
}

func loadShipCargo(
	line string,
	vessel ship.Ship,
	token string,
	cargoes *cargo.Registry,
) error {
	id, err := parseInt(line, token)
	if err != nil {
		return err
	}

	item, err := cargoes.Lookup(id)
	if err != nil {
		return wrapDecodeError(line, err)
	}

	if err := vessel.LoadCargo(item); err != nil {
		return wrapDecodeError(line, err)
	}

	return nil
}
