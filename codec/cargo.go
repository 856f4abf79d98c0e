package codec

import (
	"fmt"

	"github.com/harborlab/portsim/cargo"
)

const (
	cargoKindBulk      = "BulkCargo"
	cargoKindContainer = "Container"
)

// EncodeCargo renders a single cargo item.
func EncodeCargo(c cargo.Cargo) string {
	switch item := c.(type) {
	case *cargo.BulkCargo:
		return fmt.Sprintf("%s:%d:%s:%s:%d",
			cargoKindBulk, item.ID(), item.Destination(),
			item.Type(), item.Tonnage())

	case *cargo.Container:
		return fmt.Sprintf("%s:%d:%s:%s",
			cargoKindContainer, item.ID(), item.Destination(), item.Type())

	default:
		panic(fmt.Sprintf("unknown cargo variant %T", c))
	}
}

// ParseCargo decodes a single cargo line and registers the result with the
// given registry.
func ParseCargo(line string, reg *cargo.Registry) (cargo.Cargo, error) {
	switch kind := kindOf(line); kind {
	case cargoKindBulk:
		return parseBulkCargo(line, reg)

	case cargoKindContainer:
		return parseContainer(line, reg)

	default:
		return nil, decodeErrorf(line, "unknown cargo kind %q", kind)
	}
}

func parseBulkCargo(line string, reg *cargo.Registry) (cargo.Cargo, error) {
	fields, err := splitFields(line, 5)
	if err != nil {
		return nil, err
	}

	id, err := parseInt(line, fields[1])
	if err != nil {
		return nil, err
	}

	cargoType, err := cargo.ParseBulkCargoType(fields[3])
	if err != nil {
		return nil, wrapDecodeError(line, err)
	}

	tonnage, err := parseInt(line, fields[4])
	if err != nil {
		return nil, err
	}

	item, err := cargo.NewBulkCargo(reg, id, fields[2], tonnage, cargoType)
	if err != nil {
		return nil, wrapDecodeError(line, err)
	}

	return item, nil
}

func parseContainer(line string, reg *cargo.Registry) (cargo.Cargo, error) {
	fields, err := splitFields(line, 4)
	if err != nil {
		return nil, err
	}

	id, err := parseInt(line, fields[1])
	if err != nil {
		return nil, err
	}

	containerType, err := cargo.ParseContainerType(fields[3])
	if err != nil {
		return nil, wrapDecodeError(line, err)
	}

	item, err := cargo.NewContainer(reg, id, fields[2], containerType)
	if err != nil {
		return nil, wrapDecodeError(line, err)
	}

	return item, nil
}
