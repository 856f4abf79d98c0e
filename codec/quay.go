package codec

import (
	"fmt"
	"strconv"

	"github.com/harborlab/portsim/port"
	"github.com/harborlab/portsim/ship"
)

const (
	quayKindBulk      = "BulkQuay"
	quayKindContainer = "ContainerQuay"

	// emptyQuayToken marks a quay with no docked ship.
	emptyQuayToken = "None"
)

// EncodeQuay renders a single quay with a reference to its docked ship, if
// any.
func EncodeQuay(q port.Quay) string {
	docked := emptyQuayToken
	if !q.IsEmpty() {
		docked = strconv.Itoa(q.Ship().IMONumber())
	}

	switch quay := q.(type) {
	case *port.BulkQuay:
		return fmt.Sprintf("%s:%d:%s:%d",
			quayKindBulk, quay.ID(), docked, quay.MaxTonnage())

	case *port.ContainerQuay:
		return fmt.Sprintf("%s:%d:%s:%d",
			quayKindContainer, quay.ID(), docked, quay.MaxContainers())

	default:
		panic(fmt.Sprintf("unknown quay variant %T", q))
	}
}

// ParseQuay decodes a single quay line and attaches the referenced docked
// ship, if any, from the ship registry.
func ParseQuay(line string, ships *ship.Registry) (port.Quay, error) {
	fields, err := splitFields(line, 4)
	if err != nil {
		return nil, err
	}

	id, err := parseInt(line, fields[1])
	if err != nil {
		return nil, err
	}

	capacity, err := parseInt(line, fields[3])
	if err != nil {
		return nil, err
	}

	var quay port.Quay
	switch kind := fields[0]; kind {
	case quayKindBulk:
		quay, err = port.NewBulkQuay(id, capacity)

	case quayKindContainer:
		quay, err = port.NewContainerQuay(id, capacity)

	default:
		return nil, decodeErrorf(line, "unknown quay kind %q", kind)
	}
	if err != nil {
		return nil, wrapDecodeError(line, err)
	}

	if fields[2] != emptyQuayToken {
		imoNumber, err := parseInt(line, fields[2])
		if err != nil {
			return nil, err
		}

		vessel, err := ships.Lookup(imoNumber)
		if err != nil {
			return nil, wrapDecodeError(line, err)
		}

		quay.ShipArrives(vessel)
	}

	return quay, nil
}
