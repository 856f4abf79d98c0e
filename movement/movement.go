// Package movement defines the time-stamped, directional instructions that
// move ships and cargo across the port boundary.
//
// Movements are immutable once constructed. Their ordering key is the action
// time; ties are resolved by the port in schedule order.
package movement

import "fmt"

// Direction describes whether a movement enters or leaves the port.
type Direction int

const (
	// Inbound movements enter the port.
	Inbound Direction = iota

	// Outbound movements leave the port.
	Outbound
)

var directionNames = map[Direction]string{
	Inbound:  "INBOUND",
	Outbound: "OUTBOUND",
}

func (d Direction) String() string {
	name, ok := directionNames[d]
	if !ok {
		return fmt.Sprintf("Direction(%d)", int(d))
	}

	return name
}

// ParseDirection converts the token used in encodings back to a Direction.
func ParseDirection(token string) (Direction, error) {
	for d, name := range directionNames {
		if name == token {
			return d, nil
		}
	}

	return 0, fmt.Errorf("unknown movement direction %q", token)
}

// Movement is an instruction to move a ship or a cargo batch across the port
// boundary at a fixed action time.
type Movement interface {
	// Time returns the action time of the movement in simulated minutes.
	Time() int64

	// Direction returns whether the movement is inbound or outbound.
	Direction() Direction
}

type movementBase struct {
	time      int64
	direction Direction
}

func newMovementBase(time int64, direction Direction) (movementBase, error) {
	if time < 0 {
		return movementBase{}, fmt.Errorf(
			"movement action time must be non-negative, got %d", time)
	}

	return movementBase{time: time, direction: direction}, nil
}

func (m movementBase) Time() int64 {
	return m.time
}

func (m movementBase) Direction() Direction {
	return m.direction
}
