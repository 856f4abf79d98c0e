package port

import "github.com/harborlab/portsim/ship"

// ShipQueue holds the ships waiting to enter the port, in the order they
// arrived. Selection is by priority class, re-evaluated by a full scan on
// every call; arrival order is the only tie-break within a class.
type ShipQueue struct {
	ships []ship.Ship
}

// NewShipQueue creates an empty ship queue.
func NewShipQueue() *ShipQueue {
	return &ShipQueue{}
}

// Add appends a ship to the tail of the queue.
func (q *ShipQueue) Add(s ship.Ship) {
	q.ships = append(q.ships, s)
}

// Peek returns the next ship to enter the port without removing it, or nil
// if the queue is empty.
//
// Priority classes, highest first: ships carrying dangerous goods, ships
// requiring medical assistance, ships ready to dock, container ships, and
// finally the ship at the head of the queue. Within a class the
// earliest-added ship wins.
func (q *ShipQueue) Peek() ship.Ship {
	for _, s := range q.ships {
		if s.Flag() == ship.FlagBravo {
			return s
		}
	}

	for _, s := range q.ships {
		if s.Flag() == ship.FlagWhiskey {
			return s
		}
	}

	for _, s := range q.ships {
		if s.Flag() == ship.FlagHotel {
			return s
		}
	}

	for _, s := range q.ships {
		if _, ok := s.(*ship.ContainerShip); ok {
			return s
		}
	}

	if len(q.ships) == 0 {
		return nil
	}

	return q.ships[0]
}

// Poll removes and returns the next ship to enter the port, or nil if the
// queue is empty. The selection matches Peek.
func (q *ShipQueue) Poll() ship.Ship {
	next := q.Peek()
	if next == nil {
		return nil
	}

	for i, s := range q.ships {
		if s == next {
			q.ships = append(q.ships[:i], q.ships[i+1:]...)
			break
		}
	}

	return next
}

// Ships returns the queued ships in arrival order. The returned slice is a
// copy.
func (q *ShipQueue) Ships() []ship.Ship {
	ships := make([]ship.Ship, len(q.ships))
	copy(ships, q.ships)

	return ships
}

// Len returns the number of queued ships.
func (q *ShipQueue) Len() int {
	return len(q.ships)
}
