package port

import (
	"fmt"

	"github.com/harborlab/portsim/ship"
)

// A Quay is a platform lying alongside or projecting into the water where
// ships are moored for loading or unloading. At most one ship is docked at a
// quay at any time; the quay does not own the ship's lifecycle.
type Quay interface {
	ship.Berth

	// Ship returns the docked ship, or nil if the quay is empty.
	Ship() ship.Ship

	// IsEmpty reports whether no ship is docked at this quay.
	IsEmpty() bool

	// ShipArrives docks the given ship at this quay.
	ShipArrives(s ship.Ship)

	// ShipDeparts undocks and returns the current ship, or nil if the quay
	// is empty.
	ShipDeparts() ship.Ship
}

type quayBase struct {
	id   int
	ship ship.Ship
}

func newQuayBase(id int) (quayBase, error) {
	if id < 0 {
		return quayBase{}, fmt.Errorf(
			"quay identifier must be non-negative, got %d", id)
	}

	return quayBase{id: id}, nil
}

func (q *quayBase) ID() int {
	return q.id
}

func (q *quayBase) Ship() ship.Ship {
	return q.ship
}

func (q *quayBase) IsEmpty() bool {
	return q.ship == nil
}

func (q *quayBase) ShipArrives(s ship.Ship) {
	q.ship = s
}

func (q *quayBase) ShipDeparts() ship.Ship {
	departed := q.ship
	q.ship = nil

	return departed
}

func (q *quayBase) describe(kind string) string {
	docked := "None"
	if q.ship != nil {
		docked = fmt.Sprintf("%d", q.ship.IMONumber())
	}

	return fmt.Sprintf("%s %d [Ship: %s]", kind, q.id, docked)
}

// BulkQuay is a quay that services bulk carriers up to a maximum cargo
// weight.
type BulkQuay struct {
	quayBase

	maxTonnage int
}

// NewBulkQuay creates a bulk quay with the given identifier and tonnage
// capacity.
func NewBulkQuay(id, maxTonnage int) (*BulkQuay, error) {
	base, err := newQuayBase(id)
	if err != nil {
		return nil, err
	}

	if maxTonnage < 0 {
		return nil, fmt.Errorf(
			"quay tonnage capacity must be non-negative, got %d", maxTonnage)
	}

	return &BulkQuay{quayBase: base, maxTonnage: maxTonnage}, nil
}

// MaxTonnage returns the maximum cargo weight this quay can service.
func (q *BulkQuay) MaxTonnage() int {
	return q.maxTonnage
}

func (q *BulkQuay) String() string {
	return q.describe("BulkQuay")
}

// ContainerQuay is a quay that services container ships up to a maximum
// container count.
type ContainerQuay struct {
	quayBase

	maxContainers int
}

// NewContainerQuay creates a container quay with the given identifier and
// container capacity.
func NewContainerQuay(id, maxContainers int) (*ContainerQuay, error) {
	base, err := newQuayBase(id)
	if err != nil {
		return nil, err
	}

	if maxContainers < 0 {
		return nil, fmt.Errorf(
			"quay container capacity must be non-negative, got %d",
			maxContainers)
	}

	return &ContainerQuay{quayBase: base, maxContainers: maxContainers}, nil
}

// MaxContainers returns the maximum number of containers this quay can
// service.
func (q *ContainerQuay) MaxContainers() int {
	return q.maxContainers
}

func (q *ContainerQuay) String() string {
	return q.describe("ContainerQuay")
}
