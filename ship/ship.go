// Package ship defines the vessel variants managed by the port simulation:
// bulk carriers and container ships.
//
// Ships are identified by their IMO number, a 7-digit positive integer with
// no leading zero, unique within the ship registry the vessel was created
// against.
package ship

import (
	"errors"
	"fmt"

	"github.com/harborlab/portsim/cargo"
	"github.com/harborlab/portsim/registry"
)

// ErrNoCargo is returned when unloading a ship that has nothing aboard.
var ErrNoCargo = errors.New("no cargo to unload")

// A Berth is the ship-side view of a quay. Concrete quay variants advertise
// their capacity through the capability interfaces below; a ship decides
// dockability by asking for the capability matching its own variant.
type Berth interface {
	// ID returns the identifier of the quay.
	ID() int
}

// A BulkBerth is a berth that can moor bulk carriers.
type BulkBerth interface {
	Berth

	// MaxTonnage returns the maximum cargo weight the berth can service.
	MaxTonnage() int
}

// A ContainerBerth is a berth that can moor container ships.
type ContainerBerth interface {
	Berth

	// MaxContainers returns the maximum number of containers the berth can
	// service.
	MaxContainers() int
}

// Ship is a vessel whose movement is managed by the simulation.
type Ship interface {
	// IMONumber returns the 7-digit identifier of this ship.
	IMONumber() int

	// Name returns the name of this ship.
	Name() string

	// OriginFlag returns the origin country tag of this ship.
	OriginFlag() string

	// Flag returns the nautical flag this ship is flying.
	Flag() NauticalFlag

	// CanDock reports whether this ship may moor at the given berth.
	CanDock(berth Berth) bool

	// CanLoad reports whether the given cargo may be loaded onto this ship.
	CanLoad(c cargo.Cargo) bool

	// LoadCargo loads the given cargo onto this ship. It fails if CanLoad
	// does not hold for the cargo.
	LoadCargo(c cargo.Cargo) error
}

// Registry is the identity registry ships are created against, keyed by IMO
// number.
type Registry = registry.Registry[Ship]

// NewRegistry creates an empty ship registry.
func NewRegistry() *Registry {
	return registry.New[Ship]()
}

const (
	minIMONumber = 1000000
	maxIMONumber = 9999999
)

func checkIMONumber(imoNumber int) error {
	if imoNumber < minIMONumber || imoNumber > maxIMONumber {
		return fmt.Errorf(
			"IMO number must be a 7-digit number with no leading zero, got %d",
			imoNumber)
	}

	return nil
}

type shipBase struct {
	imoNumber  int
	name       string
	originFlag string
	flag       NauticalFlag
}

func (s shipBase) IMONumber() int {
	return s.imoNumber
}

func (s shipBase) Name() string {
	return s.name
}

func (s shipBase) OriginFlag() string {
	return s.originFlag
}

func (s shipBase) Flag() NauticalFlag {
	return s.flag
}
