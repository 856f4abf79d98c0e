package ship

import (
	"fmt"

	"github.com/harborlab/portsim/cargo"
)

// ContainerShip is a ship that carries a variable number of containers,
// bounded by a container-count capacity.
type ContainerShip struct {
	shipBase

	containerCapacity int
	containers        []*cargo.Container
}

// NewContainerShip creates a container ship and registers it with the given
// registry under its IMO number. The container capacity must be
// non-negative.
func NewContainerShip(
	reg *Registry,
	imoNumber int,
	name string,
	originFlag string,
	flag NauticalFlag,
	capacity int,
) (*ContainerShip, error) {
	if err := checkIMONumber(imoNumber); err != nil {
		return nil, err
	}

	if capacity < 0 {
		return nil, fmt.Errorf(
			"container capacity must be non-negative, got %d", capacity)
	}

	s := &ContainerShip{
		shipBase: shipBase{
			imoNumber:  imoNumber,
			name:       name,
			originFlag: originFlag,
			flag:       flag,
		},
		containerCapacity: capacity,
	}

	if err := reg.Register(imoNumber, s); err != nil {
		return nil, fmt.Errorf("cannot create container ship: %w", err)
	}

	return s, nil
}

// ContainerCapacity returns the maximum number of containers this ship can
// carry.
func (s *ContainerShip) ContainerCapacity() int {
	return s.containerCapacity
}

// Cargo returns a copy of the containers on board.
func (s *ContainerShip) Cargo() []*cargo.Container {
	containers := make([]*cargo.Container, len(s.containers))
	copy(containers, s.containers)

	return containers
}

// CanDock reports whether this ship may moor at the given berth. The berth
// must service container ships and its maximum container count must cover
// the containers on board.
func (s *ContainerShip) CanDock(berth Berth) bool {
	containerBerth, ok := berth.(ContainerBerth)
	if !ok {
		return false
	}

	return containerBerth.MaxContainers() >= len(s.containers)
}

// CanLoad reports whether the given cargo may be loaded. The cargo must be a
// container, the ship must have remaining capacity, and the cargo's
// destination must match the ship's origin.
func (s *ContainerShip) CanLoad(c cargo.Cargo) bool {
	container, ok := c.(*cargo.Container)
	if !ok {
		return false
	}

	return len(s.containers) < s.containerCapacity &&
		container.Destination() == s.originFlag
}

// LoadCargo loads the given cargo onto the ship.
func (s *ContainerShip) LoadCargo(c cargo.Cargo) error {
	if !s.CanLoad(c) {
		return fmt.Errorf("cannot load %v onto %v", c, s)
	}

	s.containers = append(s.containers, c.(*cargo.Container))

	return nil
}

// UnloadCargo removes and returns all containers on board. It returns an
// error wrapping ErrNoCargo if the ship is empty.
func (s *ContainerShip) UnloadCargo() ([]*cargo.Container, error) {
	if len(s.containers) == 0 {
		return nil, fmt.Errorf("ship %d: %w", s.imoNumber, ErrNoCargo)
	}

	unloaded := s.containers
	s.containers = nil

	return unloaded, nil
}

func (s *ContainerShip) String() string {
	return fmt.Sprintf("ContainerShip %s from %s [%s] carrying %d containers",
		s.name, s.originFlag, s.flag, len(s.containers))
}
