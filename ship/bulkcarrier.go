package ship

import (
	"fmt"

	"github.com/harborlab/portsim/cargo"
)

// BulkCarrier is a ship that carries at most one piece of bulk cargo at a
// time.
type BulkCarrier struct {
	shipBase

	tonnageCapacity int
	cargo           *cargo.BulkCargo
}

// NewBulkCarrier creates a bulk carrier and registers it with the given
// registry under its IMO number. The tonnage capacity must be non-negative.
func NewBulkCarrier(
	reg *Registry,
	imoNumber int,
	name string,
	originFlag string,
	flag NauticalFlag,
	capacity int,
) (*BulkCarrier, error) {
	if err := checkIMONumber(imoNumber); err != nil {
		return nil, err
	}

	if capacity < 0 {
		return nil, fmt.Errorf(
			"tonnage capacity must be non-negative, got %d", capacity)
	}

	s := &BulkCarrier{
		shipBase: shipBase{
			imoNumber:  imoNumber,
			name:       name,
			originFlag: originFlag,
			flag:       flag,
		},
		tonnageCapacity: capacity,
	}

	if err := reg.Register(imoNumber, s); err != nil {
		return nil, fmt.Errorf("cannot create bulk carrier: %w", err)
	}

	return s, nil
}

// TonnageCapacity returns the maximum cargo weight this ship can carry.
func (s *BulkCarrier) TonnageCapacity() int {
	return s.tonnageCapacity
}

// Cargo returns the bulk cargo on board, or nil if the ship is empty.
func (s *BulkCarrier) Cargo() *cargo.BulkCargo {
	return s.cargo
}

// CanDock reports whether this ship may moor at the given berth. The berth
// must service bulk carriers and, if the ship is loaded, the berth's maximum
// tonnage must cover the carried weight.
func (s *BulkCarrier) CanDock(berth Berth) bool {
	bulkBerth, ok := berth.(BulkBerth)
	if !ok {
		return false
	}

	if s.cargo == nil {
		return true
	}

	return bulkBerth.MaxTonnage() >= s.cargo.Tonnage()
}

// CanLoad reports whether the given cargo may be loaded. The ship must be
// empty, the cargo must be bulk cargo within the ship's capacity, and the
// cargo's destination must match the ship's origin.
func (s *BulkCarrier) CanLoad(c cargo.Cargo) bool {
	if s.cargo != nil {
		return false
	}

	bulk, ok := c.(*cargo.BulkCargo)
	if !ok {
		return false
	}

	return bulk.Tonnage() <= s.tonnageCapacity &&
		bulk.Destination() == s.originFlag
}

// LoadCargo loads the given cargo onto the ship.
func (s *BulkCarrier) LoadCargo(c cargo.Cargo) error {
	if !s.CanLoad(c) {
		return fmt.Errorf("cannot load %v onto %v", c, s)
	}

	s.cargo = c.(*cargo.BulkCargo)

	return nil
}

// UnloadCargo removes and returns the cargo on board. It returns an error
// wrapping ErrNoCargo if the ship is empty.
func (s *BulkCarrier) UnloadCargo() (*cargo.BulkCargo, error) {
	if s.cargo == nil {
		return nil, fmt.Errorf("ship %d: %w", s.imoNumber, ErrNoCargo)
	}

	unloaded := s.cargo
	s.cargo = nil

	return unloaded, nil
}

func (s *BulkCarrier) String() string {
	carrying := "nothing"
	if s.cargo != nil {
		carrying = s.cargo.Type().String()
	}

	return fmt.Sprintf("BulkCarrier %s from %s [%s] carrying %s",
		s.name, s.originFlag, s.flag, carrying)
}
