package cargo

import "fmt"

// BulkCargo is commodity cargo that is transported unpacked in large
// quantities.
type BulkCargo struct {
	cargoBase

	tonnage  int
	cargoTyp BulkCargoType
}

// NewBulkCargo creates a bulk cargo item and registers it with the given
// registry. The identifier must be non-negative and unused, and the tonnage
// must be non-negative.
func NewBulkCargo(
	reg *Registry,
	id int,
	destination string,
	tonnage int,
	cargoTyp BulkCargoType,
) (*BulkCargo, error) {
	if tonnage < 0 {
		return nil, fmt.Errorf(
			"bulk cargo tonnage must be non-negative, got %d", tonnage)
	}

	c := &BulkCargo{
		cargoBase: cargoBase{id: id, destination: destination},
		tonnage:   tonnage,
		cargoTyp:  cargoTyp,
	}

	if err := reg.Register(id, c); err != nil {
		return nil, fmt.Errorf("cannot create bulk cargo: %w", err)
	}

	return c, nil
}

// Tonnage returns the weight of this cargo in tonnes.
func (c *BulkCargo) Tonnage() int {
	return c.tonnage
}

// Type returns the commodity tag of this cargo.
func (c *BulkCargo) Type() BulkCargoType {
	return c.cargoTyp
}

func (c *BulkCargo) String() string {
	return fmt.Sprintf("BulkCargo %d to %s [%s - %d]",
		c.id, c.destination, c.cargoTyp, c.tonnage)
}
