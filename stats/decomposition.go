package stats

import (
	"github.com/harborlab/portsim/cargo"
	"github.com/harborlab/portsim/movement"
	"github.com/harborlab/portsim/ship"
)

// CargoDecompositionEvaluator breaks down the cargo entering the port into
// frequency tables by cargo class, bulk commodity type and container type.
type CargoDecompositionEvaluator struct {
	EvaluatorBase

	cargoDistribution     map[string]int
	bulkCargoDistribution map[cargo.BulkCargoType]int
	containerDistribution map[cargo.ContainerType]int
}

// NewCargoDecompositionEvaluator creates an evaluator with empty frequency
// tables.
func NewCargoDecompositionEvaluator() *CargoDecompositionEvaluator {
	return &CargoDecompositionEvaluator{
		cargoDistribution:     make(map[string]int),
		bulkCargoDistribution: make(map[cargo.BulkCargoType]int),
		containerDistribution: make(map[cargo.ContainerType]int),
	}
}

// Name returns the evaluator kind name.
func (e *CargoDecompositionEvaluator) Name() string {
	return "CargoDecompositionEvaluator"
}

// CargoDistribution returns the frequency of cargo classes seen, keyed by
// class name ("BulkCargo", "Container").
func (e *CargoDecompositionEvaluator) CargoDistribution() map[string]int {
	return e.cargoDistribution
}

// BulkCargoDistribution returns the frequency of bulk commodity types seen.
func (e *CargoDecompositionEvaluator) BulkCargoDistribution() map[cargo.BulkCargoType]int {
	return e.bulkCargoDistribution
}

// ContainerDistribution returns the frequency of container types seen.
func (e *CargoDecompositionEvaluator) ContainerDistribution() map[cargo.ContainerType]int {
	return e.containerDistribution
}

// OnProcessMovement scans every cargo item entering the port and updates the
// frequency tables. Outbound movements are ignored.
func (e *CargoDecompositionEvaluator) OnProcessMovement(m movement.Movement) {
	if m.Direction() != movement.Inbound {
		return
	}

	switch mv := m.(type) {
	case *movement.ShipMovement:
		e.recordShipCargo(mv.Ship())

	case *movement.CargoMovement:
		for _, item := range mv.Cargo() {
			e.recordCargo(item)
		}
	}
}

func (e *CargoDecompositionEvaluator) recordShipCargo(s ship.Ship) {
	switch vessel := s.(type) {
	case *ship.BulkCarrier:
		if vessel.Cargo() != nil {
			e.recordCargo(vessel.Cargo())
		}

	case *ship.ContainerShip:
		for _, container := range vessel.Cargo() {
			e.recordCargo(container)
		}
	}
}

func (e *CargoDecompositionEvaluator) recordCargo(item cargo.Cargo) {
	switch c := item.(type) {
	case *cargo.BulkCargo:
		e.cargoDistribution["BulkCargo"]++
		e.bulkCargoDistribution[c.Type()]++

	case *cargo.Container:
		e.cargoDistribution["Container"]++
		e.containerDistribution[c.Type()]++
	}
}
