package stats

import "github.com/harborlab/portsim/movement"

// Occupancy is the read-only view of a port that the quay occupancy
// evaluator inspects.
type Occupancy interface {
	// OccupiedQuays returns the number of quays with a ship alongside.
	OccupiedQuays() int
}

// QuayOccupancyEvaluator reports how many of a port's quays are occupied.
// It holds no state of its own; the count is computed on demand.
type QuayOccupancyEvaluator struct {
	EvaluatorBase

	port Occupancy
}

// NewQuayOccupancyEvaluator creates an evaluator observing the given port.
func NewQuayOccupancyEvaluator(port Occupancy) *QuayOccupancyEvaluator {
	return &QuayOccupancyEvaluator{port: port}
}

// Name returns the evaluator kind name.
func (e *QuayOccupancyEvaluator) Name() string {
	return "QuayOccupancyEvaluator"
}

// QuaysOccupied returns the number of quays with a docked ship.
func (e *QuayOccupancyEvaluator) QuaysOccupied() int {
	return e.port.OccupiedQuays()
}

// OnProcessMovement does nothing; occupancy is derived from the port.
func (e *QuayOccupancyEvaluator) OnProcessMovement(movement.Movement) {}
