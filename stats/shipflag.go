package stats

import (
	"github.com/harborlab/portsim/movement"
	"github.com/harborlab/portsim/ship"
)

// ShipFlagEvaluator counts the nautical flags of the ships entering the
// port.
type ShipFlagEvaluator struct {
	EvaluatorBase

	flagDistribution map[ship.NauticalFlag]int
}

// NewShipFlagEvaluator creates an evaluator with an empty frequency table.
func NewShipFlagEvaluator() *ShipFlagEvaluator {
	return &ShipFlagEvaluator{
		flagDistribution: make(map[ship.NauticalFlag]int),
	}
}

// Name returns the evaluator kind name.
func (e *ShipFlagEvaluator) Name() string {
	return "ShipFlagEvaluator"
}

// FlagDistribution returns the frequency of nautical flags seen on inbound
// ships.
func (e *ShipFlagEvaluator) FlagDistribution() map[ship.NauticalFlag]int {
	return e.flagDistribution
}

// OnProcessMovement records the flag of inbound ship movements. Other
// movements are ignored.
func (e *ShipFlagEvaluator) OnProcessMovement(m movement.Movement) {
	shipMovement, ok := m.(*movement.ShipMovement)
	if !ok || m.Direction() != movement.Inbound {
		return
	}

	e.flagDistribution[shipMovement.Ship().Flag()]++
}
