package stats

import "github.com/harborlab/portsim/movement"

// ShipThroughputEvaluator counts the ships that left the port within the
// last hour.
type ShipThroughputEvaluator struct {
	EvaluatorBase

	exitTimes []int64
}

// NewShipThroughputEvaluator creates an evaluator with no recorded exits.
func NewShipThroughputEvaluator() *ShipThroughputEvaluator {
	return &ShipThroughputEvaluator{}
}

// Name returns the evaluator kind name.
func (e *ShipThroughputEvaluator) Name() string {
	return "ShipThroughputEvaluator"
}

// ThroughputPerHour returns the number of outbound ship movements applied in
// the last 60 minutes.
func (e *ShipThroughputEvaluator) ThroughputPerHour() int {
	return len(e.exitTimes)
}

// OnProcessMovement records the exit time of outbound ship movements. Other
// movements are ignored.
func (e *ShipThroughputEvaluator) OnProcessMovement(m movement.Movement) {
	if _, ok := m.(*movement.ShipMovement); !ok {
		return
	}

	if m.Direction() != movement.Outbound {
		return
	}

	e.exitTimes = append(e.exitTimes, e.Time())
}

// ElapseOneMinute advances the clock and evicts exits recorded more than 60
// minutes ago.
func (e *ShipThroughputEvaluator) ElapseOneMinute() {
	e.EvaluatorBase.ElapseOneMinute()

	retained := e.exitTimes[:0]
	for _, exit := range e.exitTimes {
		if e.Time() <= exit+60 {
			retained = append(retained, exit)
		}
	}
	e.exitTimes = retained
}
