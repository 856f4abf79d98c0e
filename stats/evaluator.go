// Package stats provides the statistics evaluators a port notifies about
// applied movements and elapsed minutes. Evaluators observe the simulation;
// they never mutate its state, and each evaluator kind is independent of the
// others.
package stats

import "github.com/harborlab/portsim/movement"

// A StatisticsEvaluator is notified of every movement the port applies and
// of every simulated minute that elapses.
type StatisticsEvaluator interface {
	// Name returns the evaluator kind name. Ports register at most one
	// evaluator per name, and snapshots identify evaluators by it.
	Name() string

	// Time returns the number of minutes this evaluator has observed.
	Time() int64

	// OnProcessMovement is called once for every movement the port applies.
	OnProcessMovement(m movement.Movement)

	// ElapseOneMinute is called once per simulated minute.
	ElapseOneMinute()
}

// EvaluatorBase carries the elapsed-time counter shared by all evaluator
// kinds.
type EvaluatorBase struct {
	time int64
}

// Time returns the number of minutes this evaluator has observed.
func (b *EvaluatorBase) Time() int64 {
	return b.time
}

// ElapseOneMinute advances the elapsed-time counter by one minute.
func (b *EvaluatorBase) ElapseOneMinute() {
	b.time++
}
