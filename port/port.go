// Package port implements the aggregate that drives the simulation: quays,
// the ship admission queue, the warehouse, the pending movement queue and
// the per-minute tick engine.
package port

import (
	"fmt"

	"github.com/harborlab/portsim/cargo"
	"github.com/harborlab/portsim/hooking"
	"github.com/harborlab/portsim/movement"
	"github.com/harborlab/portsim/ship"
	"github.com/harborlab/portsim/stats"
)

// HookPosMovementApplied triggers after the port applies a movement. The
// hook context item is the movement.
var HookPosMovementApplied = &hooking.HookPos{Name: "MovementApplied"}

// HookPosTick triggers at the end of every simulated minute. The hook
// context item is the new tick count.
var HookPosTick = &hooking.HookPos{Name: "Tick"}

// A Port is a place where ships dock at quays to load and unload their
// cargo. Ships enter through the admission queue; cargo not aboard any ship
// is stored in the warehouse.
type Port struct {
	hooking.HookableBase

	name        string
	time        int64
	quays       []Quay
	storedCargo []cargo.Cargo
	shipQueue   *ShipQueue
	movements   *movementQueue
	evaluators  []stats.StatisticsEvaluator
}

// New creates an empty port with the given name at tick zero.
func New(name string) *Port {
	p, _ := NewWithState(name, 0, NewShipQueue(), nil, nil)
	return p
}

// NewWithState creates a port from previously captured state: elapsed time,
// admission queue, quays and warehouse content. The evaluator list and the
// pending movement queue start empty.
func NewWithState(
	name string,
	time int64,
	shipQueue *ShipQueue,
	quays []Quay,
	storedCargo []cargo.Cargo,
) (*Port, error) {
	if time < 0 {
		return nil, fmt.Errorf("port time must be non-negative, got %d", time)
	}

	p := &Port{
		name:      name,
		time:      time,
		shipQueue: shipQueue,
		movements: newMovementQueue(),
	}
	p.quays = append(p.quays, quays...)
	p.storedCargo = append(p.storedCargo, storedCargo...)

	return p, nil
}

// Name returns the name of this port.
func (p *Port) Name() string {
	return p.name
}

// Time returns the number of minutes elapsed since the simulation started.
func (p *Port) Time() int64 {
	return p.time
}

// Quays returns the port's quays in the order they were added. The returned
// slice is a copy.
func (p *Port) Quays() []Quay {
	quays := make([]Quay, len(p.quays))
	copy(quays, p.quays)

	return quays
}

// Cargo returns the cargo stored in the port's warehouse. The returned slice
// is a copy.
func (p *Port) Cargo() []cargo.Cargo {
	stored := make([]cargo.Cargo, len(p.storedCargo))
	copy(stored, p.storedCargo)

	return stored
}

// ShipQueue returns the queue of ships waiting to enter the port.
func (p *Port) ShipQueue() *ShipQueue {
	return p.shipQueue
}

// PendingMovements returns the not-yet-applied movements in application
// order. The returned slice is a copy.
func (p *Port) PendingMovements() []movement.Movement {
	return p.movements.All()
}

// Evaluators returns the port's statistics evaluators in registration order.
// The returned slice is a copy.
func (p *Port) Evaluators() []stats.StatisticsEvaluator {
	evaluators := make([]stats.StatisticsEvaluator, len(p.evaluators))
	copy(evaluators, p.evaluators)

	return evaluators
}

// OccupiedQuays returns the number of quays with a docked ship.
func (p *Port) OccupiedQuays() int {
	occupied := 0
	for _, q := range p.quays {
		if !q.IsEmpty() {
			occupied++
		}
	}

	return occupied
}

// AddQuay adds a quay to the port's control.
func (p *Port) AddQuay(q Quay) {
	p.quays = append(p.quays, q)
}

// AddMovement schedules a movement. It fails if the movement's action time
// is earlier than the current tick. No ship or cargo validity is checked
// here; misuse surfaces later as a runtime inconsistency.
func (p *Port) AddMovement(m movement.Movement) error {
	if m.Time() < p.time {
		return fmt.Errorf(
			"movement action time %d is earlier than the current time %d",
			m.Time(), p.time)
	}

	p.movements.Push(m)

	return nil
}

// AddStatisticsEvaluator registers an evaluator with the port. If an
// evaluator of the same kind is already present, no action is taken.
func (p *Port) AddStatisticsEvaluator(evaluator stats.StatisticsEvaluator) {
	for _, existing := range p.evaluators {
		if existing.Name() == evaluator.Name() {
			return
		}
	}

	p.evaluators = append(p.evaluators, evaluator)
}

// AdvanceOneMinute advances the simulation by one minute. In order: the tick
// counter is incremented; every tenth minute one ship is docked from the
// admission queue if a compatible empty quay exists; every fifth minute all
// docked ships unload into the warehouse; every pending movement due at or
// before the new tick is applied in time order; finally every evaluator
// observes the elapsed minute.
//
// Applying due movements covers movements scheduled at the current tick,
// which would otherwise never see a tick equal to their action time.
func (p *Port) AdvanceOneMinute() {
	p.time++

	if p.time%10 == 0 {
		p.dockShipFromQueue()
	}

	if p.time%5 == 0 {
		p.unloadDockedShips()
	}

	for p.movements.Len() > 0 && p.movements.Peek().Time() <= p.time {
		p.ProcessMovement(p.movements.Pop())
	}

	for _, evaluator := range p.evaluators {
		evaluator.ElapseOneMinute()
	}

	p.InvokeHook(hooking.HookCtx{
		Domain: p,
		Pos:    HookPosTick,
		Item:   p.time,
	})
}

// ProcessMovement applies a movement. Inbound ships join the admission
// queue. Outbound ships load every warehouse cargo item they accept, then
// leave their quay. Inbound cargo batches join the warehouse; outbound
// batches leave it. Every evaluator is then notified of the movement.
func (p *Port) ProcessMovement(m movement.Movement) {
	switch mv := m.(type) {
	case *movement.ShipMovement:
		p.processShipMovement(mv)

	case *movement.CargoMovement:
		p.processCargoMovement(mv)
	}

	for _, evaluator := range p.evaluators {
		evaluator.OnProcessMovement(m)
	}

	p.InvokeHook(hooking.HookCtx{
		Domain: p,
		Pos:    HookPosMovementApplied,
		Item:   m,
	})
}

func (p *Port) processShipMovement(m *movement.ShipMovement) {
	vessel := m.Ship()

	switch m.Direction() {
	case movement.Inbound:
		p.shipQueue.Add(vessel)

	case movement.Outbound:
		retained := p.storedCargo[:0]
		for _, item := range p.storedCargo {
			if vessel.CanLoad(item) {
				// CanLoad was just checked, so the load cannot fail.
				_ = vessel.LoadCargo(item)
				continue
			}
			retained = append(retained, item)
		}
		p.storedCargo = retained

		for _, q := range p.quays {
			if q.Ship() == vessel {
				q.ShipDeparts()
				break
			}
		}
	}
}

func (p *Port) processCargoMovement(m *movement.CargoMovement) {
	switch m.Direction() {
	case movement.Inbound:
		p.storedCargo = append(p.storedCargo, m.Cargo()...)

	case movement.Outbound:
		for _, moved := range m.Cargo() {
			for i, stored := range p.storedCargo {
				if stored == moved {
					p.storedCargo = append(
						p.storedCargo[:i], p.storedCargo[i+1:]...)
					break
				}
			}
		}
	}
}

// dockShipFromQueue docks the highest-priority waiting ship at the first
// empty quay that accepts it. Quays are scanned in addition order; at most
// one ship docks per attempt.
func (p *Port) dockShipFromQueue() {
	next := p.shipQueue.Peek()
	if next == nil {
		return
	}

	for _, q := range p.quays {
		if q.IsEmpty() && next.CanDock(q) {
			q.ShipArrives(p.shipQueue.Poll())
			break
		}
	}
}

// unloadDockedShips moves all cargo aboard docked ships into the warehouse.
// Ships with nothing to unload are skipped.
func (p *Port) unloadDockedShips() {
	for _, q := range p.quays {
		switch vessel := q.Ship().(type) {
		case *ship.BulkCarrier:
			if unloaded, err := vessel.UnloadCargo(); err == nil {
				p.storedCargo = append(p.storedCargo, unloaded)
			}

		case *ship.ContainerShip:
			unloaded, err := vessel.UnloadCargo()
			if err != nil {
				continue
			}
			for _, container := range unloaded {
				p.storedCargo = append(p.storedCargo, container)
			}
		}
	}
}
