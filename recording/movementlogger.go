package recording

import (
	"github.com/harborlab/portsim/hooking"
	"github.com/harborlab/portsim/movement"
	"github.com/harborlab/portsim/port"
)

const (
	movementTable = "movements"
	tickTable     = "ticks"
)

// A MovementRecord is one row of the movements table: a movement the port
// applied. Reference is the ship's IMO number for ship movements and the
// batch size for cargo movements.
type MovementRecord struct {
	Time      int64
	Kind      string
	Direction string
	Reference int
}

// A TickRecord is one row of the ticks table: the port's counters at the end
// of a simulated minute.
type TickRecord struct {
	Time          int64
	OccupiedQuays int
	QueuedShips   int
	StoredCargo   int
}

// A MovementLogger records every applied movement and per-tick port counters
// through a DataRecorder. It implements hooking.Hook; attach it to a port
// with AcceptHook.
type MovementLogger struct {
	recorder DataRecorder
}

// NewMovementLogger creates a movement logger and its backing tables.
func NewMovementLogger(recorder DataRecorder) *MovementLogger {
	recorder.CreateTable(movementTable, MovementRecord{})
	recorder.CreateTable(tickTable, TickRecord{})

	return &MovementLogger{recorder: recorder}
}

// Func dispatches on the hook position the port fired.
func (l *MovementLogger) Func(ctx hooking.HookCtx) {
	switch ctx.Pos {
	case port.HookPosMovementApplied:
		l.recordMovement(ctx)

	case port.HookPosTick:
		l.recordTick(ctx)
	}
}

func (l *MovementLogger) recordMovement(ctx hooking.HookCtx) {
	record := MovementRecord{}

	switch m := ctx.Item.(type) {
	case *movement.ShipMovement:
		record.Time = m.Time()
		record.Kind = "ShipMovement"
		record.Direction = m.Direction().String()
		record.Reference = m.Ship().IMONumber()

	case *movement.CargoMovement:
		record.Time = m.Time()
		record.Kind = "CargoMovement"
		record.Direction = m.Direction().String()
		record.Reference = len(m.Cargo())

	default:
		return
	}

	l.recorder.InsertData(movementTable, record)
}

func (l *MovementLogger) recordTick(ctx hooking.HookCtx) {
	p, ok := ctx.Domain.(*port.Port)
	if !ok {
		return
	}

	l.recorder.InsertData(tickTable, TickRecord{
		Time:          ctx.Item.(int64),
		OccupiedQuays: p.OccupiedQuays(),
		QueuedShips:   p.ShipQueue().Len(),
		StoredCargo:   len(p.Cargo()),
	})
}
