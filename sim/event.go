// event.go defines the Event tagged variant that drives the
// simulation. Each concrete event type knows its virtual timestamp and
// how to execute itself against an *Engine.

package sim

import "github.com/sirupsen/logrus"

// EventKind tags the variant so dispatch and logging don't need a type
// switch at every call site.
type EventKind int

const (
	KindArrival EventKind = iota
	KindBeginOp
	KindEndOp
	KindCleaningDone
	KindRecoveryEnter // reserved: recovery transfer is synchronous within EndOp (see spec §4.1.1)
	KindRecoveryExit
	KindSimEnd
)

func (k EventKind) String() string {
	switch k {
	case KindArrival:
		return "ARRIVAL"
	case KindBeginOp:
		return "BEGIN_OP"
	case KindEndOp:
		return "END_OP"
	case KindCleaningDone:
		return "CLEANING_DONE"
	case KindRecoveryEnter:
		return "RECOVERY_ENTER"
	case KindRecoveryExit:
		return "RECOVERY_EXIT"
	case KindSimEnd:
		return "SIM_END"
	default:
		return "UNKNOWN"
	}
}

// Event is anything that can be ordered on the virtual-time heap and
// executed against the engine. Timestamp is in seconds since the
// virtual origin.
type Event interface {
	Kind() EventKind
	Timestamp() int64
	Execute(e *Engine)
}

// baseEvent factors the fields every concrete event shares.
type baseEvent struct {
	kind EventKind
	ts   int64
}

func (b baseEvent) Kind() EventKind  { return b.kind }
func (b baseEvent) Timestamp() int64 { return b.ts }

// ArrivalEvent signals a patient entering the system.
type ArrivalEvent struct {
	baseEvent
	PatientID int
}

func NewArrivalEvent(ts int64, patientID int) *ArrivalEvent {
	return &ArrivalEvent{baseEvent: baseEvent{kind: KindArrival, ts: ts}, PatientID: patientID}
}

func (ev *ArrivalEvent) Execute(e *Engine) { e.handleArrival(ev) }

// BeginOpEvent is built by the allocator at the current clock and only
// recorded in the event history (see history.go); it is never pushed
// onto the heap. It is kept as an explicit event type for trace
// symmetry and to let tests assert on the recorded history.
type BeginOpEvent struct {
	baseEvent
	PatientID int
	RoomID    int
	TeamID    int
}

func NewBeginOpEvent(ts int64, patientID, roomID, teamID int) *BeginOpEvent {
	return &BeginOpEvent{baseEvent: baseEvent{kind: KindBeginOp, ts: ts}, PatientID: patientID, RoomID: roomID, TeamID: teamID}
}

func (ev *BeginOpEvent) Execute(e *Engine) { e.handleBeginOp(ev) }

// EndOpEvent signals a room's operation has finished.
type EndOpEvent struct {
	baseEvent
	RoomID int
}

func NewEndOpEvent(ts int64, roomID int) *EndOpEvent {
	return &EndOpEvent{baseEvent: baseEvent{kind: KindEndOp, ts: ts}, RoomID: roomID}
}

func (ev *EndOpEvent) Execute(e *Engine) { e.handleEndOp(ev) }

// CleaningDoneEvent signals a room has finished post-operative cleaning.
type CleaningDoneEvent struct {
	baseEvent
	RoomID int
}

func NewCleaningDoneEvent(ts int64, roomID int) *CleaningDoneEvent {
	return &CleaningDoneEvent{baseEvent: baseEvent{kind: KindCleaningDone, ts: ts}, RoomID: roomID}
}

func (ev *CleaningDoneEvent) Execute(e *Engine) { e.handleCleaningDone(ev) }

// RecoveryExitEvent signals a patient's recovery period has elapsed.
type RecoveryExitEvent struct {
	baseEvent
	PatientID int
}

func NewRecoveryExitEvent(ts int64, patientID int) *RecoveryExitEvent {
	return &RecoveryExitEvent{baseEvent: baseEvent{kind: KindRecoveryExit, ts: ts}, PatientID: patientID}
}

func (ev *RecoveryExitEvent) Execute(e *Engine) { e.handleRecoveryExit(ev) }

// SimEndEvent terminates the event loop and finalises statistics.
type SimEndEvent struct {
	baseEvent
}

func NewSimEndEvent(ts int64) *SimEndEvent {
	return &SimEndEvent{baseEvent: baseEvent{kind: KindSimEnd, ts: ts}}
}

func (ev *SimEndEvent) Execute(e *Engine) { e.handleSimEnd(ev) }

// logEvent emits a trace line for a dispatched event, mirroring the
// teacher's per-event logrus.Infof calls in event.go/simulator.go.
func logEvent(now int64, ev Event) {
	logrus.Debugf("[t=%07ds] dispatch %s", now, ev.Kind())
}
