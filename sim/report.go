// report.go defines the read-only snapshot types returned by Engine
// (spec §6.1/§6.2): StateReport for point-in-time kernel state, and
// EventRecord for the bounded recent-event history (see history.go).

package sim

// RunState names the Engine's top-level lifecycle state (spec §4.2).
type RunState int

const (
	Created RunState = iota
	Running
	Paused
	Stopped
	Finished
)

func (s RunState) String() string {
	switch s {
	case Created:
		return "created"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// RoomReport is a read-only view of one operating room's current state.
type RoomReport struct {
	ID       int      `json:"id"`
	State    RoomState `json:"state"`
	PatientID int     `json:"patient_id,omitempty"`
	TeamID   int      `json:"team_id,omitempty"`
}

// StateReport is the point-in-time snapshot returned by
// Engine.SnapshotState, covering all 15 fields spec §6.1 names.
type StateReport struct {
	ID                 string       `json:"id"`
	Name               string       `json:"name"`
	Policy             Policy       `json:"policy"`
	Run                RunState     `json:"run_state"`
	DurationMinutes    int          `json:"duration_minutes"`
	VirtualTimeMins    float64      `json:"virtual_time_minutes"`
	ProgressPercent    float64      `json:"progress_percent"`
	WaitingCount       int          `json:"waiting_count"`
	RoomsBusy          int          `json:"rooms_busy"`
	RoomsFree          int          `json:"rooms_free"`
	RecoveryOccupied   int          `json:"recovery_occupied"`
	PatientsTotal      int          `json:"patients_total"`
	PatientsDischarged int          `json:"patients_discharged"`
	PatientsOperating  int          `json:"patients_operating"`
	TeamsAvailable     int          `json:"teams_available"`
	Rooms              []RoomReport `json:"rooms"`
}

// EventRecord is one entry in the Engine's bounded event history
// (spec §6.1 "recent event trace"), adapted from the teacher's
// sim/trace entry shape to the hospital domain's event kinds.
type EventRecord struct {
	Kind          EventKind `json:"kind"`
	TimestampMins float64   `json:"timestamp_minutes"`
	PatientID     int       `json:"patient_id,omitempty"`
	RoomID        int       `json:"room_id,omitempty"`
	TeamID        int       `json:"team_id,omitempty"`
}
