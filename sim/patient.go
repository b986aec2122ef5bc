// patient.go defines the Patient entity and the enumerations that
// classify it: Priority and OperationType.

package sim

import "fmt"

// Priority classifies a patient's urgency. Lower values are more urgent.
type Priority int

const (
	Emergency  Priority = 1
	Elective   Priority = 2
	Ambulatory Priority = 3
)

func (p Priority) String() string {
	switch p {
	case Emergency:
		return "EMERGENCY"
	case Elective:
		return "ELECTIVE"
	case Ambulatory:
		return "AMBULATORY"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// Priorities lists every Priority value in a stable order, used to
// segment per-priority statistics deterministically.
var Priorities = [3]Priority{Emergency, Elective, Ambulatory}

// OperationType classifies the surgical procedure a patient needs.
// Each type has a mean duration and a symmetric dispersion (durationTable).
type OperationType int

const (
	Cardiac OperationType = iota
	Orthopaedic
	Neuro
	Digestive
	Thoracic
	Vascular
	Urologic
	ENT
	Ophthalmic
	Gynaecologic
)

// operationTypes lists every OperationType in the order used to draw
// the uniform random type in Generator.randomOperationType.
var operationTypes = [10]OperationType{
	Cardiac, Orthopaedic, Neuro, Digestive, Thoracic,
	Vascular, Urologic, ENT, Ophthalmic, Gynaecologic,
}

func (t OperationType) String() string {
	switch t {
	case Cardiac:
		return "CARDIAC"
	case Orthopaedic:
		return "ORTHOPAEDIC"
	case Neuro:
		return "NEURO"
	case Digestive:
		return "DIGESTIVE"
	case Thoracic:
		return "THORACIC"
	case Vascular:
		return "VASCULAR"
	case Urologic:
		return "UROLOGIC"
	case ENT:
		return "ENT"
	case Ophthalmic:
		return "OPHTHALMIC"
	case Gynaecologic:
		return "GYNAECOLOGIC"
	default:
		return fmt.Sprintf("OperationType(%d)", int(t))
	}
}

// durationStats holds the mean and dispersion (minutes) for an
// OperationType, per spec §4.3's table.
type durationStats struct {
	mean, dispersion float64
}

var durationTable = map[OperationType]durationStats{
	Cardiac:      {mean: 240, dispersion: 60},
	Neuro:        {mean: 300, dispersion: 90},
	Orthopaedic:  {mean: 120, dispersion: 30},
	Digestive:    {mean: 180, dispersion: 45},
	Thoracic:     {mean: 210, dispersion: 60},
	Vascular:     {mean: 150, dispersion: 40},
	Urologic:     {mean: 90, dispersion: 20},
	ENT:          {mean: 60, dispersion: 15},
	Ophthalmic:   {mean: 45, dispersion: 10},
	Gynaecologic: {mean: 120, dispersion: 30},
}

// PatientState reports which of the mutually-exclusive lifecycle
// buckets a patient currently occupies.
type PatientState int

const (
	Waiting PatientState = iota
	Operating
	Recovering
	Discharged
)

func (s PatientState) String() string {
	switch s {
	case Waiting:
		return "WAITING"
	case Operating:
		return "OPERATING"
	case Recovering:
		return "RECOVERING"
	case Discharged:
		return "DISCHARGED"
	default:
		return fmt.Sprintf("PatientState(%d)", int(s))
	}
}

// Patient models one patient's lifecycle in virtual time. All
// timestamps are in seconds since the simulation's virtual origin;
// zero means "not yet reached".
//
// Invariants: if OpStarted > 0 then OpStarted >= Arrived; if OpEnded >
// 0 then OpEnded >= OpStarted > 0.
type Patient struct {
	ID              int
	GivenName       string
	FamilyName      string
	Priority        Priority
	Operation       OperationType
	EstimatedMins   int // estimated duration in minutes, > 0
	Arrived         int64
	OpStarted       int64
	OpEnded         int64
	DischargedAt    int64
	RecoveryMinutes int // recovery duration assigned at END_OP
}

// FullName returns the patient's given and family name joined.
func (p *Patient) FullName() string {
	return p.GivenName + " " + p.FamilyName
}

// State derives the patient's current lifecycle bucket from its
// timestamps. A patient exists in exactly one of these at any instant.
func (p *Patient) State() PatientState {
	switch {
	case p.DischargedAt > 0:
		return Discharged
	case p.OpEnded > 0:
		return Recovering
	case p.OpStarted > 0:
		return Operating
	default:
		return Waiting
	}
}

// Wait returns the patient's current or final waiting time in seconds:
// OpStarted-Arrived once started, or now-Arrived while still waiting.
func (p *Patient) Wait(now int64) int64 {
	if p.OpStarted > 0 {
		return p.OpStarted - p.Arrived
	}
	return now - p.Arrived
}

// OperationDuration returns the actual operating time in seconds, or 0
// if the operation has not ended.
func (p *Patient) OperationDuration() int64 {
	if p.OpEnded == 0 || p.OpStarted == 0 {
		return 0
	}
	return p.OpEnded - p.OpStarted
}

// TotalStay returns the time from arrival to discharge in seconds, or
// 0 if not yet discharged.
func (p *Patient) TotalStay() int64 {
	if p.DischargedAt == 0 {
		return 0
	}
	return p.DischargedAt - p.Arrived
}
