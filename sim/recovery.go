// recovery.go defines RecoveryRoom, the post-operative holding area
// between the end of an operation and discharge.

package sim

// recoveryEntry is one (patient, entry timestamp, recovery duration)
// triple held in a RecoveryRoom.
type recoveryEntry struct {
	patient  *Patient
	entryTS  int64
	duration int64 // seconds
}

// ready reports whether this entry's recovery period has elapsed by now.
func (e recoveryEntry) ready(now int64) bool {
	return now-e.entryTS >= e.duration
}

// RecoveryRoom holds patients between the end of their operation and
// discharge, with a capacity cap.
type RecoveryRoom struct {
	entries  []recoveryEntry
	Capacity int
}

// NewRecoveryRoom creates an empty RecoveryRoom with the given capacity.
func NewRecoveryRoom(capacity int) *RecoveryRoom {
	return &RecoveryRoom{Capacity: capacity}
}

// Len returns the number of patients currently recovering.
func (r *RecoveryRoom) Len() int { return len(r.entries) }

// Full reports whether the recovery room is at capacity.
func (r *RecoveryRoom) Full() bool { return len(r.entries) >= r.Capacity }

// Admit adds a patient to the recovery room at entryTS for the given
// duration (seconds). Returns false (a no-op) if the room is full.
func (r *RecoveryRoom) Admit(p *Patient, entryTS, duration int64) bool {
	if r.Full() {
		return false
	}
	r.entries = append(r.entries, recoveryEntry{patient: p, entryTS: entryTS, duration: duration})
	return true
}

// Discharge removes the given patient from the recovery room. Returns
// false (a no-op) if the patient is not present.
func (r *RecoveryRoom) Discharge(p *Patient) bool {
	for i, e := range r.entries {
		if e.patient == p {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}

// ReadyPatients returns the patients whose recovery period has elapsed
// by now, in entry order.
func (r *RecoveryRoom) ReadyPatients(now int64) []*Patient {
	var out []*Patient
	for _, e := range r.entries {
		if e.ready(now) {
			out = append(out, e.patient)
		}
	}
	return out
}
