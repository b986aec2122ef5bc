// Implements the WaitingQueue, which holds patient references waiting
// to be matched with a room and a team. Patients are enqueued on
// arrival and dequeued by a Scheduler selection policy.

package sim

// WaitingQueue is an ordered insertion list of patient references with
// a capacity cap. Invariant: len(queue) <= Capacity; it contains only
// patients with OpStarted == 0.
type WaitingQueue struct {
	queue    []*Patient
	Capacity int
}

// NewWaitingQueue creates an empty WaitingQueue with the given capacity.
func NewWaitingQueue(capacity int) *WaitingQueue {
	return &WaitingQueue{Capacity: capacity}
}

// Len returns the number of patients currently waiting.
func (wq *WaitingQueue) Len() int { return len(wq.queue) }

// Full reports whether the queue is at capacity.
func (wq *WaitingQueue) Full() bool { return len(wq.queue) >= wq.Capacity }

// Enqueue adds a patient to the back of the queue. Returns false (a
// no-op) if the queue is full, so the return value distinguishes
// rejection from success (see ARRIVAL handling in simulator.go, which
// counts a false return as a statistic, not an error).
func (wq *WaitingQueue) Enqueue(p *Patient) bool {
	if wq.Full() {
		return false
	}
	wq.queue = append(wq.queue, p)
	return true
}

// PrependFront inserts a patient at the front of the queue, bypassing
// the capacity check. Used by the allocator (§4.1.2) to re-insert a
// patient whose room was found but no team was available, preserving
// FCFS fairness for that patient without altering Arrived.
func (wq *WaitingQueue) PrependFront(p *Patient) {
	wq.queue = append([]*Patient{p}, wq.queue...)
}

// Peek returns the queue's front element without removing it, or nil
// if the queue is empty.
func (wq *WaitingQueue) Peek() *Patient {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Remove deletes the given patient from the queue by identity,
// wherever it is (used by selection policies that pick a non-head
// element, e.g. PRIORITY and SJF). Returns false if not found.
func (wq *WaitingQueue) Remove(p *Patient) bool {
	for i, q := range wq.queue {
		if q == p {
			wq.queue = append(wq.queue[:i], wq.queue[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot returns the current queue contents as a slice. The
// returned slice is a shallow copy; mutating it does not affect the
// queue, but the *Patient pointers it holds alias live entities.
func (wq *WaitingQueue) Snapshot() []*Patient {
	out := make([]*Patient, len(wq.queue))
	copy(out, wq.queue)
	return out
}
