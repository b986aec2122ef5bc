// event_queue.go implements the min-heap that orders Events by virtual
// timestamp, breaking ties by insertion order (spec §3: "Ties in
// virtual_ts are broken by insertion order (FIFO within the heap)").

package sim

import "container/heap"

// seqEvent pairs an Event with the monotonic sequence number it was
// scheduled with, used only to break timestamp ties deterministically.
type seqEvent struct {
	event Event
	seq   uint64
}

// EventQueue implements heap.Interface and orders events by
// (Timestamp, seq) ascending. See the canonical example at
// https://pkg.go.dev/container/heap#example-package-IntHeap.
type EventQueue []seqEvent

func (eq EventQueue) Len() int { return len(eq) }

func (eq EventQueue) Less(i, j int) bool {
	if eq[i].event.Timestamp() != eq[j].event.Timestamp() {
		return eq[i].event.Timestamp() < eq[j].event.Timestamp()
	}
	return eq[i].seq < eq[j].seq
}

func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(seqEvent))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[:n-1]
	return item
}

// eventHeap wraps EventQueue with the monotonic sequence counter so
// callers never have to thread it through manually.
type eventHeap struct {
	q       EventQueue
	nextSeq uint64
}

func newEventHeap() *eventHeap {
	return &eventHeap{q: make(EventQueue, 0)}
}

// schedule pushes ev onto the heap, assigning it the next sequence number.
func (h *eventHeap) schedule(ev Event) {
	heap.Push(&h.q, seqEvent{event: ev, seq: h.nextSeq})
	h.nextSeq++
}

// pop removes and returns the minimum (timestamp, seq) event, or nil
// if the heap is empty.
func (h *eventHeap) pop() Event {
	if len(h.q) == 0 {
		return nil
	}
	return heap.Pop(&h.q).(seqEvent).event
}

func (h *eventHeap) empty() bool { return len(h.q) == 0 }

func (h *eventHeap) len() int { return len(h.q) }
