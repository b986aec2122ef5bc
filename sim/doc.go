// Package sim implements a discrete-event simulator of a hospital
// operating-theatre complex: a virtual clock, an event priority queue,
// a waiting queue with three pluggable dequeue disciplines, a resource
// allocator pairing rooms, teams and patients, a post-operative
// lifecycle (cleaning -> recovery -> discharge), a stochastic patient
// generator, and a statistics collector.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - patient.go, team.go, room.go, queue.go, recovery.go: entities
//   - event.go, event_queue.go: the tagged event variant and its heap
//   - scheduler.go: the three selection policies and the allocator
//   - simulator.go: the event loop and the state machine
//
// # Extension points
//
// The single-method interface for drop-in replacement is:
//   - Scheduler: selects one patient from the waiting queue
//
// Patient generation (patients and inter-arrival delays) is the
// concrete *Generator type, not an interface.
//
// Everything else is owned exclusively by *Engine; nothing outside the
// engine mutates entity state (see simulator.go).
package sim
