// scheduler.go implements the three pluggable dequeue disciplines
// (§4.2) as pure functions over the waiting queue's current snapshot,
// and the resource allocator (§4.1.2) that pairs rooms, teams and
// patients.

package sim

import (
	"fmt"
	"sort"
)

// Policy names a scheduling discipline.
type Policy string

const (
	FCFS     Policy = "fcfs"
	Priority Policy = "priority"
	SJF      Policy = "sjf"
)

var validPolicies = map[Policy]bool{FCFS: true, Priority: true, SJF: true}

// IsValidPolicy returns true if name is a recognized scheduling policy.
func IsValidPolicy(name Policy) bool { return validPolicies[name] }

// ValidPolicyNames returns the recognized policy names, in declaration order.
func ValidPolicyNames() []Policy { return []Policy{FCFS, Priority, SJF} }

// Scheduler selects and removes one patient from the waiting queue.
// Implementations never cache an ordering; they operate on the
// queue's current snapshot each time they are called (spec §4.2).
type Scheduler interface {
	Select(wq *WaitingQueue) *Patient
}

// NewScheduler creates a Scheduler by policy name. Panics on an
// unrecognized policy, matching the teacher's NewScheduler/
// NewPriorityPolicy factory-panic idiom (sim/scheduler.go,
// sim/priority.go) — callers validate Policy via Config.Validate()
// before construction so this path is unreachable in practice.
func NewScheduler(p Policy) Scheduler {
	switch p {
	case FCFS:
		return fcfsScheduler{}
	case Priority:
		return priorityScheduler{}
	case SJF:
		return sjfScheduler{}
	default:
		panic(fmt.Sprintf("unknown scheduling policy %q", p))
	}
}

// fcfsScheduler removes and returns the queue head.
type fcfsScheduler struct{}

func (fcfsScheduler) Select(wq *WaitingQueue) *Patient {
	p := wq.Peek()
	if p == nil {
		return nil
	}
	wq.Remove(p)
	return p
}

// priorityScheduler returns the element with minimum numeric Priority,
// ties broken by earliest Arrived, then lowest ID.
type priorityScheduler struct{}

func (priorityScheduler) Select(wq *WaitingQueue) *Patient {
	snap := wq.Snapshot()
	if len(snap) == 0 {
		return nil
	}
	sort.SliceStable(snap, func(i, j int) bool {
		if snap[i].Priority != snap[j].Priority {
			return snap[i].Priority < snap[j].Priority
		}
		if snap[i].Arrived != snap[j].Arrived {
			return snap[i].Arrived < snap[j].Arrived
		}
		return snap[i].ID < snap[j].ID
	})
	best := snap[0]
	wq.Remove(best)
	return best
}

// sjfScheduler returns the element with minimum EstimatedMins, ties
// broken by priority (min), then earliest Arrived.
type sjfScheduler struct{}

func (sjfScheduler) Select(wq *WaitingQueue) *Patient {
	snap := wq.Snapshot()
	if len(snap) == 0 {
		return nil
	}
	sort.SliceStable(snap, func(i, j int) bool {
		if snap[i].EstimatedMins != snap[j].EstimatedMins {
			return snap[i].EstimatedMins < snap[j].EstimatedMins
		}
		if snap[i].Priority != snap[j].Priority {
			return snap[i].Priority < snap[j].Priority
		}
		return snap[i].Arrived < snap[j].Arrived
	})
	best := snap[0]
	wq.Remove(best)
	return best
}

// firstFreeRoom returns the first FREE room in id order, or nil. Room
// iteration is always stable id order (spec §5 determinism contract).
func firstFreeRoom(rooms []*OperatingRoom) *OperatingRoom {
	for _, r := range rooms {
		if r.State == RoomFree {
			return r
		}
	}
	return nil
}

// firstAvailableTeam returns the first available, complete team able
// to crew op, in id order, or nil. The baseline allocator is
// unconstrained (spec §9 open question): SupportsOperation always
// returns true unless a team has been given explicit Specialities.
func firstAvailableTeam(teams []*Team, op OperationType) *Team {
	for _, t := range teams {
		if t.Available && t.Complete() && t.SupportsOperation(op) {
			return t
		}
	}
	return nil
}
