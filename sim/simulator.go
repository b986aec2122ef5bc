// simulator.go implements Engine, the discrete-event kernel tying
// together entities, the event heap, the scheduler, the generator and
// the statistics collector. Grounded on the teacher's sim/simulator.go
// run loop (virtual clock, single-goroutine cooperative stepping) and
// on original_source/backend/src/simulation/SimulationEngine.hpp for
// the allocator loop and event dispatch order, which spec.md §4
// distills faithfully.

package sim

import "fmt"

// Engine owns every entity for one simulation run. All mutation
// happens through event handlers invoked from Run/Step on a single
// goroutine; Engine is not safe for concurrent use (spec §5).
type Engine struct {
	ID     string
	Config Config

	run   RunState
	clock int64 // seconds since virtual origin

	rooms    []*OperatingRoom
	teams    []*Team
	waiting  *WaitingQueue
	recovery *RecoveryRoom
	patients map[int]*Patient

	scheduler Scheduler
	generator *Generator
	rng       *PartitionedRNG
	stats     *Statistics
	history   *History
	events    *eventHeap

	endTS int64
}

// New constructs an Engine for id and cfg. Returns a *ConfigError if
// cfg fails validation; construction never panics on bad input (spec
// §7 "Configuration faults").
func New(id string, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		ID:       id,
		Config:   cfg,
		run:      Created,
		waiting:  NewWaitingQueue(cfg.WaitingCapacity),
		recovery: NewRecoveryRoom(cfg.RecoveryCapacity),
		patients: make(map[int]*Patient),
		stats:    NewStatistics(),
		history:  NewHistory(),
		events:   newEventHeap(),
		rng:      NewPartitionedRNG(NewSimulationKey(cfg.Seed)),
	}
	e.scheduler = NewScheduler(cfg.Policy)
	e.generator = NewGenerator(e.rng.ForSubsystem(SubsystemGenerator), cfg.EmergencyRatePerHour)

	for i := 1; i <= cfg.Rooms; i++ {
		e.rooms = append(e.rooms, &OperatingRoom{ID: i, State: RoomFree, CleaningDuration: cfg.CleaningMinutes})
	}
	for i := 1; i <= cfg.Teams; i++ {
		e.teams = append(e.teams, &Team{
			ID:           i,
			Available:    true,
			Surgeon:      &TeamMember{ID: i*10 + 1, Role: Surgeon},
			Anaesthetist: &TeamMember{ID: i*10 + 2, Role: Anaesthetist},
			Nurses:       []*TeamMember{{ID: i*10 + 3, Role: Nurse}},
		})
	}

	e.endTS = int64(cfg.DurationMinutes) * 60
	return e, nil
}

// initialise schedules the elective batch, the first emergency
// arrival, and the terminal SIM_END event. Called once by Start.
func (e *Engine) initialise() {
	for _, p := range e.generator.ElectiveBatch(0, e.Config.DurationMinutes, e.Config.ElectiveCount) {
		e.patients[p.ID] = p
		e.events.schedule(NewArrivalEvent(p.Arrived, p.ID))
	}
	e.scheduleNextEmergency(0)
	e.events.schedule(NewSimEndEvent(e.endTS))
}

// scheduleNextEmergency draws the next emergency inter-arrival delay
// from afterTS and schedules its ARRIVAL event, provided it still
// falls within the run's horizon.
func (e *Engine) scheduleNextEmergency(afterTS int64) {
	if e.Config.EmergencyRatePerHour <= 0 {
		return
	}
	delayMins := e.generator.NextEmergencyDelayMinutes()
	arrival := afterTS + int64(delayMins)*60
	if arrival >= e.endTS {
		return
	}
	p := e.generator.NewEmergency(arrival)
	e.patients[p.ID] = p
	e.events.schedule(NewArrivalEvent(arrival, p.ID))
}

// Start transitions CREATED -> RUNNING, seeding the event heap.
// Returns false (a no-op) if the engine is not in CREATED.
func (e *Engine) Start() bool {
	if e.run != Created {
		return false
	}
	e.initialise()
	e.run = Running
	e.stats.Start(e.clock)
	return true
}

// Pause transitions RUNNING -> PAUSED. Returns false if not RUNNING.
func (e *Engine) Pause() bool {
	if e.run != Running {
		return false
	}
	e.run = Paused
	return true
}

// Resume transitions PAUSED -> RUNNING. Returns false if not PAUSED.
func (e *Engine) Resume() bool {
	if e.run != Paused {
		return false
	}
	e.run = Running
	return true
}

// Stop transitions RUNNING or PAUSED -> STOPPED, a user-initiated
// early termination distinct from FINISHED (reaching SIM_END
// naturally). Returns false otherwise.
func (e *Engine) Stop() bool {
	if e.run != Running && e.run != Paused {
		return false
	}
	e.run = Stopped
	e.stats.Finish(e.clock)
	return true
}

// Step dequeues and executes exactly one event, advancing the virtual
// clock to its timestamp. Returns false (a no-op) if the engine is
// not RUNNING or the heap is empty.
func (e *Engine) Step() bool {
	if e.run != Running || e.events.empty() {
		return false
	}
	ev := e.events.pop()
	e.clock = ev.Timestamp()
	logEvent(e.clock, ev)
	ev.Execute(e)
	return true
}

// Run drives the event loop to completion: every event up to and
// including SIM_END, or until Stop()/Pause() changes run state out
// from under it.
func (e *Engine) Run() {
	for e.run == Running {
		if !e.Step() {
			return
		}
	}
}

// handleArrival admits a patient into the waiting queue (or records a
// rejection if it is full), then attempts allocation.
func (e *Engine) handleArrival(ev *ArrivalEvent) {
	p := e.patients[ev.PatientID]
	if p == nil {
		return
	}
	e.stats.RecordArrival(p)
	if !e.waiting.Enqueue(p) {
		e.stats.RecordRejection()
		e.recordHistory(ev, p.ID, 0, 0)
		return
	}
	e.recordHistory(ev, p.ID, 0, 0)

	if p.Priority == Emergency {
		e.scheduleNextEmergency(e.clock)
	}

	e.allocate()
}

// allocate runs the resource-matching loop (spec §4.1.2): while a
// free room and a selectable patient both exist, try to pair the
// patient with an available team. If no team can be found, the
// patient is re-inserted at the front of the queue (under FCFS, the
// position it was taken from) and allocation stops for this tick, since the queue order
// hasn't meaningfully changed and a different patient would not fare
// better against the same team pool.
func (e *Engine) allocate() {
	for {
		room := firstFreeRoom(e.rooms)
		if room == nil {
			return
		}
		p := e.scheduler.Select(e.waiting)
		if p == nil {
			return
		}
		team := firstAvailableTeam(e.teams, p.Operation)
		if team == nil {
			e.waiting.PrependFront(p)
			return
		}
		team.Reserve()
		room.BeginOperation(p, team, e.clock)
		p.OpStarted = e.clock
		e.stats.RecordBeginOp(p, e.clock)

		ev := NewBeginOpEvent(e.clock, p.ID, room.ID, team.ID)
		e.recordHistory(ev, p.ID, room.ID, team.ID)

		durationSeconds := int64(p.EstimatedMins) * 60
		e.events.schedule(NewEndOpEvent(e.clock+durationSeconds, room.ID))
	}
}

// handleBeginOp exists for trace symmetry (see the BeginOpEvent
// comment in event.go); the state transition itself happens inside
// allocate, which records a BeginOpEvent in the history without
// scheduling it, so this handler is never reached by the event loop.
func (e *Engine) handleBeginOp(ev *BeginOpEvent) {}

// handleEndOp transitions the room to CLEANING, transfers the patient
// synchronously into recovery (spec §4.1.1 open-question decision:
// recovery transfer has no separate event), and schedules both
// CLEANING_DONE and RECOVERY_EXIT.
func (e *Engine) handleEndOp(ev *EndOpEvent) {
	room := e.roomByID(ev.RoomID)
	if room == nil || room.State != RoomBusy {
		return
	}
	p := room.Patient
	team := room.Team
	p.OpEnded = e.clock
	e.stats.RecordEndOp(p)

	room.EndOperation(e.clock)
	team.Release()
	e.recordHistory(ev, p.ID, room.ID, team.ID)

	cleaningSeconds := int64(room.CleaningDuration) * 60
	e.events.schedule(NewCleaningDoneEvent(e.clock+cleaningSeconds, room.ID))

	p.RecoveryMinutes = e.Config.RecoveryMinutes
	if e.recovery.Admit(p, e.clock, int64(p.RecoveryMinutes)*60) {
		e.events.schedule(NewRecoveryExitEvent(e.clock+int64(p.RecoveryMinutes)*60, p.ID))
	} else {
		// Recovery room saturated: the patient is discharged directly
		// from the operating room rather than blocking it indefinitely
		// (spec §7 "Allocation saturation" extended to recovery).
		p.DischargedAt = e.clock
		e.stats.RecordDischarge(p)
	}
}

// handleCleaningDone frees the room and re-runs the allocator, since a
// newly-freed room may let a waiting patient be matched.
func (e *Engine) handleCleaningDone(ev *CleaningDoneEvent) {
	room := e.roomByID(ev.RoomID)
	if room == nil {
		return
	}
	room.CleaningComplete()
	e.recordHistory(ev, 0, room.ID, 0)
	e.allocate()
}

// handleRecoveryExit discharges a patient from the recovery room.
func (e *Engine) handleRecoveryExit(ev *RecoveryExitEvent) {
	p := e.patients[ev.PatientID]
	if p == nil {
		return
	}
	if !e.recovery.Discharge(p) {
		return
	}
	p.DischargedAt = e.clock
	e.stats.RecordDischarge(p)
	e.recordHistory(ev, p.ID, 0, 0)
}

// handleSimEnd transitions RUNNING -> FINISHED and finalises statistics.
func (e *Engine) handleSimEnd(ev *SimEndEvent) {
	e.recordHistory(ev, 0, 0, 0)
	e.run = Finished
	e.stats.Finish(e.clock)
}

// roomByID returns the room with the given id, or nil. Rooms are few
// enough per run (single to low-double digits) that a linear scan
// outperforms a map in practice and keeps iteration order implicit.
func (e *Engine) roomByID(id int) *OperatingRoom {
	for _, r := range e.rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// recordHistory appends an EventRecord derived from ev to the bounded history.
func (e *Engine) recordHistory(ev Event, patientID, roomID, teamID int) {
	e.history.Push(EventRecord{
		Kind:          ev.Kind(),
		TimestampMins: float64(ev.Timestamp()) / 60,
		PatientID:     patientID,
		RoomID:        roomID,
		TeamID:        teamID,
	})
}

// SnapshotState returns a point-in-time StateReport (spec §6.1).
func (e *Engine) SnapshotState() StateReport {
	progress := 0.0
	if e.endTS > 0 {
		progress = 100 * float64(e.clock) / float64(e.endTS)
		if progress > 100 {
			progress = 100
		}
	}
	stats := e.stats.Snapshot(e.clock)
	report := StateReport{
		ID:                 e.ID,
		Name:               e.Config.Name,
		Policy:             e.Config.Policy,
		Run:                e.run,
		DurationMinutes:    e.Config.DurationMinutes,
		VirtualTimeMins:    float64(e.clock) / 60,
		ProgressPercent:    progress,
		WaitingCount:       e.waiting.Len(),
		RecoveryOccupied:   e.recovery.Len(),
		PatientsTotal:      stats.TotalArrivals,
		PatientsDischarged: stats.TotalDischarged,
		Rooms:              make([]RoomReport, 0, len(e.rooms)),
	}
	for _, r := range e.rooms {
		rr := RoomReport{ID: r.ID, State: r.State}
		if r.Patient != nil {
			rr.PatientID = r.Patient.ID
		}
		if r.Team != nil {
			rr.TeamID = r.Team.ID
		}
		report.Rooms = append(report.Rooms, rr)
		if r.State == RoomBusy {
			report.RoomsBusy++
			report.PatientsOperating++
		} else if r.State == RoomFree {
			report.RoomsFree++
		}
	}
	for _, t := range e.teams {
		if t.Available {
			report.TeamsAvailable++
		}
	}
	return report
}

// SnapshotStats returns a point-in-time StatsReport (spec §6.2).
func (e *Engine) SnapshotStats() StatsReport {
	return e.stats.Snapshot(e.clock)
}

// RecentEvents returns the bounded recent-event trace, oldest first.
func (e *Engine) RecentEvents() []EventRecord {
	return e.history.Recent()
}

// Clock returns the current virtual time in seconds since origin.
func (e *Engine) Clock() int64 { return e.clock }

// RunState returns the engine's current lifecycle state.
func (e *Engine) RunState() RunState { return e.run }

// String implements fmt.Stringer for debug logging.
func (e *Engine) String() string {
	return fmt.Sprintf("Engine(%s, %s, t=%.1fmin)", e.ID, e.run, float64(e.clock)/60)
}
