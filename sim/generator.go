// generator.go implements the stochastic patient generator (§4.3):
// an elective batch spaced uniformly across the run, an exponential
// emergency inter-arrival stream, and operation-type-conditioned
// duration sampling. Patient naming is supplemented from
// original_source (AutoMed's GenerateurPatients::genererPrenom),
// which spec.md's distillation dropped but which the original
// implementation always does.

package sim

import (
	"math/rand"
	"strconv"
)

// givenNames supplies first names for generated patients, grounded on
// original_source/backend/src/simulation/GenerateurPatients.hpp's
// genererPrenom table.
var givenNames = []string{
	"Jean", "Marie", "Pierre", "Sophie", "Luc", "Anne",
	"Marc", "Julie", "Paul", "Claire", "Jacques", "Nathalie",
	"Francois", "Isabelle", "Michel", "Catherine", "Philippe", "Sylvie",
}

// Generator produces patients with sampled attributes and emergency
// inter-arrival delays. State is instance-local: a monotonically
// increasing next id and a seeded RNG; nothing here is package-global
// (spec §9 "global mutable state: none required").
type Generator struct {
	nextID int
	rng    *rand.Rand

	// EmergencyRatePerHour is lambda for the exponential inter-arrival
	// distribution, in emergencies/hour.
	EmergencyRatePerHour float64
}

// NewGenerator creates a Generator seeded from rng (use
// PartitionedRNG.ForSubsystem(SubsystemGenerator) to get one that is
// reproducible given a Config.Seed).
func NewGenerator(rng *rand.Rand, emergencyRatePerHour float64) *Generator {
	return &Generator{nextID: 1, rng: rng, EmergencyRatePerHour: emergencyRatePerHour}
}

// familyName returns the generator's canonical family name for a
// patient id, matching the original's "Patient_<id>" convention.
func familyName(id int) string {
	return "Patient_" + strconv.Itoa(id)
}

// randomGivenName draws a uniformly random first name.
func (g *Generator) randomGivenName() string {
	return givenNames[g.rng.Intn(len(givenNames))]
}

// randomOperationType draws an operation type uniformly from the 10 types.
func (g *Generator) randomOperationType() OperationType {
	return operationTypes[g.rng.Intn(len(operationTypes))]
}

// sampleDuration draws a duration for the given operation type:
// max(15, mean + U*dispersion) where U is uniform on [-1, +1].
func (g *Generator) sampleDuration(t OperationType) int {
	stats := durationTable[t]
	u := g.rng.Float64()*2 - 1
	d := int(stats.mean + u*stats.dispersion)
	if d < 15 {
		d = 15
	}
	return d
}

// newPatient allocates a patient with the given priority, arrival
// timestamp, and a freshly sampled operation type and duration.
func (g *Generator) newPatient(priority Priority, arrived int64) *Patient {
	id := g.nextID
	g.nextID++
	op := g.randomOperationType()
	p := &Patient{
		ID:            id,
		GivenName:     g.randomGivenName(),
		FamilyName:    familyName(id),
		Priority:      priority,
		Operation:     op,
		EstimatedMins: g.sampleDuration(op),
		Arrived:       arrived,
	}
	return p
}

// ElectiveBatch produces K elective patients with arrival timestamps
// spaced uniformly across durationMinutes starting at t0, per spec
// §4.3's "elective batch". K<=0 returns an empty slice.
func (g *Generator) ElectiveBatch(t0 int64, durationMinutes, k int) []*Patient {
	if k <= 0 {
		return nil
	}
	out := make([]*Patient, 0, k)
	spacingSeconds := int64(durationMinutes) * 60 / int64(k)
	for i := 0; i < k; i++ {
		arrived := t0 + int64(i)*spacingSeconds
		out = append(out, g.newPatient(Elective, arrived))
	}
	return out
}

// NewEmergency produces one emergency patient arriving at the given timestamp.
func (g *Generator) NewEmergency(arrived int64) *Patient {
	return g.newPatient(Emergency, arrived)
}

// NextEmergencyDelayMinutes draws an exponential inter-arrival delay
// with rate EmergencyRatePerHour (emergencies/hour), converts to
// minutes, and enforces a 1-minute floor to avoid simultaneous-arrival
// pathologies (spec §4.3).
func (g *Generator) NextEmergencyDelayMinutes() int {
	if g.EmergencyRatePerHour <= 0 {
		return 1
	}
	// rng.ExpFloat64() draws Exp(1); scaling by 1/rate gives Exp(rate)
	// in hours, matching math/rand's convention (see teacher's
	// sim/workload/distribution.go ExponentialSampler: val :=
	// rng.ExpFloat64() * mean).
	meanHours := 1.0 / g.EmergencyRatePerHour
	delayHours := g.rng.ExpFloat64() * meanHours
	delayMinutes := int(delayHours*60 + 0.5)
	if delayMinutes < 1 {
		delayMinutes = 1
	}
	return delayMinutes
}
