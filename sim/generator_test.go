package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerator_NewPatient_AssignsSequentialIDs(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)), 2.0)
	p1 := g.newPatient(Elective, 0)
	p2 := g.newPatient(Elective, 0)
	assert.Equal(t, 1, p1.ID)
	assert.Equal(t, 2, p2.ID)
}

func TestGenerator_SampleDuration_RespectsFloor(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)), 2.0)
	for i := 0; i < 1000; i++ {
		d := g.sampleDuration(ENT)
		assert.GreaterOrEqual(t, d, 15)
	}
}

func TestGenerator_ElectiveBatch_ZeroOrNegativeReturnsEmpty(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)), 2.0)
	assert.Empty(t, g.ElectiveBatch(0, 480, 0))
	assert.Empty(t, g.ElectiveBatch(0, 480, -1))
}

func TestGenerator_ElectiveBatch_SpacedUniformly(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)), 2.0)
	batch := g.ElectiveBatch(0, 600, 5)
	assert.Len(t, batch, 5)
	assert.Equal(t, int64(0), batch[0].Arrived)
	for i := 1; i < len(batch); i++ {
		assert.Greater(t, batch[i].Arrived, batch[i-1].Arrived)
		assert.Equal(t, Elective, batch[i].Priority)
	}
}

func TestGenerator_NewEmergency_SetsPriority(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)), 2.0)
	p := g.NewEmergency(120)
	assert.Equal(t, Emergency, p.Priority)
	assert.Equal(t, int64(120), p.Arrived)
}

func TestGenerator_NextEmergencyDelayMinutes_FloorIsOneMinute(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)), 1000.0)
	for i := 0; i < 1000; i++ {
		assert.GreaterOrEqual(t, g.NextEmergencyDelayMinutes(), 1)
	}
}

func TestGenerator_NextEmergencyDelayMinutes_ZeroRateReturnsOne(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewSource(1)), 0)
	assert.Equal(t, 1, g.NextEmergencyDelayMinutes())
}

func TestFamilyName_Convention(t *testing.T) {
	assert.Equal(t, "Patient_7", familyName(7))
}
