package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatistics_RecordArrival_IncrementsTotals(t *testing.T) {
	s := NewStatistics()
	p := &Patient{ID: 1, Priority: Emergency}
	s.RecordArrival(p)
	assert.Equal(t, 1, s.Total())
}

func TestStatistics_RecordRejection(t *testing.T) {
	s := NewStatistics()
	s.RecordRejection()
	s.RecordRejection()
	assert.Equal(t, 2, s.ArrivalsRejected())
}

func TestStatistics_RecordDischarge_IncrementsCount(t *testing.T) {
	s := NewStatistics()
	p := &Patient{ID: 1, Priority: Elective, Arrived: 0, DischargedAt: 6000}
	s.RecordDischarge(p)
	assert.Equal(t, 1, s.Discharged())
}

func TestStatistics_Snapshot_MeanWaitByPriority(t *testing.T) {
	s := NewStatistics()
	now := int64(0)

	p1 := &Patient{ID: 1, Priority: Emergency, Arrived: 0}
	p1.OpStarted = 600 // 10 minutes
	s.RecordBeginOp(p1, now)

	p2 := &Patient{ID: 2, Priority: Emergency, Arrived: 0}
	p2.OpStarted = 1200 // 20 minutes
	s.RecordBeginOp(p2, now)

	assert.InDelta(t, 15.0, s.MeanWaitByPriority(Emergency), 0.001)
	assert.Equal(t, 0.0, s.MeanWaitByPriority(Elective))
}

func TestStatistics_Snapshot_ThroughputZeroBeforeElapsedTime(t *testing.T) {
	s := NewStatistics()
	s.Start(0)
	report := s.Snapshot(0)
	assert.Equal(t, 0.0, report.ThroughputPerHr)
}

func TestStatistics_Snapshot_ThroughputAfterDischarges(t *testing.T) {
	s := NewStatistics()
	s.Start(0)
	for i := 1; i <= 4; i++ {
		p := &Patient{ID: i, Priority: Elective, Arrived: 0, DischargedAt: int64(i) * 100}
		s.RecordDischarge(p)
	}
	report := s.Snapshot(3600) // exactly one hour elapsed
	assert.InDelta(t, 4.0, report.ThroughputPerHr, 0.001)
}

func TestStatistics_Snapshot_ByPriorityCoversAllThree(t *testing.T) {
	s := NewStatistics()
	report := s.Snapshot(0)
	assert.Len(t, report.ByPriority, 3)
}

func TestStatistics_Snapshot_OverallMaxWaitMeanOpMeanStay(t *testing.T) {
	s := NewStatistics()
	now := int64(0)

	p1 := &Patient{ID: 1, Priority: Emergency, Arrived: 0}
	p1.OpStarted = 600 // 10 minutes wait
	s.RecordBeginOp(p1, now)
	p1.OpEnded = p1.OpStarted + 1800 // 30 minutes duration
	s.RecordEndOp(p1)

	p2 := &Patient{ID: 2, Priority: Elective, Arrived: 0}
	p2.OpStarted = 1200 // 20 minutes wait
	s.RecordBeginOp(p2, now)
	p2.OpEnded = p2.OpStarted + 600 // 10 minutes duration
	s.RecordEndOp(p2)

	p2.DischargedAt = p2.OpEnded + 3600 // 60 minutes in recovery after the operation ends
	s.RecordDischarge(p2)

	report := s.Snapshot(0)
	assert.InDelta(t, 20.0, report.MaxWaitMins, 0.001)
	assert.InDelta(t, 20.0, report.MeanOpMins, 0.001) // mean of 30 and 10
	// TotalStay is arrival-to-discharge: 20min wait + 10min op + 60min recovery.
	assert.InDelta(t, 90.0, report.MeanStayMins, 0.001)
}

func TestStatistics_Snapshot_OverallFieldsZeroWhenEmpty(t *testing.T) {
	s := NewStatistics()
	report := s.Snapshot(0)
	assert.Equal(t, 0.0, report.MaxWaitMins)
	assert.Equal(t, 0.0, report.MeanOpMins)
	assert.Equal(t, 0.0, report.MeanStayMins)
}

func TestPromCollector_BoundToItsEngine(t *testing.T) {
	cfg := DefaultConfig()
	eng, err := New("test-engine", cfg)
	assert.NoError(t, err)
	c := NewPromCollector(eng)
	assert.Same(t, eng, c.engine)
}
