// metrics_report.go derives a point-in-time StatsReport from a
// Statistics collector, grounded on the teacher's sim/metrics.go
// Snapshot()/percentile idiom but delegating the actual mean and
// percentile math to gonum.org/v1/gonum/stat rather than hand-rolled
// loops (spec §10 domain stack: gonum for statistics).

package sim

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// PriorityStatsReport reports derived statistics for one Priority class.
type PriorityStatsReport struct {
	Priority       Priority `json:"priority"`
	Arrivals       int      `json:"arrivals"`
	Discharged     int      `json:"discharged"`
	MeanWaitMins   float64  `json:"mean_wait_minutes"`
	P95WaitMins    float64  `json:"p95_wait_minutes"`
	MeanOpMins     float64  `json:"mean_operation_minutes"`
	MeanStayMins   float64  `json:"mean_stay_minutes"`
}

// StatsReport is the derived, immutable snapshot returned by
// Engine.SnapshotStats (spec §6.2).
type StatsReport struct {
	TotalArrivals    int                   `json:"total_arrivals"`
	TotalDischarged  int                   `json:"total_discharged"`
	ArrivalsRejected int                   `json:"arrivals_rejected"`
	ElapsedMinutes   float64               `json:"elapsed_minutes"`
	ThroughputPerHr  float64               `json:"throughput_per_hour"`
	MeanWaitMins     float64               `json:"mean_wait_minutes"`
	MaxWaitMins      float64               `json:"max_wait_minutes"`
	MeanOpMins       float64               `json:"mean_operation_minutes"`
	MeanStayMins     float64               `json:"mean_stay_minutes"`
	ByPriority       []PriorityStatsReport `json:"by_priority"`
}

// meanMinutes converts a slice of second-denominated samples to a mean
// expressed in minutes, using gonum's weighted mean with uniform
// (nil) weights. Returns 0 for an empty sample set.
func meanMinutes(samplesSeconds []float64) float64 {
	if len(samplesSeconds) == 0 {
		return 0
	}
	return stat.Mean(samplesSeconds, nil) / 60
}

// p95Minutes returns the 95th percentile of samplesSeconds, in
// minutes, using gonum's quantile over a sorted copy (stat.Quantile
// requires its input sorted ascending).
func p95Minutes(samplesSeconds []float64) float64 {
	if len(samplesSeconds) == 0 {
		return 0
	}
	sorted := append([]float64(nil), samplesSeconds...)
	sort.Float64s(sorted)
	return stat.Quantile(0.95, stat.Empirical, sorted, nil) / 60
}

// maxMinutes returns the largest sample in samplesSeconds, in minutes.
// Returns 0 for an empty sample set.
func maxMinutes(samplesSeconds []float64) float64 {
	if len(samplesSeconds) == 0 {
		return 0
	}
	max := samplesSeconds[0]
	for _, v := range samplesSeconds[1:] {
		if v > max {
			max = v
		}
	}
	return max / 60
}

// Snapshot derives a StatsReport from the accumulated samples as of
// the given virtual time now (seconds).
func (s *Statistics) Snapshot(now int64) StatsReport {
	elapsedSeconds := now - s.virtualStart
	elapsedMinutes := float64(elapsedSeconds) / 60
	var throughput float64
	if elapsedSeconds > 0 {
		throughput = float64(s.discharged) / (float64(elapsedSeconds) / 3600)
	}

	report := StatsReport{
		TotalArrivals:    s.total,
		TotalDischarged:  s.discharged,
		ArrivalsRejected: s.arrivalsRejected,
		ElapsedMinutes:   elapsedMinutes,
		ThroughputPerHr:  throughput,
		MeanWaitMins:     meanMinutes(s.overallWaits),
		MaxWaitMins:      maxMinutes(s.overallWaits),
		MeanOpMins:       meanMinutes(s.overallDurations),
		MeanStayMins:     meanMinutes(s.overallStays),
		ByPriority:       make([]PriorityStatsReport, 0, len(Priorities)),
	}

	for _, p := range Priorities {
		ps := s.byPriority[p]
		report.ByPriority = append(report.ByPriority, PriorityStatsReport{
			Priority:     p,
			Arrivals:     ps.arrivals,
			Discharged:   ps.discharged,
			MeanWaitMins: meanMinutes(ps.waits),
			P95WaitMins:  p95Minutes(ps.waits),
			MeanOpMins:   meanMinutes(ps.durations),
			MeanStayMins: meanMinutes(ps.stays),
		})
	}

	return report
}

// MeanWaitByPriority returns the mean wait (in minutes) for a single
// priority class, used directly by the policy comparator (spec §4.5)
// without constructing a full StatsReport.
func (s *Statistics) MeanWaitByPriority(p Priority) float64 {
	return meanMinutes(s.byPriority[p].waits)
}
