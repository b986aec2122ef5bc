// metrics_prom.go exposes Statistics as a prometheus.Collector, so a
// host application can register an Engine's metrics with its own
// registry and HTTP handler (this module never starts a listener
// itself — spec §10 domain stack: observability is exported, not
// served). Grounded on the 99souls-ariadne example's
// prometheus/client_golang Collector/Describe/Collect registration
// pattern, applied to theatre-complex gauges instead of its own domain.

package sim

import "github.com/prometheus/client_golang/prometheus"

// PromCollector adapts an Engine's live Statistics into Prometheus
// metrics. Construct one with NewPromCollector(engine) and register it
// with a prometheus.Registry; collection reads the engine's current
// snapshot on every scrape, so it always reflects live state.
type PromCollector struct {
	engine *Engine

	waitMinutes   *prometheus.Desc
	opMinutes     *prometheus.Desc
	dischargeSum  *prometheus.Desc
	arrivalsSum   *prometheus.Desc
	rejectedSum   *prometheus.Desc
	roomsBusy     *prometheus.Desc
	recoveryUsed  *prometheus.Desc
	queueDepth    *prometheus.Desc
}

// NewPromCollector creates a PromCollector bound to e.
func NewPromCollector(e *Engine) *PromCollector {
	return &PromCollector{
		engine: e,
		waitMinutes: prometheus.NewDesc(
			"theatresim_wait_minutes_mean",
			"Mean waiting time in minutes, by priority.",
			[]string{"priority"}, nil,
		),
		opMinutes: prometheus.NewDesc(
			"theatresim_operation_minutes_mean",
			"Mean operation duration in minutes, by priority.",
			[]string{"priority"}, nil,
		),
		dischargeSum: prometheus.NewDesc(
			"theatresim_patients_discharged_total",
			"Total patients discharged from recovery.",
			nil, nil,
		),
		arrivalsSum: prometheus.NewDesc(
			"theatresim_patients_arrived_total",
			"Total patient arrivals, including those rejected for lack of waiting capacity.",
			nil, nil,
		),
		rejectedSum: prometheus.NewDesc(
			"theatresim_arrivals_rejected_total",
			"Total arrivals rejected for lack of waiting capacity.",
			nil, nil,
		),
		roomsBusy: prometheus.NewDesc(
			"theatresim_rooms_busy",
			"Number of operating rooms currently busy.",
			nil, nil,
		),
		recoveryUsed: prometheus.NewDesc(
			"theatresim_recovery_occupancy",
			"Number of recovery slots currently occupied.",
			nil, nil,
		),
		queueDepth: prometheus.NewDesc(
			"theatresim_waiting_queue_depth",
			"Number of patients currently waiting.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *PromCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.waitMinutes
	ch <- c.opMinutes
	ch <- c.dischargeSum
	ch <- c.arrivalsSum
	ch <- c.rejectedSum
	ch <- c.roomsBusy
	ch <- c.recoveryUsed
	ch <- c.queueDepth
}

// Collect implements prometheus.Collector, reading a live snapshot of
// the bound engine on every call.
func (c *PromCollector) Collect(ch chan<- prometheus.Metric) {
	state := c.engine.SnapshotState()
	stats := c.engine.SnapshotStats()

	ch <- prometheus.MustNewConstMetric(c.dischargeSum, prometheus.CounterValue, float64(stats.TotalDischarged))
	ch <- prometheus.MustNewConstMetric(c.arrivalsSum, prometheus.CounterValue, float64(stats.TotalArrivals))
	ch <- prometheus.MustNewConstMetric(c.rejectedSum, prometheus.CounterValue, float64(stats.ArrivalsRejected))
	ch <- prometheus.MustNewConstMetric(c.roomsBusy, prometheus.GaugeValue, float64(state.RoomsBusy))
	ch <- prometheus.MustNewConstMetric(c.recoveryUsed, prometheus.GaugeValue, float64(state.RecoveryOccupied))
	ch <- prometheus.MustNewConstMetric(c.queueDepth, prometheus.GaugeValue, float64(state.WaitingCount))

	for _, ps := range stats.ByPriority {
		label := ps.Priority.String()
		ch <- prometheus.MustNewConstMetric(c.waitMinutes, prometheus.GaugeValue, ps.MeanWaitMins, label)
		ch <- prometheus.MustNewConstMetric(c.opMinutes, prometheus.GaugeValue, ps.MeanOpMins, label)
	}
}
