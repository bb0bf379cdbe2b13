package metrics

import "github.com/prometheus/client_golang/prometheus"

// Intake outcomes used as the "outcome" label.
const (
	OutcomeAccepted = "accepted"
	OutcomeInvalid  = "invalid"
	OutcomeFailed   = "failed"
)

// Notification statuses used as the "status" label.
const (
	NotifySent    = "sent"
	NotifyFailed  = "failed"
	NotifySkipped = "skipped"
)

// LeadMetrics exposes counters/histograms for the lead intake pipeline.
type LeadMetrics struct {
	intakeTotal   *prometheus.CounterVec
	intakeLatency prometheus.Histogram
	storeSize     prometheus.Gauge
	notifyTotal   *prometheus.CounterVec
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		intakeTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cashoffer",
			Subsystem: "intake",
			Name:      "submissions_total",
			Help:      "Total lead form submissions by outcome",
		}, []string{"outcome"}),
		intakeLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "cashoffer",
			Subsystem: "intake",
			Name:      "latency_seconds",
			Help:      "Time spent decoding, validating and storing a submission, excluding the intake delay",
			Buckets:   prometheus.DefBuckets,
		}),
		storeSize: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "cashoffer",
			Subsystem: "store",
			Name:      "submissions",
			Help:      "Submissions currently retained in memory",
		}),
		notifyTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cashoffer",
			Subsystem: "notify",
			Name:      "emails_total",
			Help:      "Owner notification attempts by status",
		}, []string{"status"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.intakeTotal, m.intakeLatency, m.storeSize, m.notifyTotal)
	return m
}

func (m *LeadMetrics) ObserveIntake(outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.intakeTotal.WithLabelValues(outcome).Inc()
	m.intakeLatency.Observe(seconds)
}

func (m *LeadMetrics) SetStoreSize(n int) {
	if m == nil {
		return
	}
	m.storeSize.Set(float64(n))
}

func (m *LeadMetrics) ObserveNotification(status string) {
	if m == nil {
		return
	}
	m.notifyTotal.WithLabelValues(status).Inc()
}
