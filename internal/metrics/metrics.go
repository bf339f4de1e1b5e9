package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	attemptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "saferoute",
			Name:      "alert_attempts_total",
			Help:      "Alert attempts partitioned by channel and outcome.",
		},
		[]string{"channel", "outcome"},
	)

	pipelineDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "saferoute",
			Name:      "pipeline_seconds",
			Help:      "Alert pipeline latency in seconds.",
			Buckets:   []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)
)

// Register attaches the collectors to the supplied Prometheus registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		attemptsTotal,
		pipelineDurationSeconds,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveAttempt records one per-hazard notification outcome.
func ObserveAttempt(channel, outcome string) {
	attemptsTotal.WithLabelValues(channel, outcome).Inc()
}

// ObservePipeline records one full pipeline invocation.
func ObservePipeline(duration time.Duration) {
	if duration < 0 {
		duration = 0
	}
	pipelineDurationSeconds.Observe(duration.Seconds())
}
