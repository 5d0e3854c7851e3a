package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "quotevault"

// Metrics counts how often the repository had to lean on its cache.
type Metrics struct {
	// Fallbacks counts reads answered from the cache after a remote failure.
	Fallbacks *prometheus.CounterVec

	// MirrorFailures counts cache writes that failed after a remote success.
	MirrorFailures *prometheus.CounterVec

	// RemoteWriteFailures counts write-through operations rejected remotely.
	RemoteWriteFailures *prometheus.CounterVec

	// DailyRuns counts quote of the day job runs by result.
	DailyRuns *prometheus.CounterVec
}

// NewMetrics registers the repository metrics with reg. A nil reg uses the
// default registerer, which /-/metrics serves.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	factory := promauto.With(reg)

	return &Metrics{
		Fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "repository",
			Name:      "cache_fallbacks_total",
			Help:      "Reads answered from the local cache because the remote failed.",
		}, []string{"operation"}),
		MirrorFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "repository",
			Name:      "cache_mirror_failures_total",
			Help:      "Cache writes that failed after the remote call succeeded.",
		}, []string{"operation"}),
		RemoteWriteFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "repository",
			Name:      "remote_write_failures_total",
			Help:      "Write-through operations the remote rejected or could not take.",
		}, []string{"operation"}),
		DailyRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "daily",
			Name:      "runs_total",
			Help:      "Quote of the day job runs.",
		}, []string{"result"}),
	}
}
