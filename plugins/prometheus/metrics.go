package prometheus

import (
	"github.com/iotaledger/hive.go/generics/event"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iotaledger/tritium/packages/pearldiver"
)

var (
	powSearches       *prometheus.CounterVec
	powSearchDuration prometheus.Histogram
	powTransforms     prometheus.Counter
	powRunning        prometheus.Gauge
)

func registerPoWMetrics(worker *pearldiver.PearlDiver) {
	powSearches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tritium_pow_searches_total",
		Help: "Number of finished PoW searches by result.",
	}, []string{"result"})
	powSearchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tritium_pow_search_duration_seconds",
		Help:    "Duration of finished PoW searches.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
	})
	powTransforms = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tritium_pow_transforms_total",
		Help: "Number of bit-sliced Curl transforms, each testing 64 nonces.",
	})
	powRunning = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "tritium_pow_running",
		Help: "1 while a PoW search is running.",
	})

	registry.MustRegister(powSearches)
	registry.MustRegister(powSearchDuration)
	registry.MustRegister(powTransforms)
	registry.MustRegister(powRunning)

	addCollect(func() {
		if worker.Status() == pearldiver.Running {
			powRunning.Set(1)
			return
		}
		powRunning.Set(0)
	})

	worker.Events.SearchCompleted.Hook(event.NewClosure(func(e *pearldiver.SearchStoppedEvent) {
		onSearchStopped("completed", e)
	}))
	worker.Events.SearchCancelled.Hook(event.NewClosure(func(e *pearldiver.SearchStoppedEvent) {
		onSearchStopped("cancelled", e)
	}))
}

func onSearchStopped(result string, e *pearldiver.SearchStoppedEvent) {
	powSearches.WithLabelValues(result).Inc()
	powSearchDuration.Observe(e.Duration.Seconds())
	powTransforms.Add(float64(e.Transforms))
}
