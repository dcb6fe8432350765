package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/iotaledger/tritium/packages/pearldiver"
)

var (
	workerpools *prometheus.GaugeVec
)

func registerWorkerpoolMetrics(worker *pearldiver.PearlDiver) {
	workerpools = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "workerpools_load",
			Help: "Info about workerpools load",
		},
		[]string{
			"name",
		},
	)

	registry.MustRegister(workerpools)

	addCollect(func() {
		name, load := worker.WorkerPoolStatus()
		workerpools.WithLabelValues(
			name,
		).Set(float64(load))
	})
}
