package prometheus

import (
	"runtime"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/iotaledger/tritium/plugins/banner"
)

var (
	infoApp *prometheus.GaugeVec
	infoOS  *prometheus.GaugeVec
)

func registerInfoMetrics() {
	infoApp = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tritium_info_app",
			Help: "Software name and version.",
		},
		[]string{"name", "version"},
	)
	infoApp.WithLabelValues(banner.AppName, banner.AppVersion).Set(1)

	infoOS = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "tritium_info_os",
			Help: "Operating system, architecture and number of usable CPUs.",
		},
		[]string{"os", "arch", "num_cpu"},
	)
	infoOS.WithLabelValues(runtime.GOOS, runtime.GOARCH, strconv.Itoa(runtime.GOMAXPROCS(0))).Set(1)

	registry.MustRegister(infoApp)
	registry.MustRegister(infoOS)
}
